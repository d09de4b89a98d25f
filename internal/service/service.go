// Package service implements the permission-aware mutation and ordering
// engine for boards, lists, cards, members and comments.
//
// Every mutating operation takes the authenticated requester id as an
// explicit argument and resolves the requester's role before touching
// state. Services return tagged errors for expected business-rule
// violations; only unexpected storage failures propagate untyped.
package service

import (
	"strings"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// Publisher receives a board-scoped notification after each successful
// mutation. The event bus satisfies it; tests pass a recording stub.
type Publisher interface {
	Publish(ev events.Event)
}

// nopPublisher lets services run without a wired bus.
type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}

// BoardGetter is shared by every service: mutations authorize against the
// board that owns the touched entity.
type BoardGetter interface {
	GetBoard(id domain.BoardId) (*domain.Board, error)
}

func requireName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return internal_errors.InvalidInput(field + " is required")
	}
	return nil
}
