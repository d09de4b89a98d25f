package service

import (
	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// recordingBus captures published events for assertions.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(ev events.Event) {
	b.published = append(b.published, ev)
}

func (b *recordingBus) types() []string {
	out := make([]string, len(b.published))
	for i, ev := range b.published {
		out[i] = ev.Type
	}
	return out
}

// roleTable backs an access.Resolver with a fixed membership table keyed
// by user id. Ownership still comes from the board itself.
type roleTable map[domain.UserId]domain.Role

func (rt roleTable) MemberRole(_ domain.BoardId, userId domain.UserId) (domain.Role, error) {
	if role, ok := rt[userId]; ok {
		return role, nil
	}
	return domain.RoleNone, internal_errors.NotFound("No membership")
}

func testResolver(members roleTable) *access.Resolver {
	if members == nil {
		members = roleTable{}
	}
	return access.NewResolver(members)
}

// plainRenderer makes rendered output predictable in tests.
type plainRenderer struct{}

func (plainRenderer) Render(markdown string) string { return "<p>" + markdown + "</p>" }
