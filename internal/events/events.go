// Package events fans mutation notifications out to board subscribers.
//
// The core publishes after every successful mutation; subscriber
// connections (SSE) are an adapter concern. Publishing never blocks:
// slow subscribers get dropped messages, not backpressure.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/logger"
)

type Event struct {
	Id      string         `json:"id"`
	Type    string         `json:"type"`
	BoardId domain.BoardId `json:"boardID"`
	ListId  *domain.ListId `json:"listID,omitempty"`
	Payload any            `json:"payload,omitempty"`
}

// Event types published by the services.
const (
	BoardRenamed   = "board.renamed"
	BoardDeleted   = "board.deleted"
	MemberInvited  = "member.invited"
	MemberRemoved  = "member.removed"
	MemberUpdated  = "member.updated"
	ListCreated    = "list.created"
	ListRenamed    = "list.renamed"
	ListDeleted    = "list.deleted"
	ListsReordered = "lists.reordered"
	CardCreated    = "card.created"
	CardUpdated    = "card.updated"
	CardMoved      = "card.moved"
	CardsReordered = "cards.reordered"
	CardDeleted    = "card.deleted"
	CommentAdded   = "comment.added"
	CommentDeleted = "comment.deleted"
)

type Bus struct {
	mu   sync.RWMutex
	subs map[domain.BoardId]map[chan []byte]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[domain.BoardId]map[chan []byte]struct{})}
}

func (b *Bus) Subscribe(boardId domain.BoardId) (ch chan []byte, cancel func()) {
	ch = make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[boardId] == nil {
		b.subs[boardId] = make(map[chan []byte]struct{})
	}
	b.subs[boardId][ch] = struct{}{}
	b.mu.Unlock()
	return ch, func() {
		b.mu.Lock()
		if subs, ok := b.subs[boardId]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(b.subs, boardId)
			}
		}
		b.mu.Unlock()
		close(ch)
	}
}

func (b *Bus) Publish(ev Event) {
	if ev.Id == "" {
		ev.Id = uuid.NewString()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Error("marshal event", "type", ev.Type, "err", err)
		return
	}
	b.mu.RLock()
	for ch := range b.subs[ev.BoardId] {
		select {
		case ch <- data:
		default: // drop if slow
		}
	}
	b.mu.RUnlock()
}

// ServeSSE streams a single board's events over server-sent events until
// the client disconnects.
func (b *Bus) ServeSSE(w http.ResponseWriter, r *http.Request, boardId domain.BoardId) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := b.Subscribe(boardId)
	defer cancel()

	_, _ = w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	// heartbeat keeps the connection alive through proxies
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write([]byte("data: "))
			_, _ = w.Write(msg)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
