package handler

import (
	"net/http"
)

// BoardEvents streams the board's mutation events over SSE. The access
// check runs once at connect time; a member removed mid-stream keeps
// the connection until it drops.
func (h *Handler) BoardEvents(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.board.Get(boardId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	h.bus.ServeSSE(w, r, boardId)
}
