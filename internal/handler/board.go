package handler

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/api"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	board, err := h.board.Create(user.Id, body.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.BoardResponse{Success: true, Board: *board})
}

// GetBoard returns the full board view: metadata plus every list with
// its cards attached.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	board, err := h.board.Get(boardId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}
	lists, err := h.list.ForBoard(boardId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.BoardViewResponse{Success: true, Board: *board, Lists: lists})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	boards, err := h.board.ForUser(user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.BoardListResponse{
		Success: true,
		Owned:   boards.Owned,
		Shared:  boards.Shared,
	})
}

func (h *Handler) RenameBoard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.RenameBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	board, err := h.board.Rename(boardId, user.Id, body.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.BoardResponse{Success: true, Board: *board})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.Delete(boardId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Board deleted"})
}
