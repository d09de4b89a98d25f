package handler

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/api"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	comments, err := h.comment.ForCard(cardId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CommentListResponse{Success: true, Comments: comments})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.comment.Add(cardId, user.Id, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CommentResponse{Success: true, Comment: *comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	commentId, err := parseIdParam(r, "comment")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.comment.Delete(commentId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Comment deleted"})
}
