package handler

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/api"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.CreateListRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	list, err := h.list.Add(boardId, user.Id, body.Name, body.Position)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.ListResponse{Success: true, List: *list})
}

func (h *Handler) RenameList(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	listId, err := parseIdParam(r, "list")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.RenameListRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	list, err := h.list.Rename(listId, user.Id, body.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ListResponse{Success: true, List: *list})
}

func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	listId, err := parseIdParam(r, "list")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.list.Delete(listId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "List deleted"})
}

func (h *Handler) ReorderLists(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.ReorderListsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.list.Reorder(user.Id, body.OrderedListIds); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Lists reordered"})
}
