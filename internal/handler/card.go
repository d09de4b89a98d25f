package handler

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/api"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) GetCards(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	listId, err := parseIdParam(r, "list")
	if err != nil {
		writeError(w, err)
		return
	}

	cards, err := h.card.ByList(listId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CardListResponse{Success: true, Cards: cards})
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	listId, err := parseIdParam(r, "list")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.CreateCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.card.Add(listId, user.Id, body.Name, body.Description, body.DueDate, body.Position)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CardResponse{Success: true, Card: *card})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.UpdateCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.card.Update(cardId, user.Id, body.Name, body.Description, body.DueDate, domain.CardStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CardResponse{Success: true, Card: *card})
}

func (h *Handler) SetCardStatus(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.SetCardStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.card.SetStatus(cardId, user.Id, domain.CardStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CardResponse{Success: true, Card: *card})
}

func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.MoveCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	card, err := h.card.Move(cardId, body.TargetListId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CardResponse{Success: true, Card: *card})
}

func (h *Handler) ReorderCards(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.ReorderCardsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.card.Reorder(user.Id, body.Updates); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Cards reordered"})
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.card.Delete(cardId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Card deleted"})
}
