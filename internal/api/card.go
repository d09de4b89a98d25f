package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type CreateCardRequest struct {
	Name        string `json:"cardName" validate:"required"`
	Description string `json:"description,omitempty"`
	// DueDate is YYYY-MM-DD; empty means no due date.
	DueDate string `json:"dueDate,omitempty"`
	// Position <= 0 appends after existing cards.
	Position int64 `json:"position,omitempty"`
}

type UpdateCardRequest struct {
	Name        string `json:"cardName" validate:"required"`
	Description string `json:"description,omitempty"`
	// DueDate is YYYY-MM-DD; empty clears the due date.
	DueDate string `json:"dueDate,omitempty"`
	// Status other than "Done" is stored as "To Do".
	Status string `json:"status,omitempty"`
}

type SetCardStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type MoveCardRequest struct {
	TargetListId int64 `json:"targetListID" validate:"required"`
}

type ReorderCardsRequest struct {
	Updates []domain.CardPosition `json:"updates" validate:"required,min=1"`
}

// Response DTOs

type CardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	domain.Card
}

type CardListResponse struct {
	Success bool          `json:"success"`
	Cards   []domain.Card `json:"cards"`
}
