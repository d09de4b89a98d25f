package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type CreateBoardRequest struct {
	Name string `json:"boardName" validate:"required"`
}

type RenameBoardRequest struct {
	Name string `json:"boardName" validate:"required"`
}

// Response DTOs

type BoardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	domain.Board
}

type BoardListResponse struct {
	Success bool           `json:"success"`
	Owned   []domain.Board `json:"owned"`
	Shared  []domain.Board `json:"shared"`
}

// BoardViewResponse is the full board view: every list with its cards
// attached, both sorted by (position, id).
type BoardViewResponse struct {
	Success bool          `json:"success"`
	Board   domain.Board  `json:"board"`
	Lists   []domain.List `json:"lists"`
}

// OkResponse is the envelope for mutations with no payload.
type OkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
