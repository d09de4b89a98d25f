package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type CreateListRequest struct {
	Name string `json:"listName" validate:"required"`
	// Position <= 0 appends after existing lists.
	Position int64 `json:"position,omitempty"`
}

type RenameListRequest struct {
	Name string `json:"listName" validate:"required"`
}

type ReorderListsRequest struct {
	// OrderedListIds is the full desired order, first to last.
	OrderedListIds []int64 `json:"orderedListIDs" validate:"required,min=1"`
}

// Response DTOs

type ListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	domain.List
}
