package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type CommentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	domain.Comment
}

type CommentListResponse struct {
	Success  bool             `json:"success"`
	Comments []domain.Comment `json:"comments"`
}
