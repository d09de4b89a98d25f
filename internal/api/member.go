package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	// Role defaults to editor when omitted.
	Role string `json:"role,omitempty"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// Response DTOs

type MemberResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	domain.BoardMember
}

// MemberListResponse is the roster view: owner surfaced separately
// from the stored membership rows.
type MemberListResponse struct {
	Success bool                 `json:"success"`
	Owner   domain.User          `json:"owner"`
	Members []domain.BoardMember `json:"members"`
}
