// Package api holds the request and response DTOs shared by the HTTP
// handlers. Every response carries the uniform envelope: success plus
// an optional message, with the payload fields inlined alongside.
package api

import "github.com/taskboard-dev/taskboard/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    domain.User `json:"user"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    domain.User `json:"user"`
	// AccessToken duplicates the cookie for non-cookie clients.
	AccessToken string `json:"accessToken,omitempty"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
