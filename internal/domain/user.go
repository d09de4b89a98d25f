package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Email     Email     `json:"email"`
	FullName  string    `json:"fullName"`
	Admin     bool      `json:"admin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCredentials carries the password hash alongside identity.
// Only the auth storage path ever sees it.
type UserCredentials struct {
	User
	PasswordHash string
}
