package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

// AuthService is a thin identity adapter around the core: it turns
// credentials into a resolved user. The core itself only ever sees
// already-resolved user ids.
type AuthService interface {
	Register(email domain.Email, password domain.Password, fullName string) (*domain.User, error)
	Login(email domain.Email, password domain.Password) (*domain.User, error)
}

type AuthStorage interface {
	// CreateUser fails with a Conflict-tagged error on a duplicate email.
	CreateUser(email domain.Email, passwordHash, fullName string) (*domain.User, error)
	// UserCredentials fails with NotFound when the email is unknown.
	UserCredentials(email domain.Email) (*domain.UserCredentials, error)
}

type Auth struct {
	storage AuthStorage
}

func NewAuth(storage AuthStorage) *Auth {
	return &Auth{storage}
}

const minPasswordLen = 8

func (a *Auth) Register(email domain.Email, password domain.Password, fullName string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, internal_errors.InvalidInput("A valid email is required")
	}
	if len(password) < minPasswordLen {
		return nil, internal_errors.InvalidInput("Password must be at least 8 characters")
	}
	if err := requireName("Full name", fullName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return a.storage.CreateUser(email, string(hash), fullName)
}

// Login verifies credentials. Unknown email and wrong password produce
// the same message so the endpoint does not leak which emails exist.
func (a *Auth) Login(email domain.Email, password domain.Password) (*domain.User, error) {
	creds, err := a.storage.UserCredentials(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if internal_errors.IsKind(err, 404) {
			return nil, internal_errors.Forbidden("Invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return nil, internal_errors.Forbidden("Invalid email or password")
	}
	user := creds.User
	return &user, nil
}
