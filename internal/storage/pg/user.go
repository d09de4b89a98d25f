package pg

import (
	"database/sql"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

func (s *Storage) CreateUser(email domain.Email, passwordHash, fullName string) (*domain.User, error) {
	user := &domain.User{Email: email, FullName: fullName}
	err := s.db.QueryRow(
		`INSERT INTO users (email, password_hash, full_name) VALUES ($1, $2, $3) RETURNING id, created`,
		email, passwordHash, fullName,
	).Scan(&user.Id, &user.CreatedAt)
	if isUniqueViolation(err) {
		return nil, internal_errors.Conflict("Email already registered")
	}
	if err != nil {
		return nil, s.unavailable("create user", err)
	}
	return user, nil
}

func (s *Storage) GetUser(id domain.UserId) (*domain.User, error) {
	user := &domain.User{}
	err := s.db.QueryRow(
		`SELECT id, email, full_name, is_admin, created FROM users WHERE id = $1`,
		id,
	).Scan(&user.Id, &user.Email, &user.FullName, &user.Admin, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("User not found")
	}
	if err != nil {
		return nil, s.unavailable("get user", err)
	}
	return user, nil
}

func (s *Storage) UserByEmail(email domain.Email) (*domain.User, error) {
	user := &domain.User{}
	err := s.db.QueryRow(
		`SELECT id, email, full_name, is_admin, created FROM users WHERE email = $1`,
		email,
	).Scan(&user.Id, &user.Email, &user.FullName, &user.Admin, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("User not found")
	}
	if err != nil {
		return nil, s.unavailable("user by email", err)
	}
	return user, nil
}

// UserCredentials loads identity plus password hash; only the login
// path calls it.
func (s *Storage) UserCredentials(email domain.Email) (*domain.UserCredentials, error) {
	creds := &domain.UserCredentials{}
	err := s.db.QueryRow(
		`SELECT id, email, full_name, is_admin, created, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&creds.Id, &creds.Email, &creds.FullName, &creds.Admin, &creds.CreatedAt, &creds.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("User not found")
	}
	if err != nil {
		return nil, s.unavailable("user credentials", err)
	}
	return creds, nil
}
