package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	email := generateEmail(t)

	user, err := storage.CreateUser(email, "hash", "Alice Example")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = storage.db.Exec(`DELETE FROM users WHERE id = $1`, user.Id)
	})
	assert.NotZero(t, user.Id)
	assert.Equal(t, email, user.Email)

	t.Run("duplicate email should 409", func(t *testing.T) {
		_, err := storage.CreateUser(email, "otherhash", "Impostor")
		requireStatus(t, err, 409)
	})
}

func TestUserLookups(t *testing.T) {
	user := createUser(t)

	byId, err := storage.GetUser(user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byId.Email)

	byEmail, err := storage.UserByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.Id, byEmail.Id)

	creds, err := storage.UserCredentials(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.Id, creds.Id)
	assert.Equal(t, "hash", creds.PasswordHash)

	t.Run("unknown user should 404", func(t *testing.T) {
		_, err := storage.GetUser(999999)
		requireNotFoundError(t, err)
		_, err = storage.UserByEmail("nobody@example.com")
		requireNotFoundError(t, err)
		_, err = storage.UserCredentials("nobody@example.com")
		requireNotFoundError(t, err)
	})
}
