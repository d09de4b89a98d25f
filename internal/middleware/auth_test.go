package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-dev/taskboard/internal/domain"
	jwt_internal "github.com/taskboard-dev/taskboard/internal/jwt"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	user := domain.User{Id: 1, Email: "test@example.com"}
	token, err := jwtService.NewToken(user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		bearer         string
		expectedStatus int
		expectUser     bool
	}{
		{
			name:           "valid cookie",
			cookie:         &http.Cookie{Name: "accessToken", Value: token},
			expectedStatus: http.StatusOK,
			expectUser:     true,
		},
		{
			name:           "valid bearer header",
			bearer:         token,
			expectedStatus: http.StatusOK,
			expectUser:     true,
		},
		{
			name:           "no token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			cookie:         &http.Cookie{Name: "accessToken", Value: "invalid_token"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			cookie:         &http.Cookie{Name: "accessToken", Value: expiredToken(t)},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "http://example.com", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			rec := httptest.NewRecorder()

			var gotUser *domain.User
			handler := NeedAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectUser {
				require.NotNil(t, gotUser)
				assert.Equal(t, user.Id, gotUser.Id)
				assert.Equal(t, user.Email, gotUser.Email)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestGetUserFromContext_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com", nil)
	assert.Nil(t, GetUserFromContext(req))
}

func expiredToken(t *testing.T) string {
	t.Helper()
	token, err := jwt_internal.New("test_secret", -time.Minute).NewToken(domain.User{Id: 1, Email: "test@example.com"})
	require.NoError(t, err)
	return token
}
