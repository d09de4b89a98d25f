package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
	jwt_internal "github.com/taskboard-dev/taskboard/internal/jwt"
	"github.com/taskboard-dev/taskboard/internal/logger"
	"github.com/taskboard-dev/taskboard/internal/middleware"
	"github.com/taskboard-dev/taskboard/internal/service"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

// HealthChecker is the readiness probe's view of storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	board   service.BoardService
	member  service.MembershipService
	list    service.ListService
	card    service.CardService
	comment service.CommentService
	cfg     *config.Config
	jwt     jwt_internal.JwtService
	bus     *events.Bus
	health  HealthChecker
}

func New(
	auth service.AuthService,
	board service.BoardService,
	member service.MembershipService,
	list service.ListService,
	card service.CardService,
	comment service.CommentService,
	cfg *config.Config,
	jwtService jwt_internal.JwtService,
	bus *events.Bus,
	health HealthChecker,
) *Handler {
	return &Handler{auth, board, member, list, card, comment, cfg, jwtService, bus, health}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

// requireUser pulls the authenticated user off the request context.
// Routes behind NeedAuth always have one; a nil here means a routing
// mistake, answered as 401 rather than a panic.
func requireUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return nil
	}
	return user
}

// parseIdParam parses a chi URL parameter as an id.
func parseIdParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.InvalidInput("Invalid " + name + " id")
	}
	return id, nil
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteErrorAndStatusCode(w, err)
}
