package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskboard-dev/taskboard/internal/middleware"
	"github.com/taskboard-dev/taskboard/internal/middleware/metrics"
	"github.com/taskboard-dev/taskboard/internal/setup"
)

// New wires every route. All board, list, card, comment and member
// endpoints sit behind JWT auth; per-board authorization happens in
// the service layer, not here.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.NeedAuth(deps.Jwt))

			r.Route("/boards", func(r chi.Router) {
				r.Get("/", h.GetBoards)
				r.Post("/", h.CreateBoard)
				r.Route("/{board}", func(r chi.Router) {
					r.Get("/", h.GetBoard)
					r.Put("/", h.RenameBoard)
					r.Delete("/", h.DeleteBoard)
					r.Get("/events", h.BoardEvents)

					r.Get("/members", h.GetMembers)
					r.Post("/members", h.InviteMember)
					r.Put("/members/{user}", h.UpdateMemberRole)
					r.Delete("/members/{user}", h.RemoveMember)

					r.Post("/lists", h.CreateList)
				})
			})

			r.Route("/lists", func(r chi.Router) {
				r.Put("/reorder", h.ReorderLists)
				r.Route("/{list}", func(r chi.Router) {
					r.Put("/", h.RenameList)
					r.Delete("/", h.DeleteList)
					r.Get("/cards", h.GetCards)
					r.Post("/cards", h.CreateCard)
				})
			})

			r.Route("/cards", func(r chi.Router) {
				r.Put("/reorder", h.ReorderCards)
				r.Route("/{card}", func(r chi.Router) {
					r.Put("/", h.UpdateCard)
					r.Patch("/status", h.SetCardStatus)
					r.Post("/move", h.MoveCard)
					r.Delete("/", h.DeleteCard)
					r.Get("/comments", h.GetComments)
					r.Post("/comments", h.CreateComment)
				})
			})

			r.Delete("/comments/{comment}", h.DeleteComment)
		})
	})

	return r
}
