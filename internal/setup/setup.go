package setup

import (
	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/events"
	"github.com/taskboard-dev/taskboard/internal/handler"
	"github.com/taskboard-dev/taskboard/internal/jwt"
	"github.com/taskboard-dev/taskboard/internal/service"
	service_utils "github.com/taskboard-dev/taskboard/internal/service/utils"
	"github.com/taskboard-dev/taskboard/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
	Bus     *events.Bus
}

// SetupDependencies wires storage, services, the event bus and the
// handler together.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	bus := events.NewBus()
	resolver := access.NewResolver(storage)
	renderer := service_utils.NewDescriptionRenderer()

	auth := service.NewAuth(storage)
	board := service.NewBoard(storage, resolver, bus)
	member := service.NewMembership(storage, resolver, bus)
	list := service.NewList(storage, resolver, renderer, bus)
	card := service.NewCard(storage, resolver, renderer, bus)
	comment := service.NewComment(storage, resolver, bus)

	h := handler.New(auth, board, member, list, card, comment, cfg, jwtService, bus, storage)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
		Bus:     bus,
	}, nil
}
