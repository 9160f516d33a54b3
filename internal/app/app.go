package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/didi-digest/backend/config"
	"github.com/didi-digest/backend/internal/db"
	"github.com/didi-digest/backend/internal/digests"
	"github.com/didi-digest/backend/internal/rest"
	"github.com/didi-digest/backend/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	manager := digests.NewManager(repo)

	handlers := rest.Handlers{
		Digest:   rest.NewDigestHandler(manager, logger),
		News:     rest.NewNewsHandler(manager, logger),
		Favorite: rest.NewFavoriteHandler(manager, logger),
	}
	rpcServer := rpc.New(logger, manager)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   rest.RegisterRoutes(handlers, rpcServer, []byte(cfg.Auth.Secret), logger),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
