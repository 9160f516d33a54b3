package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	rpcPath     = "/rpc"
	swaggerPath = "/swagger/doc.json"
)

// Handlers groups the REST handlers registered on the server.
type Handlers struct {
	Digest   *DigestHandler
	News     *NewsHandler
	Favorite *FavoriteHandler
}

// RegisterRoutes builds the echo server: health and swagger stay public,
// everything under /api/v1 and the RPC endpoint require a valid token.
func RegisterRoutes(h Handlers, rpcServer http.Handler, authSecret []byte, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.GET(healthPath, handleHealth)
	e.GET(swaggerPath, handleSwagger)

	auth := NewAuthMiddleware(authSecret)

	if rpcServer != nil {
		e.Any(rpcPath, echo.WrapHandler(rpcServer), auth)
	}

	v1 := e.Group(apiV1Prefix, auth)

	// static digest paths go before the parameterized one
	v1.GET("/digests", h.Digest.List)
	v1.GET("/digests/unread", h.Digest.Unread)
	v1.GET("/digests/date_archive", h.Digest.DateArchive)
	v1.GET("/digests/:id", h.Digest.ByID)
	v1.POST("/digests", h.Digest.Create, RequireStaff)
	v1.PUT("/digests/:id", h.Digest.Update, RequireStaff)
	v1.PATCH("/digests/:id", h.Digest.Update, RequireStaff)
	v1.DELETE("/digests/:id", h.Digest.Delete, RequireStaff)

	// news writes need authentication only, unlike digest mutations
	v1.GET("/news", h.News.List)
	v1.GET("/news/:id", h.News.ByID)
	v1.POST("/news", h.News.Create)
	v1.PUT("/news/:id", h.News.Update)
	v1.PATCH("/news/:id", h.News.Update)
	v1.DELETE("/news/:id", h.News.Delete)

	v1.GET("/favorites", h.Favorite.List)
	v1.POST("/favorites", h.Favorite.Create)
	v1.DELETE("/favorites/:newsId", h.Favorite.Delete)

	return e
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "swagger doc unavailable"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)

			return err
		}
	}
}
