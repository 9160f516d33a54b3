package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/didi-digest/backend/internal/digests"
)

// FavoriteManager is the part of digests.Manager the favorite handlers need.
type FavoriteManager interface {
	Favorites(ctx context.Context, user digests.Identity) ([]digests.Favorite, error)
	AddFavorite(ctx context.Context, user digests.Identity, newsID int) (*digests.Favorite, error)
	RemoveFavorite(ctx context.Context, user digests.Identity, newsID int) error
}

type FavoriteHandler struct {
	uc  FavoriteManager
	log *slog.Logger
}

func NewFavoriteHandler(uc FavoriteManager, log *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:  uc,
		log: log,
	}
}

// List handles GET /api/v1/favorites
// @Summary List the caller's bookmarks
// @Tags favorites
// @Produce json
// @Success 200 {array} rest.FavoriteData
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.uc.Favorites(c.Request().Context(), identity(c))
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, Map(favorites, NewFavoriteData))
}

// Create handles POST /api/v1/favorites
// @Summary Bookmark a news item
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body rest.FavoriteRequest true "News to bookmark"
// @Success 201 {object} rest.FavoriteData
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) Create(c echo.Context) error {
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.NewsID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "news_id is required"})
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), identity(c), req.NewsID)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, NewFavoriteData(*favorite))
}

// Delete handles DELETE /api/v1/favorites/:newsId. The bookmark is addressed
// by the news it points at, not by its own id.
func (h *FavoriteHandler) Delete(c echo.Context) error {
	newsID, err := strconv.Atoi(c.Param("newsId"))
	if err != nil || newsID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), identity(c), newsID); err != nil {
		return handleError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
