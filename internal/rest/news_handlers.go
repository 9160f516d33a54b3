package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/didi-digest/backend/internal/digests"
)

// NewsManager is the part of digests.Manager the news handlers need.
type NewsManager interface {
	News(ctx context.Context, user digests.Identity, page, pageSize *int) ([]digests.News, error)
	NewsByID(ctx context.Context, user digests.Identity, newsID int) (*digests.News, error)
	CreateNews(ctx context.Context, user digests.Identity, form digests.NewsForm) (*digests.News, error)
	UpdateNews(ctx context.Context, user digests.Identity, newsID int, form digests.NewsForm) (*digests.News, error)
	DeleteNews(ctx context.Context, newsID int) error
}

type NewsHandler struct {
	uc  NewsManager
	log *slog.Logger
}

func NewNewsHandler(uc NewsManager, log *slog.Logger) *NewsHandler {
	return &NewsHandler{
		uc:  uc,
		log: log,
	}
}

type newsListRequest struct {
	Page     *int `query:"page"`
	PageSize *int `query:"page_size"`
}

// List handles GET /api/v1/news
// @Summary List news
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10)"
// @Success 200 {array} rest.NewsFull
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	var req newsListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	news, err := h.uc.News(c.Request().Context(), identity(c), req.Page, req.PageSize)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, Map(news, NewNewsFull))
}

// ByID handles GET /api/v1/news/:id
func (h *NewsHandler) ByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	news, err := h.uc.NewsByID(c.Request().Context(), identity(c), id)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, NewNewsFull(*news))
}

// Create handles POST /api/v1/news
// @Summary Create news
// @Description Creates a news item together with its typed payload; the data object shape is determined by type.
// @Tags news
// @Accept json
// @Produce json
// @Param news body rest.NewsRequest true "News fields with nested data"
// @Success 201 {object} rest.NewsFull
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	form, err := req.ToForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	news, err := h.uc.CreateNews(c.Request().Context(), identity(c), form)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, NewNewsFull(*news))
}

// Update handles PATCH /api/v1/news/:id. Type is immutable.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	// the data object is decoded by type; when the request omits type, the
	// stored one applies
	if req.Type == "" {
		current, err := h.uc.NewsByID(c.Request().Context(), identity(c), id)
		if err != nil {
			return handleError(c, h.log, err)
		}
		req.Type = current.Type
	}

	form, err := req.ToForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	news, err := h.uc.UpdateNews(c.Request().Context(), identity(c), id, form)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, NewNewsFull(*news))
}

// Delete handles DELETE /api/v1/news/:id
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.uc.DeleteNews(c.Request().Context(), id); err != nil {
		return handleError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
