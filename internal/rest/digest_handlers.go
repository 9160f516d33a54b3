package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/didi-digest/backend/internal/digests"
)

// DigestManager is the part of digests.Manager the digest handlers need.
type DigestManager interface {
	DigestsByFilter(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error)
	DigestByID(ctx context.Context, user digests.Identity, digestID int) (*digests.Digest, error)
	CreateDigest(ctx context.Context, form digests.DigestForm) (*digests.Digest, error)
	UpdateDigest(ctx context.Context, digestID int, form digests.DigestForm) (*digests.Digest, error)
	DeleteDigest(ctx context.Context, digestID int) error
	UnreadCount(ctx context.Context, user digests.Identity) (int, error)
	ArchiveDates(ctx context.Context) (digests.ArchiveIndex, error)
}

type DigestHandler struct {
	uc  DigestManager
	log *slog.Logger
}

func NewDigestHandler(uc DigestManager, log *slog.Logger) *DigestHandler {
	return &DigestHandler{
		uc:  uc,
		log: log,
	}
}

// DigestListRequest binds the digest list query parameters (snake_case via
// urlstruct: important, favorite, unread, search, year, month, day, page,
// page_size).
type DigestListRequest struct {
	Important *bool
	Favorite  *bool
	Unread    *bool
	Search    *string
	Year      *int
	Month     *int
	Day       *int
	Page      *int
	PageSize  *int
}

func (r *DigestListRequest) toFilter() digests.Filter {
	return digests.Filter{
		Important: r.Important,
		Favorite:  r.Favorite,
		Unread:    r.Unread,
		Search:    r.Search,
		Year:      r.Year,
		Month:     r.Month,
		Day:       r.Day,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
}

func handleError(c echo.Context, log *slog.Logger, err error) error {
	var ve *digests.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, digests.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, digests.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, digests.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": digests.ErrConflict.Error()})
	}

	log.Error("request failed", "error", err, "path", c.Request().URL.Path)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// List handles GET /api/v1/digests
// @Summary List digests
// @Description Digests sorted by date DESC with news sorted by position ASC, annotated with favorite and unread for the caller. Filterable by important, favorite, unread, search and date components; news-restricting filters switch the response to the full shape.
// @Tags digests
// @Produce json
// @Param important query bool false "Keep digests with at least one news matching the flag"
// @Param favorite query bool false "Keep digests with at least one news favorited by the caller"
// @Param unread query bool false "Keep digests whose read mark has this unread value"
// @Param search query string false "Full-text query across news titles and bodies"
// @Param year query int false "Digest date year"
// @Param month query int false "Digest date month (1-12)"
// @Param day query int false "Digest date day"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10)"
// @Success 200 {array} rest.DigestSummary
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/digests [get]
func (h *DigestHandler) List(c echo.Context) error {
	var req DigestListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	filter := req.toFilter()
	list, err := h.uc.DigestsByFilter(c.Request().Context(), identity(c), filter)
	if err != nil {
		return handleError(c, h.log, err)
	}

	// news-restricting filters switch the list to the full representation
	if filter.RestrictsNews() {
		return c.JSON(http.StatusOK, Map(list, NewDigestFull))
	}

	return c.JSON(http.StatusOK, Map(list, NewDigestSummary))
}

// ByID handles GET /api/v1/digests/:id
// @Summary Get digest detail
// @Description Full digest with resolved payloads. Marks the digest read for the caller.
// @Tags digests
// @Produce json
// @Param id path int true "Digest ID"
// @Success 200 {object} rest.DigestFull
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/digests/{id} [get]
func (h *DigestHandler) ByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	digest, err := h.uc.DigestByID(c.Request().Context(), identity(c), id)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, NewDigestFull(*digest))
}

// Create handles POST /api/v1/digests (staff only)
// @Summary Create digest
// @Tags digests
// @Accept json
// @Produce json
// @Param digest body rest.DigestRequest true "Digest fields"
// @Success 201 {object} rest.DigestFull
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/digests [post]
func (h *DigestHandler) Create(c echo.Context) error {
	var req DigestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	form, err := req.ToForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	digest, err := h.uc.CreateDigest(c.Request().Context(), form)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, NewDigestFull(*digest))
}

// Update handles PUT/PATCH /api/v1/digests/:id (staff only)
func (h *DigestHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var req DigestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	form, err := req.ToForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	digest, err := h.uc.UpdateDigest(c.Request().Context(), id, form)
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, NewDigestFull(*digest))
}

// Delete handles DELETE /api/v1/digests/:id (staff only)
func (h *DigestHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.uc.DeleteDigest(c.Request().Context(), id); err != nil {
		return handleError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Unread handles GET /api/v1/digests/unread
// @Summary Count unread digests
// @Tags digests
// @Produce json
// @Success 200 {object} rest.UnreadCountData
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/digests/unread [get]
func (h *DigestHandler) Unread(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), identity(c))
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, UnreadCountData{Count: count})
}

// DateArchive handles GET /api/v1/digests/date_archive
// @Summary Archive index
// @Description Years mapped to the ascending distinct months that have digests.
// @Tags digests
// @Produce json
// @Success 200 {object} map[int][]int
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/digests/date_archive [get]
func (h *DigestHandler) DateArchive(c echo.Context) error {
	index, err := h.uc.ArchiveDates(c.Request().Context())
	if err != nil {
		return handleError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, index)
}
