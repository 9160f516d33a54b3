package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didi-digest/backend/internal/digests"
)

func testServer(digestUC *mockDigestManager, newsUC *mockNewsManager) http.Handler {
	handlers := Handlers{
		Digest:   NewDigestHandler(digestUC, noOpLogger()),
		News:     NewNewsHandler(newsUC, noOpLogger()),
		Favorite: NewFavoriteHandler(&mockFavoriteManager{}, noOpLogger()),
	}
	return RegisterRoutes(handlers, nil, testSecret, noOpLogger())
}

func TestRoutes(t *testing.T) {
	t.Run("HealthIsPublic", func(t *testing.T) {
		e := testServer(&mockDigestManager{}, &mockNewsManager{})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})

	t.Run("AnonymousAPIRequestRejected", func(t *testing.T) {
		e := testServer(&mockDigestManager{}, &mockNewsManager{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("StaticDigestPathsWinOverParam", func(t *testing.T) {
		uc := &mockDigestManager{
			unreadCountFunc: func(ctx context.Context, user digests.Identity) (int, error) {
				return 5, nil
			},
		}
		e := testServer(uc, &mockNewsManager{})

		req := authedRequest(t, http.MethodGet, "/api/v1/digests/unread", 2, false)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"count": 5}`, rec.Body.String())
	})

	t.Run("DigestMutationRequiresStaff", func(t *testing.T) {
		e := testServer(&mockDigestManager{}, &mockNewsManager{})
		req := authedRequest(t, http.MethodDelete, "/api/v1/digests/1", 2, false)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NewsMutationsAllowRegularUsers", func(t *testing.T) {
		newsUC := &mockNewsManager{
			createNewsFunc: func(ctx context.Context, user digests.Identity, form digests.NewsForm) (*digests.News, error) {
				assert.Equal(t, 2, user.UserID)
				assert.False(t, user.IsStaff)
				return &digests.News{ID: 8, DigestID: 1, Title: form.Title, Type: form.Type,
					Data: digests.Payload{Text: &digests.TextPayload{Content: "body"}}}, nil
			},
		}
		e := testServer(&mockDigestManager{}, newsUC)

		body := `{"digest": 1, "title": "Note", "type": "txt", "data": {"content": "body"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/news", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t, 2, false))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("FavoritesAllowRegularUsers", func(t *testing.T) {
		e := testServer(&mockDigestManager{}, &mockNewsManager{})
		req := authedRequest(t, http.MethodGet, "/api/v1/favorites", 2, false)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
