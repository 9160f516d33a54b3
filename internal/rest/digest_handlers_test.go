package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didi-digest/backend/internal/digests"
)

// mockDigestManager is a manual stub implementation of DigestManager
type mockDigestManager struct {
	digestsByFilterFunc func(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error)
	digestByIDFunc      func(ctx context.Context, user digests.Identity, digestID int) (*digests.Digest, error)
	createDigestFunc    func(ctx context.Context, form digests.DigestForm) (*digests.Digest, error)
	updateDigestFunc    func(ctx context.Context, digestID int, form digests.DigestForm) (*digests.Digest, error)
	deleteDigestFunc    func(ctx context.Context, digestID int) error
	unreadCountFunc     func(ctx context.Context, user digests.Identity) (int, error)
	archiveDatesFunc    func(ctx context.Context) (digests.ArchiveIndex, error)
}

func (m *mockDigestManager) DigestsByFilter(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error) {
	if m.digestsByFilterFunc != nil {
		return m.digestsByFilterFunc(ctx, user, filter)
	}
	return nil, nil
}

func (m *mockDigestManager) DigestByID(ctx context.Context, user digests.Identity, digestID int) (*digests.Digest, error) {
	if m.digestByIDFunc != nil {
		return m.digestByIDFunc(ctx, user, digestID)
	}
	return nil, nil
}

func (m *mockDigestManager) CreateDigest(ctx context.Context, form digests.DigestForm) (*digests.Digest, error) {
	if m.createDigestFunc != nil {
		return m.createDigestFunc(ctx, form)
	}
	return nil, nil
}

func (m *mockDigestManager) UpdateDigest(ctx context.Context, digestID int, form digests.DigestForm) (*digests.Digest, error) {
	if m.updateDigestFunc != nil {
		return m.updateDigestFunc(ctx, digestID, form)
	}
	return nil, nil
}

func (m *mockDigestManager) DeleteDigest(ctx context.Context, digestID int) error {
	if m.deleteDigestFunc != nil {
		return m.deleteDigestFunc(ctx, digestID)
	}
	return nil
}

func (m *mockDigestManager) UnreadCount(ctx context.Context, user digests.Identity) (int, error) {
	if m.unreadCountFunc != nil {
		return m.unreadCountFunc(ctx, user)
	}
	return 0, nil
}

func (m *mockDigestManager) ArchiveDates(ctx context.Context) (digests.ArchiveIndex, error) {
	if m.archiveDatesFunc != nil {
		return m.archiveDatesFunc(ctx)
	}
	return nil, nil
}

func testContext(e *echo.Echo, req *http.Request, ident digests.Identity) (echo.Context, *httptest.ResponseRecorder) {
	req = req.WithContext(WithIdentity(req.Context(), ident))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleDigest() digests.Digest {
	unread := true
	return digests.Digest{
		ID:    1,
		Title: "Digest #1",
		Date:  time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC),
		News: []digests.News{
			{
				ID:        1,
				DigestID:  1,
				Title:     "Quarter results",
				Type:      "txt",
				Position:  1,
				Important: true,
				Data:      digests.Payload{Text: &digests.TextPayload{Content: "record revenue"}},
			},
		},
		Unread: &unread,
	}
}

func TestDigestHandler_List(t *testing.T) {
	e := echo.New()

	t.Run("SummaryShapeByDefault", func(t *testing.T) {
		uc := &mockDigestManager{
			digestsByFilterFunc: func(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error) {
				assert.Equal(t, 2, user.UserID)
				assert.Nil(t, filter.Important)
				return []digests.Digest{sampleDigest()}, nil
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result []DigestSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "2018-01-15", result[0].Date)
		require.NotNil(t, result[0].Unread)
		assert.True(t, *result[0].Unread)
		require.Len(t, result[0].News, 1)

		// summary news must not carry payload bodies
		assert.NotContains(t, rec.Body.String(), "record revenue")
	})

	t.Run("FullShapeWhenFilterRestrictsNews", func(t *testing.T) {
		uc := &mockDigestManager{
			digestsByFilterFunc: func(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error) {
				require.NotNil(t, filter.Important)
				assert.True(t, *filter.Important)
				return []digests.Digest{sampleDigest()}, nil
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests?important=true", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result []DigestFull
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Len(t, result, 1)
		require.Len(t, result[0].News, 1)
		assert.Contains(t, rec.Body.String(), "record revenue")
	})

	t.Run("QueryParamsBound", func(t *testing.T) {
		uc := &mockDigestManager{
			digestsByFilterFunc: func(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error) {
				require.NotNil(t, filter.Year)
				assert.Equal(t, 2018, *filter.Year)
				require.NotNil(t, filter.Search)
				assert.Equal(t, "keynote", *filter.Search)
				require.NotNil(t, filter.PageSize)
				assert.Equal(t, 5, *filter.PageSize)
				return []digests.Digest{}, nil
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests?year=2018&search=keynote&page_size=5", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("InternalErrorHidden", func(t *testing.T) {
		uc := &mockDigestManager{
			digestsByFilterFunc: func(ctx context.Context, user digests.Identity, filter digests.Filter) ([]digests.Digest, error) {
				return nil, errors.New("connection refused")
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "internal error"}`, rec.Body.String())
	})
}

func TestDigestHandler_ByID(t *testing.T) {
	e := echo.New()

	t.Run("Success", func(t *testing.T) {
		uc := &mockDigestManager{
			digestByIDFunc: func(ctx context.Context, user digests.Identity, digestID int) (*digests.Digest, error) {
				assert.Equal(t, 1, digestID)
				d := sampleDigest()
				return &d, nil
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests/1", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.ByID(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result DigestFull
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.ID)

		// detail shape has no unread field
		assert.NotContains(t, rec.Body.String(), "unread")
	})

	t.Run("NotFound", func(t *testing.T) {
		uc := &mockDigestManager{
			digestByIDFunc: func(ctx context.Context, user digests.Identity, digestID int) (*digests.Digest, error) {
				return nil, digests.ErrNotFound
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests/999", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})
		c.SetParamNames("id")
		c.SetParamValues("999")

		require.NoError(t, h.ByID(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		h := NewDigestHandler(&mockDigestManager{}, noOpLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/digests/abc", nil)
		c, rec := testContext(e, req, digests.Identity{UserID: 2})
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.ByID(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDigestHandler_Create(t *testing.T) {
	e := echo.New()

	t.Run("Success", func(t *testing.T) {
		uc := &mockDigestManager{
			createDigestFunc: func(ctx context.Context, form digests.DigestForm) (*digests.Digest, error) {
				assert.Equal(t, "Spring digest", form.Title)
				assert.True(t, form.Published)
				assert.Equal(t, time.Date(2018, 4, 2, 0, 0, 0, 0, time.UTC), form.Date)
				return &digests.Digest{ID: 10, Title: form.Title, Date: form.Date, News: []digests.News{}}, nil
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		body := `{"title": "Spring digest", "date": "2018-04-02", "published": true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digests", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := testContext(e, req, digests.Identity{UserID: 1, IsStaff: true})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		h := NewDigestHandler(&mockDigestManager{}, noOpLogger())

		body := `{"title": "x", "date": "02.04.2018"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/digests", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := testContext(e, req, digests.Identity{UserID: 1, IsStaff: true})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ValidationErrorMapped", func(t *testing.T) {
		uc := &mockDigestManager{
			createDigestFunc: func(ctx context.Context, form digests.DigestForm) (*digests.Digest, error) {
				return nil, &digests.ValidationError{Field: "title", Message: "is required"}
			},
		}
		h := NewDigestHandler(uc, noOpLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/digests", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := testContext(e, req, digests.Identity{UserID: 1, IsStaff: true})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "title: is required"}`, rec.Body.String())
	})
}

func TestDigestHandler_Delete(t *testing.T) {
	e := echo.New()

	uc := &mockDigestManager{
		deleteDigestFunc: func(ctx context.Context, digestID int) error {
			assert.Equal(t, 3, digestID)
			return nil
		},
	}
	h := NewDigestHandler(uc, noOpLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/digests/3", nil)
	c, rec := testContext(e, req, digests.Identity{UserID: 1, IsStaff: true})
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDigestHandler_Unread(t *testing.T) {
	e := echo.New()

	uc := &mockDigestManager{
		unreadCountFunc: func(ctx context.Context, user digests.Identity) (int, error) {
			assert.Equal(t, 2, user.UserID)
			return 3, nil
		},
	}
	h := NewDigestHandler(uc, noOpLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/digests/unread", nil)
	c, rec := testContext(e, req, digests.Identity{UserID: 2})

	require.NoError(t, h.Unread(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count": 3}`, rec.Body.String())
}

func TestDigestHandler_DateArchive(t *testing.T) {
	e := echo.New()

	uc := &mockDigestManager{
		archiveDatesFunc: func(ctx context.Context) (digests.ArchiveIndex, error) {
			return digests.ArchiveIndex{2018: {1, 2}, 2017: {1}}, nil
		},
	}
	h := NewDigestHandler(uc, noOpLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/digests/date_archive", nil)
	c, rec := testContext(e, req, digests.Identity{UserID: 2})

	require.NoError(t, h.DateArchive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"2018": [1, 2], "2017": [1]}`, rec.Body.String())
}
