package digests

import (
	"context"
	"fmt"

	"github.com/didi-digest/backend/internal/db"
)

// Favorites returns the caller's own bookmarks only.
func (m *Manager) Favorites(ctx context.Context, user Identity) ([]Favorite, error) {
	list, err := m.db.FavoritesByUser(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("db get favorites: %w", err)
	}

	return NewFavorites(list), nil
}

// AddFavorite bookmarks the news for the caller. A duplicate bookmark is a
// conflict, surfaced by the unique constraint on (user, news).
func (m *Manager) AddFavorite(ctx context.Context, user Identity, newsID int) (*Favorite, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if dbNews == nil {
		return nil, ErrNotFound
	}

	favorite := &db.UserFavorite{
		UserID: user.UserID,
		NewsID: newsID,
	}
	if err := m.db.InsertFavorite(ctx, favorite); err != nil {
		if db.IsIntegrityViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("db insert favorite: %w", err)
	}

	return &Favorite{NewsID: favorite.NewsID}, nil
}

// RemoveFavorite deletes the caller's bookmark, looked up by the news id. A
// bookmark held only by someone else is forbidden to remove, not absent.
func (m *Manager) RemoveFavorite(ctx context.Context, user Identity, newsID int) error {
	deleted, err := m.db.DeleteFavorite(ctx, user.UserID, newsID)
	if err != nil {
		return fmt.Errorf("db delete favorite: %w", err)
	}
	if deleted {
		return nil
	}

	othersHave, err := m.db.NewsFavoritedByOthers(ctx, user.UserID, newsID)
	if err != nil {
		return fmt.Errorf("db check favorites for news: %w", err)
	}
	if othersHave {
		return ErrForbidden
	}

	return ErrNotFound
}
