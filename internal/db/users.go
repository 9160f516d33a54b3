package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"t"."userId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FavoriteNewsIDs returns which of the given news the user has favorited,
// in one query per collection.
func (r *Repository) FavoriteNewsIDs(ctx context.Context, userID int, newsIDs []int) ([]int, error) {
	if len(newsIDs) == 0 {
		return []int{}, nil
	}

	var ids []int
	err := r.db.ModelContext(ctx, (*UserFavorite)(nil)).
		ColumnExpr(`"t"."newsId"`).
		Where(`"t"."userId" = ?`, userID).
		Where(`"t"."newsId" IN (?)`, pg.In(newsIDs)).
		Select(&ids)

	if err != nil {
		return nil, fmt.Errorf("failed to query favorite news ids: %w", err)
	}

	return ids, nil
}

func (r *Repository) FavoritesByUser(ctx context.Context, userID int) ([]UserFavorite, error) {
	var favorites []UserFavorite
	err := r.db.ModelContext(ctx, &favorites).
		Where(`"t"."userId" = ?`, userID).
		OrderExpr(`"t"."userFavoriteId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}

	return favorites, nil
}

func (r *Repository) FavoriteByUserAndNews(ctx context.Context, userID, newsID int) (*UserFavorite, error) {
	favorite := &UserFavorite{}
	err := r.db.ModelContext(ctx, favorite).
		Where(`"t"."userId" = ?`, userID).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}

	return favorite, nil
}

// NewsFavoritedByOthers reports whether anyone except userID favorited the news.
func (r *Repository) NewsFavoritedByOthers(ctx context.Context, userID, newsID int) (bool, error) {
	count, err := r.db.ModelContext(ctx, (*UserFavorite)(nil)).
		Where(`"t"."newsId" = ?`, newsID).
		Where(`"t"."userId" != ?`, userID).
		Count()
	if err != nil {
		return false, fmt.Errorf("failed to count favorites for news: %w", err)
	}

	return count > 0, nil
}

func (r *Repository) InsertFavorite(ctx context.Context, favorite *UserFavorite) error {
	if _, err := r.db.ModelContext(ctx, favorite).Insert(); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

func (r *Repository) DeleteFavorite(ctx context.Context, userID, newsID int) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*UserFavorite)(nil)).
		Where(`"t"."userId" = ?`, userID).
		Where(`"t"."newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ProfilesByIDs(ctx context.Context, profileIDs []int) ([]Profile, error) {
	if len(profileIDs) == 0 {
		return []Profile{}, nil
	}

	var profiles []Profile
	err := r.db.ModelContext(ctx, &profiles).
		Where(`"t"."profileId" IN (?)`, pg.In(profileIDs)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query profiles by ids: %w", err)
	}

	return profiles, nil
}

func (r *Repository) InsertProfile(ctx context.Context, profile *Profile) error {
	if _, err := r.db.ModelContext(ctx, profile).Insert(); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}
