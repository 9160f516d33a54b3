package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// payloadRelations are the relations needed to resolve every news type in one
// query batch: the five payload tables plus staff cards and project members.
var payloadRelations = []string{
	Columns.News.TextNews,
	Columns.News.ImageNews,
	Columns.News.BigNews,
	Columns.News.StaffNews,
	"StaffNews.StaffCards",
	"StaffNews.StaffCards.Profile",
	Columns.News.ProjectNews,
	"ProjectNews.Members",
}

func withPayloadRelations(query *orm.Query) *orm.Query {
	for _, rel := range payloadRelations {
		if rel == "StaffNews.StaffCards" {
			query = query.Relation(rel, func(q *orm.Query) (*orm.Query, error) {
				return q.OrderExpr(`"staffCardId" ASC`), nil
			})
			continue
		}
		query = query.Relation(rel)
	}
	return query
}

// NewsByDigestIDs retrieves the news of the given digests with resolved
// payloads, ordered by position ASC within each digest. The optional important
// flag restricts the result to news matching it.
func (r *Repository) NewsByDigestIDs(ctx context.Context, digestIDs []int, important *bool) ([]News, error) {
	if len(digestIDs) == 0 {
		return []News{}, nil
	}

	var news []News
	query := r.db.ModelContext(ctx, &news).
		Where(`"t"."digestId" IN (?)`, pg.In(digestIDs))

	if important != nil {
		query = query.Where(`"t"."important" = ?`, *important)
	}

	err := withPayloadRelations(query).
		OrderExpr(`"t"."position" ASC, "t"."newsId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news by digest ids: %w", err)
	}

	return news, nil
}

// NewsList retrieves all news with resolved payloads, newest first, with
// pagination.
func (r *Repository) NewsList(ctx context.Context, page, pageSize int) ([]News, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	query := r.db.ModelContext(ctx, &news)

	err := withPayloadRelations(query).
		OrderExpr(`"t"."newsId" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	query := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, newsID)

	err := withPayloadRelations(query).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// SearchNewsIDs runs a full-text query across news titles and the content of
// text, image and big payloads. Matching is a union over payload kinds,
// ranking is irrelevant.
func (r *Repository) SearchNewsIDs(ctx context.Context, search string) ([]int, error) {
	var ids []int
	err := r.db.ModelContext(ctx, (*News)(nil)).
		ColumnExpr(`"t"."newsId"`).
		Join(`LEFT JOIN "text_news" AS txt ON txt."newsId" = "t"."newsId"`).
		Join(`LEFT JOIN "image_news" AS img ON img."newsId" = "t"."newsId"`).
		Join(`LEFT JOIN "big_news" AS big ON big."newsId" = "t"."newsId"`).
		Where(`(txt."newsId" IS NOT NULL OR img."newsId" IS NOT NULL OR big."newsId" IS NOT NULL)`).
		Where(`to_tsvector('simple', concat_ws(' ', "t"."title", txt."content", img."content", big."content")) @@ plainto_tsquery('simple', ?)`, search).
		Select(&ids)

	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	return ids, nil
}

func (r *Repository) InsertNews(ctx context.Context, news *News) error {
	if _, err := r.db.ModelContext(ctx, news).Insert(); err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) UpdateNews(ctx context.Context, news *News) error {
	result, err := r.db.ModelContext(ctx, news).
		WherePK().
		Column(Columns.News.DigestID, Columns.News.Title, Columns.News.Position, Columns.News.Important).
		Update()
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Payload writes. Each payload row is paired 1:1 with its news row, creation
// and update always run inside the news transaction.

func (r *Repository) InsertTextNews(ctx context.Context, payload *TextNews) error {
	if _, err := r.db.ModelContext(ctx, payload).Insert(); err != nil {
		return fmt.Errorf("failed to insert text payload: %w", err)
	}
	return nil
}

func (r *Repository) UpdateTextNews(ctx context.Context, payload *TextNews) error {
	if _, err := r.db.ModelContext(ctx, payload).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update text payload: %w", err)
	}
	return nil
}

func (r *Repository) InsertImageNews(ctx context.Context, payload *ImageNews) error {
	if _, err := r.db.ModelContext(ctx, payload).Insert(); err != nil {
		return fmt.Errorf("failed to insert image payload: %w", err)
	}
	return nil
}

func (r *Repository) UpdateImageNews(ctx context.Context, payload *ImageNews) error {
	if _, err := r.db.ModelContext(ctx, payload).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update image payload: %w", err)
	}
	return nil
}

func (r *Repository) InsertBigNews(ctx context.Context, payload *BigNews) error {
	if _, err := r.db.ModelContext(ctx, payload).Insert(); err != nil {
		return fmt.Errorf("failed to insert big payload: %w", err)
	}
	return nil
}

func (r *Repository) UpdateBigNews(ctx context.Context, payload *BigNews) error {
	if _, err := r.db.ModelContext(ctx, payload).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update big payload: %w", err)
	}
	return nil
}

func (r *Repository) InsertStaffNews(ctx context.Context, payload *StaffNews) error {
	if _, err := r.db.ModelContext(ctx, payload).Insert(); err != nil {
		return fmt.Errorf("failed to insert staff payload: %w", err)
	}
	return nil
}

func (r *Repository) InsertStaffCards(ctx context.Context, cards []StaffCard) error {
	if len(cards) == 0 {
		return nil
	}
	if _, err := r.db.ModelContext(ctx, &cards).Insert(); err != nil {
		return fmt.Errorf("failed to insert staff cards: %w", err)
	}
	return nil
}

func (r *Repository) DeleteStaffCards(ctx context.Context, staffNewsID int) error {
	_, err := r.db.ModelContext(ctx, (*StaffCard)(nil)).
		Where(`"t"."staffNewsId" = ?`, staffNewsID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete staff cards: %w", err)
	}
	return nil
}

func (r *Repository) InsertProjectNews(ctx context.Context, payload *ProjectNews) error {
	if _, err := r.db.ModelContext(ctx, payload).Insert(); err != nil {
		return fmt.Errorf("failed to insert project payload: %w", err)
	}
	return nil
}

func (r *Repository) UpdateProjectNews(ctx context.Context, payload *ProjectNews) error {
	if _, err := r.db.ModelContext(ctx, payload).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update project payload: %w", err)
	}
	return nil
}

func (r *Repository) SetProjectMembers(ctx context.Context, projectNewsID int, profileIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*ProjectNewsMember)(nil)).
		Where(`"t"."projectNewsId" = ?`, projectNewsID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear project members: %w", err)
	}

	if len(profileIDs) == 0 {
		return nil
	}

	members := make([]ProjectNewsMember, len(profileIDs))
	for i, profileID := range profileIDs {
		members[i] = ProjectNewsMember{ProjectNewsID: projectNewsID, ProfileID: profileID}
	}
	if _, err := r.db.ModelContext(ctx, &members).Insert(); err != nil {
		return fmt.Errorf("failed to insert project members: %w", err)
	}

	return nil
}
