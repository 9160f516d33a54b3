package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction executes fn with a Repository bound to a single transaction.
// When the Repository is already transactional, fn runs on it as is.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(*Repository) error) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			return fn(New(tx))
		})
	}

	return fn(r)
}

// IsIntegrityViolation reports whether err is a unique/FK constraint violation.
func IsIntegrityViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

// DigestSearch carries the storage-level digest predicates. Year/Month/Day
// match the corresponding component of the digest date.
type DigestSearch struct {
	PublishedOnly bool
	Year          *int
	Month         *int
	Day           *int
}

// Digests retrieves digests matching search, sorted by date DESC, with pagination.
// News are not loaded here, see NewsByDigestIDs.
func (r *Repository) Digests(ctx context.Context, search DigestSearch, page, pageSize int) ([]Digest, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var digests []Digest
	err := r.digestsQuery(ctx, &digests, search).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query digests: %w", err)
	}

	return digests, nil
}

// AllDigests retrieves every digest matching search, sorted by date DESC.
// Used when the caller pages the collection itself after further filtering.
func (r *Repository) AllDigests(ctx context.Context, search DigestSearch) ([]Digest, error) {
	var digests []Digest
	if err := r.digestsQuery(ctx, &digests, search).Select(); err != nil {
		return nil, fmt.Errorf("failed to query digests: %w", err)
	}

	return digests, nil
}

func (r *Repository) digestsQuery(ctx context.Context, digests *[]Digest, search DigestSearch) *orm.Query {
	query := r.db.ModelContext(ctx, digests)

	if search.PublishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	if search.Year != nil {
		query = query.Where(`date_part('year', "t"."date") = ?`, *search.Year)
	}

	if search.Month != nil {
		query = query.Where(`date_part('month', "t"."date") = ?`, *search.Month)
	}

	if search.Day != nil {
		query = query.Where(`date_part('day', "t"."date") = ?`, *search.Day)
	}

	return query.OrderExpr(`"t"."date" DESC, "t"."digestId" DESC`)
}

func (r *Repository) DigestByID(ctx context.Context, digestID int) (*Digest, error) {
	digest := &Digest{}
	err := r.db.ModelContext(ctx, digest).
		Where(`"t"."digestId" = ?`, digestID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get digest by id: %w", err)
	}

	return digest, nil
}

func (r *Repository) InsertDigest(ctx context.Context, digest *Digest) error {
	if _, err := r.db.ModelContext(ctx, digest).Insert(); err != nil {
		return fmt.Errorf("failed to insert digest: %w", err)
	}

	return nil
}

func (r *Repository) UpdateDigest(ctx context.Context, digest *Digest) error {
	result, err := r.db.ModelContext(ctx, digest).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update digest: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

func (r *Repository) DeleteDigest(ctx context.Context, digestID int) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*Digest)(nil)).
		Where(`"t"."digestId" = ?`, digestID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete digest: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// PropagateUnread creates an unread mark for every user that has none for the
// given digest. Implemented as a set-difference bulk insert so the cost stays a
// single statement regardless of user count.
func (r *Repository) PropagateUnread(ctx context.Context, digestID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "user_digests" ("userId", "digestId", "unread")
		SELECT u."userId", ?, TRUE
		FROM "users" u
		WHERE NOT EXISTS (
			SELECT 1 FROM "user_digests" ud
			WHERE ud."userId" = u."userId" AND ud."digestId" = ?
		)`, digestID, digestID)
	if err != nil {
		return fmt.Errorf("failed to propagate unread marks: %w", err)
	}

	return nil
}

// ReadMarks returns the caller's read marks for the given digests in one query.
func (r *Repository) ReadMarks(ctx context.Context, userID int, digestIDs []int) ([]UserDigest, error) {
	if len(digestIDs) == 0 {
		return []UserDigest{}, nil
	}

	var marks []UserDigest
	err := r.db.ModelContext(ctx, &marks).
		Where(`"t"."userId" = ?`, userID).
		Where(`"t"."digestId" IN (?)`, pg.In(digestIDs)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query read marks: %w", err)
	}

	return marks, nil
}

// MarkDigestRead flips the caller's read mark to read. A missing mark is not an
// error, repeated calls have no further effect.
func (r *Repository) MarkDigestRead(ctx context.Context, userID, digestID int) error {
	_, err := r.db.ModelContext(ctx, (*UserDigest)(nil)).
		Set(`"unread" = FALSE`).
		Where(`"userId" = ?`, userID).
		Where(`"digestId" = ?`, digestID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to mark digest read: %w", err)
	}

	return nil
}

func (r *Repository) UnreadCount(ctx context.Context, userID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*UserDigest)(nil)).
		Where(`"userId" = ?`, userID).
		Where(`"unread" = TRUE`).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count unread digests: %w", err)
	}

	return count, nil
}

// ArchiveDate is a single row of the date archive: a year with the distinct
// months that have digests, ascending.
type ArchiveDate struct {
	Year   int   `pg:"year,use_zero"`
	Months []int `pg:"months,array"`
}

// ArchiveDates groups all digests, published or not, by (year, month).
func (r *Repository) ArchiveDates(ctx context.Context) ([]ArchiveDate, error) {
	var dates []ArchiveDate
	err := r.db.ModelContext(ctx, (*Digest)(nil)).
		ColumnExpr(`date_part('year', "t"."date")::int AS year`).
		ColumnExpr(`array_agg(DISTINCT date_part('month', "t"."date")::int ORDER BY date_part('month', "t"."date")::int) AS months`).
		GroupExpr(`date_part('year', "t"."date")`).
		OrderExpr(`date_part('year', "t"."date") DESC`).
		Select(&dates)

	if err != nil {
		return nil, fmt.Errorf("failed to query archive dates: %w", err)
	}

	return dates, nil
}
