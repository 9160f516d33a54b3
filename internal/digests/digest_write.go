package digests

import (
	"context"
	"fmt"
	"time"

	"github.com/didi-digest/backend/internal/db"
)

// DigestForm is the mutation input for a digest.
type DigestForm struct {
	Title     string
	Date      time.Time
	Published bool
}

func (f *DigestForm) validate() error {
	if f.Title == "" {
		return newValidationError("title", "is required")
	}

	return nil
}

// defaultDate fills a missing date with today. Only creation paths use it,
// updating with no date keeps the stored one.
func (f *DigestForm) defaultDate() {
	if f.Date.IsZero() {
		f.Date = time.Now().Truncate(24 * time.Hour)
	}
}

// CreateDigest inserts the digest and, when it is published, fans out unread
// marks for every existing user. Both run in one transaction, a fan-out
// failure rolls back the digest.
func (m *Manager) CreateDigest(ctx context.Context, form DigestForm) (*Digest, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}
	form.defaultDate()

	dbDigest := &db.Digest{
		Title:     form.Title,
		Date:      form.Date,
		Published: form.Published,
	}

	err := m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.InsertDigest(ctx, dbDigest); err != nil {
			return err
		}
		if dbDigest.Published {
			return tx.PropagateUnread(ctx, dbDigest.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("db create digest: %w", err)
	}

	digest := NewDigest(dbDigest)
	digest.News = []News{}

	return &digest, nil
}

// BulkCreateDigests inserts many digests in one transaction and explicitly
// runs the unread fan-out for each published one. Bulk insertion must not
// bypass the fan-out.
func (m *Manager) BulkCreateDigests(ctx context.Context, forms []DigestForm) ([]Digest, error) {
	for i := range forms {
		if err := forms[i].validate(); err != nil {
			return nil, err
		}
		forms[i].defaultDate()
	}

	dbDigests := make([]db.Digest, len(forms))
	for i, form := range forms {
		dbDigests[i] = db.Digest{
			Title:     form.Title,
			Date:      form.Date,
			Published: form.Published,
		}
	}

	err := m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		for i := range dbDigests {
			if err := tx.InsertDigest(ctx, &dbDigests[i]); err != nil {
				return err
			}
			if dbDigests[i].Published {
				if err := tx.PropagateUnread(ctx, dbDigests[i].ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("db bulk create digests: %w", err)
	}

	digests := make([]Digest, len(dbDigests))
	for i := range dbDigests {
		digests[i] = NewDigest(&dbDigests[i])
		digests[i].News = []News{}
	}

	return digests, nil
}

// UpdateDigest updates the digest fields and fans out unread marks when the
// digest ends up published, so flipping published on an existing digest
// behaves like publishing it. The fan-out skips users who already have a mark.
func (m *Manager) UpdateDigest(ctx context.Context, digestID int, form DigestForm) (*Digest, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	dbDigest, err := m.db.DigestByID(ctx, digestID)
	if err != nil {
		return nil, fmt.Errorf("db get digest by id: %w", err)
	}
	if dbDigest == nil {
		return nil, ErrNotFound
	}

	dbDigest.Title = form.Title
	if !form.Date.IsZero() {
		dbDigest.Date = form.Date
	}
	dbDigest.Published = form.Published

	err = m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.UpdateDigest(ctx, dbDigest); err != nil {
			return err
		}
		if dbDigest.Published {
			return tx.PropagateUnread(ctx, dbDigest.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("db update digest: %w", err)
	}

	digest := NewDigest(dbDigest)
	digest.News = []News{}

	return &digest, nil
}

// DeleteDigest removes the digest; its news and payloads go with it by cascade.
func (m *Manager) DeleteDigest(ctx context.Context, digestID int) error {
	deleted, err := m.db.DeleteDigest(ctx, digestID)
	if err != nil {
		return fmt.Errorf("db delete digest: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
