package digests

import (
	"context"
	"fmt"

	"github.com/didi-digest/backend/internal/db"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// DigestsByFilter assembles the digest read model for the caller: digests
// sorted by date DESC, news sorted by position ASC with resolved payloads,
// favorite and unread annotations, then the active filter predicates applied
// on the annotated collection.
func (m *Manager) DigestsByFilter(ctx context.Context, user Identity, filter Filter) ([]Digest, error) {
	page, pageSize := defaultPage, defaultPageSize
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.PageSize != nil {
		pageSize = *filter.PageSize
	}
	if page < 1 || pageSize < 1 {
		return nil, newValidationError("page", "page and page_size must be positive")
	}

	search := db.DigestSearch{
		PublishedOnly: !user.IsStaff,
		Year:          filter.Year,
		Month:         filter.Month,
		Day:           filter.Day,
	}

	// Predicates applied on the annotated collection drop digests, so the
	// page is cut after them. Without such predicates the database pages.
	pageInMemory := filter.Important != nil || filter.Favorite != nil ||
		filter.Unread != nil || (filter.Search != nil && *filter.Search != "")

	var (
		dbDigests []db.Digest
		err       error
	)
	if pageInMemory {
		dbDigests, err = m.db.AllDigests(ctx, search)
	} else {
		dbDigests, err = m.db.Digests(ctx, search, page, pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("db get digests: %w", err)
	}

	// The important predicate is pushed to storage: it restricts which news
	// rows are fetched at all. Everything else filters the annotated result.
	digests, err := m.assembleDigests(ctx, user, dbDigests, filter.Important)
	if err != nil {
		return nil, err
	}

	if filter.Important != nil {
		digests = restrictByImportant(digests, *filter.Important)
	}

	if filter.Favorite != nil {
		digests = restrictByFavorite(digests, *filter.Favorite)
	}

	if filter.Search != nil && *filter.Search != "" {
		matchIDs, err := m.db.SearchNewsIDs(ctx, *filter.Search)
		if err != nil {
			return nil, fmt.Errorf("db search news: %w", err)
		}
		matched := make(map[int]struct{}, len(matchIDs))
		for _, id := range matchIDs {
			matched[id] = struct{}{}
		}
		digests = restrictBySearch(digests, matched)
	}

	if filter.Unread != nil {
		digests = filterByUnread(digests, *filter.Unread)
	}

	if pageInMemory {
		digests = paginate(digests, page, pageSize)
	}

	return digests, nil
}

// DigestByID returns the full digest with resolved payloads and, as a side
// effect, flips the caller's read mark for it to read. Unpublished digests are
// not found for non-staff callers.
func (m *Manager) DigestByID(ctx context.Context, user Identity, digestID int) (*Digest, error) {
	dbDigest, err := m.db.DigestByID(ctx, digestID)
	if err != nil {
		return nil, fmt.Errorf("db get digest by id: %w", err)
	}
	if dbDigest == nil || (!dbDigest.Published && !user.IsStaff) {
		return nil, ErrNotFound
	}

	digests, err := m.assembleDigests(ctx, user, []db.Digest{*dbDigest}, nil)
	if err != nil {
		return nil, err
	}

	if err := m.db.MarkDigestRead(ctx, user.UserID, digestID); err != nil {
		return nil, fmt.Errorf("db mark digest read: %w", err)
	}

	return &digests[0], nil
}

func (m *Manager) UnreadCount(ctx context.Context, user Identity) (int, error) {
	count, err := m.db.UnreadCount(ctx, user.UserID)
	if err != nil {
		return 0, fmt.Errorf("db get unread count: %w", err)
	}

	return count, nil
}

// ArchiveDates builds the year to months archive index over every digest in
// storage, regardless of published status.
func (m *Manager) ArchiveDates(ctx context.Context) (ArchiveIndex, error) {
	rows, err := m.db.ArchiveDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get archive dates: %w", err)
	}

	index := make(ArchiveIndex, len(rows))
	for _, row := range rows {
		index[row.Year] = row.Months
	}

	return index, nil
}

// assembleDigests is the two-step annotation pipeline: base rows first, then
// one bulk query per annotation source (favorites, read marks) keyed by the
// same id sets, then merge.
func (m *Manager) assembleDigests(ctx context.Context, user Identity, dbDigests []db.Digest, important *bool) ([]Digest, error) {
	if len(dbDigests) == 0 {
		return []Digest{}, nil
	}

	digestIDs := make([]int, len(dbDigests))
	for i := range dbDigests {
		digestIDs[i] = dbDigests[i].ID
	}

	dbNews, err := m.db.NewsByDigestIDs(ctx, digestIDs, important)
	if err != nil {
		return nil, fmt.Errorf("db get news by digest ids: %w", err)
	}

	newsIDs := make([]int, len(dbNews))
	for i := range dbNews {
		newsIDs[i] = dbNews[i].ID
	}

	favoriteIDs, err := m.db.FavoriteNewsIDs(ctx, user.UserID, newsIDs)
	if err != nil {
		return nil, fmt.Errorf("db get favorite news ids: %w", err)
	}
	favorites := make(map[int]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = struct{}{}
	}

	marks, err := m.db.ReadMarks(ctx, user.UserID, digestIDs)
	if err != nil {
		return nil, fmt.Errorf("db get read marks: %w", err)
	}
	unreadByDigest := make(map[int]bool, len(marks))
	for _, mark := range marks {
		unreadByDigest[mark.DigestID] = mark.Unread
	}

	newsByDigest := make(map[int][]News, len(dbDigests))
	for i := range dbNews {
		_, favorite := favorites[dbNews[i].ID]
		news, err := NewNews(&dbNews[i], favorite)
		if err != nil {
			return nil, err
		}
		newsByDigest[news.DigestID] = append(newsByDigest[news.DigestID], news)
	}

	digests := make([]Digest, len(dbDigests))
	for i := range dbDigests {
		digest := NewDigest(&dbDigests[i])
		if news, ok := newsByDigest[digest.ID]; ok {
			digest.News = news
		} else {
			digest.News = []News{}
		}
		if unread, ok := unreadByDigest[digest.ID]; ok {
			unreadCopy := unread
			digest.Unread = &unreadCopy
		}
		digests[i] = digest
	}

	return digests, nil
}
