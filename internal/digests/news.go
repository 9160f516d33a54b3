package digests

import (
	"context"
	"fmt"

	"github.com/didi-digest/backend/internal/db"
)

// NewsForm is the mutation input for a news item. Data must carry exactly the
// variant matching Type.
type NewsForm struct {
	DigestID  int
	Title     string
	Type      string
	Position  int
	Important bool
	Data      PayloadForm
}

// PayloadForm mirrors Payload for writes; staff and project variants reference
// profiles by id instead of embedding them.
type PayloadForm struct {
	Text    *TextPayload
	Image   *ImagePayload
	Big     *BigPayload
	Staff   *StaffPayloadForm
	Project *ProjectPayloadForm
}

type StaffPayloadForm struct {
	Cards []StaffCardForm
}

type StaffCardForm struct {
	ProfileID      int
	StatusType     string
	StatusText     string
	ProjectManager string
}

type ProjectPayloadForm struct {
	Content    string
	Photo      string
	GooglePlay string
	AppStore   string
	Browser    string
	MemberIDs  []int
}

func (f *NewsForm) validate(storedType string) error {
	if f.Title == "" {
		return newValidationError("title", "is required")
	}
	if f.DigestID <= 0 {
		return newValidationError("digest", "is required")
	}

	if _, ok := NewsTypes[f.Type]; !ok {
		return newValidationError("type", fmt.Sprintf("%q is not a valid choice", f.Type))
	}
	if storedType != "" && f.Type != storedType {
		return newValidationError("type", "you can't change type")
	}

	return f.Data.validate(f.Type)
}

func (p *PayloadForm) validate(newsType string) error {
	switch newsType {
	case db.NewsTypeText:
		if p.Text == nil {
			return newValidationError("data", "is required")
		}
		if p.Text.Content == "" {
			return newValidationError("data.content", "is required")
		}
	case db.NewsTypeImage:
		if p.Image == nil {
			return newValidationError("data", "is required")
		}
		if p.Image.Content == "" {
			return newValidationError("data.content", "is required")
		}
		if p.Image.Photo == "" {
			return newValidationError("data.photo", "is required")
		}
	case db.NewsTypeBig:
		if p.Big == nil {
			return newValidationError("data", "is required")
		}
		if p.Big.Content == "" {
			return newValidationError("data.content", "is required")
		}
		if p.Big.Photo == "" {
			return newValidationError("data.photo", "is required")
		}
	case db.NewsTypeStaff:
		if p.Staff == nil {
			return newValidationError("data", "is required")
		}
		for i := range p.Staff.Cards {
			card := &p.Staff.Cards[i]
			if card.ProfileID <= 0 {
				return newValidationError("data.staff_cards", "staff_profile is required")
			}
			if card.StatusType == "" {
				card.StatusType = db.StaffCardAccepted
			}
			if _, ok := StaffCardTypes[card.StatusType]; !ok {
				return newValidationError("data.staff_cards",
					fmt.Sprintf("%q is not a valid status type", card.StatusType))
			}
			if card.ProjectManager == "" {
				card.ProjectManager = "Без РП"
			}
		}
	case db.NewsTypeProject:
		if p.Project == nil {
			return newValidationError("data", "is required")
		}
		if p.Project.Content == "" {
			return newValidationError("data.content", "is required")
		}
		if p.Project.Photo == "" {
			return newValidationError("data.photo", "is required")
		}
	}

	return nil
}

// News lists all news with resolved payloads and the caller's favorite
// annotation, newest first.
func (m *Manager) News(ctx context.Context, user Identity, page, pageSize *int) ([]News, error) {
	p, ps := defaultPage, defaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		ps = *pageSize
	}

	dbNews, err := m.db.NewsList(ctx, p, ps)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
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

	result := make([]News, len(dbNews))
	for i := range dbNews {
		_, favorite := favorites[dbNews[i].ID]
		news, err := NewNews(&dbNews[i], favorite)
		if err != nil {
			return nil, err
		}
		result[i] = news
	}

	return result, nil
}

// NewsByID returns a single news item with its resolved payload and the
// caller's favorite annotation.
func (m *Manager) NewsByID(ctx context.Context, user Identity, newsID int) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if dbNews == nil {
		return nil, ErrNotFound
	}

	favoriteIDs, err := m.db.FavoriteNewsIDs(ctx, user.UserID, []int{newsID})
	if err != nil {
		return nil, fmt.Errorf("db get favorite news ids: %w", err)
	}

	news, err := NewNews(dbNews, len(favoriteIDs) > 0)
	if err != nil {
		return nil, err
	}

	return &news, nil
}

// CreateNews creates a news row and its typed payload as one atomic unit.
func (m *Manager) CreateNews(ctx context.Context, user Identity, form NewsForm) (*News, error) {
	if err := form.validate(""); err != nil {
		return nil, err
	}

	digest, err := m.db.DigestByID(ctx, form.DigestID)
	if err != nil {
		return nil, fmt.Errorf("db get digest by id: %w", err)
	}
	if digest == nil {
		return nil, newValidationError("digest", "does not exist")
	}

	if err := m.checkPayloadProfiles(ctx, form.Data); err != nil {
		return nil, err
	}

	dbNews := &db.News{
		DigestID:  form.DigestID,
		Title:     form.Title,
		Type:      form.Type,
		Position:  form.Position,
		Important: form.Important,
	}

	err = m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.InsertNews(ctx, dbNews); err != nil {
			return err
		}
		return m.insertPayload(ctx, tx, dbNews, form.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("db create news: %w", err)
	}

	return m.NewsByID(ctx, user, dbNews.ID)
}

// UpdateNews updates the news row and its payload atomically. Changing the
// type is rejected before any write.
func (m *Manager) UpdateNews(ctx context.Context, user Identity, newsID int, form NewsForm) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if dbNews == nil {
		return nil, ErrNotFound
	}

	if form.Type == "" {
		form.Type = dbNews.Type
	}
	if form.DigestID == 0 {
		form.DigestID = dbNews.DigestID
	}
	if err := form.validate(dbNews.Type); err != nil {
		return nil, err
	}

	// the stored payload must exist before we try to update it
	if _, err := ResolvePayload(dbNews); err != nil {
		return nil, err
	}

	if err := m.checkPayloadProfiles(ctx, form.Data); err != nil {
		return nil, err
	}

	dbNews.DigestID = form.DigestID
	dbNews.Title = form.Title
	dbNews.Position = form.Position
	dbNews.Important = form.Important

	err = m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.UpdateNews(ctx, dbNews); err != nil {
			return err
		}
		return m.updatePayload(ctx, tx, dbNews, form.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	}

	return m.NewsByID(ctx, user, dbNews.ID)
}

// DeleteNews removes the news row; the payload goes with it by cascade, so no
// orphaned payload can remain.
func (m *Manager) DeleteNews(ctx context.Context, newsID int) error {
	deleted, err := m.db.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

// checkPayloadProfiles verifies every referenced profile exists before the
// mutation starts.
func (m *Manager) checkPayloadProfiles(ctx context.Context, data PayloadForm) error {
	var ids []int
	switch {
	case data.Staff != nil:
		for _, card := range data.Staff.Cards {
			ids = append(ids, card.ProfileID)
		}
	case data.Project != nil:
		ids = data.Project.MemberIDs
	default:
		return nil
	}

	if len(ids) == 0 {
		return nil
	}

	profiles, err := m.db.ProfilesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("db get profiles by ids: %w", err)
	}

	known := make(map[int]struct{}, len(profiles))
	for i := range profiles {
		known[profiles[i].ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return newValidationError("data", fmt.Sprintf("profile %d does not exist", id))
		}
	}

	return nil
}

func (m *Manager) insertPayload(ctx context.Context, tx *db.Repository, news *db.News, data PayloadForm) error {
	switch news.Type {
	case db.NewsTypeText:
		return tx.InsertTextNews(ctx, &db.TextNews{
			NewsID:  news.ID,
			Content: data.Text.Content,
		})
	case db.NewsTypeImage:
		return tx.InsertImageNews(ctx, &db.ImageNews{
			NewsID:  news.ID,
			Content: data.Image.Content,
			Photo:   data.Image.Photo,
		})
	case db.NewsTypeBig:
		return tx.InsertBigNews(ctx, &db.BigNews{
			NewsID:  news.ID,
			Content: data.Big.Content,
			Photo:   data.Big.Photo,
		})
	case db.NewsTypeStaff:
		staffNews := &db.StaffNews{NewsID: news.ID}
		if err := tx.InsertStaffNews(ctx, staffNews); err != nil {
			return err
		}
		return tx.InsertStaffCards(ctx, newStaffCardRows(staffNews.ID, data.Staff.Cards))
	case db.NewsTypeProject:
		projectNews := &db.ProjectNews{
			NewsID:     news.ID,
			Content:    data.Project.Content,
			Photo:      data.Project.Photo,
			GooglePlay: data.Project.GooglePlay,
			AppStore:   data.Project.AppStore,
			Browser:    data.Project.Browser,
		}
		if err := tx.InsertProjectNews(ctx, projectNews); err != nil {
			return err
		}
		return tx.SetProjectMembers(ctx, projectNews.ID, data.Project.MemberIDs)
	}

	return newValidationError("type", fmt.Sprintf("%q is not a valid choice", news.Type))
}

func (m *Manager) updatePayload(ctx context.Context, tx *db.Repository, news *db.News, data PayloadForm) error {
	switch news.Type {
	case db.NewsTypeText:
		news.TextNews.Content = data.Text.Content
		return tx.UpdateTextNews(ctx, news.TextNews)
	case db.NewsTypeImage:
		news.ImageNews.Content = data.Image.Content
		news.ImageNews.Photo = data.Image.Photo
		return tx.UpdateImageNews(ctx, news.ImageNews)
	case db.NewsTypeBig:
		news.BigNews.Content = data.Big.Content
		news.BigNews.Photo = data.Big.Photo
		return tx.UpdateBigNews(ctx, news.BigNews)
	case db.NewsTypeStaff:
		if err := tx.DeleteStaffCards(ctx, news.StaffNews.ID); err != nil {
			return err
		}
		return tx.InsertStaffCards(ctx, newStaffCardRows(news.StaffNews.ID, data.Staff.Cards))
	case db.NewsTypeProject:
		news.ProjectNews.Content = data.Project.Content
		news.ProjectNews.Photo = data.Project.Photo
		news.ProjectNews.GooglePlay = data.Project.GooglePlay
		news.ProjectNews.AppStore = data.Project.AppStore
		news.ProjectNews.Browser = data.Project.Browser
		if err := tx.UpdateProjectNews(ctx, news.ProjectNews); err != nil {
			return err
		}
		return tx.SetProjectMembers(ctx, news.ProjectNews.ID, data.Project.MemberIDs)
	}

	return newValidationError("type", fmt.Sprintf("%q is not a valid choice", news.Type))
}

func newStaffCardRows(staffNewsID int, cards []StaffCardForm) []db.StaffCard {
	rows := make([]db.StaffCard, len(cards))
	for i, card := range cards {
		rows[i] = db.StaffCard{
			StaffNewsID:    staffNewsID,
			ProfileID:      card.ProfileID,
			StatusType:     card.StatusType,
			StatusText:     card.StatusText,
			ProjectManager: card.ProjectManager,
		}
	}

	return rows
}
