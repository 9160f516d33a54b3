package digests

import (
	"fmt"

	"github.com/didi-digest/backend/internal/db"
)

// ResolvePayload loads the typed payload variant matching news.Type from the
// prefetched relations. A missing payload row is an invariant violation, the
// payload is created atomically with its news.
func ResolvePayload(n *db.News) (Payload, error) {
	switch n.Type {
	case db.NewsTypeText:
		if n.TextNews == nil {
			return Payload{}, fmt.Errorf("news %d: text payload %w", n.ID, ErrNotFound)
		}
		return Payload{Text: &TextPayload{Content: n.TextNews.Content}}, nil
	case db.NewsTypeImage:
		if n.ImageNews == nil {
			return Payload{}, fmt.Errorf("news %d: image payload %w", n.ID, ErrNotFound)
		}
		return Payload{Image: &ImagePayload{
			Content: n.ImageNews.Content,
			Photo:   n.ImageNews.Photo,
		}}, nil
	case db.NewsTypeBig:
		if n.BigNews == nil {
			return Payload{}, fmt.Errorf("news %d: big payload %w", n.ID, ErrNotFound)
		}
		return Payload{Big: &BigPayload{
			Content: n.BigNews.Content,
			Photo:   n.BigNews.Photo,
		}}, nil
	case db.NewsTypeStaff:
		if n.StaffNews == nil {
			return Payload{}, fmt.Errorf("news %d: staff payload %w", n.ID, ErrNotFound)
		}
		return Payload{Staff: NewStaffPayload(n.StaffNews)}, nil
	case db.NewsTypeProject:
		if n.ProjectNews == nil {
			return Payload{}, fmt.Errorf("news %d: project payload %w", n.ID, ErrNotFound)
		}
		return Payload{Project: NewProjectPayload(n.ProjectNews)}, nil
	}

	return Payload{}, fmt.Errorf("news %d: unknown type %q", n.ID, n.Type)
}

func NewStaffPayload(sn *db.StaffNews) *StaffPayload {
	payload := &StaffPayload{
		Cards: make([]StaffCard, len(sn.StaffCards)),
	}
	for i := range sn.StaffCards {
		payload.Cards[i] = NewStaffCard(&sn.StaffCards[i])
	}

	return payload
}

func NewStaffCard(c *db.StaffCard) StaffCard {
	card := StaffCard{
		ID:             c.ID,
		StatusType:     c.StatusType,
		StatusText:     c.StatusText,
		ProjectManager: c.ProjectManager,
	}

	if c.Profile != nil {
		card.Profile = NewProfile(c.Profile)
	}

	return card
}

func NewProjectPayload(pn *db.ProjectNews) *ProjectPayload {
	payload := &ProjectPayload{
		Content:    pn.Content,
		Photo:      pn.Photo,
		GooglePlay: pn.GooglePlay,
		AppStore:   pn.AppStore,
		Browser:    pn.Browser,
	}

	if len(pn.Members) > 0 {
		payload.Members = make([]Profile, len(pn.Members))
		for i := range pn.Members {
			payload.Members[i] = NewProfile(&pn.Members[i])
		}
	}

	return payload
}

func NewProfile(p *db.Profile) Profile {
	return Profile{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Photo:      p.Photo,
		Grade:      p.Grade,
		Profession: p.Profession,
	}
}

// NewNews builds an annotated news item with its resolved payload.
func NewNews(n *db.News, favorite bool) (News, error) {
	data, err := ResolvePayload(n)
	if err != nil {
		return News{}, err
	}

	return News{
		ID:        n.ID,
		DigestID:  n.DigestID,
		Title:     n.Title,
		Type:      n.Type,
		Position:  n.Position,
		Important: n.Important,
		Favorite:  favorite,
		Data:      data,
	}, nil
}

func NewDigest(d *db.Digest) Digest {
	return Digest{
		ID:        d.ID,
		Title:     d.Title,
		Date:      d.Date,
		Published: d.Published,
	}
}

func NewFavorites(list []db.UserFavorite) []Favorite {
	favorites := make([]Favorite, len(list))
	for i := range list {
		favorites[i] = Favorite{NewsID: list[i].NewsID}
	}

	return favorites
}
