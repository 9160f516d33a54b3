package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/didi-digest/backend/internal/digests"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewDigestSummary(d digests.Digest) DigestSummary {
	return DigestSummary{
		ID:     d.ID,
		Title:  d.Title,
		Date:   d.Date.Format(dateLayout),
		News:   Map(d.News, NewNewsSummary),
		Unread: d.Unread,
	}
}

func NewDigestFull(d digests.Digest) DigestFull {
	return DigestFull{
		ID:    d.ID,
		Title: d.Title,
		Date:  d.Date.Format(dateLayout),
		News:  Map(d.News, NewNewsFull),
	}
}

func NewNewsSummary(n digests.News) NewsSummary {
	return NewsSummary{
		ID:        n.ID,
		Title:     n.Title,
		Type:      n.Type,
		Important: n.Important,
		Position:  n.Position,
		Favorite:  n.Favorite,
	}
}

func NewNewsFull(n digests.News) NewsFull {
	return NewsFull{
		ID:        n.ID,
		Digest:    n.DigestID,
		Title:     n.Title,
		Type:      n.Type,
		Important: n.Important,
		Position:  n.Position,
		Favorite:  n.Favorite,
		Data:      newPayloadData(n.Data),
	}
}

// newPayloadData picks the variant shape matching the news type.
func newPayloadData(p digests.Payload) any {
	switch {
	case p.Text != nil:
		return TextData{Content: p.Text.Content}
	case p.Image != nil:
		return ImageData{Content: p.Image.Content, Photo: p.Image.Photo}
	case p.Big != nil:
		return BigData{Content: p.Big.Content, Photo: p.Big.Photo}
	case p.Staff != nil:
		return StaffData{StaffCards: Map(p.Staff.Cards, NewStaffCardData)}
	case p.Project != nil:
		return ProjectData{
			Content:    p.Project.Content,
			Photo:      p.Project.Photo,
			GooglePlay: p.Project.GooglePlay,
			AppStore:   p.Project.AppStore,
			Browser:    p.Project.Browser,
			Members:    Map(p.Project.Members, NewProfileData),
		}
	}

	return nil
}

func NewStaffCardData(c digests.StaffCard) StaffCardData {
	return StaffCardData{
		ID:             c.ID,
		ProjectManager: c.ProjectManager,
		StatusType:     c.StatusType,
		StatusText:     c.StatusText,
		StaffProfile:   NewProfileData(c.Profile),
	}
}

func NewProfileData(p digests.Profile) ProfileData {
	return ProfileData{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Photo:      p.Photo,
		Grade:      p.Grade,
		Profession: p.Profession,
	}
}

func NewFavoriteData(f digests.Favorite) FavoriteData {
	return FavoriteData{NewsID: f.NewsID}
}

func (r *DigestRequest) ToForm() (digests.DigestForm, error) {
	form := digests.DigestForm{
		Title:     r.Title,
		Published: r.Published,
	}

	if r.Date != "" {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return form, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", r.Date)
		}
		form.Date = date
	}

	return form, nil
}

// ToForm decodes the nested data object into the variant matching the declared
// type. Unknown types pass through with empty data, the manager rejects them.
func (r *NewsRequest) ToForm() (digests.NewsForm, error) {
	form := digests.NewsForm{
		DigestID:  r.Digest,
		Title:     r.Title,
		Type:      r.Type,
		Position:  r.Position,
		Important: r.Important,
	}

	if len(r.Data) == 0 {
		return form, nil
	}

	switch r.Type {
	case "txt":
		var data TextData
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return form, fmt.Errorf("invalid data for type %q: %w", r.Type, err)
		}
		form.Data.Text = &digests.TextPayload{Content: data.Content}
	case "img":
		var data ImageData
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return form, fmt.Errorf("invalid data for type %q: %w", r.Type, err)
		}
		form.Data.Image = &digests.ImagePayload{Content: data.Content, Photo: data.Photo}
	case "big":
		var data BigData
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return form, fmt.Errorf("invalid data for type %q: %w", r.Type, err)
		}
		form.Data.Big = &digests.BigPayload{Content: data.Content, Photo: data.Photo}
	case "staff":
		var data staffDataIn
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return form, fmt.Errorf("invalid data for type %q: %w", r.Type, err)
		}
		staff := &digests.StaffPayloadForm{
			Cards: make([]digests.StaffCardForm, len(data.StaffCards)),
		}
		for i, card := range data.StaffCards {
			staff.Cards[i] = digests.StaffCardForm{
				ProfileID:      card.StaffProfile,
				StatusType:     card.StatusType,
				StatusText:     card.StatusText,
				ProjectManager: card.ProjectManager,
			}
		}
		form.Data.Staff = staff
	case "project":
		var data projectDataIn
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return form, fmt.Errorf("invalid data for type %q: %w", r.Type, err)
		}
		form.Data.Project = &digests.ProjectPayloadForm{
			Content:    data.Content,
			Photo:      data.Photo,
			GooglePlay: data.GooglePlay,
			AppStore:   data.AppStore,
			Browser:    data.Browser,
			MemberIDs:  data.Members,
		}
	}

	return form, nil
}
