package rpc

import "github.com/didi-digest/backend/internal/digests"

const dateLayout = "2006-01-02"

func NewDigest(d digests.Digest) Digest {
	return Digest{
		DigestID: d.ID,
		Title:    d.Title,
		Date:     d.Date.Format(dateLayout),
		News:     NewNewsList(d.News),
		Unread:   d.Unread,
	}
}

func NewDigests(list []digests.Digest) []Digest {
	result := make([]Digest, len(list))
	for i := range list {
		result[i] = NewDigest(list[i])
	}
	return result
}

func NewNews(n digests.News) News {
	return News{
		NewsID:    n.ID,
		DigestID:  n.DigestID,
		Title:     n.Title,
		Type:      n.Type,
		Important: n.Important,
		Position:  n.Position,
		Favorite:  n.Favorite,
		Data:      newPayloadData(n.Data),
	}
}

func NewNewsList(list []digests.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(list[i])
	}
	return result
}

func newPayloadData(p digests.Payload) any {
	switch {
	case p.Text != nil:
		return TextData{Content: p.Text.Content}
	case p.Image != nil:
		return ImageData{Content: p.Image.Content, Photo: p.Image.Photo}
	case p.Big != nil:
		return BigData{Content: p.Big.Content, Photo: p.Big.Photo}
	case p.Staff != nil:
		cards := make([]StaffCard, len(p.Staff.Cards))
		for i, card := range p.Staff.Cards {
			cards[i] = NewStaffCard(card)
		}
		return StaffData{StaffCards: cards}
	case p.Project != nil:
		members := make([]Profile, len(p.Project.Members))
		for i, member := range p.Project.Members {
			members[i] = NewProfile(member)
		}
		return ProjectData{
			Content:    p.Project.Content,
			Photo:      p.Project.Photo,
			GooglePlay: p.Project.GooglePlay,
			AppStore:   p.Project.AppStore,
			Browser:    p.Project.Browser,
			Members:    members,
		}
	}

	return nil
}

func NewStaffCard(c digests.StaffCard) StaffCard {
	return StaffCard{
		StaffCardID:    c.ID,
		ProjectManager: c.ProjectManager,
		StatusType:     c.StatusType,
		StatusText:     c.StatusText,
		StaffProfile:   NewProfile(c.Profile),
	}
}

func NewProfile(p digests.Profile) Profile {
	return Profile{
		ProfileID:  p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Photo:      p.Photo,
		Grade:      p.Grade,
		Profession: p.Profession,
	}
}
