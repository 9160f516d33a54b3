package digests

import (
	"time"
)

// Identity is the authenticated caller as supplied by the identity provider.
type Identity struct {
	UserID  int
	IsStaff bool
}

// NewsTypes maps the closed set of news type tags to the payload kind names.
var NewsTypes = map[string]string{
	"txt":     "text_news",
	"img":     "image_news",
	"big":     "big_news",
	"staff":   "staff_news",
	"project": "project_news",
}

// StaffCardTypes is the closed set of staff card status tags.
var StaffCardTypes = map[string]string{
	"accepted_to_company": "Accepted to company",
	"passed_trial":        "Passed trial",
	"upgrade":             "Upgrade",
	"change_post":         "Change post",
}

type Digest struct {
	ID        int
	Title     string
	Date      time.Time
	Published bool

	// Unread is the caller's read mark; nil when no mark exists for them.
	Unread *bool

	News []News
}

type News struct {
	ID        int
	DigestID  int
	Title     string
	Type      string
	Position  int
	Important bool

	// Favorite is annotated per caller from their bookmarks.
	Favorite bool

	Data Payload
}

// Payload is a tagged union over the five payload kinds. Exactly one member is
// non-nil, matching News.Type.
type Payload struct {
	Text    *TextPayload
	Image   *ImagePayload
	Big     *BigPayload
	Staff   *StaffPayload
	Project *ProjectPayload
}

// IsZero reports whether no variant is set.
func (p Payload) IsZero() bool {
	return p.Text == nil && p.Image == nil && p.Big == nil && p.Staff == nil && p.Project == nil
}

type TextPayload struct {
	Content string
}

type ImagePayload struct {
	Content string
	Photo   string
}

type BigPayload struct {
	Content string
	Photo   string
}

type StaffPayload struct {
	Cards []StaffCard
}

type StaffCard struct {
	ID             int
	StatusType     string
	StatusText     string
	ProjectManager string
	Profile        Profile
}

type ProjectPayload struct {
	Content    string
	Photo      string
	GooglePlay string
	AppStore   string
	Browser    string
	Members    []Profile
}

type Profile struct {
	ID         int
	FirstName  string
	LastName   string
	Photo      string
	Grade      int
	Profession string
}

type Favorite struct {
	NewsID int
}

// ArchiveIndex maps a year to the ascending distinct months that have digests.
type ArchiveIndex map[int][]int
