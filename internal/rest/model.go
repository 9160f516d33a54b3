package rest

import "encoding/json"

const dateLayout = "2006-01-02"

// DigestSummary is the lightweight list shape: news without payload bodies.
type DigestSummary struct {
	ID     int           `json:"id"`
	Title  string        `json:"title"`
	Date   string        `json:"date"`
	News   []NewsSummary `json:"news"`
	Unread *bool         `json:"unread"`
}

// DigestFull is the detail shape: news with resolved payload bodies.
type DigestFull struct {
	ID    int        `json:"id"`
	Title string     `json:"title"`
	Date  string     `json:"date"`
	News  []NewsFull `json:"news"`
}

type NewsSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Important bool   `json:"important"`
	Position  int    `json:"position"`
	Favorite  bool   `json:"favorite"`
}

type NewsFull struct {
	ID        int    `json:"id"`
	Digest    int    `json:"digest"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Important bool   `json:"important"`
	Position  int    `json:"position"`
	Favorite  bool   `json:"favorite"`
	Data      any    `json:"data"`
}

type TextData struct {
	Content string `json:"content"`
}

type ImageData struct {
	Content string `json:"content"`
	Photo   string `json:"photo"`
}

type BigData struct {
	Content string `json:"content"`
	Photo   string `json:"photo"`
}

type StaffData struct {
	StaffCards []StaffCardData `json:"staff_cards"`
}

type StaffCardData struct {
	ID             int         `json:"id"`
	ProjectManager string      `json:"project_manager"`
	StatusType     string      `json:"status_type"`
	StatusText     string      `json:"status_text"`
	StaffProfile   ProfileData `json:"staff_profile"`
}

type ProjectData struct {
	Content    string        `json:"content"`
	Photo      string        `json:"photo"`
	GooglePlay string        `json:"google_play"`
	AppStore   string        `json:"app_store"`
	Browser    string        `json:"browser"`
	Members    []ProfileData `json:"members"`
}

type ProfileData struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Photo      string `json:"photo"`
	Grade      int    `json:"grade"`
	Profession string `json:"profession"`
}

type FavoriteData struct {
	NewsID int `json:"news_id"`
}

type UnreadCountData struct {
	Count int `json:"count"`
}

// Requests

type DigestRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Published bool   `json:"published"`
}

type NewsRequest struct {
	Digest    int             `json:"digest"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Position  int             `json:"position"`
	Important bool            `json:"important"`
	Data      json.RawMessage `json:"data"`
}

// Per-type shapes of NewsRequest.Data on writes. Staff cards and project
// members reference profiles by id.

type staffDataIn struct {
	StaffCards []staffCardIn `json:"staff_cards"`
}

type staffCardIn struct {
	StaffProfile   int    `json:"staff_profile"`
	StatusType     string `json:"status_type"`
	StatusText     string `json:"status_text"`
	ProjectManager string `json:"project_manager"`
}

type projectDataIn struct {
	Content    string `json:"content"`
	Photo      string `json:"photo"`
	GooglePlay string `json:"google_play"`
	AppStore   string `json:"app_store"`
	Browser    string `json:"browser"`
	Members    []int  `json:"members"`
}

type FavoriteRequest struct {
	NewsID int `json:"news_id"`
}
