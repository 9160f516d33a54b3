package rpc

type DigestFilter struct {
	//important keep digests with at least one news matching the flag
	Important *bool `json:"important,omitempty"`
	//favorite keep digests with at least one news favorited by the caller
	Favorite *bool `json:"favorite,omitempty"`
	//unread keep digests whose read mark has this unread value
	Unread *bool `json:"unread,omitempty"`
	//search full-text query across news titles and bodies
	Search *string `json:"search,omitempty"`
	//year digest date year
	Year *int `json:"year,omitempty"`
	//month digest date month (1-12)
	Month *int `json:"month,omitempty"`
	//day digest date day
	Day *int `json:"day,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type DigestByIDRequest struct {
	//id digest numeric ID
	ID int `json:"id"`
}

type Digest struct {
	DigestID int    `json:"digestId"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	News     []News `json:"news"`
	Unread   *bool  `json:"unread,omitempty"`
}

type News struct {
	NewsID    int    `json:"newsId"`
	DigestID  int    `json:"digestId"`
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
	StaffCards []StaffCard `json:"staffCards"`
}

type StaffCard struct {
	StaffCardID    int     `json:"staffCardId"`
	ProjectManager string  `json:"projectManager"`
	StatusType     string  `json:"statusType"`
	StatusText     string  `json:"statusText"`
	StaffProfile   Profile `json:"staffProfile"`
}

type ProjectData struct {
	Content    string    `json:"content"`
	Photo      string    `json:"photo"`
	GooglePlay string    `json:"googlePlay"`
	AppStore   string    `json:"appStore"`
	Browser    string    `json:"browser"`
	Members    []Profile `json:"members"`
}

type Profile struct {
	ProfileID  int    `json:"profileId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Photo      string `json:"photo"`
	Grade      int    `json:"grade"`
	Profession string `json:"profession"`
}

type UnreadCount struct {
	Count int `json:"count"`
}
