// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

const (
	NewsTypeText    = "txt"
	NewsTypeImage   = "img"
	NewsTypeBig     = "big"
	NewsTypeStaff   = "staff"
	NewsTypeProject = "project"
)

const (
	StaffCardAccepted    = "accepted_to_company"
	StaffCardPassedTrial = "passed_trial"
	StaffCardUpgrade     = "upgrade"
	StaffCardChangePost  = "change_post"
)

func init() {
	// join table for ProjectNews.Members
	orm.RegisterTable((*ProjectNewsMember)(nil))
}

var Columns = struct {
	Digest struct {
		ID, Title, Date, Published string

		News string
	}
	News struct {
		ID, DigestID, Title, Type, Position, Important string

		Digest, TextNews, ImageNews, BigNews, StaffNews, ProjectNews string
	}
	TextNews struct {
		ID, NewsID, Content string
	}
	ImageNews struct {
		ID, NewsID, Content, Photo string
	}
	BigNews struct {
		ID, NewsID, Content, Photo string
	}
	StaffNews struct {
		ID, NewsID string

		StaffCards string
	}
	StaffCard struct {
		ID, StaffNewsID, ProfileID, StatusType, StatusText, ProjectManager string

		Profile string
	}
	ProjectNews struct {
		ID, NewsID, Content, Photo, GooglePlay, AppStore, Browser string

		Members string
	}
	Profile struct {
		ID, FirstName, LastName, Photo, Grade, Profession string
	}
	User struct {
		ID, Username, IsStaff, CreatedAt string
	}
	UserDigest struct {
		ID, UserID, DigestID, Unread string
	}
	UserFavorite struct {
		ID, UserID, NewsID, CreatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Digest: struct {
		ID, Title, Date, Published string

		News string
	}{
		ID:        "digestId",
		Title:     "title",
		Date:      "date",
		Published: "published",

		News: "News",
	},
	News: struct {
		ID, DigestID, Title, Type, Position, Important string

		Digest, TextNews, ImageNews, BigNews, StaffNews, ProjectNews string
	}{
		ID:        "newsId",
		DigestID:  "digestId",
		Title:     "title",
		Type:      "type",
		Position:  "position",
		Important: "important",

		Digest:      "Digest",
		TextNews:    "TextNews",
		ImageNews:   "ImageNews",
		BigNews:     "BigNews",
		StaffNews:   "StaffNews",
		ProjectNews: "ProjectNews",
	},
	TextNews: struct {
		ID, NewsID, Content string
	}{
		ID:      "textNewsId",
		NewsID:  "newsId",
		Content: "content",
	},
	ImageNews: struct {
		ID, NewsID, Content, Photo string
	}{
		ID:      "imageNewsId",
		NewsID:  "newsId",
		Content: "content",
		Photo:   "photo",
	},
	BigNews: struct {
		ID, NewsID, Content, Photo string
	}{
		ID:      "bigNewsId",
		NewsID:  "newsId",
		Content: "content",
		Photo:   "photo",
	},
	StaffNews: struct {
		ID, NewsID string

		StaffCards string
	}{
		ID:     "staffNewsId",
		NewsID: "newsId",

		StaffCards: "StaffCards",
	},
	StaffCard: struct {
		ID, StaffNewsID, ProfileID, StatusType, StatusText, ProjectManager string

		Profile string
	}{
		ID:             "staffCardId",
		StaffNewsID:    "staffNewsId",
		ProfileID:      "profileId",
		StatusType:     "statusType",
		StatusText:     "statusText",
		ProjectManager: "projectManager",

		Profile: "Profile",
	},
	ProjectNews: struct {
		ID, NewsID, Content, Photo, GooglePlay, AppStore, Browser string

		Members string
	}{
		ID:         "projectNewsId",
		NewsID:     "newsId",
		Content:    "content",
		Photo:      "photo",
		GooglePlay: "googlePlay",
		AppStore:   "appStore",
		Browser:    "browser",

		Members: "Members",
	},
	Profile: struct {
		ID, FirstName, LastName, Photo, Grade, Profession string
	}{
		ID:         "profileId",
		FirstName:  "firstName",
		LastName:   "lastName",
		Photo:      "photo",
		Grade:      "grade",
		Profession: "profession",
	},
	User: struct {
		ID, Username, IsStaff, CreatedAt string
	}{
		ID:        "userId",
		Username:  "username",
		IsStaff:   "isStaff",
		CreatedAt: "createdAt",
	},
	UserDigest: struct {
		ID, UserID, DigestID, Unread string
	}{
		ID:       "userDigestId",
		UserID:   "userId",
		DigestID: "digestId",
		Unread:   "unread",
	},
	UserFavorite: struct {
		ID, UserID, NewsID, CreatedAt string
	}{
		ID:        "userFavoriteId",
		UserID:    "userId",
		NewsID:    "newsId",
		CreatedAt: "createdAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Digest struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	TextNews struct {
		Name, Alias string
	}
	ImageNews struct {
		Name, Alias string
	}
	BigNews struct {
		Name, Alias string
	}
	StaffNews struct {
		Name, Alias string
	}
	StaffCard struct {
		Name, Alias string
	}
	ProjectNews struct {
		Name, Alias string
	}
	Profile struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
	UserDigest struct {
		Name, Alias string
	}
	UserFavorite struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Digest: struct {
		Name, Alias string
	}{
		Name:  "digests",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	TextNews: struct {
		Name, Alias string
	}{
		Name:  "text_news",
		Alias: "t",
	},
	ImageNews: struct {
		Name, Alias string
	}{
		Name:  "image_news",
		Alias: "t",
	},
	BigNews: struct {
		Name, Alias string
	}{
		Name:  "big_news",
		Alias: "t",
	},
	StaffNews: struct {
		Name, Alias string
	}{
		Name:  "staff_news",
		Alias: "t",
	},
	StaffCard: struct {
		Name, Alias string
	}{
		Name:  "staff_cards",
		Alias: "t",
	},
	ProjectNews: struct {
		Name, Alias string
	}{
		Name:  "project_news",
		Alias: "t",
	},
	Profile: struct {
		Name, Alias string
	}{
		Name:  "profiles",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	UserDigest: struct {
		Name, Alias string
	}{
		Name:  "user_digests",
		Alias: "t",
	},
	UserFavorite: struct {
		Name, Alias string
	}{
		Name:  "user_favorites",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Digest struct {
	tableName struct{} `pg:"digests,alias:t,discard_unknown_columns"`

	ID        int       `pg:"digestId,pk"`
	Title     string    `pg:"title,use_zero"`
	Date      time.Time `pg:"date,use_zero"`
	Published bool      `pg:"published,use_zero"`

	News []News `pg:"rel:has-many,join_fk:digestId"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID        int    `pg:"newsId,pk"`
	DigestID  int    `pg:"digestId,use_zero"`
	Title     string `pg:"title,use_zero"`
	Type      string `pg:"type,use_zero"`
	Position  int    `pg:"position,use_zero"`
	Important bool   `pg:"important,use_zero"`

	Digest      *Digest      `pg:"fk:digestId,rel:has-one"`
	TextNews    *TextNews    `pg:"rel:belongs-to,join_fk:newsId"`
	ImageNews   *ImageNews   `pg:"rel:belongs-to,join_fk:newsId"`
	BigNews     *BigNews     `pg:"rel:belongs-to,join_fk:newsId"`
	StaffNews   *StaffNews   `pg:"rel:belongs-to,join_fk:newsId"`
	ProjectNews *ProjectNews `pg:"rel:belongs-to,join_fk:newsId"`
}

type TextNews struct {
	tableName struct{} `pg:"text_news,alias:t,discard_unknown_columns"`

	ID      int    `pg:"textNewsId,pk"`
	NewsID  int    `pg:"newsId,use_zero"`
	Content string `pg:"content,use_zero"`
}

type ImageNews struct {
	tableName struct{} `pg:"image_news,alias:t,discard_unknown_columns"`

	ID      int    `pg:"imageNewsId,pk"`
	NewsID  int    `pg:"newsId,use_zero"`
	Content string `pg:"content,use_zero"`
	Photo   string `pg:"photo,use_zero"`
}

type BigNews struct {
	tableName struct{} `pg:"big_news,alias:t,discard_unknown_columns"`

	ID      int    `pg:"bigNewsId,pk"`
	NewsID  int    `pg:"newsId,use_zero"`
	Content string `pg:"content,use_zero"`
	Photo   string `pg:"photo,use_zero"`
}

type StaffNews struct {
	tableName struct{} `pg:"staff_news,alias:t,discard_unknown_columns"`

	ID     int `pg:"staffNewsId,pk"`
	NewsID int `pg:"newsId,use_zero"`

	StaffCards []StaffCard `pg:"rel:has-many,join_fk:staffNewsId"`
}

type StaffCard struct {
	tableName struct{} `pg:"staff_cards,alias:t,discard_unknown_columns"`

	ID             int    `pg:"staffCardId,pk"`
	StaffNewsID    int    `pg:"staffNewsId,use_zero"`
	ProfileID      int    `pg:"profileId,use_zero"`
	StatusType     string `pg:"statusType,use_zero"`
	StatusText     string `pg:"statusText,use_zero"`
	ProjectManager string `pg:"projectManager,use_zero"`

	Profile *Profile `pg:"fk:profileId,rel:has-one"`
}

type ProjectNews struct {
	tableName struct{} `pg:"project_news,alias:t,discard_unknown_columns"`

	ID         int    `pg:"projectNewsId,pk"`
	NewsID     int    `pg:"newsId,use_zero"`
	Content    string `pg:"content,use_zero"`
	Photo      string `pg:"photo,use_zero"`
	GooglePlay string `pg:"googlePlay,use_zero"`
	AppStore   string `pg:"appStore,use_zero"`
	Browser    string `pg:"browser,use_zero"`

	Members []Profile `pg:"many2many:project_news_members"`
}

type ProjectNewsMember struct {
	tableName struct{} `pg:"project_news_members,alias:t"`

	ProjectNewsID int `pg:"projectNewsId,pk"`
	ProfileID     int `pg:"profileId,pk"`
}

type Profile struct {
	tableName struct{} `pg:"profiles,alias:t,discard_unknown_columns"`

	ID         int    `pg:"profileId,pk"`
	FirstName  string `pg:"firstName,use_zero"`
	LastName   string `pg:"lastName,use_zero"`
	Photo      string `pg:"photo,use_zero"`
	Grade      int    `pg:"grade,use_zero"`
	Profession string `pg:"profession,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        int       `pg:"userId,pk"`
	Username  string    `pg:"username,use_zero"`
	IsStaff   bool      `pg:"isStaff,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
}

type UserDigest struct {
	tableName struct{} `pg:"user_digests,alias:t,discard_unknown_columns"`

	ID       int  `pg:"userDigestId,pk"`
	UserID   int  `pg:"userId,use_zero"`
	DigestID int  `pg:"digestId,use_zero"`
	Unread   bool `pg:"unread,use_zero"`
}

type UserFavorite struct {
	tableName struct{} `pg:"user_favorites,alias:t,discard_unknown_columns"`

	ID        int       `pg:"userFavoriteId,pk"`
	UserID    int       `pg:"userId,use_zero"`
	NewsID    int       `pg:"newsId,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
