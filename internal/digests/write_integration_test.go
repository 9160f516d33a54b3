package digests

import (
	"errors"
	"testing"
	"time"

	"github.com/didi-digest/backend/internal/db"
)

func TestCreateDigest_Integration(t *testing.T) {
	t.Run("PublishedFansOutUnreadMarks", func(t *testing.T) {
		ctx, manager := withTx(t)

		digest, err := manager.CreateDigest(ctx, DigestForm{
			Title:     "Spring digest",
			Date:      time.Date(2018, 4, 2, 0, 0, 0, 0, time.UTC),
			Published: true,
		})
		if err != nil {
			t.Fatalf("CreateDigest failed: %v", err)
		}
		if digest.ID == 0 {
			t.Fatal("expected created digest to get an id")
		}

		// every user gets an unread mark
		for _, user := range []Identity{alice, bob, carol} {
			digests, err := manager.DigestsByFilter(ctx, user, Filter{Unread: boolPtr(true)})
			if err != nil {
				t.Fatalf("DigestsByFilter failed: %v", err)
			}
			var found bool
			for _, d := range digests {
				if d.ID == digest.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("expected digest %d unread for user %d", digest.ID, user.UserID)
			}
		}
	})

	t.Run("DraftSkipsFanOut", func(t *testing.T) {
		ctx, manager := withTx(t)

		before, err := manager.UnreadCount(ctx, bob)
		if err != nil {
			t.Fatalf("UnreadCount failed: %v", err)
		}

		if _, err := manager.CreateDigest(ctx, DigestForm{
			Title: "Draft only",
			Date:  time.Date(2018, 4, 3, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatalf("CreateDigest failed: %v", err)
		}

		after, err := manager.UnreadCount(ctx, bob)
		if err != nil {
			t.Fatalf("UnreadCount failed: %v", err)
		}
		if after != before {
			t.Errorf("expected unread count unchanged for draft, got %d -> %d", before, after)
		}
	})

	t.Run("TitleRequired", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.CreateDigest(ctx, DigestForm{Date: time.Now()})
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("OmittedDateDefaultsToToday", func(t *testing.T) {
		ctx, manager := withTx(t)

		digest, err := manager.CreateDigest(ctx, DigestForm{Title: "Undated"})
		if err != nil {
			t.Fatalf("CreateDigest failed: %v", err)
		}
		if digest.Date.IsZero() {
			t.Error("expected a default date on the created digest")
		}
	})
}

func TestBulkCreateDigests_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	forms := []DigestForm{
		{Title: "Bulk one", Date: time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC), Published: true},
		{Title: "Bulk two", Date: time.Date(2018, 5, 8, 0, 0, 0, 0, time.UTC), Published: true},
		{Title: "Bulk draft", Date: time.Date(2018, 5, 15, 0, 0, 0, 0, time.UTC)},
	}

	digests, err := manager.BulkCreateDigests(ctx, forms)
	if err != nil {
		t.Fatalf("BulkCreateDigests failed: %v", err)
	}
	if len(digests) != 3 {
		t.Fatalf("expected 3 digests, got %d", len(digests))
	}

	// bulk insertion must not bypass the per-digest fan-out
	unread, err := manager.DigestsByFilter(ctx, carol, Filter{Unread: boolPtr(true)})
	if err != nil {
		t.Fatalf("DigestsByFilter failed: %v", err)
	}

	marked := map[int]bool{}
	for _, d := range unread {
		marked[d.ID] = true
	}
	if !marked[digests[0].ID] || !marked[digests[1].ID] {
		t.Errorf("expected both published bulk digests unread for carol, got %v", marked)
	}
	if marked[digests[2].ID] {
		t.Error("draft bulk digest must not get unread marks")
	}
}

func TestUpdateDigest_Integration(t *testing.T) {
	t.Run("PublishingFansOut", func(t *testing.T) {
		ctx, manager := withTx(t)

		// digest 4 is a draft with no marks
		digest, err := manager.UpdateDigest(ctx, 4, DigestForm{
			Title:     "Draft digest",
			Date:      time.Date(2018, 2, 25, 0, 0, 0, 0, time.UTC),
			Published: true,
		})
		if err != nil {
			t.Fatalf("UpdateDigest failed: %v", err)
		}

		unread, err := manager.DigestsByFilter(ctx, bob, Filter{Unread: boolPtr(true)})
		if err != nil {
			t.Fatalf("DigestsByFilter failed: %v", err)
		}
		var found bool
		for _, d := range unread {
			if d.ID == digest.ID {
				found = true
			}
		}
		if !found {
			t.Error("expected freshly published digest to be unread for bob")
		}
	})

	t.Run("ExistingMarksSurvivePublishing", func(t *testing.T) {
		ctx, manager := withTx(t)

		// bob has read digest 1; republishing must not flip it back
		if _, err := manager.UpdateDigest(ctx, 1, DigestForm{
			Title:     "Digest #1",
			Date:      time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC),
			Published: true,
		}); err != nil {
			t.Fatalf("UpdateDigest failed: %v", err)
		}

		read, err := manager.DigestsByFilter(ctx, bob, Filter{Unread: boolPtr(false)})
		if err != nil {
			t.Fatalf("DigestsByFilter failed: %v", err)
		}
		var found bool
		for _, d := range read {
			if d.ID == 1 {
				found = true
			}
		}
		if !found {
			t.Error("expected digest 1 to stay read for bob after republishing")
		}
	})

	t.Run("OmittedDateKeepsStored", func(t *testing.T) {
		ctx, manager := withTx(t)

		digest, err := manager.UpdateDigest(ctx, 1, DigestForm{
			Title:     "Digest #1, renamed",
			Published: true,
		})
		if err != nil {
			t.Fatalf("UpdateDigest failed: %v", err)
		}

		year, month, day := digest.Date.Date()
		if year != 2018 || month != time.January || day != 15 {
			t.Errorf("expected stored date to survive, got %v", digest.Date)
		}

		stored, err := manager.DigestByID(ctx, alice, 1)
		if err != nil {
			t.Fatalf("DigestByID failed: %v", err)
		}
		year, month, day = stored.Date.Date()
		if year != 2018 || month != time.January || day != 15 {
			t.Errorf("expected stored date to survive, got %v", stored.Date)
		}
	})

	t.Run("MissingDigest", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UpdateDigest(ctx, 999, DigestForm{Title: "ghost", Date: time.Now()})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteDigest_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	if err := manager.DeleteDigest(ctx, 3); err != nil {
		t.Fatalf("DeleteDigest failed: %v", err)
	}

	if _, err := manager.DigestByID(ctx, alice, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := manager.DeleteDigest(ctx, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestCreateNews_Integration(t *testing.T) {
	t.Run("TextNews", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 2,
			Title:    "Hiring update",
			Type:     db.NewsTypeText,
			Position: 3,
			Data:     PayloadForm{Text: &TextPayload{Content: "We opened five new positions"}},
		})
		if err != nil {
			t.Fatalf("CreateNews failed: %v", err)
		}

		if news.Data.Text == nil || news.Data.Text.Content != "We opened five new positions" {
			t.Fatalf("unexpected payload: %+v", news.Data)
		}
	})

	t.Run("StaffNewsAppliesCardDefaults", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 2,
			Title:    "New teammates",
			Type:     db.NewsTypeStaff,
			Position: 4,
			Data: PayloadForm{Staff: &StaffPayloadForm{
				Cards: []StaffCardForm{
					{ProfileID: 3, StatusText: "joined QA"},
				},
			}},
		})
		if err != nil {
			t.Fatalf("CreateNews failed: %v", err)
		}

		cards := news.Data.Staff.Cards
		if len(cards) != 1 {
			t.Fatalf("expected 1 staff card, got %d", len(cards))
		}
		if cards[0].StatusType != db.StaffCardAccepted {
			t.Errorf("expected default status type, got %q", cards[0].StatusType)
		}
		if cards[0].ProjectManager != "Без РП" {
			t.Errorf("expected default project manager, got %q", cards[0].ProjectManager)
		}
		if cards[0].Profile.LastName != "Orlov" {
			t.Errorf("expected resolved profile, got %+v", cards[0].Profile)
		}
	})

	t.Run("ProjectNewsWithMembers", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 3,
			Title:    "Internal portal",
			Type:     db.NewsTypeProject,
			Position: 2,
			Data: PayloadForm{Project: &ProjectPayloadForm{
				Content:   "The internal portal went live",
				Photo:     "portal.jpg",
				Browser:   "https://portal.example.com",
				MemberIDs: []int{1, 3},
			}},
		})
		if err != nil {
			t.Fatalf("CreateNews failed: %v", err)
		}

		if news.Data.Project == nil || len(news.Data.Project.Members) != 2 {
			t.Fatalf("expected 2 project members, got %+v", news.Data.Project)
		}
	})

	t.Run("UnknownTypeRejected", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 1,
			Title:    "Broken",
			Type:     "video",
		})
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("MissingDigestRejected", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 999,
			Title:    "Orphan",
			Type:     db.NewsTypeText,
			Data:     PayloadForm{Text: &TextPayload{Content: "body"}},
		})
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("MissingPayloadRejected", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 1,
			Title:    "No data",
			Type:     db.NewsTypeImage,
		})
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("UnknownProfileRejected", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.CreateNews(ctx, alice, NewsForm{
			DigestID: 1,
			Title:    "Ghost teammate",
			Type:     db.NewsTypeStaff,
			Data: PayloadForm{Staff: &StaffPayloadForm{
				Cards: []StaffCardForm{{ProfileID: 999}},
			}},
		})
		if !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUpdateNews_Integration(t *testing.T) {
	t.Run("TypeIsImmutable", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UpdateNews(ctx, alice, 1, NewsForm{
			DigestID: 1,
			Title:    "Quarter results",
			Type:     db.NewsTypeImage,
			Data:     PayloadForm{Image: &ImagePayload{Content: "x", Photo: "x.jpg"}},
		})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != "type: you can't change type" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("UpdatesRowAndPayload", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.UpdateNews(ctx, bob, 1, NewsForm{
			DigestID:  1,
			Title:     "Quarter results, revised",
			Type:      db.NewsTypeText,
			Position:  5,
			Important: false,
			Data:      PayloadForm{Text: &TextPayload{Content: "Revised revenue figures"}},
		})
		if err != nil {
			t.Fatalf("UpdateNews failed: %v", err)
		}

		if news.Title != "Quarter results, revised" || news.Position != 5 || news.Important {
			t.Fatalf("unexpected news after update: %+v", news)
		}
		if news.Data.Text == nil || news.Data.Text.Content != "Revised revenue figures" {
			t.Fatalf("unexpected payload after update: %+v", news.Data)
		}
	})

	t.Run("StaffCardsReplaced", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.UpdateNews(ctx, alice, 3, NewsForm{
			DigestID: 1,
			Title:    "Team changes",
			Type:     db.NewsTypeStaff,
			Position: 3,
			Data: PayloadForm{Staff: &StaffPayloadForm{
				Cards: []StaffCardForm{
					{ProfileID: 3, StatusType: db.StaffCardPassedTrial, StatusText: "trial passed"},
				},
			}},
		})
		if err != nil {
			t.Fatalf("UpdateNews failed: %v", err)
		}

		cards := news.Data.Staff.Cards
		if len(cards) != 1 {
			t.Fatalf("expected cards replaced, got %d", len(cards))
		}
		if cards[0].StatusType != db.StaffCardPassedTrial || cards[0].Profile.ID != 3 {
			t.Errorf("unexpected card: %+v", cards[0])
		}
	})

	t.Run("ProjectMembersReplaced", func(t *testing.T) {
		ctx, manager := withTx(t)

		news, err := manager.UpdateNews(ctx, alice, 5, NewsForm{
			DigestID: 2,
			Title:    "Mobile banking app",
			Type:     db.NewsTypeProject,
			Position: 2,
			Data: PayloadForm{Project: &ProjectPayloadForm{
				Content:   "The mobile banking app shipped its first release",
				Photo:     "banking.jpg",
				MemberIDs: []int{3},
			}},
		})
		if err != nil {
			t.Fatalf("UpdateNews failed: %v", err)
		}

		members := news.Data.Project.Members
		if len(members) != 1 || members[0].ID != 3 {
			t.Fatalf("expected members replaced with profile 3, got %+v", members)
		}
	})

	t.Run("MissingNews", func(t *testing.T) {
		ctx, manager := withTx(t)

		_, err := manager.UpdateNews(ctx, alice, 999, NewsForm{
			Title: "ghost",
			Type:  db.NewsTypeText,
			Data:  PayloadForm{Text: &TextPayload{Content: "x"}},
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteNews_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	if err := manager.DeleteNews(ctx, 1); err != nil {
		t.Fatalf("DeleteNews failed: %v", err)
	}

	if _, err := manager.NewsByID(ctx, alice, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := manager.DeleteNews(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestNewsList_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	news, err := manager.News(ctx, bob, nil, nil)
	if err != nil {
		t.Fatalf("News failed: %v", err)
	}

	if len(news) != 7 {
		t.Fatalf("expected 7 news, got %d", len(news))
	}
	// newest first
	if news[0].ID != 7 {
		t.Errorf("expected news 7 first, got %d", news[0].ID)
	}
	for _, n := range news {
		if n.ID == 2 && !n.Favorite {
			t.Error("expected news 2 favorite for bob")
		}
		if n.Data.IsZero() {
			t.Errorf("news %d has no payload", n.ID)
		}
	}
}
