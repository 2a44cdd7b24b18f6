package service

import (
	"context"
	"testing"
	"time"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

func newAnnouncementServiceForTest(repo *fakeAnnouncementRepo, pub *fakePublisher, at time.Time) *announcementService {
	return &announcementService{
		announcementRepo: repo,
		eventPublisher:   pub,
		logger:           testLogger(),
		now:              func() time.Time { return at },
		newID:            sequenceID("announcement"),
	}
}

func TestCreateAnnouncementDefaults(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	at := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	svc := newAnnouncementServiceForTest(repo, &fakePublisher{}, at)

	created, err := svc.Create(context.Background(), AnnouncementInput{
		Title:          "Maintenance window",
		Content:        "Servers down Saturday",
		Priority:       models.PriorityUrgent,
		TargetAudience: models.AudienceAll,
	}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if !created.IsActive {
		t.Error("expected new announcement to be active")
	}
	if created.ReadBy == nil || len(created.ReadBy) != 0 {
		t.Errorf("expected empty readBy slice, got %#v", created.ReadBy)
	}
	if created.ExpiresAt != nil {
		t.Errorf("expected no expiry, got %v", *created.ExpiresAt)
	}
	if created.AuthorId != "admin-1" || created.AuthorName != "Sam" {
		t.Errorf("author fields not captured: id=%q name=%q", created.AuthorId, created.AuthorName)
	}
	if !created.CreatedAt.Equal(at) {
		t.Errorf("expected createdAt %v, got %v", at, created.CreatedAt)
	}
	if _, ok := repo.announcements[created.AnnouncementId]; !ok {
		t.Error("announcement was not persisted")
	}
}

func TestCreateAnnouncementParsesExpiry(t *testing.T) {
	svc := newAnnouncementServiceForTest(newFakeAnnouncementRepo(), &fakePublisher{}, time.Now())

	created, err := svc.Create(context.Background(), AnnouncementInput{
		Title:     "Signups close",
		ExpiresAt: "2026-06-15T23:59",
	}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	want := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	if created.ExpiresAt == nil || !created.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, created.ExpiresAt)
	}

	if _, err := svc.Create(context.Background(), AnnouncementInput{Title: "Bad", ExpiresAt: "soon"}, "admin-1", "Sam"); err == nil {
		t.Fatal("expected error for unparseable expiry")
	} else if err.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, err.Code)
	}
}

func TestUpdateAnnouncementExpirySemantics(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := newAnnouncementServiceForTest(repo, &fakePublisher{}, time.Now())

	seeded, err := svc.Create(context.Background(), AnnouncementInput{
		Title:     "Tournament signups",
		ExpiresAt: "2026-07-01T12:00",
	}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("seed Create returned error: %v", err)
	}

	// Nil pointer leaves the expiry untouched.
	title := "Tournament signups (extended)"
	updated, err := svc.Update(context.Background(), seeded.AnnouncementId, AnnouncementUpdate{Title: &title}, "admin-1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ExpiresAt == nil || !updated.ExpiresAt.Equal(*seeded.ExpiresAt) {
		t.Errorf("expiry changed on unrelated edit: %v", updated.ExpiresAt)
	}

	// Explicit empty string clears it.
	cleared := ""
	updated, err = svc.Update(context.Background(), seeded.AnnouncementId, AnnouncementUpdate{ExpiresAt: &cleared}, "admin-1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ExpiresAt != nil {
		t.Errorf("expected cleared expiry, got %v", *updated.ExpiresAt)
	}

	// And a new value sets it again.
	later := "2026-08-01"
	updated, err = svc.Update(context.Background(), seeded.AnnouncementId, AnnouncementUpdate{ExpiresAt: &later}, "admin-1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if updated.ExpiresAt == nil || !updated.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, updated.ExpiresAt)
	}
}

func TestUpdateAnnouncementMergesPartial(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := newAnnouncementServiceForTest(repo, &fakePublisher{}, time.Now())

	seeded, err := svc.Create(context.Background(), AnnouncementInput{
		Title:          "Rules update",
		Content:        "New bracket seeding",
		Priority:       models.PriorityImportant,
		TargetAudience: models.AudienceMembers,
	}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("seed Create returned error: %v", err)
	}

	inactive := false
	updated, err := svc.Update(context.Background(), seeded.AnnouncementId, AnnouncementUpdate{IsActive: &inactive}, "admin-2")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.IsActive {
		t.Error("expected announcement deactivated")
	}
	if updated.Title != "Rules update" || updated.Content != "New bracket seeding" {
		t.Errorf("untouched fields changed: title=%q content=%q", updated.Title, updated.Content)
	}
	if updated.Priority != models.PriorityImportant || updated.TargetAudience != models.AudienceMembers {
		t.Errorf("untouched fields changed: priority=%q audience=%q", updated.Priority, updated.TargetAudience)
	}
	if updated.AuthorId != "admin-1" {
		t.Errorf("author changed on edit: %q", updated.AuthorId)
	}
}

func TestListAnnouncementsActiveOnly(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := newAnnouncementServiceForTest(repo, &fakePublisher{}, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	active, err := svc.Create(context.Background(), AnnouncementInput{Title: "Active"}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	// Expired but still active: stays in every listing.
	expired, err := svc.Create(context.Background(), AnnouncementInput{Title: "Expired", ExpiresAt: "2026-01-01"}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	deactivated, err := svc.Create(context.Background(), AnnouncementInput{Title: "Hidden"}, "admin-1", "Sam")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	inactive := false
	if _, err := svc.Update(context.Background(), deactivated.AnnouncementId, AnnouncementUpdate{IsActive: &inactive}, "admin-1"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	all, listErr := svc.List(context.Background(), false)
	if listErr != nil {
		t.Fatalf("List returned error: %v", listErr)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 announcements unfiltered, got %d", len(all))
	}

	onlyActive, listErr := svc.List(context.Background(), true)
	if listErr != nil {
		t.Fatalf("List returned error: %v", listErr)
	}
	if len(onlyActive) != 2 {
		t.Fatalf("expected 2 active announcements, got %d", len(onlyActive))
	}
	ids := map[string]bool{}
	for _, a := range onlyActive {
		ids[a.AnnouncementId] = true
	}
	if !ids[active.AnnouncementId] || !ids[expired.AnnouncementId] {
		t.Errorf("active filter dropped the wrong records: %v", ids)
	}
}

func TestDeleteAnnouncementNotFound(t *testing.T) {
	svc := newAnnouncementServiceForTest(newFakeAnnouncementRepo(), &fakePublisher{}, time.Now())

	err := svc.Delete(context.Background(), "missing", "admin-1")
	if err == nil {
		t.Fatal("expected error for missing announcement")
	}
	if err.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %s, got %s", apperrors.CodeNotFound, err.Code)
	}
}
