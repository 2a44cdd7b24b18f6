package service

import (
	"context"
	"testing"
	"time"

	"github.com/burakmert236/gamehub-admin/internal/models"
)

func TestOverviewStats(t *testing.T) {
	users := newFakeUserRepo(
		memberUser("u1", 10),
		memberUser("u2", 20),
		memberUser("u3", 0),
	)
	users.users["u3"].IsActive = false

	tournaments := newFakeTournamentRepo()
	seedTournament := func(id string, game models.Game, status models.TournamentStatus, participants ...string) {
		tournaments.tournaments[id] = &models.Tournament{
			TournamentId: id,
			Game:         game,
			Status:       status,
			Participants: participants,
		}
		tournaments.order = append(tournaments.order, id)
	}
	seedTournament("t1", models.GameMarioKart, models.TournamentStatusUpcoming, "u1", "u2")
	seedTournament("t2", models.GameMarioKart, models.TournamentStatusCompleted, "u1", "u2", "u3", "u4")
	seedTournament("t3", models.GameSuperSmashBros, models.TournamentStatusUpcoming, "u1")

	announcements := newFakeAnnouncementRepo()
	seedAnnouncement := func(id string, readBy ...string) {
		announcements.announcements[id] = &models.Announcement{
			AnnouncementId: id,
			IsActive:       true,
			ReadBy:         readBy,
			CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		announcements.order = append(announcements.order, id)
	}
	seedAnnouncement("a1")
	seedAnnouncement("a2", "u1")
	seedAnnouncement("a3")

	svc := NewOverviewService(tournaments, announcements, users)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.TotalUsers != 3 {
		t.Errorf("expected 3 total users, got %d", stats.TotalUsers)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("expected 2 active users, got %d", stats.ActiveUsers)
	}
	if stats.TotalTournaments != 3 {
		t.Errorf("expected 3 total tournaments, got %d", stats.TotalTournaments)
	}
	if stats.UpcomingTournaments != 2 {
		t.Errorf("expected 2 upcoming tournaments, got %d", stats.UpcomingTournaments)
	}
	if stats.TotalAnnouncements != 3 {
		t.Errorf("expected 3 total announcements, got %d", stats.TotalAnnouncements)
	}
	// Unread means nobody at all has read it, regardless of who is asking.
	if stats.UnreadAnnouncements != 2 {
		t.Errorf("expected 2 unread announcements, got %d", stats.UnreadAnnouncements)
	}

	if got := stats.AverageParticipants[models.GameMarioKart]; got != 3 {
		t.Errorf("expected mario_kart average 3, got %v", got)
	}
	if got := stats.AverageParticipants[models.GameSuperSmashBros]; got != 1 {
		t.Errorf("expected super_smash_bros average 1, got %v", got)
	}
	// No tournaments for a game averages to 0 rather than dividing by zero.
	if got := stats.AverageParticipants[models.GameGeneral]; got != 0 {
		t.Errorf("expected general average 0, got %v", got)
	}
}

func TestOverviewStatsEmptyStore(t *testing.T) {
	svc := NewOverviewService(newFakeTournamentRepo(), newFakeAnnouncementRepo(), newFakeUserRepo())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.TotalUsers != 0 || stats.ActiveUsers != 0 ||
		stats.TotalTournaments != 0 || stats.UpcomingTournaments != 0 ||
		stats.TotalAnnouncements != 0 || stats.UnreadAnnouncements != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
	for _, game := range models.Games {
		if avg, ok := stats.AverageParticipants[game]; !ok || avg != 0 {
			t.Errorf("expected %s average 0, got %v (present=%v)", game, avg, ok)
		}
	}
}

func TestOverviewStatsRecomputedEachCall(t *testing.T) {
	users := newFakeUserRepo(memberUser("u1", 0))
	tournaments := newFakeTournamentRepo()
	announcements := newFakeAnnouncementRepo()

	svc := NewOverviewService(tournaments, announcements, users)

	before, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if before.TotalAnnouncements != 0 {
		t.Fatalf("expected 0 announcements, got %d", before.TotalAnnouncements)
	}

	announcements.announcements["a1"] = &models.Announcement{AnnouncementId: "a1", IsActive: true, ReadBy: []string{}}
	announcements.order = append(announcements.order, "a1")

	after, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if after.TotalAnnouncements != 1 || after.UnreadAnnouncements != 1 {
		t.Errorf("stats not recomputed: %+v", after)
	}
}
