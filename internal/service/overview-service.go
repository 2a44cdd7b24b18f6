package service

import (
	"context"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/models"
	"github.com/burakmert236/gamehub-admin/internal/repository"
)

// OverviewStats is the dashboard's aggregate card data, recomputed from the
// full collections on every request. Nothing here is cached or maintained
// incrementally.
type OverviewStats struct {
	TotalUsers          int `json:"totalUsers"`
	ActiveUsers         int `json:"activeUsers"`
	TotalTournaments    int `json:"totalTournaments"`
	UpcomingTournaments int `json:"upcomingTournaments"`
	TotalAnnouncements  int `json:"totalAnnouncements"`
	// UnreadAnnouncements counts announcements nobody has read yet. The
	// definition is viewer-independent on purpose: it matches what the
	// dashboard has always shown.
	UnreadAnnouncements int `json:"unreadAnnouncements"`

	AverageParticipants map[models.Game]float64 `json:"averageParticipants"`
}

type OverviewService interface {
	Stats(ctx context.Context) (*OverviewStats, *apperrors.AppError)
}

type overviewService struct {
	tournamentRepo   repository.TournamentRepository
	announcementRepo repository.AnnouncementRepository
	userRepo         repository.UserRepository
}

func NewOverviewService(
	tournamentRepo repository.TournamentRepository,
	announcementRepo repository.AnnouncementRepository,
	userRepo repository.UserRepository,
) OverviewService {
	return &overviewService{
		tournamentRepo:   tournamentRepo,
		announcementRepo: announcementRepo,
		userRepo:         userRepo,
	}
}

func (s *overviewService) Stats(ctx context.Context) (*OverviewStats, *apperrors.AppError) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &OverviewStats{
		TotalUsers:          len(users),
		TotalTournaments:    len(tournaments),
		TotalAnnouncements:  len(announcements),
		AverageParticipants: make(map[models.Game]float64, len(models.Games)),
	}

	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
	}

	for _, t := range tournaments {
		if t.Status == models.TournamentStatusUpcoming {
			stats.UpcomingTournaments++
		}
	}

	for _, a := range announcements {
		if len(a.ReadBy) == 0 {
			stats.UnreadAnnouncements++
		}
	}

	for _, game := range models.Games {
		count := 0
		participants := 0
		for _, t := range tournaments {
			if t.Game == game {
				count++
				participants += t.ParticipantCount()
			}
		}
		// Divisor floored at 1: a game with no tournaments averages 0
		// instead of dividing by zero.
		if count < 1 {
			count = 1
		}
		stats.AverageParticipants[game] = float64(participants) / float64(count)
	}

	return stats, nil
}
