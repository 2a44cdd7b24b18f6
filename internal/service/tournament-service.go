package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/events"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/models"
	"github.com/burakmert236/gamehub-admin/internal/repository"
)

// AuditPublisher is the slice of the event publisher the services use.
type AuditPublisher interface {
	PublishEntityEvent(ctx context.Context, subject, entityId, adminId string)
	PublishUserRoleChanged(ctx context.Context, userId, role, adminId string)
	PublishUserStatusChanged(ctx context.Context, userId string, active bool, adminId string)
	PublishPointsAwarded(ctx context.Context, userId string, amount int, reason string, newBalance int, adminId string)
}

// TournamentInput carries the creation form. Date fields arrive as strings
// and are re-parsed here; everything else is stored as supplied, with no
// business validation.
type TournamentInput struct {
	Name                 string                  `json:"name"`
	Description          string                  `json:"description"`
	Game                 models.Game             `json:"game"`
	Date                 string                  `json:"date"`
	RegistrationDeadline string                  `json:"registrationDeadline"`
	MaxParticipants      int                     `json:"maxParticipants"`
	PointsAwarded        models.PointsSchedule   `json:"pointsAwarded"`
	Rules                []string                `json:"rules"`
	Format               models.TournamentFormat `json:"format"`
	EntryFee             float64                 `json:"entryFee"`
	PrizePool            float64                 `json:"prizePool"`
}

// TournamentUpdate carries a partial edit. Nil fields are left unchanged.
type TournamentUpdate struct {
	Name                 *string                  `json:"name"`
	Description          *string                  `json:"description"`
	Game                 *models.Game             `json:"game"`
	Date                 *string                  `json:"date"`
	RegistrationDeadline *string                  `json:"registrationDeadline"`
	MaxParticipants      *int                     `json:"maxParticipants"`
	PointsAwarded        *models.PointsSchedule   `json:"pointsAwarded"`
	Rules                *[]string                `json:"rules"`
	Format               *models.TournamentFormat `json:"format"`
	EntryFee             *float64                 `json:"entryFee"`
	PrizePool            *float64                 `json:"prizePool"`
	Status               *models.TournamentStatus `json:"status"`
}

type TournamentService interface {
	Create(ctx context.Context, input TournamentInput, adminId string) (*models.Tournament, *apperrors.AppError)
	Update(ctx context.Context, tournamentId string, update TournamentUpdate, adminId string) (*models.Tournament, *apperrors.AppError)
	Delete(ctx context.Context, tournamentId, adminId string) *apperrors.AppError
	List(ctx context.Context) ([]models.Tournament, *apperrors.AppError)
}

type tournamentService struct {
	tournamentRepo repository.TournamentRepository
	eventPublisher AuditPublisher
	logger         *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewTournamentService(
	tournamentRepo repository.TournamentRepository,
	eventPublisher AuditPublisher,
	logger *logger.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

func (s *tournamentService) Create(ctx context.Context, input TournamentInput, adminId string) (*models.Tournament, *apperrors.AppError) {
	date, err := parseFormTime(input.Date)
	if err != nil {
		return nil, err
	}
	deadline, err := parseFormTime(input.RegistrationDeadline)
	if err != nil {
		return nil, err
	}

	rules := input.Rules
	if len(rules) == 0 {
		// The edit form always renders at least one rule row.
		rules = []string{""}
	}

	now := s.now()
	tournament := &models.Tournament{
		TournamentId:         s.newID(),
		Name:                 input.Name,
		Description:          input.Description,
		Game:                 input.Game,
		Date:                 date,
		RegistrationDeadline: deadline,
		MaxParticipants:      input.MaxParticipants,
		Participants:         []string{},
		Status:               models.TournamentStatusUpcoming,
		PointsAwarded:        input.PointsAwarded,
		Rules:                rules,
		Format:               input.Format,
		EntryFee:             input.EntryFee,
		PrizePool:            input.PrizePool,
		Brackets:             []string{},
		CreatedAt:            now,
		CreatedBy:            adminId,
		UpdatedAt:            now,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Info("tournament created", "tournament_id", tournament.TournamentId, "admin_id", adminId)
	s.eventPublisher.PublishEntityEvent(ctx, events.TournamentCreated, tournament.TournamentId, adminId)

	return tournament, nil
}

func (s *tournamentService) Update(ctx context.Context, tournamentId string, update TournamentUpdate, adminId string) (*models.Tournament, *apperrors.AppError) {
	tournament, appErr := s.tournamentRepo.GetById(ctx, tournamentId)
	if appErr != nil {
		return nil, appErr
	}

	if update.Name != nil {
		tournament.Name = *update.Name
	}
	if update.Description != nil {
		tournament.Description = *update.Description
	}
	if update.Game != nil {
		tournament.Game = *update.Game
	}
	if update.Date != nil {
		date, err := parseFormTime(*update.Date)
		if err != nil {
			return nil, err
		}
		tournament.Date = date
	}
	if update.RegistrationDeadline != nil {
		deadline, err := parseFormTime(*update.RegistrationDeadline)
		if err != nil {
			return nil, err
		}
		tournament.RegistrationDeadline = deadline
	}
	if update.MaxParticipants != nil {
		tournament.MaxParticipants = *update.MaxParticipants
	}
	if update.PointsAwarded != nil {
		tournament.PointsAwarded = *update.PointsAwarded
	}
	if update.Rules != nil {
		tournament.Rules = *update.Rules
	}
	if update.Format != nil {
		tournament.Format = *update.Format
	}
	if update.EntryFee != nil {
		tournament.EntryFee = *update.EntryFee
	}
	if update.PrizePool != nil {
		tournament.PrizePool = *update.PrizePool
	}
	if update.Status != nil {
		// Status never auto-transitions from dates; an admin edit is the
		// only path between upcoming, ongoing and completed.
		tournament.Status = *update.Status
	}
	tournament.UpdatedAt = s.now()

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Info("tournament updated", "tournament_id", tournamentId, "admin_id", adminId)
	s.eventPublisher.PublishEntityEvent(ctx, events.TournamentUpdated, tournamentId, adminId)

	return tournament, nil
}

func (s *tournamentService) Delete(ctx context.Context, tournamentId, adminId string) *apperrors.AppError {
	if err := s.tournamentRepo.Delete(ctx, tournamentId); err != nil {
		return err
	}

	s.logger.Info("tournament deleted", "tournament_id", tournamentId, "admin_id", adminId)
	s.eventPublisher.PublishEntityEvent(ctx, events.TournamentDeleted, tournamentId, adminId)

	return nil
}

func (s *tournamentService) List(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	return s.tournamentRepo.List(ctx)
}

// parseFormTime accepts the representations the dashboard forms submit:
// RFC 3339, the datetime-local format, or a bare date. An empty string maps
// to the zero time.
func parseFormTime(value string) (time.Time, *apperrors.AppError) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, apperrors.New(apperrors.CodeInvalidInput, "invalid date format: "+value)
}
