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

type AnnouncementInput struct {
	Title          string                      `json:"title"`
	Content        string                      `json:"content"`
	Priority       models.AnnouncementPriority `json:"priority"`
	TargetAudience models.TargetAudience       `json:"targetAudience"`
	ExpiresAt      string                      `json:"expiresAt"`
}

// AnnouncementUpdate carries a partial edit. A nil ExpiresAt leaves the
// expiry untouched; an explicit empty string clears it.
type AnnouncementUpdate struct {
	Title          *string                      `json:"title"`
	Content        *string                      `json:"content"`
	Priority       *models.AnnouncementPriority `json:"priority"`
	TargetAudience *models.TargetAudience       `json:"targetAudience"`
	ExpiresAt      *string                      `json:"expiresAt"`
	IsActive       *bool                        `json:"isActive"`
}

type AnnouncementService interface {
	Create(ctx context.Context, input AnnouncementInput, authorId, authorName string) (*models.Announcement, *apperrors.AppError)
	Update(ctx context.Context, announcementId string, update AnnouncementUpdate, adminId string) (*models.Announcement, *apperrors.AppError)
	Delete(ctx context.Context, announcementId, adminId string) *apperrors.AppError
	List(ctx context.Context, activeOnly bool) ([]models.Announcement, *apperrors.AppError)
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	eventPublisher   AuditPublisher
	logger           *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewAnnouncementService(
	announcementRepo repository.AnnouncementRepository,
	eventPublisher AuditPublisher,
	logger *logger.Logger,
) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		eventPublisher:   eventPublisher,
		logger:           logger,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

func (s *announcementService) Create(ctx context.Context, input AnnouncementInput, authorId, authorName string) (*models.Announcement, *apperrors.AppError) {
	var expiresAt *time.Time
	if input.ExpiresAt != "" {
		t, err := parseFormTime(input.ExpiresAt)
		if err != nil {
			return nil, err
		}
		expiresAt = &t
	}

	now := s.now()
	announcement := &models.Announcement{
		AnnouncementId: s.newID(),
		Title:          input.Title,
		Content:        input.Content,
		Priority:       input.Priority,
		TargetAudience: input.TargetAudience,
		AuthorId:       authorId,
		AuthorName:     authorName,
		IsActive:       true,
		ReadBy:         []string{},
		ExpiresAt:      expiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info("announcement created", "announcement_id", announcement.AnnouncementId, "author_id", authorId)
	s.eventPublisher.PublishEntityEvent(ctx, events.AnnouncementCreated, announcement.AnnouncementId, authorId)

	return announcement, nil
}

func (s *announcementService) Update(ctx context.Context, announcementId string, update AnnouncementUpdate, adminId string) (*models.Announcement, *apperrors.AppError) {
	announcement, appErr := s.announcementRepo.GetById(ctx, announcementId)
	if appErr != nil {
		return nil, appErr
	}

	if update.Title != nil {
		announcement.Title = *update.Title
	}
	if update.Content != nil {
		announcement.Content = *update.Content
	}
	if update.Priority != nil {
		announcement.Priority = *update.Priority
	}
	if update.TargetAudience != nil {
		announcement.TargetAudience = *update.TargetAudience
	}
	if update.ExpiresAt != nil {
		if *update.ExpiresAt == "" {
			announcement.ExpiresAt = nil
		} else {
			t, err := parseFormTime(*update.ExpiresAt)
			if err != nil {
				return nil, err
			}
			announcement.ExpiresAt = &t
		}
	}
	if update.IsActive != nil {
		announcement.IsActive = *update.IsActive
	}
	announcement.UpdatedAt = s.now()

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info("announcement updated", "announcement_id", announcementId, "admin_id", adminId)
	s.eventPublisher.PublishEntityEvent(ctx, events.AnnouncementUpdated, announcementId, adminId)

	return announcement, nil
}

func (s *announcementService) Delete(ctx context.Context, announcementId, adminId string) *apperrors.AppError {
	if err := s.announcementRepo.Delete(ctx, announcementId); err != nil {
		return err
	}

	s.logger.Info("announcement deleted", "announcement_id", announcementId, "admin_id", adminId)
	s.eventPublisher.PublishEntityEvent(ctx, events.AnnouncementDeleted, announcementId, adminId)

	return nil
}

// List returns every announcement, newest first. With activeOnly set it
// drops records whose active flag is off. Expired announcements are kept
// either way: expiry exclusion belongs to the member-facing reader, and the
// admin screens display the full set.
func (s *announcementService) List(ctx context.Context, activeOnly bool) ([]models.Announcement, *apperrors.AppError) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if !activeOnly {
		return announcements, nil
	}

	filtered := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsActive {
			filtered = append(filtered, a)
		}
	}

	return filtered, nil
}
