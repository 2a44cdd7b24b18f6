package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/models"
	"github.com/burakmert236/gamehub-admin/internal/repository"
)

type UserService interface {
	PromoteToAdmin(ctx context.Context, userId, actingAdminId string) *apperrors.AppError
	DemoteToMember(ctx context.Context, userId, actingAdminId string) *apperrors.AppError
	AwardPoints(ctx context.Context, userId string, amount int, reason, grantingAdminId string) (int, *apperrors.AppError)
	SetActive(ctx context.Context, userId string, active bool, actingAdminId string) *apperrors.AppError
	List(ctx context.Context, searchTerm, roleFilter string) ([]models.User, *apperrors.AppError)
	ListGrants(ctx context.Context, userId string) ([]models.PointsGrant, *apperrors.AppError)
}

type userService struct {
	userRepo        repository.UserRepository
	grantRepo       repository.GrantRepository
	transactionRepo database.TransactionRepository
	eventPublisher  AuditPublisher
	logger          *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewUserService(
	userRepo repository.UserRepository,
	grantRepo repository.GrantRepository,
	transactionRepo database.TransactionRepository,
	eventPublisher AuditPublisher,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepo:        userRepo,
		grantRepo:       grantRepo,
		transactionRepo: transactionRepo,
		eventPublisher:  eventPublisher,
		logger:          logger,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// PromoteToAdmin sets the role. Whether the acting admin is allowed to reach
// this call at all is the upstream gateway's concern.
func (s *userService) PromoteToAdmin(ctx context.Context, userId, actingAdminId string) *apperrors.AppError {
	if err := s.userRepo.UpdateRole(ctx, userId, models.RoleAdmin); err != nil {
		return err
	}

	s.logger.Info("user promoted to admin", "user_id", userId, "admin_id", actingAdminId)
	s.eventPublisher.PublishUserRoleChanged(ctx, userId, string(models.RoleAdmin), actingAdminId)

	return nil
}

// DemoteToMember is symmetric with PromoteToAdmin. Nothing stops an admin
// from demoting themselves.
func (s *userService) DemoteToMember(ctx context.Context, userId, actingAdminId string) *apperrors.AppError {
	if err := s.userRepo.UpdateRole(ctx, userId, models.RoleMember); err != nil {
		return err
	}

	s.logger.Info("admin demoted to member", "user_id", userId, "admin_id", actingAdminId)
	s.eventPublisher.PublishUserRoleChanged(ctx, userId, string(models.RoleMember), actingAdminId)

	return nil
}

// AwardPoints appends a grant to the user's ledger and applies the signed
// amount to the stored balance. Both writes commit in one transaction, so a
// crash cannot leave a balance without its grant record.
func (s *userService) AwardPoints(ctx context.Context, userId string, amount int, reason, grantingAdminId string) (int, *apperrors.AppError) {
	user, appErr := s.userRepo.GetById(ctx, userId)
	if appErr != nil {
		return 0, appErr
	}

	grant := &models.PointsGrant{
		GrantId:   s.newID(),
		UserId:    userId,
		Amount:    amount,
		Reason:    reason,
		GrantedBy: grantingAdminId,
		CreatedAt: s.now(),
	}

	putGrant, appErr := s.grantRepo.PutTransaction(grant)
	if appErr != nil {
		return 0, appErr
	}
	addPoints := s.userRepo.AddPointsTransaction(userId, amount, grant.CreatedAt)

	tb := database.NewTransactionBuilder()
	if err := tb.AddPut(putGrant); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeTransactionError, "failed to build points transaction")
	}
	if err := tb.AddUpdate(addPoints); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeTransactionError, "failed to build points transaction")
	}

	if err := s.transactionRepo.Execute(ctx, tb); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeTransactionError, "failed to commit points grant")
	}

	newBalance := user.Points + amount

	s.logger.Info("points awarded",
		"user_id", userId,
		"amount", amount,
		"new_balance", newBalance,
		"admin_id", grantingAdminId,
	)
	s.eventPublisher.PublishPointsAwarded(ctx, userId, amount, reason, newBalance, grantingAdminId)

	return newBalance, nil
}

func (s *userService) SetActive(ctx context.Context, userId string, active bool, actingAdminId string) *apperrors.AppError {
	if err := s.userRepo.SetActive(ctx, userId, active); err != nil {
		return err
	}

	s.logger.Info("user status changed", "user_id", userId, "active", active, "admin_id", actingAdminId)
	s.eventPublisher.PublishUserStatusChanged(ctx, userId, active, actingAdminId)

	return nil
}

// List fetches every user and filters in memory: a case-insensitive
// substring match on display name or email, ANDed with an exact role match.
// A roleFilter of "all" (or empty) disables the role predicate.
func (s *userService) List(ctx context.Context, searchTerm, roleFilter string) ([]models.User, *apperrors.AppError) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(searchTerm)

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.DisplayName), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		if roleFilter != "" && roleFilter != "all" && string(u.Role) != roleFilter {
			continue
		}
		filtered = append(filtered, u)
	}

	return filtered, nil
}

func (s *userService) ListGrants(ctx context.Context, userId string) ([]models.PointsGrant, *apperrors.AppError) {
	if _, err := s.userRepo.GetById(ctx, userId); err != nil {
		return nil, err
	}

	return s.grantRepo.ListByUser(ctx, userId)
}
