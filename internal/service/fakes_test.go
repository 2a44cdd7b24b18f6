package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json", ServiceName: "test"})
}

// sequenceID returns an id generator yielding prefix-1, prefix-2, ...
func sequenceID(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type fakePublisher struct {
	subjects []string
}

func (f *fakePublisher) PublishEntityEvent(ctx context.Context, subject, entityId, adminId string) {
	f.subjects = append(f.subjects, subject)
}

func (f *fakePublisher) PublishUserRoleChanged(ctx context.Context, userId, role, adminId string) {
	f.subjects = append(f.subjects, "events.admin.userRoleChanged")
}

func (f *fakePublisher) PublishUserStatusChanged(ctx context.Context, userId string, active bool, adminId string) {
	f.subjects = append(f.subjects, "events.admin.userStatusChanged")
}

func (f *fakePublisher) PublishPointsAwarded(ctx context.Context, userId string, amount int, reason string, newBalance int, adminId string) {
	f.subjects = append(f.subjects, "events.admin.pointsAwarded")
}

type fakeTournamentRepo struct {
	tournaments map[string]*models.Tournament
	order       []string
	failWith    *apperrors.AppError
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{tournaments: make(map[string]*models.Tournament)}
}

func (f *fakeTournamentRepo) Create(ctx context.Context, tournament *models.Tournament) *apperrors.AppError {
	if f.failWith != nil {
		return f.failWith
	}
	copied := *tournament
	f.tournaments[tournament.TournamentId] = &copied
	f.order = append(f.order, tournament.TournamentId)
	return nil
}

func (f *fakeTournamentRepo) GetById(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError) {
	t, ok := f.tournaments[tournamentId]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "tournament not found")
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTournamentRepo) Update(ctx context.Context, tournament *models.Tournament) *apperrors.AppError {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.tournaments[tournament.TournamentId]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "tournament not found")
	}
	copied := *tournament
	f.tournaments[tournament.TournamentId] = &copied
	return nil
}

func (f *fakeTournamentRepo) Delete(ctx context.Context, tournamentId string) *apperrors.AppError {
	if _, ok := f.tournaments[tournamentId]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "tournament not found")
	}
	delete(f.tournaments, tournamentId)
	for i, id := range f.order {
		if id == tournamentId {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTournamentRepo) List(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	out := make([]models.Tournament, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.tournaments[id])
	}
	return out, nil
}

type fakeAnnouncementRepo struct {
	announcements map[string]*models.Announcement
	order         []string
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{announcements: make(map[string]*models.Announcement)}
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) *apperrors.AppError {
	copied := *announcement
	f.announcements[announcement.AnnouncementId] = &copied
	f.order = append(f.order, announcement.AnnouncementId)
	return nil
}

func (f *fakeAnnouncementRepo) GetById(ctx context.Context, announcementId string) (*models.Announcement, *apperrors.AppError) {
	a, ok := f.announcements[announcementId]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "announcement not found")
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAnnouncementRepo) Update(ctx context.Context, announcement *models.Announcement) *apperrors.AppError {
	if _, ok := f.announcements[announcement.AnnouncementId]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "announcement not found")
	}
	copied := *announcement
	f.announcements[announcement.AnnouncementId] = &copied
	return nil
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, announcementId string) *apperrors.AppError {
	if _, ok := f.announcements[announcementId]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "announcement not found")
	}
	delete(f.announcements, announcementId)
	for i, id := range f.order {
		if id == announcementId {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAnnouncementRepo) List(ctx context.Context) ([]models.Announcement, *apperrors.AppError) {
	out := make([]models.Announcement, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.announcements[id])
	}
	return out, nil
}

type pointsAdd struct {
	userId string
	amount int
}

type fakeUserRepo struct {
	users       map[string]*models.User
	order       []string
	pendingAdds []pointsAdd
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		copied := *u
		f.users[u.UserId] = &copied
		f.order = append(f.order, u.UserId)
	}
	return f
}

func (f *fakeUserRepo) GetById(ctx context.Context, userId string) (*models.User, *apperrors.AppError) {
	u, ok := f.users[userId]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, *apperrors.AppError) {
	out := make([]models.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.users[id])
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userId string, role models.UserRole) *apperrors.AppError {
	u, ok := f.users[userId]
	if !ok {
		return apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, userId string, active bool) *apperrors.AppError {
	u, ok := f.users[userId]
	if !ok {
		return apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	u.IsActive = active
	return nil
}

func (f *fakeUserRepo) AddPointsTransaction(userId string, amount int, updatedAt time.Time) types.Update {
	f.pendingAdds = append(f.pendingAdds, pointsAdd{userId: userId, amount: amount})
	return types.Update{}
}

type fakeGrantRepo struct {
	grants  []models.PointsGrant
	pending []models.PointsGrant
}

func (f *fakeGrantRepo) PutTransaction(grant *models.PointsGrant) (types.Put, *apperrors.AppError) {
	f.pending = append(f.pending, *grant)
	return types.Put{}, nil
}

func (f *fakeGrantRepo) ListByUser(ctx context.Context, userId string) ([]models.PointsGrant, *apperrors.AppError) {
	out := make([]models.PointsGrant, 0)
	for _, g := range f.grants {
		if g.UserId == userId {
			out = append(out, g)
		}
	}
	return out, nil
}

// fakeTransactionRepo applies the pending writes staged on the user and
// grant fakes only when the transaction commits, mirroring the all-or-nothing
// behavior of TransactWriteItems.
type fakeTransactionRepo struct {
	users    *fakeUserRepo
	grants   *fakeGrantRepo
	failWith error
	executed int
	lastSize int
}

func (f *fakeTransactionRepo) Execute(ctx context.Context, tb *database.TransactionBuilder) error {
	f.executed++
	f.lastSize = tb.Count()

	if f.failWith != nil {
		f.users.pendingAdds = nil
		f.grants.pending = nil
		return f.failWith
	}

	for _, add := range f.users.pendingAdds {
		if u, ok := f.users.users[add.userId]; ok {
			u.Points += add.amount
		}
	}
	f.users.pendingAdds = nil

	f.grants.grants = append(f.grants.grants, f.grants.pending...)
	f.grants.pending = nil

	return nil
}
