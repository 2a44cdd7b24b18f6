package events

import (
	"context"
	"fmt"
	"time"

	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/natsjetstream"
)

// EventPublisher emits admin audit events. Publishing is best effort: the
// store write has already succeeded by the time an event goes out, so a
// publish failure is logged and never surfaced to the caller.
type EventPublisher struct {
	publisher *natsjetstream.Publisher
	logger    *logger.Logger
}

func NewEventPublisher(client *natsjetstream.Client, logger *logger.Logger) *EventPublisher {
	return &EventPublisher{
		publisher: natsjetstream.NewPublisher(client),
		logger:    logger,
	}
}

func (p *EventPublisher) PublishEntityEvent(ctx context.Context, subject, entityId, adminId string) {
	event := &EntityEvent{
		EntityId:  entityId,
		AdminId:   adminId,
		TimeStamp: time.Now().Unix(),
	}

	if err := p.publisher.PublishJSON(ctx, subject, event); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to publish %s event: %v", subject, err))
		return
	}

	p.logger.Info(fmt.Sprintf("Published %s event for entity: %s", subject, entityId))
}

func (p *EventPublisher) PublishUserRoleChanged(ctx context.Context, userId, role, adminId string) {
	event := &UserRoleChangedEvent{
		UserId:    userId,
		Role:      role,
		AdminId:   adminId,
		TimeStamp: time.Now().Unix(),
	}

	if err := p.publisher.PublishJSON(ctx, UserRoleChanged, event); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to publish user role changed event: %v", err))
		return
	}

	p.logger.Info(fmt.Sprintf("Published user role changed event for user: %s", userId))
}

func (p *EventPublisher) PublishUserStatusChanged(ctx context.Context, userId string, active bool, adminId string) {
	event := &UserStatusChangedEvent{
		UserId:    userId,
		Active:    active,
		AdminId:   adminId,
		TimeStamp: time.Now().Unix(),
	}

	if err := p.publisher.PublishJSON(ctx, UserStatusChanged, event); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to publish user status changed event: %v", err))
		return
	}

	p.logger.Info(fmt.Sprintf("Published user status changed event for user: %s", userId))
}

func (p *EventPublisher) PublishPointsAwarded(ctx context.Context, userId string, amount int, reason string, newBalance int, adminId string) {
	event := &PointsAwardedEvent{
		UserId:     userId,
		Amount:     amount,
		Reason:     reason,
		NewBalance: newBalance,
		AdminId:    adminId,
		TimeStamp:  time.Now().Unix(),
	}

	if err := p.publisher.PublishJSON(ctx, PointsAwarded, event); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to publish points awarded event: %v", err))
		return
	}

	p.logger.Info(fmt.Sprintf("Published points awarded event for user: %s", userId))
}
