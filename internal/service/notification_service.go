package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuildForSDG/Team-083-Backend/internal/events"
)

// NotificationService reacts to domain events. Delivery is a stub that logs
// what would be sent; the platform has no mail provider wired yet.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the lifecycle events worth notifying on.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventAccountCreated,
		events.EventAccountStatusChanged,
		events.EventAccountDeleted,
		events.EventProfileVerified,
		events.EventProfileUnverified,
		events.EventFundRequestCreated,
	} {
		s.dispatcher.Subscribe(eventType, s.handle)
	}
}

func (s *NotificationService) handle(_ context.Context, event events.Event) error {
	s.logger.Info("notification",
		zap.String("event", string(event.Type)),
		zap.String("actor_id", event.Actor.ID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload),
	)
	return nil
}
