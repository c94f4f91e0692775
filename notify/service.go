package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type NotificationRepository interface {
	InsertNotification(ctx context.Context, n Notification) (Notification, error)
	GetNotificationsPerUser(ctx context.Context, userID string) ([]Notification, error)
	SetNotificationRead(ctx context.Context, userID, id string) error
	SetAllNotificationsRead(ctx context.Context, userID string) error
}

// Notifier delivers a notification to one user: a persisted row plus a push
// to any live websocket connections.
type Notifier interface {
	Notify(ctx context.Context, userID, typ, title, message string, data map[string]any) error
}

type Service struct {
	repo NotificationRepository
	hub  *Hub
}

func NewService(repo NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) Notify(ctx context.Context, userID, typ, title, message string, data map[string]any) error {
	inserted, err := s.repo.InsertNotification(ctx, Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    data,
	})

	if err != nil {
		return err
	}

	if payload, err := json.Marshal(inserted); err == nil {
		s.hub.Push(userID, payload)
	}

	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.GetNotificationsPerUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.SetNotificationRead(ctx, userID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.SetAllNotificationsRead(ctx, userID)
}
