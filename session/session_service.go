package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=session_service.go -destination=mocks/mock_session_service.go -package=mocks

type SessionRepository interface {
	InsertSession(ctx context.Context, s Session) (Session, error)
	GetSessionByID(ctx context.Context, id string) (Session, error)
	GetSessionByBookingID(ctx context.Context, bookingID string) (Session, error)
	GetSessionsPerUser(ctx context.Context, userID string) ([]Session, error)
	AppendFile(ctx context.Context, id, fileURL string) error
	SetDelivered(ctx context.Context, id string, deliveredAt time.Time) error
}

type Service struct {
	repo SessionRepository
}

func NewService(repo SessionRepository) *Service {
	return &Service{repo: repo}
}

// CreateForBooking is the side effect of completing a booking. It is
// idempotent: when a session already exists for the booking, the existing
// one is returned and nothing new is created.
func (s *Service) CreateForBooking(ctx context.Context, bookingID, userID string) (Session, error) {
	existing, err := s.repo.GetSessionByBookingID(ctx, bookingID)

	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrSessionNotFound) {
		return Session{}, err
	}

	return s.repo.InsertSession(ctx, Session{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		UserID:    userID,
		Status:    StatusDraft,
		Files:     []string{},
	})
}

func (s *Service) FindSessionByID(ctx context.Context, id string) (Session, error) {
	return s.repo.GetSessionByID(ctx, id)
}

func (s *Service) FindSessionsPerUser(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.GetSessionsPerUser(ctx, userID)
}

func (s *Service) AddFile(ctx context.Context, id, fileURL string) error {
	return s.repo.AppendFile(ctx, id, fileURL)
}

func (s *Service) MarkDelivered(ctx context.Context, id string) error {
	existing, err := s.repo.GetSessionByID(ctx, id)

	if err != nil {
		return err
	}

	if existing.Status == StatusDelivered {
		return ErrAlreadyDelivered
	}

	return s.repo.SetDelivered(ctx, id, time.Now())
}
