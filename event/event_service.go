package event

import (
	"context"
	"time"

	"github.com/booth33/studio-backend/notify"
	"github.com/booth33/studio-backend/schedule"
	"github.com/google/uuid"
)

//go:generate mockgen -source=event_service.go -destination=mocks/mock_event_service.go -package=mocks

type EventRepository interface {
	InsertEvent(ctx context.Context, e Event) (Event, error)
	GetEventByID(ctx context.Context, id string) (Event, error)
	GetEvents(ctx context.Context) ([]Event, error)
	GetEventsForDate(ctx context.Context, date time.Time) ([]Event, error)
	AddRSVP(ctx context.Context, id, userID string) error
	RemoveRSVP(ctx context.Context, id, userID string) error
	DeleteEvent(ctx context.Context, id string) error
}

type Service struct {
	repo      EventRepository
	publisher notify.Publisher
}

func NewService(repo EventRepository, publisher notify.Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) CreateEvent(ctx context.Context, e Event) (Event, error) {
	if !e.Type.Valid() {
		return Event{}, ErrInvalidEventType
	}

	slot, err := schedule.ParseSlot(e.TimeSlot)

	if err != nil {
		return Event{}, err
	}

	if e.Duration <= 0 || e.MaxAttendees <= 0 || e.Price < 0 {
		return Event{}, ErrInvalidEventTimes
	}

	if schedule.Truncated(slot, e.Duration) {
		return Event{}, ErrInvalidEventTimes
	}

	e.ID = uuid.NewString()
	e.Date = schedule.Day(e.Date)
	e.RSVPs = []string{}

	inserted, err := s.repo.InsertEvent(ctx, e)

	if err != nil {
		return Event{}, err
	}

	if inserted.AutoPostToFeed {
		s.publisher.PublishJSON(ctx, notify.RKEventCreated, notify.StudioEvent{
			EventID:  inserted.ID,
			Name:     inserted.Name,
			Date:     inserted.Date.Format(time.DateOnly),
			TimeSlot: inserted.TimeSlot,
		})
	}

	return inserted, nil
}

func (s *Service) FindEventByID(ctx context.Context, id string) (Event, error) {
	return s.repo.GetEventByID(ctx, id)
}

func (s *Service) GetEvents(ctx context.Context) ([]Event, error) {
	return s.repo.GetEvents(ctx)
}

func (s *Service) GetEventsForDate(ctx context.Context, date time.Time) ([]Event, error) {
	return s.repo.GetEventsForDate(ctx, schedule.Day(date))
}

// RSVP registers attendance intent. The capacity check lives here, not in
// the callers, and registering twice is a no-op.
func (s *Service) RSVP(ctx context.Context, id, userID string) (Event, error) {
	e, err := s.repo.GetEventByID(ctx, id)

	if err != nil {
		return Event{}, err
	}

	if e.HasRSVP(userID) {
		return e, nil
	}

	if e.Full() {
		return Event{}, ErrEventFull
	}

	if err := s.repo.AddRSVP(ctx, id, userID); err != nil {
		return Event{}, err
	}

	e.RSVPs = append(e.RSVPs, userID)

	return e, nil
}

// CancelRSVP removes the user's registration if present. Removing an absent
// user is a no-op; the attendee count never goes below zero.
func (s *Service) CancelRSVP(ctx context.Context, id, userID string) (Event, error) {
	e, err := s.repo.GetEventByID(ctx, id)

	if err != nil {
		return Event{}, err
	}

	if !e.HasRSVP(userID) {
		return e, nil
	}

	if err := s.repo.RemoveRSVP(ctx, id, userID); err != nil {
		return Event{}, err
	}

	kept := make([]string, 0, len(e.RSVPs))

	for _, r := range e.RSVPs {
		if r != userID {
			kept = append(kept, r)
		}
	}

	e.RSVPs = kept

	return e, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.DeleteEvent(ctx, id)
}
