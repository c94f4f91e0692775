package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/booth33/studio-backend/credit"
	"github.com/booth33/studio-backend/event"
	"github.com/booth33/studio-backend/notify"
	"github.com/booth33/studio-backend/payment"
	"github.com/booth33/studio-backend/schedule"
	"github.com/booth33/studio-backend/session"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/mock_booking_service.go -package=mocks

type BookingRepository interface {
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsForDate(ctx context.Context, date time.Time, statuses []string) ([]Booking, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
	SetBookingStatus(ctx context.Context, id string, status string, reason string) error
	UpdateBookingSchedule(ctx context.Context, id string, date time.Time, timeSlot string) error
}

type EventStore interface {
	GetEventsForDate(ctx context.Context, date time.Time) ([]event.Event, error)
}

type CreditService interface {
	Balance(ctx context.Context, userID string) (float64, error)
	UseCredits(ctx context.Context, userID string, amount float64, bookingID, description string) (credit.Transaction, error)
	GrantCredits(ctx context.Context, userID string, amount float64, description, grantedBy string) (credit.Transaction, error)
}

type PaymentService interface {
	Charge(ctx context.Context, userID string, amount float64, bookingID, paymentMethodID, description string) (payment.Transaction, error)
	Refund(ctx context.Context, id string, amount float64) (payment.Transaction, error)
}

type SessionService interface {
	CreateForBooking(ctx context.Context, bookingID, userID string) (session.Session, error)
}

type Service struct {
	repo      BookingRepository
	events    EventStore
	credits   CreditService
	payments  PaymentService
	sessions  SessionService
	publisher notify.Publisher
}

func NewService(repo BookingRepository, events EventStore, credits CreditService, payments PaymentService, sessions SessionService, publisher notify.Publisher) *Service {
	return &Service{
		repo:      repo,
		events:    events,
		credits:   credits,
		payments:  payments,
		sessions:  sessions,
		publisher: publisher,
	}
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetBookingsPerUser(ctx, userID)
}

func (s *Service) GetAllBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetAllBookings(ctx)
}

// Availability reports, for every slot of the grid on the given date,
// whether an event or a live booking occupies it.
func (s *Service) Availability(ctx context.Context, date time.Time) ([]SlotAvailability, error) {
	taken, err := s.occupiedSlots(ctx, schedule.Day(date), "")

	if err != nil {
		return nil, err
	}

	grid := make([]SlotAvailability, 0, schedule.SlotsPerDay)

	for i, label := range schedule.Grid() {
		grid = append(grid, SlotAvailability{
			TimeSlot: label,
			Booked:   schedule.Overlaps([]schedule.Slot{schedule.Slot(i)}, taken),
		})
	}

	return grid, nil
}

// CreateBooking validates the request, settles payment and records the
// booking as pending. Credits cover the price first when useCredits is set;
// any remainder is charged through the processor. Failures after a partial
// settlement are compensated: a declined charge re-grants used credits, a
// failed insert additionally refunds the charge.
func (s *Service) CreateBooking(ctx context.Context, booking Booking, useCredits bool, paymentMethodID string) (Booking, error) {
	if !booking.SessionType.Valid() {
		return Booking{}, ErrInvalidSessionType
	}

	start, err := schedule.ParseSlot(booking.TimeSlot)

	if err != nil {
		return Booking{}, err
	}

	price, err := PriceFor(booking.Duration)

	if err != nil {
		return Booking{}, err
	}

	if schedule.Truncated(start, booking.Duration) {
		return Booking{}, ErrPastClosing
	}

	booking.Date = schedule.Day(booking.Date)

	taken, err := s.occupiedSlots(ctx, booking.Date, "")

	if err != nil {
		return Booking{}, err
	}

	if schedule.Overlaps(schedule.Span(start, booking.Duration), taken) {
		return Booking{}, ErrSlotTaken
	}

	booking.ID = uuid.NewString()
	booking.Price = price
	booking.Status = StatusPending

	usage := credit.Usage{RemainingPrice: price}

	if useCredits {
		balance, err := s.credits.Balance(ctx, booking.UserID)

		if err != nil {
			return Booking{}, err
		}

		usage, err = credit.CalculateUsage(balance, price)

		if err != nil {
			return Booking{}, err
		}

		if usage.CreditsToUse > 0 {
			_, err = s.credits.UseCredits(ctx, booking.UserID, usage.CreditsToUse, booking.ID, "Studio booking")

			if err != nil {
				return Booking{}, err
			}
		}
	}

	var charge payment.Transaction

	if usage.RemainingPrice > 0 {
		charge, err = s.payments.Charge(ctx, booking.UserID, usage.RemainingPrice, booking.ID, paymentMethodID, "Studio booking")

		if err != nil {
			s.compensate(ctx, booking, usage.CreditsToUse, payment.Transaction{})
			return Booking{}, fmt.Errorf("booking payment failed: %w", err)
		}
	}

	created, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		s.compensate(ctx, booking, usage.CreditsToUse, charge)
		return Booking{}, err
	}

	s.publisher.PublishJSON(ctx, notify.RKBookingCreated, notify.BookingEvent{
		BookingID:   created.ID,
		UserID:      created.UserID,
		SessionType: string(created.SessionType),
		Date:        created.Date.Format(time.DateOnly),
		TimeSlot:    created.TimeSlot,
		Duration:    created.Duration,
	})

	return created, nil
}

// compensate unwinds a partially settled creation. Best effort: the booking
// row does not exist, so only money movements are reversed.
func (s *Service) compensate(ctx context.Context, booking Booking, creditsUsed float64, charge payment.Transaction) {
	if creditsUsed > 0 {
		s.credits.GrantCredits(ctx, booking.UserID, creditsUsed, "Booking payment reversal", "system")
	}

	if charge.ID != "" {
		s.payments.Refund(ctx, charge.ID, charge.Amount)
	}
}

func (s *Service) ConfirmBooking(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !CanTransition(booking.Status, StatusConfirmed) {
		return ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, string(StatusConfirmed), "")

	if err == nil {
		s.publisher.PublishJSON(ctx, notify.RKBookingConfirmed, notify.BookingEvent{
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			SessionType: string(booking.SessionType),
			Date:        booking.Date.Format(time.DateOnly),
			TimeSlot:    booking.TimeSlot,
			Duration:    booking.Duration,
		})
	}

	return err
}

// CancelBooking is a soft cancel: the row keeps its slot and reason but no
// longer occupies the grid. Owners and admins only.
func (s *Service) CancelBooking(ctx context.Context, id, userID string, admin bool, reason string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.UserID != userID && !admin {
		return ErrNotAllowed
	}

	if !CanTransition(booking.Status, StatusCancelled) {
		return ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, string(StatusCancelled), reason)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publisher.PublishJSON(ctx, notify.RKBookingCancelled, notify.BookingEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		SessionType: string(booking.SessionType),
		Date:        booking.Date.Format(time.DateOnly),
		TimeSlot:    booking.TimeSlot,
		Duration:    booking.Duration,
		Reason:      reason,
	})

	return nil
}

// CompleteBooking opens the delivery session for a confirmed booking and
// marks it done. The session is created first: if the status update then
// fails the booking stays confirmed and a retry finds the existing session
// (creation is idempotent), so a booking can never end up completed without
// one.
func (s *Service) CompleteBooking(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !CanTransition(booking.Status, StatusCompleted) {
		return ErrInvalidBookingState
	}

	if _, err := s.sessions.CreateForBooking(ctx, booking.ID, booking.UserID); err != nil {
		return fmt.Errorf("failed to create delivery session: %w", err)
	}

	err = s.repo.SetBookingStatus(ctx, id, string(StatusCompleted), "")

	if err != nil {
		return err
	}

	s.publisher.PublishJSON(ctx, notify.RKBookingCompleted, notify.BookingEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		SessionType: string(booking.SessionType),
		Date:        booking.Date.Format(time.DateOnly),
		TimeSlot:    booking.TimeSlot,
		Duration:    booking.Duration,
	})

	return nil
}

// RescheduleBooking moves a pending booking to a new date and slot after
// re-running the conflict check. The booking's own slots are excluded so
// moving within the original window always works.
func (s *Service) RescheduleBooking(ctx context.Context, id, userID string, date time.Time, timeSlot string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.UserID != userID {
		return Booking{}, ErrNotAllowed
	}

	if booking.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	start, err := schedule.ParseSlot(timeSlot)

	if err != nil {
		return Booking{}, err
	}

	if schedule.Truncated(start, booking.Duration) {
		return Booking{}, ErrPastClosing
	}

	date = schedule.Day(date)

	taken, err := s.occupiedSlots(ctx, date, booking.ID)

	if err != nil {
		return Booking{}, err
	}

	if schedule.Overlaps(schedule.Span(start, booking.Duration), taken) {
		return Booking{}, ErrSlotTaken
	}

	err = s.repo.UpdateBookingSchedule(ctx, id, date, timeSlot)

	if err != nil {
		return Booking{}, err
	}

	booking.Date = date
	booking.TimeSlot = timeSlot

	return booking, nil
}

// occupiedSlots collects every grid slot taken on the date. Events block
// unconditionally; bookings block only while pending or confirmed.
func (s *Service) occupiedSlots(ctx context.Context, date time.Time, excludeBookingID string) ([]schedule.Slot, error) {
	events, err := s.events.GetEventsForDate(ctx, date)

	if err != nil {
		return nil, err
	}

	var taken []schedule.Slot

	for _, e := range events {
		start, err := schedule.ParseSlot(e.TimeSlot)

		if err != nil {
			return nil, fmt.Errorf("event '%v' has unknown time slot: %w", e.ID, err)
		}

		taken = append(taken, schedule.Span(start, e.Duration)...)
	}

	bookings, err := s.repo.GetBookingsForDate(ctx, date, []string{string(StatusPending), string(StatusConfirmed)})

	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}

		start, err := schedule.ParseSlot(b.TimeSlot)

		if err != nil {
			return nil, fmt.Errorf("booking '%v' has unknown time slot: %w", b.ID, err)
		}

		taken = append(taken, schedule.Span(start, b.Duration)...)
	}

	return taken, nil
}
