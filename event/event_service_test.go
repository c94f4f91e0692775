package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/booth33/studio-backend/event"
	ev_mocks "github.com/booth33/studio-backend/event/mocks"
	nf_mocks "github.com/booth33/studio-backend/notify/mocks"
	"github.com/booth33/studio-backend/schedule"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo      *ev_mocks.MockEventRepository
	publisher *nf_mocks.MockPublisher
	service   *event.Service
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := ev_mocks.NewMockEventRepository(ctrl)
	publisher := nf_mocks.NewMockPublisher(ctrl)
	svc := event.NewService(repo, publisher)

	return ctrl, testDeps{repo: repo, publisher: publisher, service: svc, ctx: context.Background()}
}

func validEvent() event.Event {
	return event.Event{
		Name:         "Open Mic Night",
		Type:         event.TypeOpenMic,
		Description:  "Monthly open mic at the booth",
		Date:         time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TimeSlot:     "7:00 PM",
		Duration:     2,
		MaxAttendees: 30,
		Price:        5,
	}
}

func TestCreateEvent(t *testing.T) {

	t.Run("success with feed post", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.AutoPostToFeed = true

		deps.repo.EXPECT().InsertEvent(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, inserted event.Event) (event.Event, error) {
				require.NotEmpty(t, inserted.ID)
				require.Empty(t, inserted.RSVPs)
				return inserted, nil
			}).Times(1)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)

		created, err := deps.service.CreateEvent(deps.ctx, e)

		require.Nil(t, err)
		require.Equal(t, 0, created.CurrentAttendees())
	})

	t.Run("no feed post when flag off", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertEvent(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, inserted event.Event) (event.Event, error) {
				return inserted, nil
			}).Times(1)
		deps.publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateEvent(deps.ctx, validEvent())

		require.Nil(t, err)
	})

	t.Run("unknown time slot rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.TimeSlot = "7:30 PM"

		deps.repo.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateEvent(deps.ctx, e)

		require.ErrorIs(t, err, schedule.ErrUnknownSlot)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.Type = "karaoke"

		deps.repo.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateEvent(deps.ctx, e)

		require.ErrorIs(t, err, event.ErrInvalidEventType)
	})

	t.Run("span past closing rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.TimeSlot = "8:00 PM"
		e.Duration = 4

		deps.repo.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateEvent(deps.ctx, e)

		require.ErrorIs(t, err, event.ErrInvalidEventTimes)
	})
}

func TestRSVP(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.ID = "ev1"
		e.RSVPs = []string{"user2"}

		deps.repo.EXPECT().GetEventByID(deps.ctx, "ev1").Return(e, nil).Times(1)
		deps.repo.EXPECT().AddRSVP(deps.ctx, "ev1", "user1").Return(nil).Times(1)

		got, err := deps.service.RSVP(deps.ctx, "ev1", "user1")

		require.Nil(t, err)
		require.Equal(t, 2, got.CurrentAttendees())
		require.True(t, got.HasRSVP("user1"))
	})

	t.Run("idempotent for repeat rsvp", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.ID = "ev1"
		e.RSVPs = []string{"user1"}

		deps.repo.EXPECT().GetEventByID(deps.ctx, "ev1").Return(e, nil).Times(1)
		deps.repo.EXPECT().AddRSVP(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := deps.service.RSVP(deps.ctx, "ev1", "user1")

		require.Nil(t, err)
		require.Equal(t, 1, got.CurrentAttendees())
	})

	t.Run("full event rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.ID = "ev1"
		e.MaxAttendees = 2
		e.RSVPs = []string{"user2", "user3"}

		deps.repo.EXPECT().GetEventByID(deps.ctx, "ev1").Return(e, nil).Times(1)
		deps.repo.EXPECT().AddRSVP(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RSVP(deps.ctx, "ev1", "user1")

		require.ErrorIs(t, err, event.ErrEventFull)
	})

	t.Run("unknown event is an explicit failure", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetEventByID(deps.ctx, "missing").Return(event.Event{}, event.ErrEventNotFound).Times(1)

		_, err := deps.service.RSVP(deps.ctx, "missing", "user1")

		require.ErrorIs(t, err, event.ErrEventNotFound)
	})
}

func TestCancelRSVP(t *testing.T) {

	t.Run("removes existing rsvp", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.ID = "ev1"
		e.RSVPs = []string{"user1", "user2"}

		deps.repo.EXPECT().GetEventByID(deps.ctx, "ev1").Return(e, nil).Times(1)
		deps.repo.EXPECT().RemoveRSVP(deps.ctx, "ev1", "user1").Return(nil).Times(1)

		got, err := deps.service.CancelRSVP(deps.ctx, "ev1", "user1")

		require.Nil(t, err)
		require.Equal(t, 1, got.CurrentAttendees())
		require.False(t, got.HasRSVP("user1"))
	})

	t.Run("no-op when not registered", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		e := validEvent()
		e.ID = "ev1"
		e.RSVPs = []string{}

		deps.repo.EXPECT().GetEventByID(deps.ctx, "ev1").Return(e, nil).Times(1)
		deps.repo.EXPECT().RemoveRSVP(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := deps.service.CancelRSVP(deps.ctx, "ev1", "user1")

		require.Nil(t, err)
		require.Equal(t, 0, got.CurrentAttendees())
	})
}

func TestDeleteEvent(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().DeleteEvent(deps.ctx, "ev1").Return(nil).Times(1)

	require.Nil(t, deps.service.DeleteEvent(deps.ctx, "ev1"))
}
