package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/booth33/studio-backend/session"
	ss_mocks "github.com/booth33/studio-backend/session/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDeps(t *testing.T) (*gomock.Controller, *ss_mocks.MockSessionRepository, *session.Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := ss_mocks.NewMockSessionRepository(ctrl)
	svc := session.NewService(repo)

	return ctrl, repo, svc, context.Background()
}

func TestCreateForBooking(t *testing.T) {

	t.Run("creates draft session", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetSessionByBookingID(ctx, "booking-1").Return(session.Session{}, session.ErrSessionNotFound).Times(1)
		repo.EXPECT().InsertSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s session.Session) (session.Session, error) {
				require.NotEmpty(t, s.ID)
				require.Equal(t, "booking-1", s.BookingID)
				require.Equal(t, "user1", s.UserID)
				require.Equal(t, session.StatusDraft, s.Status)
				require.Empty(t, s.Files)
				return s, nil
			}).Times(1)

		created, err := svc.CreateForBooking(ctx, "booking-1", "user1")

		require.Nil(t, err)
		require.Equal(t, session.StatusDraft, created.Status)
	})

	t.Run("existing session returned, none created", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		existing := session.Session{ID: "s1", BookingID: "booking-1", UserID: "user1", Status: session.StatusDraft}

		repo.EXPECT().GetSessionByBookingID(ctx, "booking-1").Return(existing, nil).Times(1)
		repo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Times(0)

		got, err := svc.CreateForBooking(ctx, "booking-1", "user1")

		require.Nil(t, err)
		require.Equal(t, existing, got)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetSessionByBookingID(ctx, "booking-1").Return(session.Session{}, errors.New("repo error")).Times(1)
		repo.EXPECT().InsertSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateForBooking(ctx, "booking-1", "user1")

		require.Error(t, err)
	})
}

func TestMarkDelivered(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetSessionByID(ctx, "s1").Return(session.Session{ID: "s1", Status: session.StatusDraft}, nil).Times(1)
		repo.EXPECT().SetDelivered(ctx, "s1", gomock.Any()).Return(nil).Times(1)

		err := svc.MarkDelivered(ctx, "s1")

		require.Nil(t, err)
	})

	t.Run("already delivered", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetSessionByID(ctx, "s1").Return(session.Session{ID: "s1", Status: session.StatusDelivered}, nil).Times(1)
		repo.EXPECT().SetDelivered(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.MarkDelivered(ctx, "s1")

		require.ErrorIs(t, err, session.ErrAlreadyDelivered)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, svc, ctx := newTestDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetSessionByID(ctx, "s1").Return(session.Session{}, session.ErrSessionNotFound).Times(1)

		err := svc.MarkDelivered(ctx, "s1")

		require.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestAddFile(t *testing.T) {
	ctrl, repo, svc, ctx := newTestDeps(t)
	defer ctrl.Finish()

	repo.EXPECT().AppendFile(ctx, "s1", "https://files/booth33/mix-final.wav").Return(nil).Times(1)

	err := svc.AddFile(ctx, "s1", "https://files/booth33/mix-final.wav")

	require.Nil(t, err)
}
