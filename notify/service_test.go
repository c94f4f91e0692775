package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/booth33/studio-backend/notify"
	"github.com/booth33/studio-backend/notify/mocks"
)

type testDeps struct {
	repo    *mocks.MockNotificationRepository
	hub     *notify.Hub
	service *notify.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	hub := notify.NewHub()

	return testDeps{
		repo:    repo,
		hub:     hub,
		service: notify.NewService(repo, hub),
		ctx:     context.Background(),
	}
}

// wsPair upgrades one connection through a test server and hands back both
// ends: the server side to register on the hub, the client side to read from.
func wsPair(t *testing.T) (*websocket.Conn, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return <-serverConns, client
}

func TestNotify(t *testing.T) {
	t.Run("persists the notification row", func(t *testing.T) {
		deps := newTestDeps(t)

		var inserted notify.Notification
		deps.repo.EXPECT().
			InsertNotification(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n notify.Notification) (notify.Notification, error) {
				inserted = n
				return n, nil
			})

		err := deps.service.Notify(deps.ctx, "user1", "booking", "Booking Confirmed",
			"Your session on 2026-09-10 at 2:00 PM is confirmed.",
			map[string]any{"bookingId": "booking1"})

		require.NoError(t, err)
		require.NotEmpty(t, inserted.ID)
		require.Equal(t, "user1", inserted.UserID)
		require.Equal(t, "booking", inserted.Type)
		require.Equal(t, "Booking Confirmed", inserted.Title)
		require.Equal(t, map[string]any{"bookingId": "booking1"}, inserted.Data)
	})

	t.Run("pushes to a live websocket subscriber", func(t *testing.T) {
		deps := newTestDeps(t)
		serverConn, clientConn := wsPair(t)
		deps.hub.Add("user1", serverConn)

		deps.repo.EXPECT().
			InsertNotification(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n notify.Notification) (notify.Notification, error) {
				return n, nil
			})

		err := deps.service.Notify(deps.ctx, "user1", "payment", "Payment Received",
			"We charged $60.00 for your booking.", nil)
		require.NoError(t, err)

		clientConn.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := clientConn.ReadMessage()
		require.NoError(t, err)

		var pushed notify.Notification
		require.NoError(t, json.Unmarshal(payload, &pushed))
		require.Equal(t, "Payment Received", pushed.Title)
	})

	t.Run("does not push to other users", func(t *testing.T) {
		deps := newTestDeps(t)
		serverConn, clientConn := wsPair(t)
		deps.hub.Add("user2", serverConn)

		deps.repo.EXPECT().
			InsertNotification(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n notify.Notification) (notify.Notification, error) {
				return n, nil
			})

		err := deps.service.Notify(deps.ctx, "user1", "booking", "Booking Received", "pending", nil)
		require.NoError(t, err)

		clientConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		_, _, err = clientConn.ReadMessage()
		require.Error(t, err)
	})

	t.Run("removed subscribers stop receiving", func(t *testing.T) {
		deps := newTestDeps(t)
		serverConn, clientConn := wsPair(t)
		deps.hub.Add("user1", serverConn)
		deps.hub.Remove("user1", serverConn)

		deps.repo.EXPECT().
			InsertNotification(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n notify.Notification) (notify.Notification, error) {
				return n, nil
			})

		err := deps.service.Notify(deps.ctx, "user1", "booking", "Booking Received", "pending", nil)
		require.NoError(t, err)

		clientConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		_, _, err = clientConn.ReadMessage()
		require.Error(t, err)
	})
}
