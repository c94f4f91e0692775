package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/booth33/studio-backend/api"
	mock_api "github.com/booth33/studio-backend/api/mocks"
	"github.com/booth33/studio-backend/auth"
	ev "github.com/booth33/studio-backend/event"
)

func setupEventRouter(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockEventService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockEventService(ctrl)
	handler := api.NewEventHandler(mockService)
	rg := router.Group("/api/v1/events")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func TestEventRSVP(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupEventRouter(t, member)
		defer ctrl.Finish()

		e := ev.Event{ID: "ev1", Name: "Open Mic Night", RSVPs: []string{"user1"}}
		eJson, _ := json.MarshalIndent(e, "", "    ")
		mockService.EXPECT().RSVP(gomock.Any(), "ev1", "user1").Return(e, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/events/ev1/rsvp", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(eJson), w.Body.String())
	})

	t.Run("full event", func(t *testing.T) {
		router, ctrl, mockService := setupEventRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().RSVP(gomock.Any(), "ev1", "user1").Return(ev.Event{}, ev.ErrEventFull).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/events/ev1/rsvp", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"event is full"}`, w.Body.String())
	})

	t.Run("cancel rsvp", func(t *testing.T) {
		router, ctrl, mockService := setupEventRouter(t, member)
		defer ctrl.Finish()

		e := ev.Event{ID: "ev1", Name: "Open Mic Night"}
		mockService.EXPECT().CancelRSVP(gomock.Any(), "ev1", "user1").Return(e, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/events/ev1/rsvp", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})
}

func TestCreateEvent(t *testing.T) {

	body := map[string]any{
		"name":           "Open Mic Night",
		"type":           "open-mic",
		"date":           "2026-09-04",
		"timeSlot":       "7:00 PM",
		"duration":       2,
		"maxAttendees":   30,
		"price":          5,
		"autoPostToFeed": true,
	}

	t.Run("admin creates event", func(t *testing.T) {
		router, ctrl, mockService := setupEventRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e ev.Event) (ev.Event, error) {
				assert.Equal(t, ev.TypeOpenMic, e.Type)
				assert.True(t, e.AutoPostToFeed)
				return e, nil
			}).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/events", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("member forbidden", func(t *testing.T) {
		router, ctrl, _ := setupEventRouter(t, member)
		defer ctrl.Finish()

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/events", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("invalid type", func(t *testing.T) {
		router, ctrl, mockService := setupEventRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(ev.Event{}, ev.ErrInvalidEventType).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/events", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}
