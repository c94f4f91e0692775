package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/booth33/studio-backend/api"
	mock_api "github.com/booth33/studio-backend/api/mocks"
	"github.com/booth33/studio-backend/auth"
	bk "github.com/booth33/studio-backend/booking"
)

func setUserInContext(user auth.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

var member = auth.User{ID: "user1", Username: "miles"}
var admin = auth.User{ID: "admin1", Username: "dee", Admin: true}

func setupBookingRouter(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	rg := router.Group("/api/v1/bookings")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func TestGetAvailability(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		grid := []bk.SlotAvailability{
			{TimeSlot: "9:00 AM", Booked: false},
			{TimeSlot: "10:00 AM", Booked: true},
		}
		gridJson, _ := json.MarshalIndent(grid, "", "    ")

		date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		mockService.EXPECT().Availability(gomock.Any(), date).Return(grid, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/availability?date=2026-09-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(gridJson), w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t, member)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/availability?date=next-tuesday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})
}

func TestCreate(t *testing.T) {

	body := map[string]any{
		"sessionType":     "music",
		"date":            "2026-09-10",
		"timeSlot":        "2:00 PM",
		"duration":        2,
		"notes":           "vocal tracking",
		"useCredits":      true,
		"paymentMethodId": "pm_1",
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		created := bk.Booking{ID: "b1", UserID: "user1", Status: bk.StatusPending}
		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), true, "pm_1").DoAndReturn(
			func(_ any, b bk.Booking, _ bool, _ string) (bk.Booking, error) {
				assert.Equal(t, "user1", b.UserID)
				assert.Equal(t, bk.SessionMusic, b.SessionType)
				assert.Equal(t, "2:00 PM", b.TimeSlot)
				return created, nil
			}).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("slot taken", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), true, "pm_1").
			Return(bk.Booking{}, bk.ErrSlotTaken).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"time slot already taken"}`, w.Body.String())
	})

	t.Run("invalid duration", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), true, "pm_1").
			Return(bk.Booking{}, bk.ErrInvalidDuration).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t, member)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader([]byte("{")))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestListAll(t *testing.T) {

	t.Run("admin sees everything", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, admin)
		defer ctrl.Finish()

		bookings := []bk.Booking{{ID: "b1", Username: "miles"}, {ID: "b2", Username: "nina"}}
		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mockService.EXPECT().GetAllBookings(gomock.Any()).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("member forbidden", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t, member)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})
}

func TestGetByID(t *testing.T) {

	t.Run("owner fetches own booking", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		b := bk.Booking{ID: "b1", UserID: "user1"}
		bJson, _ := json.MarshalIndent(b, "", "    ")
		mockService.EXPECT().FindBookingByID(gomock.Any(), "b1").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("someone else's booking forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "b1").Return(bk.Booking{ID: "b1", UserID: "user2"}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "nope").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})
}

func TestConfirm(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmBooking(gomock.Any(), "b1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking confirmed"}`, w.Body.String())
	})

	t.Run("invalid state", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmBooking(gomock.Any(), "b1").Return(bk.ErrInvalidBookingState).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking state"}`, w.Body.String())
	})

	t.Run("member forbidden", func(t *testing.T) {
		router, ctrl, _ := setupBookingRouter(t, member)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestCancel(t *testing.T) {

	t.Run("owner cancels with reason", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), "b1", "user1", false, "illness").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/cancel?reason=illness", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking cancelled"}`, w.Body.String())
	})

	t.Run("not the owner", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), "b1", "user1", false, "").Return(bk.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/cancel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestComplete(t *testing.T) {
	router, ctrl, mockService := setupBookingRouter(t, admin)
	defer ctrl.Finish()

	mockService.EXPECT().CompleteBooking(gomock.Any(), "b1").Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/complete", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"booking completed"}`, w.Body.String())
}

func TestReschedule(t *testing.T) {

	body := map[string]any{"date": "2026-09-11", "timeSlot": "10:00 AM"}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		date := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
		moved := bk.Booking{ID: "b1", UserID: "user1", TimeSlot: "10:00 AM", Date: date}
		movedJson, _ := json.MarshalIndent(moved, "", "    ")
		mockService.EXPECT().RescheduleBooking(gomock.Any(), "b1", "user1", date, "10:00 AM").Return(moved, nil).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/reschedule", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(movedJson), w.Body.String())
	})

	t.Run("target slot taken", func(t *testing.T) {
		router, ctrl, mockService := setupBookingRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().RescheduleBooking(gomock.Any(), "b1", "user1", gomock.Any(), "10:00 AM").
			Return(bk.Booking{}, bk.ErrSlotTaken).Times(1)

		bodyJson, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/reschedule", bytes.NewReader(bodyJson))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}
