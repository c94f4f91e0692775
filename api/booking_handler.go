package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
	bk "github.com/booth33/studio-backend/booking"
	"github.com/booth33/studio-backend/schedule"
)

type BookingService interface {
	Availability(ctx context.Context, date time.Time) ([]bk.SlotAvailability, error)
	CreateBooking(ctx context.Context, booking bk.Booking, useCredits bool, paymentMethodID string) (bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.Booking, error)
	GetAllBookings(ctx context.Context) ([]bk.Booking, error)
	ConfirmBooking(ctx context.Context, id string) error
	CancelBooking(ctx context.Context, id, userID string, admin bool, reason string) error
	CompleteBooking(ctx context.Context, id string) error
	RescheduleBooking(ctx context.Context, id, userID string, date time.Time, timeSlot string) (bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("/availability", h.GetAvailability)
	rg.POST("", h.Create)
	rg.GET("", adminOnly, h.ListAll)
	rg.GET("/me", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id/confirm", adminOnly, h.Confirm)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/complete", adminOnly, h.Complete)
	rg.PUT("/:id/reschedule", h.Reschedule)
}

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.Query("date"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	grid, err := h.service.Availability(c.Request.Context(), date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve availability"})
		return
	}

	c.IndentedJSON(http.StatusOK, grid)
}

type createBookingRequest struct {
	SessionType     string `json:"sessionType" binding:"required"`
	Date            string `json:"date" binding:"required"`
	TimeSlot        string `json:"timeSlot" binding:"required"`
	Duration        int    `json:"duration" binding:"required"`
	Notes           string `json:"notes"`
	UseCredits      bool   `json:"useCredits"`
	PaymentMethodID string `json:"paymentMethodId"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	booking := bk.Booking{
		UserID:      user.ID,
		SessionType: bk.SessionType(req.SessionType),
		Date:        date,
		TimeSlot:    req.TimeSlot,
		Duration:    req.Duration,
		Notes:       req.Notes,
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking, req.UseCredits, req.PaymentMethodID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "time slot already taken"})
		case errors.Is(err, schedule.ErrUnknownSlot),
			errors.Is(err, bk.ErrPastClosing),
			errors.Is(err, bk.ErrInvalidDuration),
			errors.Is(err, bk.ErrInvalidSessionType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	if bookings, err := h.service.GetAllBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}

	if booking.UserID != user.ID && !user.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id := c.Param("id")

	err := h.service.ConfirmBooking(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")
	reason := c.Query("reason")

	err := h.service.CancelBooking(c.Request.Context(), id, user.ID, user.Admin, reason)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this booking"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.CompleteBooking(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking completed"})
}

type rescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	var req rescheduleRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	moved, err := h.service.RescheduleBooking(c.Request.Context(), id, user.ID, date, req.TimeSlot)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to reschedule this booking"})
		case errors.Is(err, bk.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "time slot already taken"})
		case errors.Is(err, bk.ErrInvalidBookingState),
			errors.Is(err, bk.ErrPastClosing),
			errors.Is(err, schedule.ErrUnknownSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reschedule booking"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, moved)
}
