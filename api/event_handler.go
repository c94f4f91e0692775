package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
	ev "github.com/booth33/studio-backend/event"
	"github.com/booth33/studio-backend/schedule"
)

type EventService interface {
	CreateEvent(ctx context.Context, e ev.Event) (ev.Event, error)
	FindEventByID(ctx context.Context, id string) (ev.Event, error)
	GetEvents(ctx context.Context) ([]ev.Event, error)
	GetEventsForDate(ctx context.Context, date time.Time) ([]ev.Event, error)
	RSVP(ctx context.Context, id, userID string) (ev.Event, error)
	CancelRSVP(ctx context.Context, id, userID string) (ev.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.POST("", adminOnly, h.Create)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", adminOnly, h.Delete)
	rg.POST("/:id/rsvp", h.RSVP)
	rg.DELETE("/:id/rsvp", h.CancelRSVP)
}

func (h *EventHandler) List(c *gin.Context) {
	dateQuery := c.Query("date")

	if len(dateQuery) == 0 {
		events, err := h.service.GetEvents(c.Request.Context())

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve events"})
			return
		}

		c.IndentedJSON(http.StatusOK, events)
		return
	}

	date, err := time.Parse(time.DateOnly, dateQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	events, err := h.service.GetEventsForDate(c.Request.Context(), date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve events"})
		return
	}

	c.IndentedJSON(http.StatusOK, events)
}

type createEventRequest struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	Description    string  `json:"description"`
	Date           string  `json:"date" binding:"required"`
	TimeSlot       string  `json:"timeSlot" binding:"required"`
	Duration       int     `json:"duration" binding:"required"`
	MaxAttendees   int     `json:"maxAttendees" binding:"required"`
	Price          float64 `json:"price"`
	AutoPostToFeed bool    `json:"autoPostToFeed"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest

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

	created, err := h.service.CreateEvent(c.Request.Context(), ev.Event{
		Name:           req.Name,
		Type:           ev.Type(req.Type),
		Description:    req.Description,
		Date:           date,
		TimeSlot:       req.TimeSlot,
		Duration:       req.Duration,
		MaxAttendees:   req.MaxAttendees,
		Price:          req.Price,
		AutoPostToFeed: req.AutoPostToFeed,
	})

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, ev.ErrInvalidEventType),
			errors.Is(err, ev.ErrInvalidEventTimes),
			errors.Is(err, schedule.ErrUnknownSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	event, err := h.service.FindEventByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ev.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.IndentedJSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteEvent(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ev.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *EventHandler) RSVP(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	event, err := h.service.RSVP(c.Request.Context(), id, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ev.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		} else if errors.Is(err, ev.ErrEventFull) {
			c.JSON(http.StatusConflict, gin.H{"error": "event is full"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rsvp"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, event)
}

func (h *EventHandler) CancelRSVP(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	event, err := h.service.CancelRSVP(c.Request.Context(), id, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ev.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel rsvp"})
		return
	}

	c.IndentedJSON(http.StatusOK, event)
}
