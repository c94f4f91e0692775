package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/booth33/studio-backend/auth"
	"github.com/booth33/studio-backend/notify"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]notify.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationHandler struct {
	service  NotificationService
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(service NotificationService, hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.PUT("/:id/read", h.MarkRead)
	rg.PUT("/read-all", h.MarkAllRead)
	rg.GET("/ws", h.Subscribe)
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	notifications, err := h.service.ListForUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.IndentedJSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	err := h.service.MarkRead(c.Request.Context(), user.ID, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, notify.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "notification read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	err := h.service.MarkAllRead(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notifications read"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "all notifications read"})
}

// Subscribe upgrades the request and keeps the connection in the hub until
// the client goes away. The read loop only drains control frames.
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		c.Error(err)
		return
	}

	h.hub.Add(user.ID, conn)

	defer func() {
		h.hub.Remove(user.ID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
