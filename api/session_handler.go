package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
	"github.com/booth33/studio-backend/session"
)

type SessionService interface {
	FindSessionByID(ctx context.Context, id string) (session.Session, error)
	FindSessionsPerUser(ctx context.Context, userID string) ([]session.Session, error)
	AddFile(ctx context.Context, id, fileURL string) error
	MarkDelivered(ctx context.Context, id string) error
}

type SessionHandler struct {
	service SessionService
}

func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("/:id/files", adminOnly, h.AddFile)
	rg.PUT("/:id/deliver", adminOnly, h.Deliver)
}

func (h *SessionHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	sessions, err := h.service.FindSessionsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sessions"})
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	s, err := h.service.FindSessionByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch session"})
		return
	}

	if s.UserID != user.ID && !user.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, s)
}

type addFileRequest struct {
	FileURL string `json:"fileUrl" binding:"required"`
}

func (h *SessionHandler) AddFile(c *gin.Context) {
	id := c.Param("id")

	var req addFileRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.AddFile(c.Request.Context(), id, req.FileURL)

	if err != nil {
		c.Error(err)
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add file"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "file added"})
}

func (h *SessionHandler) Deliver(c *gin.Context) {
	id := c.Param("id")

	err := h.service.MarkDelivered(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		} else if errors.Is(err, session.ErrAlreadyDelivered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session already delivered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deliver session"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "session delivered"})
}
