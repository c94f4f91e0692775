package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, referredBy string) (auth.Profile, error)
	Login(ctx context.Context, username, password string) (string, auth.Profile, error)
	FindProfileByID(ctx context.Context, id string) (auth.Profile, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPublic mounts the routes that need no token.
func (h *AuthHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

func (h *AuthHandler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

type registerRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ReferredBy string `json:"referredBy"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ReferredBy)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	token, profile, err := h.service.Login(c.Request.Context(), req.Username, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	profile, err := h.service.FindProfileByID(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}
