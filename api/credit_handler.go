package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
	"github.com/booth33/studio-backend/credit"
)

type CreditService interface {
	Balance(ctx context.Context, userID string) (float64, error)
	History(ctx context.Context, userID string) ([]credit.Transaction, error)
	GrantCredits(ctx context.Context, userID string, amount float64, description, grantedBy string) (credit.Transaction, error)
}

type CreditHandler struct {
	service CreditService
}

func NewCreditHandler(service CreditService) *CreditHandler {
	return &CreditHandler{service: service}
}

func (h *CreditHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/balance", h.GetBalance)
	rg.GET("/history", h.GetHistory)
	rg.POST("/grant", AdminOnly(), h.Grant)
}

func (h *CreditHandler) GetBalance(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	balance, err := h.service.Balance(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch balance"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"balance": balance})
}

func (h *CreditHandler) GetHistory(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	transactions, err := h.service.History(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch credit history"})
		return
	}

	c.IndentedJSON(http.StatusOK, transactions)
}

type grantRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

func (h *CreditHandler) Grant(c *gin.Context) {
	admin := c.MustGet("user").(auth.User)

	var req grantRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	granted, err := h.service.GrantCredits(c.Request.Context(), req.UserID, req.Amount, req.Description, admin.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, credit.ErrNegativeAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to grant credits"})
		return
	}

	c.JSON(http.StatusCreated, granted)
}
