package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booth33/studio-backend/auth"
	"github.com/booth33/studio-backend/payment"
)

type PaymentService interface {
	FindTransactionByID(ctx context.Context, id string) (payment.Transaction, error)
	FindTransactionsPerUser(ctx context.Context, userID string) ([]payment.Transaction, error)
	Refund(ctx context.Context, id string, amount float64) (payment.Transaction, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("/:id/refund", AdminOnly(), h.Refund)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	transactions, err := h.service.FindTransactionsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions"})
		return
	}

	c.IndentedJSON(http.StatusOK, transactions)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	transaction, err := h.service.FindTransactionByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, payment.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}

	if transaction.UserID != user.ID && !user.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, transaction)
}

type refundRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	id := c.Param("id")

	var req refundRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	refunded, err := h.service.Refund(c.Request.Context(), id, req.Amount)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, payment.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		case errors.Is(err, payment.ErrRefundExceedsAvailable),
			errors.Is(err, payment.ErrInvalidTransactionState),
			errors.Is(err, payment.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refund transaction"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, refunded)
}
