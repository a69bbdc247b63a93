package handler

import (
	"errors"
	"log"
	"net/http"

	"viral-daily/model"
	"viral-daily/service"

	"github.com/gin-gonic/gin"
)

// CreateCheckout serves POST /api/payments/checkout.
func (h *Handler) CreateCheckout(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, _ := h.Users.ByAPIKey(c.Request.Context(), c.GetHeader(apiKeyHeader))

	tx, err := h.Payments.CreateCheckout(c.Request.Context(), req, user)
	if err != nil {
		if errors.Is(err, service.ErrNoDatabase) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments require a database"})
			return
		}
		log.Printf("[WARN] Checkout rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// GetTransactions serves GET /api/payments/transactions for the caller
// identified by API key.
func (h *Handler) GetTransactions(c *gin.Context) {
	user, _ := h.Users.ByAPIKey(c.Request.Context(), c.GetHeader(apiKeyHeader))
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "valid API key required"})
		return
	}

	txs, err := h.Payments.Transactions(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoDatabase) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments require a database"})
			return
		}
		log.Printf("[ERROR] Failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs, "total": len(txs)})
}
