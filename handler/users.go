package handler

import (
	"errors"
	"log"
	"net/http"

	"viral-daily/model"
	"viral-daily/service"

	"github.com/gin-gonic/gin"
)

// RegisterUser serves POST /api/users/register.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDatabase):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registration requires a database"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		default:
			log.Printf("[ERROR] Failed to register user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error registering user"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// SubscribeEmails serves POST /api/emails/subscribe.
func (h *Handler) SubscribeEmails(c *gin.Context) {
	var req model.EmailSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.SubscribeEmail(c.Request.Context(), req.Email, req.Name); err != nil {
		if errors.Is(err, service.ErrNoDatabase) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "subscriptions require a database"})
			return
		}
		log.Printf("[ERROR] Failed to subscribe %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe to emails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscribed to daily viral video emails",
		"email":   req.Email,
	})
}
