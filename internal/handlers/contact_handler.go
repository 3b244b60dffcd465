package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/mailer"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
	"github.com/lucasmonteiro/portfolio-api/internal/validators"
)

type ContactHandler struct {
	db     *gorm.DB
	mailer *mailer.Mailer
	log    *zap.Logger
}

func NewContactHandler(db *gorm.DB, m *mailer.Mailer, log *zap.Logger) *ContactHandler {
	return &ContactHandler{db: db, mailer: m, log: log}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Create stores the message and relays it to the owner. The message is
// kept even when the relay fails; RelayedAt stays null so the admin list
// shows which ones never arrived by mail.
func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsValidEmail(email) {
		httperr.BadRequest(c, "invalid_email", "Please provide a valid email address.")
		return
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Message),
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_message", "Could not save the message.")
		return
	}

	if err := h.mailer.RelayContact(&msg); err != nil {
		h.log.Error("contact relay failed",
			zap.Uint("message_id", msg.ID),
			zap.Error(err),
		)
	} else {
		now := time.Now()
		msg.RelayedAt = &now
		h.db.Save(&msg)
	}

	httpresp.Created(c, gin.H{"status": "received"})
}
