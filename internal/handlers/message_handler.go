package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

// MessageHandler lists contact messages for the admin panel.
type MessageHandler struct {
	db *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

func (h *MessageHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if c.Query("unread") == "true" {
		q = q.Where("read = false")
	}

	var items []models.ContactMessage
	if err := q.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	httpresp.List(c, items)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid message id.")
		return
	}

	var msg models.ContactMessage
	if err := h.db.First(&msg, id).Error; err != nil {
		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	msg.Read = true
	if err := h.db.Save(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_message", "Could not update the message.")
		return
	}

	httpresp.OK(c, msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid message id.")
		return
	}

	res := h.db.Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_message", "Could not delete the message.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
