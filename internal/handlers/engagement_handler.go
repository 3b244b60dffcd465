package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

type EngagementHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEngagementHandler(db *gorm.DB, auditor *audit.Dispatcher) *EngagementHandler {
	return &EngagementHandler{db: db, audit: auditor}
}

// --------- Requests ---------

type EngagementRequest struct {
	Role         string `json:"role" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	URL          string `json:"url"`

	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`
	Current   bool   `json:"current"`

	Summary   string `json:"summary"`
	SortOrder int    `json:"sort_order"`
}

func (r *EngagementRequest) apply(e *models.Engagement) error {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return err
	}

	var end *time.Time
	if r.EndDate != "" {
		t, err := parseDate(r.EndDate)
		if err != nil {
			return err
		}
		end = &t
	}

	e.Role = r.Role
	e.Organization = r.Organization
	e.URL = r.URL
	e.StartDate = start
	e.EndDate = end
	e.Current = r.Current
	e.Summary = r.Summary
	e.SortOrder = r.SortOrder
	return nil
}

// --------- Public ---------

func (h *EngagementHandler) List(c *gin.Context) {
	var items []models.Engagement
	if err := h.db.
		Order("sort_order ASC, start_date DESC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_engagements", "Could not list engagements.")
		return
	}

	httpresp.List(c, items)
}

// --------- Admin ---------

func (h *EngagementHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid engagement payload.")
		return
	}

	var item models.Engagement
	if err := req.apply(&item); err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be in YYYY-MM-DD format.")
		return
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_engagement", "Could not create the engagement.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "engagement_created",
		Entity:   "engagement",
		EntityID: &item.ID,
	})

	httpresp.Created(c, item)
}

func (h *EngagementHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid engagement id.")
		return
	}

	var item models.Engagement
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "engagement_not_found", "Engagement not found.")
		return
	}

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid engagement payload.")
		return
	}

	if err := req.apply(&item); err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be in YYYY-MM-DD format.")
		return
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_engagement", "Could not update the engagement.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "engagement_updated",
		Entity:   "engagement",
		EntityID: &item.ID,
	})

	httpresp.OK(c, item)
}

func (h *EngagementHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid engagement id.")
		return
	}

	res := h.db.Delete(&models.Engagement{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_engagement", "Could not delete the engagement.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "engagement_not_found", "Engagement not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "engagement_deleted",
		Entity:   "engagement",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
