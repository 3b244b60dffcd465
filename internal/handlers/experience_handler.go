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

type ExperienceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewExperienceHandler(db *gorm.DB, auditor *audit.Dispatcher) *ExperienceHandler {
	return &ExperienceHandler{db: db, audit: auditor}
}

// --------- Requests ---------

type ExperienceRequest struct {
	Role     string `json:"role" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location"`

	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`
	Current   bool   `json:"current"`

	Summary   string `json:"summary"`
	SortOrder int    `json:"sort_order"`
}

func (r *ExperienceRequest) apply(e *models.Experience) error {
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
	e.Company = r.Company
	e.Location = r.Location
	e.StartDate = start
	e.EndDate = end
	e.Current = r.Current
	e.Summary = r.Summary
	e.SortOrder = r.SortOrder
	return nil
}

// --------- Public ---------

func (h *ExperienceHandler) List(c *gin.Context) {
	var items []models.Experience
	if err := h.db.
		Order("sort_order ASC, start_date DESC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_experiences", "Could not list experiences.")
		return
	}

	httpresp.List(c, items)
}

// --------- Admin ---------

func (h *ExperienceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid experience payload.")
		return
	}

	var item models.Experience
	if err := req.apply(&item); err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be in YYYY-MM-DD format.")
		return
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_experience", "Could not create the experience.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "experience_created",
		Entity:   "experience",
		EntityID: &item.ID,
	})

	httpresp.Created(c, item)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid experience id.")
		return
	}

	var item models.Experience
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "experience_not_found", "Experience not found.")
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid experience payload.")
		return
	}

	if err := req.apply(&item); err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be in YYYY-MM-DD format.")
		return
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_experience", "Could not update the experience.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "experience_updated",
		Entity:   "experience",
		EntityID: &item.ID,
	})

	httpresp.OK(c, item)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid experience id.")
		return
	}

	res := h.db.Delete(&models.Experience{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_experience", "Could not delete the experience.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "experience_not_found", "Experience not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "experience_deleted",
		Entity:   "experience",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
