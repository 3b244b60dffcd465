package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

type TechnologyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTechnologyHandler(db *gorm.DB, auditor *audit.Dispatcher) *TechnologyHandler {
	return &TechnologyHandler{db: db, audit: auditor}
}

// --------- Requests ---------

type TechnologyRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	IconURL  string `json:"icon_url"`
}

// --------- Public ---------

func (h *TechnologyHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if category := strings.TrimSpace(strings.ToLower(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var items []models.Technology
	if err := q.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_technologies", "Could not list technologies.")
		return
	}

	httpresp.List(c, items)
}

// --------- Admin ---------

func (h *TechnologyHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req TechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid technology payload.")
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Technology{}).Where("LOWER(name) = ?", strings.ToLower(name)).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "technology_already_exists", "A technology with this name already exists.")
		return
	}

	item := models.Technology{
		Name:     name,
		Category: req.Category,
		IconURL:  req.IconURL,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_technology", "Could not create the technology.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "technology_created",
		Entity:   "technology",
		EntityID: &item.ID,
	})

	httpresp.Created(c, item)
}

func (h *TechnologyHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid technology id.")
		return
	}

	var item models.Technology
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "technology_not_found", "Technology not found.")
		return
	}

	var req TechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid technology payload.")
		return
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Category = req.Category
	item.IconURL = req.IconURL

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_technology", "Could not update the technology.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "technology_updated",
		Entity:   "technology",
		EntityID: &item.ID,
	})

	httpresp.OK(c, item)
}

// Delete refuses to remove a technology still referenced by a project.
func (h *TechnologyHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid technology id.")
		return
	}

	var refs int64
	if err := h.db.Table("project_technologies").
		Where("technology_id = ?", id).
		Count(&refs).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_technology", "Could not delete the technology.")
		return
	}
	if refs > 0 {
		httperr.Conflict(c, "technology_in_use", "The technology is referenced by one or more projects.")
		return
	}

	res := h.db.Delete(&models.Technology{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_technology", "Could not delete the technology.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "technology_not_found", "Technology not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "technology_deleted",
		Entity:   "technology",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
