package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/media"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

const maxCoverUpload = 10 << 20 // 10 MiB

type ProjectHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewProjectHandler(db *gorm.DB, uploader *media.Uploader, auditor *audit.Dispatcher) *ProjectHandler {
	return &ProjectHandler{db: db, uploader: uploader, audit: auditor}
}

// --------- Requests ---------

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	RepoURL     string `json:"repo_url"`
	LiveURL     string `json:"live_url"`
	Featured    bool   `json:"featured"`
	SortOrder   int    `json:"sort_order"`

	TechnologyIDs []uint `json:"technology_ids"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
	RepoURL     *string `json:"repo_url"`
	LiveURL     *string `json:"live_url"`
	Featured    *bool   `json:"featured"`
	SortOrder   *int    `json:"sort_order"`

	TechnologyIDs *[]uint `json:"technology_ids"`
}

// --------- Public ---------

func (h *ProjectHandler) List(c *gin.Context) {
	q := h.db.Preload("Technologies")

	if c.Query("featured") == "true" {
		q = q.Where("featured = true")
	}

	if search := strings.TrimSpace(strings.ToLower(c.Query("query"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", like, like)
	}

	var projects []models.Project
	if err := q.Order("sort_order ASC, id ASC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "failed_to_list_projects", "Could not list projects.")
		return
	}

	httpresp.List(c, projects)
}

func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var project models.Project
	if err := h.db.Preload("Technologies").
		Where("slug = ?", slug).
		First(&project).Error; err != nil {

		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	httpresp.OK(c, project)
}

// --------- Admin ---------

func (h *ProjectHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid project payload.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "slug_already_exists", "A project with this slug already exists.")
		return
	}

	techs, err := h.loadTechnologies(req.TechnologyIDs)
	if err != nil {
		httperr.BadRequest(c, "unknown_technology", "One or more technology ids do not exist.")
		return
	}

	project := models.Project{
		Title:        req.Title,
		Slug:         slug,
		Summary:      req.Summary,
		Description:  req.Description,
		RepoURL:      req.RepoURL,
		LiveURL:      req.LiveURL,
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
		Technologies: techs,
	}

	if err := h.db.Create(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_create_project", "Could not create the project.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "project_created",
		Entity:   "project",
		EntityID: &project.ID,
	})

	httpresp.Created(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid project id.")
		return
	}

	var project models.Project
	if err := h.db.First(&project, id).Error; err != nil {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid project payload.")
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Summary != nil {
		project.Summary = *req.Summary
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.RepoURL != nil {
		project.RepoURL = *req.RepoURL
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.SortOrder != nil {
		project.SortOrder = *req.SortOrder
	}

	if err := h.db.Save(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_update_project", "Could not update the project.")
		return
	}

	if req.TechnologyIDs != nil {
		techs, err := h.loadTechnologies(*req.TechnologyIDs)
		if err != nil {
			httperr.BadRequest(c, "unknown_technology", "One or more technology ids do not exist.")
			return
		}
		if err := h.db.Model(&project).Association("Technologies").Replace(techs); err != nil {
			httperr.Internal(c, "failed_to_update_project", "Could not update project technologies.")
			return
		}
		project.Technologies = techs
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "project_updated",
		Entity:   "project",
		EntityID: &project.ID,
	})

	httpresp.OK(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid project id.")
		return
	}

	var project models.Project
	if err := h.db.First(&project, id).Error; err != nil {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	if err := h.db.Model(&project).Association("Technologies").Clear(); err != nil {
		httperr.Internal(c, "failed_to_delete_project", "Could not delete the project.")
		return
	}

	if err := h.db.Delete(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_project", "Could not delete the project.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "project_deleted",
		Entity:   "project",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// UploadCover accepts a JPEG/PNG file, converts it to WebP and stores it
// in the media bucket.
func (h *ProjectHandler) UploadCover(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid project id.")
		return
	}

	var project models.Project
	if err := h.db.First(&project, id).Error; err != nil {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A cover file is required.")
		return
	}
	if file.Size > maxCoverUpload {
		httperr.BadRequest(c, "file_too_large", "The cover must be at most 10 MiB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the upload.")
		return
	}
	defer src.Close()

	converted, err := media.ProcessCover(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The cover must be a valid JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("projects/%s-%s.webp", project.Slug, uuid.NewString()[:8])
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", converted)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the cover image.")
		return
	}

	project.CoverURL = url
	if err := h.db.Save(&project).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Could not save the cover URL.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "project_cover_uploaded",
		Entity:   "project",
		EntityID: &project.ID,
		Metadata: gin.H{"cover_url": url},
	})

	httpresp.OK(c, gin.H{"cover_url": url})
}

func (h *ProjectHandler) loadTechnologies(ids []uint) ([]models.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var techs []models.Technology
	if err := h.db.Where("id IN ?", ids).Find(&techs).Error; err != nil {
		return nil, err
	}
	if len(techs) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return techs, nil
}
