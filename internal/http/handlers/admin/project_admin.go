package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// ProjectRequest 项目创建/更新请求
type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	RepoURL     string   `json:"repo_url"`
	DemoURL     string   `json:"demo_url"`
	TechTags    []string `json:"tech_tags"`
	Status      string   `json:"status"`
	Featured    *bool    `json:"featured"`
	SortOrder   int      `json:"sort_order"`
}

func (r ProjectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Summary:     r.Summary,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		RepoURL:     r.RepoURL,
		DemoURL:     r.DemoURL,
		TechTags:    r.TechTags,
		Status:      r.Status,
		Featured:    r.Featured,
		SortOrder:   r.SortOrder,
	}
}

// ListProjects 后台项目列表
func (h *Handler) ListProjects(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)

	projects, total, err := h.ProjectService.ListAdmin(c.Query("status"), c.Query("search"), page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, projects, response.BuildPagination(page, pageSize, total))
}

// GetProject 后台项目详情
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.ProjectService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": project})
}

// CreateProject 创建项目
func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and slug are required")
		return
	}

	project, err := h.ProjectService.Create(req.toInput())
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.Created(c, "Project created", gin.H{"data": project})
}

// UpdateProject 更新项目
func (h *Handler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and slug are required")
		return
	}

	project, err := h.ProjectService.Update(c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Project updated", gin.H{"data": project})
}

// DeleteProject 删除项目
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.ProjectService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Project deleted", nil)
}
