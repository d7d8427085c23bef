package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// ListProjects 公开项目列表，仅返回已发布项目
func (h *Handler) ListProjects(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	featuredOnly := strings.EqualFold(c.Query("featured"), "true")

	projects, total, err := h.ProjectService.ListPublic(featuredOnly, page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, projects, response.BuildPagination(page, pageSize, total))
}

// GetProject 按 slug 获取已发布项目详情
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.ProjectService.GetBySlug(c.Param("slug"))
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

// ListArtPieces 公开美术作品列表
func (h *Handler) ListArtPieces(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	year := 0
	if raw := c.Query("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			year = parsed
		}
	}

	pieces, total, err := h.ArtPieceService.ListPublic(year, page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, pieces, response.BuildPagination(page, pageSize, total))
}

// ListEducation 公开教育经历列表
func (h *Handler) ListEducation(c *gin.Context) {
	items, err := h.EducationService.List()
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": items})
}

// ListExperience 公开工作经历列表
func (h *Handler) ListExperience(c *gin.Context) {
	items, err := h.ExperienceService.List()
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": items})
}

// ListTechStack 公开技术栈列表
func (h *Handler) ListTechStack(c *gin.Context) {
	items, err := h.TechStackService.ListPublic(c.Query("category"))
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": items})
}

// SubmitContact 提交联系消息
func (h *Handler) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Subject string `json:"subject"`
		Body    string `json:"body" binding:"required"`
		shared.CaptchaFields
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, email and message body are required")
		return
	}

	if err := shared.CheckCaptcha(h.CaptchaService, constants.CaptchaSceneContact, req.CaptchaFields); err != nil {
		shared.RespondError(c, err)
		return
	}

	if _, err := h.ContactService.Submit(service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Body:     req.Body,
		ClientIP: c.ClientIP(),
	}); err != nil {
		shared.RespondError(c, err)
		return
	}

	response.Created(c, "Message received", nil)
}
