package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// EducationRequest 教育经历创建/更新请求
type EducationRequest struct {
	School      string `json:"school" binding:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ExperienceRequest 工作经历创建/更新请求
type ExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (r EducationRequest) toInput() (service.EducationInput, bool) {
	start, ok := parseDate(r.StartDate)
	if !ok {
		return service.EducationInput{}, false
	}
	end, ok := parseDate(r.EndDate)
	if !ok {
		return service.EducationInput{}, false
	}
	return service.EducationInput{
		School:      r.School,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   start,
		EndDate:     end,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}, true
}

func (r ExperienceRequest) toInput() (service.ExperienceInput, bool) {
	start, ok := parseDate(r.StartDate)
	if !ok {
		return service.ExperienceInput{}, false
	}
	end, ok := parseDate(r.EndDate)
	if !ok {
		return service.ExperienceInput{}, false
	}
	return service.ExperienceInput{
		Company:     r.Company,
		Role:        r.Role,
		Location:    r.Location,
		StartDate:   start,
		EndDate:     end,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}, true
}

// ListEducation 后台教育经历列表
func (h *Handler) ListEducation(c *gin.Context) {
	items, err := h.EducationService.List()
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "success", gin.H{"data": items})
}

// CreateEducation 创建教育经历
func (h *Handler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "School is required")
		return
	}
	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Dates must use YYYY-MM-DD format")
		return
	}

	item, err := h.EducationService.Create(input)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Created(c, "Education entry created", gin.H{"data": item})
}

// UpdateEducation 更新教育经历
func (h *Handler) UpdateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "School is required")
		return
	}
	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Dates must use YYYY-MM-DD format")
		return
	}

	item, err := h.EducationService.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Education entry not found")
			return
		}
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "Education entry updated", gin.H{"data": item})
}

// DeleteEducation 删除教育经历
func (h *Handler) DeleteEducation(c *gin.Context) {
	if err := h.EducationService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Education entry not found")
			return
		}
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "Education entry deleted", nil)
}

// ListExperience 后台工作经历列表
func (h *Handler) ListExperience(c *gin.Context) {
	items, err := h.ExperienceService.List()
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "success", gin.H{"data": items})
}

// CreateExperience 创建工作经历
func (h *Handler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Company and role are required")
		return
	}
	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Dates must use YYYY-MM-DD format")
		return
	}

	item, err := h.ExperienceService.Create(input)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Created(c, "Experience entry created", gin.H{"data": item})
}

// UpdateExperience 更新工作经历
func (h *Handler) UpdateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Company and role are required")
		return
	}
	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Dates must use YYYY-MM-DD format")
		return
	}

	item, err := h.ExperienceService.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Experience entry not found")
			return
		}
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "Experience entry updated", gin.H{"data": item})
}

// DeleteExperience 删除工作经历
func (h *Handler) DeleteExperience(c *gin.Context) {
	if err := h.ExperienceService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Experience entry not found")
			return
		}
		shared.RespondError(c, err)
		return
	}
	response.OK(c, "Experience entry deleted", nil)
}
