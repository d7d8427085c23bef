package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// TechStackRequest 技术栈条目创建/更新请求
type TechStackRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	Level     int    `json:"level"`
	IsVisible *bool  `json:"is_visible"`
	SortOrder int    `json:"sort_order"`
}

func (r TechStackRequest) toInput() service.TechStackInput {
	return service.TechStackInput{
		Name:      r.Name,
		Category:  r.Category,
		Icon:      r.Icon,
		Level:     r.Level,
		IsVisible: r.IsVisible,
		SortOrder: r.SortOrder,
	}
}

// ListTechStack 后台技术栈列表
func (h *Handler) ListTechStack(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)

	items, total, err := h.TechStackService.ListAdmin(c.Query("category"), page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// CreateTechStackItem 创建技术栈条目
func (h *Handler) CreateTechStackItem(c *gin.Context) {
	var req TechStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name is required")
		return
	}

	item, err := h.TechStackService.Create(req.toInput())
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.Created(c, "Tech stack item created", gin.H{"data": item})
}

// UpdateTechStackItem 更新技术栈条目
func (h *Handler) UpdateTechStackItem(c *gin.Context) {
	var req TechStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name is required")
		return
	}

	item, err := h.TechStackService.Update(c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Tech stack item not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Tech stack item updated", gin.H{"data": item})
}

// DeleteTechStackItem 删除技术栈条目
func (h *Handler) DeleteTechStackItem(c *gin.Context) {
	if err := h.TechStackService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Tech stack item not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Tech stack item deleted", nil)
}
