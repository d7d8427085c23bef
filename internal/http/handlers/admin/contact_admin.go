package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// ListContactMessages 联系消息列表
func (h *Handler) ListContactMessages(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)

	messages, total, err := h.ContactService.ListAdmin(c.Query("status"), c.Query("search"), page, pageSize)
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OKWithPage(c, messages, response.BuildPagination(page, pageSize, total))
}

// GetContactMessage 联系消息详情
func (h *Handler) GetContactMessage(c *gin.Context) {
	message, err := h.ContactService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": message})
}

// UpdateContactMessageStatus 更新联系消息状态
func (h *Handler) UpdateContactMessageStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	message, err := h.ContactService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Message status updated", gin.H{"data": message})
}

// DeleteContactMessage 删除联系消息
func (h *Handler) DeleteContactMessage(c *gin.Context) {
	if err := h.ContactService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Message deleted", nil)
}
