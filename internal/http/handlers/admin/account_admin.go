package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/service"
)

// ChangePasswordRequest 修改当前管理员密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword 修改当前管理员密码
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := shared.GetAdminID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Old and new passwords are required")
		return
	}

	if err := h.AuthService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			response.BadRequest(c, "Current password is incorrect")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// GetOverview 后台概览统计
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.OverviewService.Get()
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{"data": overview})
}
