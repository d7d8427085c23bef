package public

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/service"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	shared.CaptchaFields
}

// RequestResetCodeRequest 申请重置验证码请求
type RequestResetCodeRequest struct {
	Email string `json:"email" binding:"required"`
	shared.CaptchaFields
}

// VerifyResetCodeRequest 校验重置验证码请求
type VerifyResetCodeRequest struct {
	Email     string `json:"email" binding:"required"`
	ResetCode string `json:"resetCode" binding:"required"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	ResetCode       string `json:"resetCode" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

const resetCodeSentMessage = "If an account with that email exists, a reset code has been sent"

// Login 管理员登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordLogin(c, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonBadRequest)
		response.BadRequest(c, "Password is required")
		return
	}

	ctx := c.Request.Context()
	clientIP := c.ClientIP()

	if h.LoginLimiter != nil {
		if err := h.LoginLimiter.Check(ctx, clientIP); err != nil {
			h.recordLogin(c, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonTooManyAttempts)
			response.TooManyRequests(c, "Too many failed attempts, try again later")
			return
		}
	}

	if err := shared.CheckCaptcha(h.CaptchaService, constants.CaptchaSceneLogin, req.CaptchaFields); err != nil {
		reason := constants.LoginLogFailReasonCaptchaInvalid
		if errors.Is(err, service.ErrCaptchaRequired) {
			reason = constants.LoginLogFailReasonCaptchaRequired
		}
		h.recordLogin(c, 0, constants.LoginLogStatusFailed, reason)
		shared.RespondError(c, err)
		return
	}

	admin, token, _, err := h.AuthService.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			if h.LoginLimiter != nil {
				h.LoginLimiter.RecordFailure(ctx, clientIP)
			}
			h.recordLogin(c, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonInvalidCredentials)
			response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, service.ErrAccountDisabled):
			h.recordLogin(c, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonAccountDisabled)
			response.Error(c, http.StatusForbidden, "Account disabled")
		default:
			h.recordLogin(c, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonInternalError)
			shared.RespondError(c, err)
		}
		return
	}

	if h.LoginLimiter != nil {
		h.LoginLimiter.Reset(ctx, clientIP)
	}
	h.recordLogin(c, admin.ID, constants.LoginLogStatusSuccess, "")

	response.OK(c, "Login successful", gin.H{
		"token": token,
		"admin": adminView(admin),
	})
}

// Verify 校验当前登录态
func (h *Handler) Verify(c *gin.Context) {
	adminID, ok := shared.GetAdminID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	admin, err := h.AuthService.GetAdminByID(adminID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	if admin == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	response.OK(c, "Token valid", gin.H{"admin": adminView(admin)})
}

// Logout 登出
// JWT 无服务端状态，登出仅由客户端丢弃令牌
func (h *Handler) Logout(c *gin.Context) {
	response.OK(c, "Logged out successfully", nil)
}

// RequestResetCode 申请发送密码重置验证码
func (h *Handler) RequestResetCode(c *gin.Context) {
	var req RequestResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	if err := shared.CheckCaptcha(h.CaptchaService, constants.CaptchaSceneResetSendCode, req.CaptchaFields); err != nil {
		shared.RespondError(c, err)
		return
	}

	if err := h.PasswordResetService.IssueResetCode(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			// 不暴露邮箱是否存在
			response.OK(c, resetCodeSentMessage, nil)
		case errors.Is(err, service.ErrInvalidEmail):
			response.BadRequest(c, "Invalid email address")
		case errors.Is(err, service.ErrResetTooFrequent):
			response.TooManyRequests(c, "Please wait before requesting another code")
		case errors.Is(err, service.ErrEmailRecipientRejected):
			response.OK(c, resetCodeSentMessage, nil)
		default:
			shared.RequestLog(c, "send_reset_code_failed", "error", err)
			response.Internal(c, "Failed to send reset code")
		}
		return
	}

	response.OK(c, resetCodeSentMessage, nil)
}

// VerifyResetCode 校验密码重置验证码
func (h *Handler) VerifyResetCode(c *gin.Context) {
	var req VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and reset code are required")
		return
	}

	if err := h.PasswordResetService.VerifyResetCode(req.Email, req.ResetCode); err != nil {
		// 未知邮箱与错误验证码同样响应
		if errors.Is(err, service.ErrResetCodeInvalid) ||
			errors.Is(err, service.ErrNotFound) ||
			errors.Is(err, service.ErrInvalidEmail) {
			response.BadRequest(c, "Invalid or expired reset code")
			return
		}
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "Reset code verified", gin.H{"valid": true})
}

// ResetPassword 提交新密码完成重置
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	err := h.PasswordResetService.CommitPasswordReset(req.Email, req.ResetCode, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			response.BadRequest(c, "Passwords do not match")
		case errors.Is(err, service.ErrWeakPassword):
			shared.RespondError(c, err)
		case errors.Is(err, service.ErrResetCodeInvalid),
			errors.Is(err, service.ErrNotFound),
			errors.Is(err, service.ErrInvalidEmail):
			response.BadRequest(c, "Invalid or expired reset code")
		default:
			shared.RespondError(c, err)
		}
		return
	}

	response.OK(c, "Password reset successfully", nil)
}

func (h *Handler) recordLogin(c *gin.Context, adminID uint, status, failReason string) {
	if h.LoginLogService == nil {
		return
	}
	requestID := ""
	if value, ok := c.Get("request_id"); ok {
		if id, idOK := value.(string); idOK {
			requestID = id
		}
	}
	if err := h.LoginLogService.Record(service.RecordLoginInput{
		AdminID:    adminID,
		Status:     status,
		FailReason: failReason,
		ClientIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		RequestID:  requestID,
	}); err != nil {
		shared.RequestLog(c, "record_login_log_failed", "error", err)
	}
}

func adminView(admin *models.Admin) gin.H {
	view := gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"email":    admin.Email,
	}
	if admin.LastLoginAt != nil {
		view["lastLogin"] = admin.LastLoginAt.Format(time.RFC3339)
	} else {
		view["lastLogin"] = nil
	}
	return view
}
