package shared

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/response"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/service"
)

// RequestLog 记录带 request_id 的请求级日志
func RequestLog(c *gin.Context, msg string, keysAndValues ...interface{}) {
	fields := keysAndValues
	if requestID := requestIDOf(c); requestID != "" {
		fields = append([]interface{}{"request_id", requestID}, fields...)
	}
	logger.Warnw(msg, fields...)
}

// RespondError 将服务层错误映射为 HTTP 响应
func RespondError(c *gin.Context, err error) {
	status, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		RequestLog(c, "request failed", "path", c.FullPath(), "error", err)
	}
	response.Error(c, status, message)
}

func classifyError(err error) (int, string) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrAccountDisabled):
		return http.StatusForbidden, "Account disabled"
	case errors.Is(err, service.ErrLoginBlocked):
		return http.StatusTooManyRequests, "Too many failed attempts, try again later"
	case errors.Is(err, service.ErrResetTooFrequent):
		return http.StatusTooManyRequests, "Please wait before requesting another code"
	case errors.Is(err, service.ErrResetCodeInvalid):
		return http.StatusBadRequest, "Invalid or expired reset code"
	case errors.Is(err, service.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match"
	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, weakPasswordMessage(err)
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest, "Current password is incorrect"
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email address"
	case errors.Is(err, service.ErrCaptchaRequired):
		return http.StatusBadRequest, "Captcha required"
	case errors.Is(err, service.ErrCaptchaInvalid):
		return http.StatusBadRequest, "Captcha verification failed"
	case errors.Is(err, service.ErrSlugExists):
		return http.StatusBadRequest, "Slug already exists"
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, inputMessage(err)
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, service.ErrEmailServiceDisabled),
		errors.Is(err, service.ErrEmailServiceNotConfigured):
		return http.StatusInternalServerError, "Email service unavailable"
	case errors.Is(err, service.ErrEmailRecipientRejected):
		return http.StatusBadRequest, "Email address rejected by mail server"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// weakPasswordMessage 弱密码错误直接透出策略说明
func weakPasswordMessage(err error) string {
	if err != nil && err.Error() != service.ErrWeakPassword.Error() {
		return err.Error()
	}
	return "Password does not meet the policy"
}

func inputMessage(err error) string {
	if err != nil && err.Error() != service.ErrInvalidInput.Error() {
		return err.Error()
	}
	return "Invalid request"
}

func requestIDOf(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
