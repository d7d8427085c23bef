package public

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/http/handlers/shared"
	"github.com/folio-next/internal/http/response"
)

// GetCaptcha 生成图形验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		response.NotFound(c, "Captcha is not enabled")
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	response.OK(c, "success", gin.H{
		"captcha_id": challenge.CaptchaID,
		"image":      challenge.ImageBase64,
	})
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, "ok", nil)
}
