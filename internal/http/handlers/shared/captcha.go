package shared

import "github.com/folio-next/internal/service"

// CaptchaFields 请求体中的验证码字段，按需内嵌至各 handler 请求结构
type CaptchaFields struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CheckCaptcha 按场景校验验证码，场景未启用时直接放行
func CheckCaptcha(svc *service.CaptchaService, scene string, fields CaptchaFields) error {
	if svc == nil || !svc.Enabled(scene) {
		return nil
	}
	return svc.Verify(scene, service.CaptchaVerifyPayload{
		CaptchaID:   fields.CaptchaID,
		CaptchaCode: fields.CaptchaCode,
	})
}
