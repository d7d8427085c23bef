package service

import "errors"

// 业务错误哨兵，handler 层据此映射 HTTP 状态码。
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrWeakPassword       = errors.New("密码强度不足")
	ErrPasswordMismatch   = errors.New("两次输入的密码不一致")
	ErrInvalidEmail       = errors.New("邮箱格式不合法")
	ErrAccountDisabled    = errors.New("账号已禁用")

	// 重置验证码校验失败统一返回同一哨兵，避免泄露失败细节。
	ErrResetCodeInvalid = errors.New("验证码无效或已过期")
	ErrResetTooFrequent = errors.New("验证码发送过于频繁")

	ErrLoginBlocked = errors.New("登录失败次数过多，请稍后再试")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrEmailRecipientRejected    = errors.New("收件地址被拒绝")

	ErrCaptchaRequired = errors.New("需要验证码")
	ErrCaptchaInvalid  = errors.New("验证码校验失败")

	ErrInvalidInput = errors.New("参数不合法")
	ErrSlugExists   = errors.New("slug 已存在")
)
