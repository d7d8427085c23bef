package constants

// 登录日志状态常量
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// 登录日志失败原因常量
const (
	LoginLogFailReasonBadRequest         = "bad_request"
	LoginLogFailReasonCaptchaRequired    = "captcha_required"
	LoginLogFailReasonCaptchaInvalid     = "captcha_invalid"
	LoginLogFailReasonInvalidCredentials = "invalid_credentials"
	LoginLogFailReasonTooManyAttempts    = "too_many_attempts"
	LoginLogFailReasonAccountDisabled    = "account_disabled"
	LoginLogFailReasonInternalError      = "internal_error"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin         = "login"
	CaptchaSceneResetSendCode = "reset_send_code"
	CaptchaSceneContact       = "contact"
)

// 联系消息状态常量
const (
	ContactMessageStatusUnread   = "unread"
	ContactMessageStatusRead     = "read"
	ContactMessageStatusArchived = "archived"
)

// 技术栈分类常量
const (
	TechCategoryLanguage  = "language"
	TechCategoryFramework = "framework"
	TechCategoryTool      = "tool"
	TechCategoryDatabase  = "database"
	TechCategoryOther     = "other"
)

// 项目状态常量
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
	ProjectStatusArchived  = "archived"
)

// 队列常量
const (
	QueueDefault           = "default"
	QueueCritical          = "critical"
	TaskContactNotifyEmail = "contact:notify_email"
	TaskResetTokenSweep    = "auth:reset_token_sweep"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "folio"
)
