package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ResetStage 找回密码流程阶段
type ResetStage string

const (
	StageEmail    ResetStage = "email"
	StageCode     ResetStage = "code"
	StagePassword ResetStage = "password"
	StageSuccess  ResetStage = "success"
)

const defaultResendCooldown = 60 * time.Second

// 流程错误
var (
	ErrWrongStage     = errors.New("当前阶段不允许该操作")
	ErrResendCooldown = errors.New("重新发送仍在冷却中")
)

// ResetFlow 找回密码流程控制器
// 按 邮箱 -> 验证码 -> 新密码 -> 完成 推进，重发验证码受冷却限制。
type ResetFlow struct {
	api            *Client
	stage          ResetStage
	email          string
	code           string
	resendCooldown time.Duration
	lastSentAt     time.Time
	nowFunc        func() time.Time
}

// ResetFlowOption 流程可选配置
type ResetFlowOption func(*ResetFlow)

// WithResendCooldown 自定义重发冷却时长
func WithResendCooldown(cooldown time.Duration) ResetFlowOption {
	return func(f *ResetFlow) {
		if cooldown > 0 {
			f.resendCooldown = cooldown
		}
	}
}

// WithClock 注入时钟，便于测试
func WithClock(nowFunc func() time.Time) ResetFlowOption {
	return func(f *ResetFlow) {
		if nowFunc != nil {
			f.nowFunc = nowFunc
		}
	}
}

// NewResetFlow 创建找回密码流程
func NewResetFlow(api *Client, opts ...ResetFlowOption) *ResetFlow {
	f := &ResetFlow{
		api:            api,
		stage:          StageEmail,
		resendCooldown: defaultResendCooldown,
		nowFunc:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Stage 当前阶段
func (f *ResetFlow) Stage() ResetStage {
	return f.stage
}

// Email 已提交的邮箱
func (f *ResetFlow) Email() string {
	return f.email
}

// SubmitEmail 提交邮箱并请求发送验证码，成功后进入验证码阶段
func (f *ResetFlow) SubmitEmail(ctx context.Context, email string) error {
	if f.stage != StageEmail {
		return ErrWrongStage
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: 邮箱不能为空", ErrWrongStage)
	}

	if err := f.api.RequestResetCode(ctx, email); err != nil {
		return err
	}

	f.email = email
	f.stage = StageCode
	f.lastSentAt = f.nowFunc()
	return nil
}

// ResendRemaining 距离允许重发的剩余时长，可重发时为 0
func (f *ResetFlow) ResendRemaining() time.Duration {
	if f.lastSentAt.IsZero() {
		return 0
	}
	elapsed := f.nowFunc().Sub(f.lastSentAt)
	if elapsed >= f.resendCooldown {
		return 0
	}
	return f.resendCooldown - elapsed
}

// ResendCode 重新发送验证码，受冷却限制
func (f *ResetFlow) ResendCode(ctx context.Context) error {
	if f.stage != StageCode {
		return ErrWrongStage
	}
	if remaining := f.ResendRemaining(); remaining > 0 {
		return fmt.Errorf("%w: %s", ErrResendCooldown, remaining.Round(time.Second))
	}

	if err := f.api.RequestResetCode(ctx, f.email); err != nil {
		return err
	}
	f.lastSentAt = f.nowFunc()
	return nil
}

// SubmitCode 提交验证码，通过后进入新密码阶段
func (f *ResetFlow) SubmitCode(ctx context.Context, code string) error {
	if f.stage != StageCode {
		return ErrWrongStage
	}
	code = strings.TrimSpace(code)

	if err := f.api.VerifyResetCode(ctx, f.email, code); err != nil {
		return err
	}

	f.code = code
	f.stage = StagePassword
	return nil
}

// SubmitPassword 提交新密码完成重置，成功后进入完成阶段
func (f *ResetFlow) SubmitPassword(ctx context.Context, newPassword, confirmPassword string) error {
	if f.stage != StagePassword {
		return ErrWrongStage
	}

	if err := f.api.ResetPassword(ctx, f.email, f.code, newPassword, confirmPassword); err != nil {
		// 验证码可能在此期间过期，退回验证码阶段
		if errors.Is(err, ErrBadRequest) && strings.Contains(err.Error(), "reset code") {
			f.stage = StageCode
			f.code = ""
		}
		return err
	}

	f.code = ""
	f.stage = StageSuccess
	return nil
}

// Restart 换邮箱重来，仅允许从验证码阶段退回邮箱阶段
func (f *ResetFlow) Restart() error {
	if f.stage != StageCode {
		return ErrWrongStage
	}
	f.stage = StageEmail
	f.email = ""
	f.code = ""
	f.lastSentAt = time.Time{}
	return nil
}
