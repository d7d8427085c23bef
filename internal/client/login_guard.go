package client

import "errors"

const defaultMaxLoginAttempts = 3

// ErrAttemptsExhausted 本地登录尝试次数用尽
var ErrAttemptsExhausted = errors.New("登录尝试次数已用尽")

// LoginGuard 客户端侧登录尝试计数器
// 连续失败达到上限后拒绝继续尝试，建议转入找回密码流程。
type LoginGuard struct {
	maxAttempts int
	failures    int
}

// NewLoginGuard 创建登录守卫，maxAttempts 小于 1 时使用默认值
func NewLoginGuard(maxAttempts int) *LoginGuard {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxLoginAttempts
	}
	return &LoginGuard{maxAttempts: maxAttempts}
}

// Allow 是否还允许尝试登录
func (g *LoginGuard) Allow() bool {
	return g.failures < g.maxAttempts
}

// Remaining 剩余尝试次数
func (g *LoginGuard) Remaining() int {
	remaining := g.maxAttempts - g.failures
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordFailure 记录一次失败，返回是否仍可继续尝试
func (g *LoginGuard) RecordFailure() bool {
	g.failures++
	return g.Allow()
}

// Reset 登录成功或转入找回密码后清零计数
func (g *LoginGuard) Reset() {
	g.failures = 0
}

// Check 无剩余次数时返回 ErrAttemptsExhausted
func (g *LoginGuard) Check() error {
	if !g.Allow() {
		return ErrAttemptsExhausted
	}
	return nil
}
