package service

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-next/internal/cache"
	"github.com/folio-next/internal/config"
)

// LoginLimiter 登录失败退避限制器
// 连续失败达到阈值后封禁，封禁时长按失败轮次指数增长。
// Redis 未启用时退化为不限制。
type LoginLimiter struct {
	cfg config.LoginBackoffConfig
}

// NewLoginLimiter 创建登录限制器
func NewLoginLimiter(cfg config.LoginBackoffConfig) *LoginLimiter {
	return &LoginLimiter{cfg: cfg}
}

// Check 检查当前标识是否处于封禁期
func (l *LoginLimiter) Check(ctx context.Context, identifier string) error {
	client := cache.Client()
	if client == nil || identifier == "" {
		return nil
	}
	ttl, err := client.TTL(ctx, loginBlockKey(identifier)).Result()
	if err != nil {
		return nil
	}
	if ttl > 0 {
		return ErrLoginBlocked
	}
	return nil
}

// RecordFailure 记录一次失败，达到阈值时设置封禁
func (l *LoginLimiter) RecordFailure(ctx context.Context, identifier string) {
	client := cache.Client()
	if client == nil || identifier == "" {
		return
	}

	failKey := loginFailKey(identifier)
	count, err := client.Incr(ctx, failKey).Result()
	if err != nil {
		return
	}
	if count == 1 {
		_ = client.Expire(ctx, failKey, l.maxBlock()).Err()
	}

	maxAttempts := l.maxAttempts()
	if count < int64(maxAttempts) {
		return
	}

	// 超过阈值后每多失败一次，封禁时长翻倍
	block := l.baseBlock()
	for i := int64(maxAttempts); i < count; i++ {
		block *= 2
		if block >= l.maxBlock() {
			block = l.maxBlock()
			break
		}
	}
	_ = client.Set(ctx, loginBlockKey(identifier), count, block).Err()
}

// Reset 登录成功后清空失败计数与封禁
func (l *LoginLimiter) Reset(ctx context.Context, identifier string) {
	client := cache.Client()
	if client == nil || identifier == "" {
		return
	}
	_ = client.Del(ctx, loginFailKey(identifier), loginBlockKey(identifier)).Err()
}

// BlockRemaining 返回剩余封禁时长，未封禁时为 0
func (l *LoginLimiter) BlockRemaining(ctx context.Context, identifier string) time.Duration {
	client := cache.Client()
	if client == nil || identifier == "" {
		return 0
	}
	ttl, err := client.TTL(ctx, loginBlockKey(identifier)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

func (l *LoginLimiter) maxAttempts() int {
	if l.cfg.MaxAttempts <= 0 {
		return 3
	}
	return l.cfg.MaxAttempts
}

func (l *LoginLimiter) baseBlock() time.Duration {
	if l.cfg.BaseBlockSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(l.cfg.BaseBlockSeconds) * time.Second
}

func (l *LoginLimiter) maxBlock() time.Duration {
	if l.cfg.MaxBlockSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(l.cfg.MaxBlockSeconds) * time.Second
}

func loginFailKey(identifier string) string {
	return fmt.Sprintf("%s:login:fail:%s", cache.Prefix(), identifier)
}

func loginBlockKey(identifier string) string {
	return fmt.Sprintf("%s:login:block:%s", cache.Prefix(), identifier)
}
