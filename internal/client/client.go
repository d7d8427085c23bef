// Package client 提供访问 Folio-Next API 的 HTTP 客户端与登录/找回密码流程控制。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// 客户端侧错误
var (
	ErrUnauthorized   = errors.New("未登录或凭证无效")
	ErrTooManyRequest = errors.New("请求过于频繁")
	ErrBadRequest     = errors.New("请求参数无效")
	ErrServer         = errors.New("服务端错误")
)

// APIError 服务端返回的错误信息
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Is 将 HTTP 状态映射到客户端侧哨兵错误
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrTooManyRequest:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// AdminInfo 登录返回的管理员信息
type AdminInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	LastLogin string `json:"lastLogin"`
}

// LoginResult 登录结果
type LoginResult struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   AdminInfo `json:"admin"`
}

// Client Folio-Next API 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option 客户端可选配置
type Option func(*Client)

// WithHTTPClient 使用自定义 http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithToken 预置登录令牌
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// New 创建客户端
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token 当前持有的令牌
func (c *Client) Token() string {
	return c.token
}

// SetToken 更新令牌
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Login 密码登录，成功后客户端自动持有令牌
func (c *Client) Login(ctx context.Context, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Verify 校验当前令牌
func (c *Client) Verify(ctx context.Context) (*AdminInfo, error) {
	var result struct {
		Message string    `json:"message"`
		Admin   AdminInfo `json:"admin"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result.Admin, nil
}

// Logout 登出并丢弃本地令牌
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

// RequestResetCode 请求发送密码重置验证码
func (c *Client) RequestResetCode(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/request-reset-code", map[string]string{
		"email": email,
	}, nil)
}

// VerifyResetCode 校验重置验证码
func (c *Client) VerifyResetCode(ctx context.Context, email, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify-reset-code", map[string]string{
		"email":     email,
		"resetCode": code,
	}, nil)
}

// ResetPassword 提交新密码完成重置
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword, confirmPassword string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"email":           email,
		"resetCode":       code,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		message := ""
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil {
			message = envelope.Message
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
