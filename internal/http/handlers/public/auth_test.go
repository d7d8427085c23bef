package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/provider"
	"github.com/folio-next/internal/repository"
	"github.com/folio-next/internal/service"
)

type captureSender struct {
	sentTo    []string
	sentCodes []string
}

func (s *captureSender) SendResetCode(toEmail, code string, expiresIn time.Duration) error {
	s.sentTo = append(s.sentTo, toEmail)
	s.sentCodes = append(s.sentCodes, code)
	return nil
}

func (s *captureSender) lastCode(t *testing.T) string {
	t.Helper()
	if len(s.sentCodes) == 0 {
		t.Fatalf("no reset code was sent")
	}
	return s.sentCodes[len(s.sentCodes)-1]
}

type authTestEnv struct {
	router *gin.Engine
	db     *gorm.DB
	sender *captureSender
	admin  *models.Admin
}

func setupAuthHandlerTest(t *testing.T) *authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_auth_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.AdminLoginLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{
		Username:     "owner",
		PasswordHash: string(hashed),
		Email:        "owner@example.com",
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "handler-test-secret-key-0123456789abcdef",
			ExpireHours: 24,
		},
		Email: config.EmailConfig{
			ResetCode: config.ResetCodeConfig{
				ExpireMinutes:       15,
				SendIntervalSeconds: 60,
				Length:              6,
			},
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6},
		},
	}

	adminRepo := repository.NewAdminRepository(db)
	loginLogRepo := repository.NewAdminLoginLogRepository(db)
	sender := &captureSender{}

	container := &provider.Container{
		Config:               cfg,
		AdminRepo:            adminRepo,
		AdminLoginLogRepo:    loginLogRepo,
		AuthService:          service.NewAuthService(cfg, adminRepo),
		PasswordResetService: service.NewPasswordResetService(cfg, adminRepo, sender),
		LoginLimiter:         service.NewLoginLimiter(cfg.Security.LoginBackoff),
		LoginLogService:      service.NewLoginLogService(loginLogRepo),
	}

	h := New(container)
	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/request-reset-code", h.RequestResetCode)
		auth.POST("/verify-reset-code", h.VerifyResetCode)
		auth.POST("/reset-password", h.ResetPassword)
		auth.GET("/verify", func(c *gin.Context) {
			c.Set("admin_id", admin.ID)
			h.Verify(c)
		})
	}

	return &authTestEnv{router: r, db: db, sender: sender, admin: admin}
}

func (env *authTestEnv) postJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v body %s", err, w.Body.String())
	}
	return resp
}

func TestLoginEndpoint(t *testing.T) {
	env := setupAuthHandlerTest(t)

	w := env.postJSON(t, "/api/auth/login", gin.H{"password": "correct-password"})
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["message"] != "Login successful" {
		t.Fatalf("message want Login successful got %v", resp["message"])
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("token should not be empty")
	}
	adminInfo, ok := resp["admin"].(map[string]interface{})
	if !ok {
		t.Fatalf("admin payload missing: %s", w.Body.String())
	}
	if adminInfo["email"] != "owner@example.com" {
		t.Fatalf("admin email want owner@example.com got %v", adminInfo["email"])
	}

	var stored models.Admin
	if err := env.db.First(&stored, env.admin.ID).Error; err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if stored.LastLoginAt == nil {
		t.Fatalf("last login time should be persisted")
	}
}

func TestLoginEndpointRejections(t *testing.T) {
	env := setupAuthHandlerTest(t)

	w := env.postJSON(t, "/api/auth/login", gin.H{"password": "wrong-password"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "Invalid credentials" {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	w = env.postJSON(t, "/api/auth/login", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d body %s", w.Code, w.Body.String())
	}

	var failed int64
	if err := env.db.Model(&models.AdminLoginLog{}).Where("status = ?", "failed").Count(&failed).Error; err != nil {
		t.Fatalf("count login logs failed: %v", err)
	}
	if failed != 2 {
		t.Fatalf("failed login logs want 2 got %d", failed)
	}
}

func TestVerifyAndLogoutEndpoints(t *testing.T) {
	env := setupAuthHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status want 200 got %d body %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["message"] != "Token valid" {
		t.Fatalf("unexpected verify message: %s", w.Body.String())
	}

	w2 := env.postJSON(t, "/api/auth/logout", gin.H{})
	if w2.Code != http.StatusOK {
		t.Fatalf("logout status want 200 got %d", w2.Code)
	}
}

func TestRequestResetCodeEndpoint(t *testing.T) {
	env := setupAuthHandlerTest(t)

	const sentMessage = "If an account with that email exists, a reset code has been sent"

	w := env.postJSON(t, "/api/auth/request-reset-code", gin.H{"email": "owner@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != sentMessage {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}
	if len(env.sender.sentCodes) != 1 {
		t.Fatalf("one reset code should be sent, got %d", len(env.sender.sentCodes))
	}

	// 未注册邮箱得到同样的响应，且不投递邮件
	w = env.postJSON(t, "/api/auth/request-reset-code", gin.H{"email": "stranger@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != sentMessage {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}
	if len(env.sender.sentCodes) != 1 {
		t.Fatalf("unknown email must not trigger a send")
	}

	w = env.postJSON(t, "/api/auth/request-reset-code", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}

func TestResetPasswordEndpointFlow(t *testing.T) {
	env := setupAuthHandlerTest(t)

	w := env.postJSON(t, "/api/auth/request-reset-code", gin.H{"email": "owner@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("request code status want 200 got %d", w.Code)
	}
	code := env.sender.lastCode(t)

	w = env.postJSON(t, "/api/auth/verify-reset-code", gin.H{"email": "owner@example.com", "resetCode": "000000"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong code status want 400 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "Invalid or expired reset code" {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	w = env.postJSON(t, "/api/auth/verify-reset-code", gin.H{"email": "owner@example.com", "resetCode": code})
	if w.Code != http.StatusOK {
		t.Fatalf("verify code status want 200 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["valid"] != true {
		t.Fatalf("valid flag want true: %s", w.Body.String())
	}

	w = env.postJSON(t, "/api/auth/reset-password", gin.H{
		"email":           "owner@example.com",
		"resetCode":       code,
		"newPassword":     "brand-new-pass",
		"confirmPassword": "different-pass",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mismatch status want 400 got %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Passwords do not match" {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	w = env.postJSON(t, "/api/auth/reset-password", gin.H{
		"email":           "owner@example.com",
		"resetCode":       code,
		"newPassword":     "short",
		"confirmPassword": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("weak password status want 400 got %d", w.Code)
	}

	w = env.postJSON(t, "/api/auth/reset-password", gin.H{
		"email":           "owner@example.com",
		"resetCode":       code,
		"newPassword":     "brand-new-pass",
		"confirmPassword": "brand-new-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset status want 200 got %d body %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "Password reset successfully" {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	// 旧验证码在重置成功后立即失效
	w = env.postJSON(t, "/api/auth/verify-reset-code", gin.H{"email": "owner@example.com", "resetCode": code})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("consumed code status want 400 got %d", w.Code)
	}

	w = env.postJSON(t, "/api/auth/login", gin.H{"password": "brand-new-pass"})
	if w.Code != http.StatusOK {
		t.Fatalf("login with new password want 200 got %d body %s", w.Code, w.Body.String())
	}
}
