package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req struct {
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "correct-password" {
				writeJSON(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Login successful",
				"token":   "test-token",
				"admin": map[string]interface{}{
					"id":       1,
					"username": "admin",
					"email":    "owner@example.com",
				},
			})
		case "/api/auth/verify":
			if r.Header.Get("Authorization") != "Bearer test-token" {
				writeJSON(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Token valid",
				"admin":   map[string]interface{}{"id": 1, "username": "admin"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	api := New(server.URL)
	ctx := context.Background()

	if _, err := api.Verify(ctx); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized before login, got %v", err)
	}

	result, err := api.Login(ctx, "correct-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token != "test-token" || api.Token() != "test-token" {
		t.Fatalf("expected token stored, got result=%q client=%q", result.Token, api.Token())
	}
	if result.Admin.Username != "admin" {
		t.Fatalf("unexpected admin info: %+v", result.Admin)
	}

	admin, err := api.Verify(ctx)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if admin.Username != "admin" {
		t.Fatalf("unexpected verify result: %+v", admin)
	}
}

func TestClientLoginWrongPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, "Invalid credentials")
	}))
	defer server.Close()

	api := New(server.URL)
	if _, err := api.Login(context.Background(), "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if api.Token() != "" {
		t.Fatalf("expected no token stored on failure, got %q", api.Token())
	}
}
