package service

import (
	"errors"
	"testing"

	"github.com/folio-next/internal/config"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		policy   config.PasswordPolicyConfig
		password string
		wantWeak bool
	}{
		{"empty policy allows anything", config.PasswordPolicyConfig{}, "x", false},
		{"min length ok", config.PasswordPolicyConfig{MinLength: 6}, "abcdef", false},
		{"min length too short", config.PasswordPolicyConfig{MinLength: 6}, "abcde", true},
		{"min length counts runes", config.PasswordPolicyConfig{MinLength: 6}, "密码密码密码", false},
		{"require upper missing", config.PasswordPolicyConfig{MinLength: 6, RequireUpper: true}, "abcdef", true},
		{"require upper present", config.PasswordPolicyConfig{MinLength: 6, RequireUpper: true}, "Abcdef", false},
		{"require number missing", config.PasswordPolicyConfig{MinLength: 6, RequireNumber: true}, "abcdef", true},
		{"require number present", config.PasswordPolicyConfig{MinLength: 6, RequireNumber: true}, "abcde1", false},
		{"require special missing", config.PasswordPolicyConfig{MinLength: 6, RequireSpecial: true}, "abcde1", true},
		{"require special present", config.PasswordPolicyConfig{MinLength: 6, RequireSpecial: true}, "abcde!", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.policy, tc.password)
			if tc.wantWeak {
				if !errors.Is(err, ErrWeakPassword) {
					t.Fatalf("expected weak password error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected password accepted, got %v", err)
			}
		})
	}
}
