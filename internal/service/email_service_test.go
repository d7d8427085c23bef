package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/folio-next/internal/config"
)

func TestSendResetCodeRequiresEnabledConfig(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})
	if err := svc.SendResetCode("owner@example.com", "123456", 15*time.Minute); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}

	svc = NewEmailService(&config.EmailConfig{Enabled: true})
	if err := svc.SendResetCode("owner@example.com", "123456", 15*time.Minute); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}
}

func TestSendResetCodeRejectsInvalidRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@example.com",
	})
	if err := svc.SendResetCode("not-an-address", "123456", 15*time.Minute); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestBuildEmailMessage(t *testing.T) {
	msg := buildEmailMessage("Folio <noreply@example.com>", "owner@example.com", "Password Reset Code", "Your password reset code is: 123456")

	for _, expected := range []string{
		"From: Folio <noreply@example.com>",
		"To: owner@example.com",
		"MIME-Version: 1.0",
		"Your password reset code is: 123456",
	} {
		if !strings.Contains(msg, expected) {
			t.Fatalf("message missing %q:\n%s", expected, msg)
		}
	}
	if !strings.Contains(msg, "Subject:") {
		t.Fatalf("message missing subject header:\n%s", msg)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"smtp_550_no_such_recipient", errors.New("550 No such recipient here"), true},
		{"smtp_user_unknown", errors.New("SMTP 5.1.1 user unknown"), true},
		{"smtp_550_mailbox_unavailable", errors.New("550 mailbox unavailable"), true},
		{"network_timeout", errors.New("dial tcp timeout"), false},
		{"nil_error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}
