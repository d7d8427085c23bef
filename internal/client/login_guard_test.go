package client

import (
	"errors"
	"testing"
)

func TestLoginGuardThreeAttempts(t *testing.T) {
	guard := NewLoginGuard(3)

	if !guard.Allow() || guard.Remaining() != 3 {
		t.Fatalf("expected fresh guard to allow 3 attempts, remaining=%d", guard.Remaining())
	}

	if !guard.RecordFailure() {
		t.Fatal("expected attempts left after first failure")
	}
	if !guard.RecordFailure() {
		t.Fatal("expected attempts left after second failure")
	}
	if guard.RecordFailure() {
		t.Fatal("expected no attempts left after third failure")
	}

	if guard.Allow() {
		t.Fatal("expected guard to block further attempts")
	}
	if err := guard.Check(); !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("expected ErrAttemptsExhausted, got %v", err)
	}
	if guard.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", guard.Remaining())
	}
}

func TestLoginGuardReset(t *testing.T) {
	guard := NewLoginGuard(3)
	guard.RecordFailure()
	guard.RecordFailure()
	guard.RecordFailure()

	guard.Reset()
	if !guard.Allow() || guard.Remaining() != 3 {
		t.Fatalf("expected full attempts after reset, remaining=%d", guard.Remaining())
	}
}

func TestLoginGuardDefaultMax(t *testing.T) {
	guard := NewLoginGuard(0)
	if guard.Remaining() != 3 {
		t.Fatalf("expected default of 3 attempts, got %d", guard.Remaining())
	}
}
