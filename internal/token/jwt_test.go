package token

import (
	"testing"
	"time"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("super-secret"), time.Hour)

	tok, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	gotUserID, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, "user-123")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), -1*time.Second)

	tok, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err = m.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret-a"), time.Hour)
	other := NewManager([]byte("secret-b"), time.Hour)

	tok, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err = other.Verify(tok); err == nil {
		t.Fatalf("expected error for token signed with a different secret, got nil")
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), time.Hour)

	if _, err := m.Verify("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
