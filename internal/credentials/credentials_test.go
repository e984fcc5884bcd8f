package credentials_test

import (
	"fmt"
	"strings"
	"testing"

	"habitask/internal/credentials"
)

func TestNew_ReturnsUserAndToken(t *testing.T) {
	c := credentials.New("french", "fries")

	if c.UserID() != "french" {
		t.Errorf("expected user %q, got %q", "french", c.UserID())
	}
	if c.APIToken() != "fries" {
		t.Errorf("expected token %q, got %q", "fries", c.APIToken())
	}
}

func TestNew_NoNormalization(t *testing.T) {
	c := credentials.New("  User ", "")

	if c.UserID() != "  User " {
		t.Errorf("expected user to be kept as-is, got %q", c.UserID())
	}
	if c.APIToken() != "" {
		t.Errorf("expected empty token, got %q", c.APIToken())
	}
}

func TestString_RedactsToken(t *testing.T) {
	c := credentials.New("user-1", "s3cret")

	s := fmt.Sprint(c)
	if strings.Contains(s, "s3cret") {
		t.Errorf("token leaked in %q", s)
	}
	if !strings.Contains(s, "user-1") {
		t.Errorf("expected user ID in %q", s)
	}
}
