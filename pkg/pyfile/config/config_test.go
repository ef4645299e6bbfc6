package config

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestNew(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("New(\"\") expected error")
	}

	c, err := New("pyfile-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.service != "pyfile-test" {
		t.Errorf("service = %q, want %q", c.service, "pyfile-test")
	}
}

func TestSetGetDelete(t *testing.T) {
	keyring.MockInit()

	c, err := New("pyfile-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Set("", "value"); err == nil {
		t.Error("Set with empty key expected error")
	}

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := c.Get("key"); got != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
	if !c.Exists("key") {
		t.Error("Exists() = false, want true")
	}

	if err := c.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if c.Exists("key") {
		t.Error("Exists() = true after delete")
	}
	if got := c.Get("key"); got != "" {
		t.Errorf("Get() after delete = %q, want empty", got)
	}
}

func TestEndpointPasswords(t *testing.T) {
	keyring.MockInit()

	if got := Password("user", "example.com", 22); got != "" {
		t.Errorf("Password() = %q, want empty before SetPassword", got)
	}

	if err := SetPassword("user", "example.com", 22, "secret"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	if got := Password("user", "example.com", 22); got != "secret" {
		t.Errorf("Password() = %q, want %q", got, "secret")
	}

	// A different port is a different endpoint.
	if got := Password("user", "example.com", 2222); got != "" {
		t.Errorf("Password() = %q, want empty for other port", got)
	}
}
