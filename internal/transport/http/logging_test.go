package http

import (
	"strings"
	"testing"
)

func TestSanitizeBodyRedactsCredentialFields(t *testing.T) {
	body := []byte(`{"email":"reset@example.com","otp":"123456","password":"hunter2","note":"hello"}`)
	summary := sanitizeBody(body, "application/json")

	data, ok := summary.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	if data["otp"] != "redacted" {
		t.Fatalf("expected otp to be redacted, got %v", data["otp"])
	}
	if data["password"] != "redacted" {
		t.Fatalf("expected password to be redacted, got %v", data["password"])
	}
	if data["email"] != "reset@example.com" || data["note"] != "hello" {
		t.Fatalf("expected non-sensitive fields preserved, got %v", data)
	}
}

func TestSanitizeBodyRedactsNestedFields(t *testing.T) {
	body := []byte(`{"data":{"otp":"654321","profile":{"password":"secret"}}}`)
	summary := sanitizeBody(body, "application/json")

	data, ok := summary.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	inner, ok := data["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested map, got %T", data["data"])
	}
	if inner["otp"] != "redacted" {
		t.Fatalf("expected nested otp to be redacted, got %v", inner["otp"])
	}
	profile, ok := inner["profile"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested profile map, got %T", inner["profile"])
	}
	if profile["password"] != "redacted" {
		t.Fatalf("expected nested password to be redacted, got %v", profile["password"])
	}
}

func TestSanitizeBodyRedactsFormFields(t *testing.T) {
	body := []byte("email=reset%40example.com&otp=123456")
	summary := sanitizeBody(body, "application/x-www-form-urlencoded")

	data, ok := summary.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	if data["otp"] != "redacted" {
		t.Fatalf("expected otp to be redacted, got %v", data["otp"])
	}
	if data["email"] != "reset@example.com" {
		t.Fatalf("expected email preserved, got %v", data["email"])
	}
}

func TestSanitizeBodyEmpty(t *testing.T) {
	if summary := sanitizeBody(nil, "application/json"); summary != nil {
		t.Fatalf("expected nil summary for empty body, got %v", summary)
	}
}

func TestClampStringTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+100)
	clamped := clampString(long)
	if !strings.HasSuffix(clamped, "...(truncated)") {
		t.Fatalf("expected truncation marker, got suffix %q", clamped[len(clamped)-20:])
	}
	if len(clamped) > maxLoggedBody+len("...(truncated)") {
		t.Fatalf("expected clamped length, got %d", len(clamped))
	}
}
