package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func postLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Login(rec, req, nil)
	return rec
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_USER", "ops")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	rec := postLogin(t, `{"username":"ops","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Data.Token == "" {
		t.Fatalf("expected a token, got %s", rec.Body.String())
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	t.Setenv("ADMIN_USER", "ops")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	rec := postLogin(t, `{"username":"ops","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = postLogin(t, `{"username":"intruder","password":"s3cret"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	rec := postLogin(t, `{"username":"admin","password":"whatever"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	rec := postLogin(t, `not-json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
