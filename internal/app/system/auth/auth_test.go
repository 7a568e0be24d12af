package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestGate(t *testing.T, tokenHash string) *auth.Gate {
	t.Helper()
	return auth.NewGate("test-session-key-0123456789abcdef", "impacthub_session", "", false, tokenHash, zap.NewNop())
}

func gated(g *auth.Gate) http.Handler {
	return g.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdmin_BearerToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-admin"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	h := gated(newTestGate(t, string(hash)))

	req := httptest.NewRequest("GET", "/admin/organizations", nil)
	req.Header.Set("Authorization", "Bearer segredo-admin")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid bearer credential: got %d, want 200", rec.Code)
	}
}

func TestRequireAdmin_RejectsHashAsCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-admin"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	h := gated(newTestGate(t, string(hash)))

	// The stored hash itself must never work as the credential.
	req := httptest.NewRequest("GET", "/admin/organizations", nil)
	req.Header.Set("Authorization", "Bearer "+string(hash))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("hash used as credential: got %d, want 401", rec.Code)
	}
}

func TestRequireAdmin_NoCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-admin"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	h := gated(newTestGate(t, string(hash)))

	for _, header := range []string{"", "Bearer ", "Bearer errado", "Basic abc"} {
		req := httptest.NewRequest("GET", "/admin/organizations", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got %d, want 401", header, rec.Code)
		}
	}
}

func TestRequireAdmin_BearerDisabledWhenNoHash(t *testing.T) {
	h := gated(newTestGate(t, ""))

	req := httptest.NewRequest("GET", "/admin/organizations", nil)
	req.Header.Set("Authorization", "Bearer qualquer-coisa")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bearer with no configured hash: got %d, want 401", rec.Code)
	}
}
