// internal/app/system/auth/auth.go
//
// Admin gate for back-office routes. The platform treats authentication
// as an external concern: a request is admitted either because an
// upstream identity provider established an admin session, or because
// it carries the configured bearer credential. Handlers behind the gate
// never inspect credentials themselves.
package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	isAdminKey = "is_admin"
	subjectKey = "subject"
)

// Gate admits or rejects admin-scoped requests.
type Gate struct {
	store       *sessions.CookieStore
	sessionName string
	tokenHash   []byte
	log         *zap.Logger
}

// NewGate builds the admin gate. sessionKey signs the session cookie; a
// blank key gets a random one (sessions then die with the process,
// acceptable outside production). adminTokenHash is a bcrypt hash of
// the bearer credential; blank disables bearer access.
func NewGate(sessionKey, sessionName, domain string, secure bool, adminTokenHash string, log *zap.Logger) *Gate {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		log.Warn("no session key configured; generated an ephemeral one")
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Gate{
		store:       store,
		sessionName: sessionName,
		tokenHash:   []byte(adminTokenHash),
		log:         log,
	}
}

// RequireAdmin admits requests with an admin session or a valid bearer
// credential; everything else gets a plain 401.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.sessionAdmin(r) || g.bearerAdmin(r) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"admin credentials required"}}`))
	})
}

func (g *Gate) sessionAdmin(r *http.Request) bool {
	sess, err := g.store.Get(r, g.sessionName)
	if err != nil {
		return false
	}
	isAdmin, _ := sess.Values[isAdminKey].(bool)
	return isAdmin
}

func (g *Gate) bearerAdmin(r *http.Request) bool {
	if len(g.tokenHash) == 0 {
		return false
	}
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return false
	}
	token := strings.TrimSpace(h[len(prefix):])
	if token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.tokenHash, []byte(token)) == nil
}

// Grant marks the request's session as an admin session. Called by the
// external identity integration after it has verified the subject.
func (g *Gate) Grant(w http.ResponseWriter, r *http.Request, subject string) error {
	sess, _ := g.store.Get(r, g.sessionName)
	sess.Values[isAdminKey] = true
	sess.Values[subjectKey] = subject
	return sess.Save(r, w)
}

// Revoke clears the admin session.
func (g *Gate) Revoke(w http.ResponseWriter, r *http.Request) error {
	sess, _ := g.store.Get(r, g.sessionName)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
