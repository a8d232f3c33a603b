// Package identity persists the signed-in user's cached identity record
// in a signed browser cookie.
//
// The cookie is the console's only client-side persisted state. The
// server remains the source of truth; the record here can go stale
// between login and the latest profile write, and the profile editor
// rewrites it after a successful save.
package identity

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/actext/console/internal/services/console/platform/requestmeta"
)

// CookieName is the canonical cookie holding the identity record.
const CookieName = "actext_user"

// Identity is the cached copy of the authenticated user's profile.
type Identity struct {
	Name    string
	Email   string
	IsAdmin bool
}

// Present reports whether the record carries any usable field.
func (id Identity) Present() bool {
	return id.Name != "" || id.Email != ""
}

type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"adm"`
	jwt.RegisteredClaims
}

// Codec reads and writes identity cookies signed with an HMAC key.
type Codec struct {
	signingKey []byte
	policy     requestmeta.SchemePolicy
}

// NewCodec builds a codec for the given signing key and scheme policy.
func NewCodec(signingKey []byte, policy requestmeta.SchemePolicy) *Codec {
	return &Codec{signingKey: signingKey, policy: policy}
}

// Read returns the stored identity record when present.
//
// Absence is an expected state: a missing cookie, an empty value, a
// malformed token, or a bad signature all read as absent without error.
func (c *Codec) Read(r *http.Request) (Identity, bool) {
	if c == nil || r == nil {
		return Identity{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Identity{}, false
	}
	raw := strings.TrimSpace(cookie.Value)
	if raw == "" {
		return Identity{}, false
	}
	var parsed claims
	token, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return c.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, false
	}
	id := Identity{
		Name:    strings.TrimSpace(parsed.Name),
		Email:   strings.TrimSpace(parsed.Email),
		IsAdmin: parsed.Admin,
	}
	if !id.Present() {
		return Identity{}, false
	}
	return id, true
}

// Write replaces the stored identity record.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, id Identity) {
	if c == nil || w == nil {
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  strings.TrimSpace(id.Name),
		Email: strings.TrimSpace(id.Email),
		Admin: id.IsAdmin,
	})
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires any stored identity record.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	if c == nil || w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
