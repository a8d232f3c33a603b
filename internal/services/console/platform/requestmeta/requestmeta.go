// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"strings"
)

// SchemePolicy controls how request metadata resolves the request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to
// be considered, so header values from untrusted clients are ignored by
// default.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS
// under the provided scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	if !policy.TrustForwardedProto {
		return false
	}
	proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")))
	return proto == "https"
}
