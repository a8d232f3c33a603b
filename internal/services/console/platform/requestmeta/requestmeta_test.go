package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSFalseForPlainRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTTPS(r) {
		t.Fatal("IsHTTPS() = true, want false")
	}
}

func TestIsHTTPSTrueForTLSRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.TLS = &tls.ConnectionState{}
	if !IsHTTPS(r) {
		t.Fatal("IsHTTPS() = false, want true")
	}
}

func TestForwardedProtoIgnoredWithoutPolicy(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(r) {
		t.Fatal("IsHTTPS() = true, want false when header is untrusted")
	}
}

func TestForwardedProtoHonoredWithPolicy(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "HTTPS")
	if !IsHTTPSWithPolicy(r, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("IsHTTPSWithPolicy() = false, want true")
	}
}

func TestNilRequestIsNotHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatal("IsHTTPS(nil) = true, want false")
	}
}
