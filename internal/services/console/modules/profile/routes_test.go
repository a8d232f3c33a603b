package profile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/actext/console/internal/services/console/platform/requestmeta"
	"github.com/actext/console/internal/services/console/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newTestHandlers(nil, resolveAnonymous(), nil))
}

func TestRegisterRoutesProfilePathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newTestHandlers(seededGateway(), resolveAs(viewerMina()), nil))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "profile get", method: http.MethodGet, path: routepath.Profile, wantStatus: http.StatusOK},
		{name: "profile prefix get", method: http.MethodGet, path: routepath.ProfilePrefix, wantStatus: http.StatusOK},
		{name: "profile edit get", method: http.MethodGet, path: routepath.ProfileEdit, wantStatus: http.StatusOK},
		{name: "profile post", method: http.MethodPost, path: routepath.Profile, wantStatus: http.StatusFound},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.ProfilePrefix + "other", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestModuleMountUsesProfilePrefix(t *testing.T) {
	t.Parallel()

	mount, err := NewWithGateway(seededGateway(), resolveAs(viewerMina()), nil, requestmeta.SchemePolicy{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ProfilePrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.ProfilePrefix)
	}
	if mount.Handler == nil {
		t.Fatalf("Handler = nil")
	}
}

func TestModuleID(t *testing.T) {
	t.Parallel()

	if got := New(nil, nil, nil, requestmeta.SchemePolicy{}).ID(); got != "profile" {
		t.Fatalf("ID() = %q, want %q", got, "profile")
	}
}

func TestModuleHealthReflectsGateway(t *testing.T) {
	t.Parallel()

	if New(nil, nil, nil, requestmeta.SchemePolicy{}).Healthy() {
		t.Fatalf("Healthy() = true for nil client, want false")
	}
	if !NewWithGateway(seededGateway(), nil, nil, requestmeta.SchemePolicy{}).Healthy() {
		t.Fatalf("Healthy() = false for live gateway, want true")
	}
}
