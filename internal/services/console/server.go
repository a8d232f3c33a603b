// Package console assembles the ACText admin console HTTP server.
//
// The console is a thin browser frontend over the marketplace REST API:
// it holds no state of its own beyond the signed identity cookie, and
// every screen is derived from fresh fetches against the API.
package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/actext/console/internal/marketapi"
	"github.com/actext/console/internal/platform/timeouts"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/modules/dashboard"
	"github.com/actext/console/internal/services/console/modules/profile"
	"github.com/actext/console/internal/services/console/platform/httpx"
	"github.com/actext/console/internal/services/console/platform/identity"
	"github.com/actext/console/internal/services/console/platform/pagerender"
	"github.com/actext/console/internal/services/console/platform/requestmeta"
	"github.com/actext/console/internal/services/console/routepath"
	"github.com/actext/console/internal/services/console/templates"
)

// Config defines the inputs for the console server.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the marketplace REST API base, e.g. http://api:8080/api.
	APIBaseURL string
	// IdentitySigningKey signs the identity cookie. Rotating it signs
	// everyone out.
	IdentitySigningKey string
	// TrustForwardedProto accepts X-Forwarded-Proto from a fronting
	// proxy when deciding cookie security attributes.
	TrustForwardedProto bool
}

// Server hosts the console HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured console server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.IdentitySigningKey) == "" {
		return nil, errors.New("identity signing key is required")
	}

	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// NewHandler assembles the console routes. A missing API base URL
// degrades the feature modules instead of failing: pages render with
// empty collections and the health endpoint reports degraded.
func NewHandler(config Config) (http.Handler, error) {
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	codec := identity.NewCodec([]byte(config.IdentitySigningKey), policy)
	resolve := module.ResolveIdentity(codec.Read)

	var client *marketapi.Client
	if base := strings.TrimSpace(config.APIBaseURL); base != "" {
		client = marketapi.New(base, &http.Client{Timeout: timeouts.APIRequest})
	}

	modules := []module.Module{
		dashboard.New(client, resolve),
		profile.New(client, resolve, codec, policy),
	}

	mux := http.NewServeMux()
	seen := map[string]struct{}{}
	for _, m := range modules {
		if _, dup := seen[m.ID()]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = struct{}{}
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", m.ID(), err)
		}
		if mount.Handler == nil || mount.Prefix == "" {
			return nil, fmt.Errorf("module %q returned an empty mount", m.ID())
		}
		mux.Handle(mount.Prefix, mount.Handler)
		// Serve the bare path too so /admin works without a redirect
		// hop through /admin/.
		mux.Handle(strings.TrimSuffix(mount.Prefix, "/"), mount.Handler)
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, healthHandler(modules))
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", landingHandler(resolve))

	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic()), nil
}

// healthHandler aggregates module health. Any degraded module flips the
// report so orchestration can see a dead API dependency.
func healthHandler(modules []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		status := "ok"
		statusCode := http.StatusOK
		degraded := []string{}
		for _, m := range modules {
			reporter, ok := m.(module.HealthReporter)
			if !ok {
				continue
			}
			if !reporter.Healthy() {
				degraded = append(degraded, m.ID())
			}
		}
		if len(degraded) > 0 {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   status,
			"degraded": degraded,
		})
	}
}

// landingHandler renders the signed-out landing page, or points a
// signed-in viewer at their screens.
func landingHandler(resolve module.ResolveIdentity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewer identity.Identity
		if resolve != nil {
			viewer, _ = resolve(r)
		}
		page := templates.PageContext{
			Lang:     "en",
			Loc:      templates.DefaultLocalizer(),
			UserName: viewer.Name,
		}
		if err := pagerender.Write(w, r, pagerender.Page{
			Title:    "Welcome",
			Context:  page,
			Fragment: templates.Landing(viewer.Present(), viewer.IsAdmin),
		}); err != nil {
			log.Printf("landing render failed: %v", err)
			httpx.WriteError(w, err)
		}
	}
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without waiting for drains.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
