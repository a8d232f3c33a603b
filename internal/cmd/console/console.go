// Package console parses console command flags and runs the server.
package console

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/actext/console/internal/platform/config"
	"github.com/actext/console/internal/platform/otel"
	consoleweb "github.com/actext/console/internal/services/console"
)

// Config holds console command configuration.
type Config struct {
	HTTPAddr            string `env:"ACTEXT_CONSOLE_HTTP_ADDR"      envDefault:"localhost:8090"`
	APIBaseURL          string `env:"ACTEXT_CONSOLE_API_BASE_URL"   envDefault:"http://localhost:5000/api"`
	IdentitySigningKey  string `env:"ACTEXT_CONSOLE_SIGNING_KEY"`
	TrustForwardedProto bool   `env:"ACTEXT_CONSOLE_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Marketplace API base URL")
	fs.StringVar(&cfg.IdentitySigningKey, "signing-key", cfg.IdentitySigningKey, "Identity cookie signing key")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the console server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "console")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := consoleweb.NewServer(consoleweb.Config{
		HTTPAddr:            cfg.HTTPAddr,
		APIBaseURL:          cfg.APIBaseURL,
		IdentitySigningKey:  cfg.IdentitySigningKey,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init console server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve console: %w", err)
	}
	return nil
}
