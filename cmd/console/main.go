// Package main starts the ACText admin console.
//
// This process owns route wiring for the admin dashboard and the user
// profile screens, translating marketplace API state for browsers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	consolecmd "github.com/actext/console/internal/cmd/console"
	"github.com/actext/console/internal/platform/config"
)

func main() {
	cfg, err := consolecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[CONSOLE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consolecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
