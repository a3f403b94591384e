// Package cmd holds the helpers shared by service entrypoints: config
// loading and the telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/javabite/internal/platform/config"
	"github.com/louisbranch/javabite/internal/platform/otel"
	"github.com/louisbranch/javabite/internal/platform/timeouts"
)

// ServiceWeb names the browser-facing web service for telemetry and logs.
const ServiceWeb = "web"

// DotEnvFile is loaded before environment parsing when present.
const DotEnvFile = ".env"

// ParseConfig fills cfg from .env and the process environment. Struct tag
// defaults apply to anything left unset.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(DotEnvFile); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs applies command-line flags on top of the parsed environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, runs it, and flushes spans
// once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
