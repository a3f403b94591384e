// Command web serves the JavaBite ordering site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/javabite/internal/cmd/web"
	"github.com/louisbranch/javabite/internal/platform/config"
)

func main() {
	log.SetPrefix("[WEB] ")

	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("web: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = webcmd.Run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatalf("web stopped: %v", err)
	}
}
