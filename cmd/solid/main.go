// Command solid runs the SOLID principle examples and prints their narrative.
//
// Examples, logging, the journal destination and the product catalog database are configured
// with SOLID_* environment variables or the equivalent flags, see -help.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		log.Fatalf("solid: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	obs := newObservability(cfg, stderr)
	defer obs.shutdown(context.WithoutCancel(ctx))
	defer obs.reportMetrics(context.WithoutCancel(ctx))

	r := runner{cfg: cfg, obs: obs, out: stdout}

	for _, example := range cfg.Examples {
		if err = r.run(ctx, example); err != nil {
			return err
		}
	}

	return nil
}
