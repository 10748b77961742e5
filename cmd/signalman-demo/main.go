// Package main runs a small signalman demo: it streams one signal of a test
// object, emits it and waits for the stream to deliver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoobzio/signalman"
	"github.com/zoobzio/signalman/bus"
	"github.com/zoobzio/signalman/internal/testobject"
)

type cliFlags struct {
	arg     string
	timeout time.Duration
	verbose bool
	metrics bool
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.arg, "arg", "hello", "Argument to emit")
	flag.DurationVar(&flags.timeout, "timeout", 5*time.Second, "How long to wait for delivery")
	flag.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&flags.metrics, "metrics", false, "Print bus metrics on exit")
	flag.Parse()
	return flags
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	flags := parseFlags()
	logger := setupLogger(flags.verbose)
	bus.Configure(bus.WithLogger(logger.With("component", "signalman.bus")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flags.timeout)
	defer cancel()

	if err := run(ctx, logger, flags.arg); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
	if flags.metrics {
		if err := printMetrics(); err != nil {
			logger.Error("gather metrics", "error", err)
			os.Exit(1)
		}
	}
}

func run(ctx context.Context, logger *slog.Logger, arg string) error {
	obj := testobject.New()
	defer obj.Dispose()

	stream, err := testobject.Something.Stream(obj)
	if err != nil {
		return fmt.Errorf("stream %s: %w", testobject.Something, err)
	}
	defer stream.Close()

	// Emit from another goroutine; the stream is the only suspension point
	go func() {
		if _, err := obj.Something(arg, false); err != nil {
			logger.Error("emit failed", "error", err)
		}
	}()

	args, err := stream.Next(ctx)
	if err != nil {
		return fmt.Errorf("wait for %s: %w", testobject.Something, err)
	}
	if args.V0 != arg {
		return fmt.Errorf("received %q, emitted %q", args.V0, arg)
	}
	logger.Info("signal received", "object", obj.String(), "signal", testobject.Something.Name(), "arg", args.V0)
	return nil
}

func printMetrics() error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(signalman.NewCollector("signalman"))
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetGauge().GetValue()
			if c := m.GetCounter(); c != nil {
				value = c.GetValue()
			}
			fmt.Printf("%s %g\n", mf.GetName(), value)
		}
	}
	return nil
}
