// Command lsrelay relays completed PayPal orders to the LicenseSpring order
// webhook.
//
// Usage:
//
//	lsrelay serve               run the HTTP host
//	lsrelay replay FILE...      relay stored PayPal payloads and print results
//
// Configuration comes from the environment and an optional .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/lsrelay/pkg/config"
	"github.com/dmitrymomot/lsrelay/pkg/logger"
	"github.com/dmitrymomot/lsrelay/pkg/relay"
	"github.com/dmitrymomot/lsrelay/pkg/requestid"
)

type appConfig struct {
	Env               string `env:"APP_ENV" envDefault:"development"`
	Name              string `env:"APP_NAME" envDefault:"lsrelay"`
	ReplayConcurrency int    `env:"REPLAY_CONCURRENCY" envDefault:"4"`
}

var errUsage = errors.New("usage: lsrelay serve | lsrelay replay FILE...")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}

	var relayCfg relay.Config
	if err := config.Load(&relayCfg); err != nil {
		return err
	}

	switch args[0] {
	case "serve":
		log := newLogger(app, stdout)
		return serve(ctx, relayCfg, log)
	case "replay":
		// Results go to stdout, so logs go to stderr
		log := newLogger(app, stderr)
		return replay(ctx, app, relayCfg, log, args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func newLogger(app appConfig, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithOutput(out),
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}
