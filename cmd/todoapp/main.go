// Package main is the entry point for todoapp. It wires all dependencies
// using samber/do v2, then runs either the interactive TUI (no arguments,
// on a terminal) or a single command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/console"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/tui"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

const (
	defaultProfile        = "local"
	serverShutdownTimeout = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	tuiLogFileName        = "todoapp.log"
)

// errReported marks a failure the user has already seen as a notice.
var errReported = errors.New("reported")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	interactive := len(args) == 0
	if interactive && !isTerminal() {
		return errors.New(usage)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile, config.WithConfigDir(os.Getenv("APP_CONFIG_DIR")))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.Log.File
	if interactive && logPath == "" {
		logPath = filepath.Join(os.TempDir(), tuiLogFileName)
	}
	logOut, closeLog, err := logging.OpenOutput(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	// Anything logging without a context logger must not reach the terminal.
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(logging.WithLogger(context.Background(), logger), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := initTelemetry(ctx, cfg, logOut)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	renderer, err := console.NewRenderer(cfg.UI.OutputFormat)
	if err != nil {
		return err
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	do.ProvideValue(injector, renderer)

	var tuiNotifier *tui.Notifier
	if interactive {
		tuiNotifier = tui.NewNotifier()
		do.ProvideValue[ports.Notifier](injector, tuiNotifier)
	} else {
		do.ProvideValue[ports.Notifier](injector, console.NewNotifier(os.Stdout, os.Stderr, renderer))
	}

	registerDependencies(injector, cfg, logger)

	if interactive {
		return runTUI(ctx, injector, tuiNotifier, renderer, logger)
	}
	return runCommand(ctx, injector, args, os.Stdout, logger)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func runTUI(ctx context.Context, injector do.Injector, notifier *tui.Notifier, renderer *console.Renderer, logger *slog.Logger) error {
	actions, err := do.Invoke[ports.Actions](injector)
	if err != nil {
		return fmt.Errorf("resolving actions: %w", err)
	}

	stopCallback, err := startCallback(ctx, injector, logger)
	if err != nil {
		logger.Warn("callback server unavailable; sign-in cannot complete in this session", slog.Any("error", err))
	} else {
		defer stopCallback()
	}

	logger.Info("starting TUI")
	return tui.Run(ctx, actions, notifier, renderer)
}

func initTelemetry(ctx context.Context, cfg *config.Config, out io.Writer) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Settings{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
		Out:         out,
	})
}
