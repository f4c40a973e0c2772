package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brbranch/upnote_mcp/internal/config"
	"github.com/brbranch/upnote_mcp/internal/debug"
)

// DebugOptions holds parsed debug command options
type DebugOptions struct {
	Mode   string
	Server string
	LogDir string
}

// parseDebugFlags parses command line arguments for the debug command
func parseDebugFlags(args []string) (*DebugOptions, error) {
	fs := flag.NewFlagSet("debug", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // suppress default error output

	opts := &DebugOptions{}
	fs.StringVar(&opts.Mode, "mode", "", "Wrapper mode: proxy|tripwire")
	fs.StringVar(&opts.Server, "server", "", "Server command to wrap")
	fs.StringVar(&opts.LogDir, "log-dir", "", "Log directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// 環境変数によるフォールバック
	if opts.Mode == "" {
		opts.Mode = config.WrapperMode()
	}
	if opts.Mode == "" {
		opts.Mode = "proxy"
	}
	if opts.Server == "" {
		opts.Server = config.WrapperServer()
	}
	if opts.LogDir == "" {
		opts.LogDir = os.Getenv(config.EnvLogDir)
	}
	if opts.LogDir == "" {
		opts.LogDir = config.DefaultLogDir()
	}

	if opts.Mode != "proxy" && opts.Mode != "tripwire" {
		return nil, fmt.Errorf("invalid mode: %s (must be proxy or tripwire)", opts.Mode)
	}

	return opts, nil
}

// runDebugCmd executes the debug command
func runDebugCmd(args []string) error {
	opts, err := parseDebugFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler()
	defer cancel()

	return runWrapper(ctx, opts.Mode, opts.Server, opts.LogDir)
}

// runWrapper runs the debug wrapper in the given mode
func runWrapper(ctx context.Context, mode, serverCommand, logDir string) error {
	if logDir == "" {
		logDir = os.Getenv(config.EnvLogDir)
	}
	if logDir == "" {
		logDir = config.DefaultLogDir()
	}

	session, err := debug.NewSession(logDir)
	if err != nil {
		return err
	}
	defer session.Close()
	defer fmt.Fprintf(os.Stderr, "%s\ndebug log: %s\n", strings.Repeat("=", 60), session.LogPath)

	logEnvironment(session)

	switch mode {
	case "tripwire":
		return debug.NewTripwire(session).Run()
	case "proxy":
		if serverCommand == "" {
			// ラップ対象未指定なら自分自身をserveで起動する
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to resolve own executable: %w", err)
			}
			serverCommand = exe + " serve"
		}
		proxy, err := debug.NewProxy(session, serverCommand)
		if err != nil {
			return err
		}
		return proxy.Run(ctx)
	default:
		return fmt.Errorf("invalid wrapper mode: %s", mode)
	}
}

// logEnvironment records startup diagnostics useful for client-side triage
func logEnvironment(session *debug.Session) {
	logger := session.Logger
	logger.Log(debug.CatStartup, "wrapper starting", "version", version, "session", session.ID)
	logger.Log(debug.CatEnv, "process", "pid", os.Getpid(), "ppid", os.Getppid())
	if wd, err := os.Getwd(); err == nil {
		logger.Log(debug.CatEnv, "working directory", "dir", wd)
	}
	for _, key := range []string{config.EnvWrapperMode, config.EnvWrapperServer, config.EnvLogDir, config.EnvDryRun} {
		if value := os.Getenv(key); value != "" {
			logger.Log(debug.CatEnv, "env", "key", key, "value", value)
		}
	}
}
