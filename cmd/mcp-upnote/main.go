package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brbranch/upnote_mcp/internal/bootstrap"
	"github.com/brbranch/upnote_mcp/internal/config"
	"github.com/brbranch/upnote_mcp/internal/jsonrpc"
	"github.com/brbranch/upnote_mcp/internal/transport/http"
	"github.com/brbranch/upnote_mcp/internal/transport/stdio"
)

// ビルド時変数（-ldflags で変更可能）
var (
	defaultTransport = "stdio"
	version          = "dev"
)

// Options はCLI引数オプション
type Options struct {
	Transport  string
	Host       string
	Port       int
	ConfigPath string
}

func main() {
	var err error

	// 引数なしの場合はserveをデフォルト実行
	if len(os.Args) < 2 {
		err = run([]string{})
	} else {
		switch os.Args[1] {
		case "serve":
			err = run(os.Args[1:])
		case "debug":
			err = runDebugCmd(os.Args[2:])
		case "tripwire":
			err = runDebugCmd(append([]string{"--mode", "tripwire"}, os.Args[2:]...))
		case "url":
			err = runURLCmd(os.Args[2:])
		case "version", "-v", "--version":
			printVersion()
			return
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// printUsage prints the usage information
func printUsage() {
	fmt.Println(`mcp-upnote - UpNote MCP Server

Usage:
  mcp-upnote <command> [options]

Commands:
  serve     Start the MCP server (stdio or HTTP)
  debug     Run the debug wrapper around a real server (proxy mode)
  tripwire  Capture and summarize the first client bytes, then exit
  url       Build an UpNote x-callback-url (oneshot command)
  version   Print version information
  help      Print this help message

Serve Options:
  -t, --transport string   Transport type: stdio, http (default: stdio)
  --host string            HTTP host (default: 127.0.0.1)
  -p, --port int           HTTP port (default: 8765)
  -c, --config string      Config file path

Debug Options:
  --mode string            Wrapper mode: proxy, tripwire (default: proxy, env MCP_WRAPPER_MODE)
  --server string          Server command to wrap (default: this binary with "serve", env MCP_WRAPPER_SERVER)
  --log-dir string         Log directory (default: XDG state dir, env UPNOTE_MCP_LOG_DIR)

URL Options:
  -q, --query key=value    Query parameter (repeatable)
  --open                   Open the URL instead of printing it
  -c, --config string      Config file path

Examples:
  mcp-upnote serve
  mcp-upnote serve -t http -p 8080
  mcp-upnote debug --server "mcp-upnote serve"
  mcp-upnote tripwire
  mcp-upnote url note/new -q title=Hello -q text=World`)
}

// printVersion prints the version information
func printVersion() {
	fmt.Printf("mcp-upnote version %s\n", version)
}

// run は実際の処理を行う（テスト容易性のため分離）
func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler()
	defer cancel()

	return runServe(ctx, opts)
}

// parseFlags は引数をパースしてOptionsを返す
func parseFlags(args []string) (*Options, error) {
	fs := flag.NewFlagSet("mcp-upnote", flag.ContinueOnError)

	opts := &Options{}
	fs.StringVar(&opts.Transport, "transport", defaultTransport, "Transport type: stdio, http")
	fs.StringVar(&opts.Transport, "t", defaultTransport, "Transport type (shorthand)")
	fs.StringVar(&opts.Host, "host", "127.0.0.1", "HTTP host")
	fs.IntVar(&opts.Port, "port", 8765, "HTTP port")
	fs.IntVar(&opts.Port, "p", 8765, "HTTP port (shorthand)")
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file path")
	fs.StringVar(&opts.ConfigPath, "c", "", "Config file path (shorthand)")

	// serveサブコマンド確認（引数なしまたは"serve"で始まる場合のみ許可）
	var flagArgs []string
	if len(args) == 0 {
		// 引数なし: デフォルトでserve
		flagArgs = []string{}
	} else if args[0] == "serve" {
		flagArgs = args[1:]
	} else {
		return nil, fmt.Errorf("usage: mcp-upnote serve [options]")
	}

	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}

	// バリデーション
	if opts.Transport != "stdio" && opts.Transport != "http" {
		return nil, fmt.Errorf("invalid transport: %s (must be stdio or http)", opts.Transport)
	}
	if opts.Port < 1 || opts.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d (must be 1-65535)", opts.Port)
	}

	return opts, nil
}

// setupSignalHandler はSIGINT/SIGTERMを受けてcontextをキャンセルする
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}

// runServe はserveコマンドを実行
func runServe(ctx context.Context, opts *Options) error {
	// MCP_WRAPPER_MODEが設定されている場合はデバッグラッパーとして動く
	if mode := config.WrapperMode(); mode != "" {
		return runWrapper(ctx, mode, config.WrapperServer(), "")
	}

	services, err := bootstrap.Initialize(opts.ConfigPath)
	if err != nil {
		return err
	}

	handler := jsonrpc.New(services.NoteService)

	switch opts.Transport {
	case "stdio":
		server := stdio.New(handler)
		return server.Run(ctx)
	case "http":
		httpConfig := http.Config{
			Addr:        fmt.Sprintf("%s:%d", opts.Host, opts.Port),
			CORSOrigins: services.Config.HTTP.CORSOrigins,
		}
		server := http.New(handler, httpConfig)
		return server.Run(ctx)
	default:
		return fmt.Errorf("unknown transport: %s", opts.Transport)
	}
}
