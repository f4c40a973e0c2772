package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/brbranch/upnote_mcp/internal/bootstrap"
)

// URLOptions holds parsed url command options
type URLOptions struct {
	Action     string
	Params     map[string]any
	Open       bool
	ConfigPath string
}

// queryFlags collects repeatable -q key=value flags
type queryFlags struct {
	params map[string]any
}

func (q *queryFlags) String() string {
	return fmt.Sprintf("%v", q.params)
}

func (q *queryFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("invalid query parameter %q (want key=value)", value)
	}
	if q.params == nil {
		q.params = map[string]any{}
	}
	q.params[key] = val
	return nil
}

// parseURLFlags parses command line arguments for the url command
func parseURLFlags(args []string) (*URLOptions, error) {
	fs := flag.NewFlagSet("url", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // suppress default error output

	opts := &URLOptions{}
	query := &queryFlags{}

	fs.Var(query, "query", "Query parameter key=value (repeatable)")
	fs.Var(query, "q", "Query parameter key=value (shorthand)")
	fs.BoolVar(&opts.Open, "open", false, "Open the URL instead of printing it")
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file path")
	fs.StringVar(&opts.ConfigPath, "c", "", "Config file path (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, fmt.Errorf("usage: mcp-upnote url [options] <action>")
	}
	opts.Action = rest[0]
	opts.Params = query.params

	return opts, nil
}

// runURLCmd executes the url command
func runURLCmd(args []string) error {
	opts, err := parseURLFlags(args)
	if err != nil {
		return err
	}

	services, err := bootstrap.Initialize(opts.ConfigPath)
	if err != nil {
		return err
	}

	url := services.Client.BuildURL(opts.Action, opts.Params)

	if opts.Open {
		return services.Client.Open(url)
	}

	fmt.Println(url)
	return nil
}
