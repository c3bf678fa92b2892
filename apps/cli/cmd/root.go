package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/hitpie/packages/core/command"
	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// options holds the flags shared by every request subcommand.
type options struct {
	timeout  time.Duration
	headers  []string
	insecure bool
	proxy    string
	noColor  bool
	verbose  bool
	path     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hitpie",
		Short: "A tiny HTTP client for the terminal.",
		Long: `hitpie sends a single GET or POST request and prints the response
status line, headers and body. JSON bodies are pretty-printed and
highlighted.

Examples:
  hitpie get https://httpbin.org/get
  hitpie post https://httpbin.org/post name=hitpie lang=go
  hitpie get https://httpbin.org/json --path slideshow.title`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := command.ParseArguments(args)
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "Request timeout (e.g., 30s, 1m)")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "Extra request header as Name:Value (repeatable)")
	flags.BoolVarP(&opts.insecure, "insecure", "k", false, "Disable SSL certificate validation")
	flags.StringVar(&opts.proxy, "proxy", "", "Proxy URL for the request")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log request diagnostics to stderr")
	flags.StringVar(&opts.path, "path", "", "Print only this gjson path of a JSON body")

	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newPostCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitSuccess
	}

	noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
	output.NewConsoleFormatter(
		output.WithWriter(stderr),
		output.WithNoColor(noColor || !isTerminal(stderr)),
	).FormatError(err)

	code := exitCodeFor(err)
	if code == ExitUsageError {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}

// exitError carries an explicit exit code for failures that are neither
// command line nor transport errors.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitCodeFor maps err to an exit code. Anything not raised while running
// a request is a command line problem, including cobra's own flag and
// subcommand errors.
func exitCodeFor(err error) int {
	var ee *exitError
	switch {
	case errors.As(err, &ee):
		return ee.code
	case command.IsArgumentError(err):
		return ExitUsageError
	case http.IsTransportError(err):
		return ExitNetworkError
	default:
		return ExitUsageError
	}
}
