package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/hitpie/packages/core/command"
	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/abdul-hamid-achik/hitpie/packages/core/runner"
	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request and print the response",
		Long: `Send a GET request to url and print the response.

Examples:
  hitpie get https://httpbin.org/get
  hitpie get https://httpbin.org/json --path slideshow.slides.#.title`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, args)
		},
	}
}

func newPostCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value ...]",
		Short: "Send key=value pairs as a JSON object and print the response",
		Long: `Send a POST request to url. Every key=value argument becomes a field of
a JSON object body; when a key repeats, the last value wins.

Examples:
  hitpie post https://httpbin.org/post name=hitpie
  hitpie post https://httpbin.org/post query="a=b" -H "X-Trace: 1"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, args)
		},
	}
}

func runRequest(cmd *cobra.Command, opts *options, args []string) error {
	intent, err := command.ParseArguments(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}

	clientCfg, err := opts.clientConfig(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	r, err := runner.NewRunner(&runner.Config{
		Client:   clientCfg,
		Output:   cmd.OutOrStdout(),
		JSONPath: opts.path,
		Logger:   newLogger(opts.verbose, cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}

	if err := r.Run(cmd.Context(), intent); err != nil {
		if http.IsTransportError(err) {
			return err
		}
		return &exitError{code: ExitFailure, err: err}
	}
	return nil
}

func (o *options) clientConfig(stdout io.Writer) (*config.Config, error) {
	override := &config.Config{
		Timeout: o.timeout,
		Proxy:   o.proxy,
		Headers: make(map[string]string, len(o.headers)),
		NoColor: config.BoolPtr(o.noColor || !isTerminal(stdout)),
	}
	if o.insecure {
		override.ValidateSSL = config.BoolPtr(false)
	}
	for _, h := range o.headers {
		name, value, err := config.ParseHeader(h)
		if err != nil {
			return nil, err
		}
		override.Headers[name] = value
	}
	return config.DefaultConfig(version).Merge(override), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger writes diagnostics to w: warnings by default, everything with
// verbose set.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
