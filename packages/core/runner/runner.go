package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/hitpie/packages/core/command"
	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/abdul-hamid-achik/hitpie/packages/output"
)

type Runner struct {
	client    *http.Client
	formatter *output.ConsoleFormatter
	logger    *slog.Logger
	config    *Config
}

type Config struct {
	Client   *config.Config
	Output   io.Writer
	JSONPath string
	Logger   *slog.Logger
}

func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Client == nil {
		cfg.Client = config.DefaultConfig("dev")
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	clientOpts := []http.ClientOption{
		http.WithDefaultHeaders(cfg.Client.Headers),
		http.WithValidateSSL(cfg.Client.GetValidateSSL()),
	}
	if cfg.Client.Timeout > 0 {
		clientOpts = append(clientOpts, http.WithTimeout(cfg.Client.Timeout))
	}
	if cfg.Client.Proxy != "" {
		clientOpts = append(clientOpts, http.WithProxy(cfg.Client.Proxy))
	}

	client, err := http.NewClient(clientOpts...)
	if err != nil {
		return nil, err
	}

	formatter := output.NewConsoleFormatter(
		output.WithWriter(cfg.Output),
		output.WithNoColor(cfg.Client.GetNoColor()),
		output.WithJSONPath(cfg.JSONPath),
		output.WithLogger(cfg.Logger),
	)

	return &Runner{
		client:    client,
		formatter: formatter,
		logger:    cfg.Logger,
		config:    cfg,
	}, nil
}

// Execute sends the request described by intent. HTTP error statuses are
// returned as responses; only transport failures are errors.
func (r *Runner) Execute(ctx context.Context, intent *command.Intent) (*http.Response, error) {
	req, err := http.BuildRequestFromIntent(intent)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("sending request", "method", req.Method, "url", req.URL, "body_bytes", len(req.Body))

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		r.logger.Debug("request failed", "method", req.Method, "url", req.URL, "error", err)
		return nil, err
	}

	r.logger.Debug("received response",
		"status", resp.StatusCode,
		"proto", resp.Proto,
		"body_bytes", len(resp.Body),
		"duration_ms", resp.DurationMs(),
	)
	return resp, nil
}

// Run executes intent and prints the response.
func (r *Runner) Run(ctx context.Context, intent *command.Intent) error {
	resp, err := r.Execute(ctx, intent)
	if err != nil {
		return err
	}

	if err := r.formatter.FormatResponse(resp); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
