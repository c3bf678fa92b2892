package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/hitpie/packages/http"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer   io.Writer
	noColor  bool
	jsonPath string
	logger   *slog.Logger
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// paint builds an attribute set that follows this formatter's writer
// rather than the package-wide setting, which only looks at stdout.
func (f *ConsoleFormatter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// WithJSONPath limits JSON bodies to the sub-document at path.
func WithJSONPath(path string) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.jsonPath = path
	}
}

func WithLogger(l *slog.Logger) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.logger = l
	}
}

// RendererFor picks the body renderer for resp. Only application/json
// bodies are highlighted; an unparsable Content-Type means plain text.
func (f *ConsoleFormatter) RendererFor(resp *http.Response) BodyRenderer {
	mediaType, err := resp.MediaType()
	if err != nil {
		f.logger.Warn("cannot parse content type, printing raw body",
			"content_type", resp.ContentType(), "error", err)
		return PlainText{}
	}
	if mediaType == "application/json" {
		return HighlightedJSON{Color: !f.noColor, Path: f.jsonPath}
	}
	return PlainText{}
}

// FormatResponse prints the status line, the headers and the body of
// resp. Headers come out sorted by name, since net/http does not keep the
// order the server sent them in; repeated values keep their received order.
// Only write failures are returned.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response) error {
	bold := f.paint(color.Bold).SprintFunc()
	cyan := f.paint(color.FgCyan).SprintFunc()

	if _, err := fmt.Fprintf(f.writer, "%s %s\n", bold(resp.Proto), f.statusColor(resp).Sprint(resp.Status)); err != nil {
		return err
	}

	for _, h := range resp.Headers {
		if _, err := fmt.Fprintf(f.writer, "%s: %s\n", cyan(h.Name), h.Value); err != nil {
			return err
		}
	}

	if len(resp.Body) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(f.writer); err != nil {
		return err
	}

	body := f.renderBody(resp)
	if !bytes.HasSuffix(body, []byte("\n")) {
		body = append(body, '\n')
	}
	_, err := f.writer.Write(body)
	return err
}

func (f *ConsoleFormatter) renderBody(resp *http.Response) []byte {
	var buf bytes.Buffer
	err := f.RendererFor(resp).Render(&buf, resp.Body)
	if err == nil {
		return buf.Bytes()
	}

	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		f.logger.Warn("falling back to raw body", "error", renderErr)
	} else {
		f.logger.Warn("rendering body failed, printing raw body", "error", err)
	}
	return append([]byte(nil), resp.Body...)
}

func (f *ConsoleFormatter) statusColor(resp *http.Response) *color.Color {
	switch {
	case resp.IsSuccess():
		return f.paint(color.FgGreen, color.Bold)
	case resp.IsRedirect():
		return f.paint(color.FgCyan, color.Bold)
	case resp.IsClientError():
		return f.paint(color.FgYellow, color.Bold)
	case resp.IsServerError():
		return f.paint(color.FgRed, color.Bold)
	default:
		return f.paint(color.Bold)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.paint(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
