package output

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// BodyRenderer writes a response body to w.
type BodyRenderer interface {
	Render(w io.Writer, body []byte) error
}

// RenderError means a renderer could not handle the body. It is never
// fatal: callers fall back to printing the raw body.
type RenderError struct {
	Renderer string
	Reason   string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Renderer, e.Reason)
}

type PlainText struct{}

func (PlainText) Render(w io.Writer, body []byte) error {
	_, err := w.Write(body)
	return err
}

// HighlightedJSON indents a JSON body and, when Color is set, adds ANSI
// syntax colouring. Path optionally selects a sub-document using gjson
// path syntax.
type HighlightedJSON struct {
	Color bool
	Path  string
}

func (h HighlightedJSON) Render(w io.Writer, body []byte) error {
	if !gjson.ValidBytes(body) {
		return &RenderError{Renderer: "json", Reason: "body is not valid JSON"}
	}

	if h.Path != "" {
		result := gjson.GetBytes(body, h.Path)
		if !result.Exists() {
			return &RenderError{Renderer: "json", Reason: fmt.Sprintf("path %q not found", h.Path)}
		}
		body = []byte(result.Raw)
	}

	out := pretty.Pretty(body)
	if h.Color {
		out = pretty.Color(out, nil)
	}

	_, err := w.Write(out)
	return err
}
