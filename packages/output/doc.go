// Package output renders HTTP responses for the terminal.
//
// The ConsoleFormatter prints the status line, the response headers and
// the body. Bodies go through a BodyRenderer:
//   - PlainText: writes the body verbatim
//   - HighlightedJSON: pretty-prints and colours a JSON body
//
// A renderer that cannot handle a body returns a *RenderError and the
// formatter falls back to PlainText.
package output
