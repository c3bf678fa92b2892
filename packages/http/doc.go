// Package http provides the HTTP client used by hitpie.
//
// It wraps the standard library's http package with additional features:
//   - Configurable timeouts, proxy and TLS verification
//   - HTTP/2 negotiation over TLS
//   - Default identifying headers and a per-request id
//   - Request building from a parsed command intent
//   - Responses with ordered headers and a parsed media type
package http
