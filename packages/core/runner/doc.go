// Package runner executes a parsed request intent and renders the result.
//
// One invocation is one round-trip: the intent is turned into an HTTP
// request, sent with the configured client, and the response is printed
// by the console formatter. Nothing is retried.
package runner
