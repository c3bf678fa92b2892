// Package cmd implements the hitpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send key=value pairs as a JSON body and print the response
//   - version: Show hitpie version information
//
// Exit codes are 0 whenever a response arrives (any HTTP status), 64 for
// command line problems and 4 for network failures.
package cmd
