// Package command turns a hitpie command line into a request intent.
//
// It recognizes the get and post subcommands, validates the target URL
// and splits POST body tokens of the form key=value. Every failure is an
// *ArgumentError wrapping one of ErrUsage, ErrInvalidURL or
// ErrInvalidKeyValuePair, and is reported before any network call.
package command
