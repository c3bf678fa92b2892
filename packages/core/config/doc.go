// Package config holds the client configuration for hitpie.
//
// It provides:
//   - Default values, including the identifying User-Agent and marker headers
//   - Merging of command line overrides onto the defaults
//   - Parsing of Name:Value header arguments
//
// There is no configuration file; every setting comes from flags.
package config
