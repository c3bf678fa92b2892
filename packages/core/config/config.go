package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the client configuration handed to the request pipeline.
type Config struct {
	Timeout     time.Duration
	Headers     map[string]string // Default headers for all requests
	ValidateSSL *bool
	Proxy       string
	NoColor     *bool
}

// BoolPtr returns a pointer to b, for use in Config literals.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}

	// Boolean flags - only override if explicitly set in other config
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	result.Headers = make(map[string]string, len(c.Headers)+len(other.Headers))
	for k, v := range c.Headers {
		result.Headers[k] = v
	}
	for k, v := range other.Headers {
		result.Headers[k] = v
	}

	return &result
}

// ParseHeader splits a "Name: value" header argument.
func ParseHeader(s string) (string, string, error) {
	name, value, found := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", "", fmt.Errorf("invalid header %q: expected Name:Value", s)
	}
	return name, strings.TrimSpace(value), nil
}
