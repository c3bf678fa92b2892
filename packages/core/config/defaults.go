package config

import "time"

const (
	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// PoweredBy is the value of the marker header sent with every request.
	PoweredBy = "hitpie"
)

// DefaultConfig returns a configuration with default values. version is
// embedded in the User-Agent header.
func DefaultConfig(version string) *Config {
	return &Config{
		Timeout: DefaultTimeout,
		Headers: map[string]string{
			"User-Agent":   "hitpie/" + version,
			"X-Powered-By": PoweredBy,
		},
		ValidateSSL: BoolPtr(true),
		Proxy:       "",
		NoColor:     BoolPtr(false),
	}
}
