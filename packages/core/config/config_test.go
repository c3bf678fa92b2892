package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("1.2.3")

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "hitpie/1.2.3", cfg.Headers["User-Agent"])
	assert.Equal(t, PoweredBy, cfg.Headers["X-Powered-By"])
	assert.True(t, cfg.GetValidateSSL())
	assert.False(t, cfg.GetNoColor())
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig("dev")

	t.Run("nil keeps base", func(t *testing.T) {
		assert.Same(t, base, base.Merge(nil))
	})

	t.Run("overrides set fields only", func(t *testing.T) {
		merged := base.Merge(&Config{
			Timeout:     5 * time.Second,
			ValidateSSL: BoolPtr(false),
			Headers:     map[string]string{"User-Agent": "custom", "X-Extra": "1"},
		})

		assert.Equal(t, 5*time.Second, merged.Timeout)
		assert.False(t, merged.GetValidateSSL())
		assert.False(t, merged.GetNoColor())
		assert.Equal(t, "custom", merged.Headers["User-Agent"])
		assert.Equal(t, "1", merged.Headers["X-Extra"])
		assert.Equal(t, PoweredBy, merged.Headers["X-Powered-By"])
	})

	t.Run("does not mutate base headers", func(t *testing.T) {
		base.Merge(&Config{Headers: map[string]string{"X-Extra": "1"}})
		_, ok := base.Headers["X-Extra"]
		assert.False(t, ok)
	})

	t.Run("nil pointers fall back to defaults", func(t *testing.T) {
		cfg := &Config{}
		assert.True(t, cfg.GetValidateSSL())
		assert.False(t, cfg.GetNoColor())
	})
}

func TestParseHeader(t *testing.T) {
	name, value, err := ParseHeader("X-Trace: abc:def")
	require.NoError(t, err)
	assert.Equal(t, "X-Trace", name)
	assert.Equal(t, "abc:def", value)

	_, _, err = ParseHeader("no-colon")
	assert.Error(t, err)

	_, _, err = ParseHeader(": value")
	assert.Error(t, err)
}
