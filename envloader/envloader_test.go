package envloader

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatConfig struct {
	Region     string        `env:"TEST_REGION" envDefault:"us-east-1"`
	Port       int           `env:"TEST_PORT" envDefault:"8080"`
	Debug      bool          `env:"TEST_DEBUG" envDefault:"false"`
	Ratio      float64       `env:"TEST_RATIO" envDefault:"0.5"`
	RetryDelay time.Duration `env:"TEST_RETRY_DELAY" envDefault:"100ms"`
	Untagged   string
}

func TestLoad_DefaultsApply(t *testing.T) {
	var cfg flatConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryDelay)
	assert.Empty(t, cfg.Untagged)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TEST_REGION", "eu-west-1")
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_DEBUG", "TRUE")
	t.Setenv("TEST_RETRY_DELAY", "2s")

	var cfg flatConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
}

func TestLoad_DefaultDoesNotStompPresetValues(t *testing.T) {
	cfg := flatConfig{Region: "sa-east-1", Port: 3000}
	require.NoError(t, Load(&cfg))

	// Values set before the call (e.g. from a config file) survive when the
	// env var is absent; only zero fields pick up the default.
	assert.Equal(t, "sa-east-1", cfg.Region)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryDelay)
}

func TestLoad_NestedStructs(t *testing.T) {
	type inner struct {
		Table string `env:"TEST_TABLE" envDefault:"campaigns"`
	}
	type outer struct {
		Inner    inner
		InnerPtr *inner
	}

	var cfg outer
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "campaigns", cfg.Inner.Table)
	require.NotNil(t, cfg.InnerPtr)
	assert.Equal(t, "campaigns", cfg.InnerPtr.Table)
}

func TestLoad_InvalidConversionReportsField(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg flatConfig
	err := Load(&cfg)
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "Port", fieldErr.FieldName)
	assert.Equal(t, "TEST_PORT", fieldErr.EnvVar)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("TEST_RETRY_DELAY", "fast")

	var cfg flatConfig
	err := Load(&cfg)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "RetryDelay", fieldErr.FieldName)
}

func TestLoad_RejectsNonPointer(t *testing.T) {
	var cfg flatConfig
	err := Load(cfg)

	var invalid *InvalidConfigError
	require.True(t, errors.As(err, &invalid))
}

func TestLoad_UnsupportedFieldType(t *testing.T) {
	type withMap struct {
		Tags map[string]string `env:"TEST_TAGS" envDefault:"a=b"`
	}
	t.Setenv("TEST_TAGS", "x=y")

	var cfg withMap
	err := Load(&cfg)
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Setenv("TEST_PORT", "boom")

	var cfg flatConfig
	assert.Panics(t, func() { MustLoad(&cfg) })
}
