package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tashoecraft/rx-go/config"
)

type testConfig struct {
	URL      string        `env:"CONFIGTEST_URL,required"`
	Attempts int           `env:"CONFIGTEST_ATTEMPTS" envDefault:"3"`
	Interval time.Duration `env:"CONFIGTEST_INTERVAL" envDefault:"5s"`
}

type defaultsOnlyConfig struct {
	Addr string `env:"CONFIGTEST_ADDR" envDefault:":9091"`
	Path string `env:"CONFIGTEST_PATH" envDefault:"/metrics"`
}

// Tests mutate process environment via t.Setenv, so they must not run in
// parallel with each other.

func TestLoad_ParsesEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIGTEST_URL", "redis://localhost:6379/0")
	t.Setenv("CONFIGTEST_ATTEMPTS", "5")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
	assert.Equal(t, 5, cfg.Attempts)
	assert.Equal(t, 5*time.Second, cfg.Interval)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	config.Reset()

	var cfg defaultsOnlyConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9091", cfg.Addr)
	assert.Equal(t, "/metrics", cfg.Path)
}

func TestLoad_RequiredVariableMissing(t *testing.T) {
	config.Reset()

	var cfg testConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrFailedToParseConfig)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIGTEST_URL", "redis://first:6379")

	var first testConfig
	require.NoError(t, config.Load(&first))

	// The changed environment must not be visible through the cache.
	t.Setenv("CONFIGTEST_URL", "redis://second:6379")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)

	config.Reset()
	var third testConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "redis://second:6379", third.URL)
}

func TestLoad_NilTarget(t *testing.T) {
	err := config.Load[testConfig](nil)
	require.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad_PanicsOnMissingRequired(t *testing.T) {
	config.Reset()

	require.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}

func TestMustLoad_ReturnsConfig(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIGTEST_URL", "redis://localhost:6379")

	var cfg testConfig
	require.NotPanics(t, func() {
		config.MustLoad(&cfg)
	})
	assert.Equal(t, "redis://localhost:6379", cfg.URL)
}
