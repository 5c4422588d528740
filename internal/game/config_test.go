package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	require.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "paigow.hcl")
	src := `
table {
  starting_balance = 500
  min_bet          = 5
  max_bet          = 50
  dealer_strategy  = "best-front"
  seed             = 42
}

logging {
  level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 500, config.Table.StartingBalance)
	assert.Equal(t, 5, config.Table.MinBet)
	assert.Equal(t, 50, config.Table.MaxBet)
	assert.Equal(t, "best-front", config.Table.DealerStrategy)
	require.NotNil(t, config.Table.Seed)
	assert.Equal(t, int64(42), *config.Table.Seed)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "paigow.log", config.Logging.File, "unset values keep defaults")
}

func TestParseConfigPartialTable(t *testing.T) {
	t.Parallel()
	config, err := ParseConfig([]byte(`table { min_bet = 2 }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, 100, config.Table.StartingBalance)
	assert.Equal(t, 2, config.Table.MinBet)
	assert.Equal(t, "top-five", config.Table.DealerStrategy)
	assert.Nil(t, config.Table.Seed)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig([]byte(`table {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = ParseConfig([]byte(`table { colour = "red" }`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero balance", func(c *Config) { c.Table.StartingBalance = 0 }, "starting balance"},
		{"negative min bet", func(c *Config) { c.Table.MinBet = -1 }, "minimum bet"},
		{"max below min", func(c *Config) { c.Table.MinBet = 10; c.Table.MaxBet = 5 }, "maximum bet"},
		{"unknown strategy", func(c *Config) { c.Table.DealerStrategy = "house-way" }, "dealer strategy"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			config := DefaultConfig()
			tt.modify(config)
			assert.ErrorContains(t, config.Validate(), tt.want)
		})
	}
}
