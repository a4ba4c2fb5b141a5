package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "leads.json", cfg.InputPath)
	assert.Equal(t, "filtered_leads_output.json", cfg.OutputPath)
	assert.Equal(t, "leadfilter", cfg.MetricsNamespace)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "5")
	t.Setenv("LEADS_INPUT", "custom.json")
	t.Setenv("LEADS_OUTPUT", "custom_out.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "custom.json", cfg.InputPath)
	assert.Equal(t, "custom_out.json", cfg.OutputPath)
}
