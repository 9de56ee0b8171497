package cliconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplcore/interpolate/internal/cliconfig"
)

func TestLoad_DefaultsWhenNoConfigFilePresent(t *testing.T) {
	cfg, err := cliconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.NoColor)
}
