package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("NODE_ENV", "test")
	t.Setenv("FEATURE_COMPRESSION", "false")

	snap, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, snap.Server.Port)
	assert.Equal(t, Test, snap.Server.Environment)
	assert.False(t, snap.Features.Compression)
}

func TestLoad_SurfacesAggregatedValidationError(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
