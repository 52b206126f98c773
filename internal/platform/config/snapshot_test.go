package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, src Source) Parsed {
	t.Helper()
	parsed, err := Validate(Table(), src)
	require.NoError(t, err)
	return parsed
}

func TestDerive_OriginListSplitAndTrimmed(t *testing.T) {
	snap := Derive(mustValidate(t, MapSource{"ALLOWED_ORIGINS": " a, b ,c"}))
	assert.Equal(t, []string{"a", "b", "c"}, snap.CORS.AllowedOrigins)
}

func TestDerive_EmptyOriginStringYieldsEmptyList(t *testing.T) {
	snap := Derive(mustValidate(t, MapSource{"ALLOWED_ORIGINS": ""}))
	assert.Empty(t, snap.CORS.AllowedOrigins)
}

func TestDerive_SessionSecretFallbackWithoutError(t *testing.T) {
	snap := Derive(mustValidate(t, MapSource{}))
	assert.Equal(t, fallbackSessionSecret, snap.Server.SessionSecret)
	assert.True(t, snap.Server.SessionSecretIsFallback())

	snap = Derive(mustValidate(t, MapSource{"SESSION_SECRET": "real-secret"}))
	assert.Equal(t, "real-secret", snap.Server.SessionSecret)
	assert.False(t, snap.Server.SessionSecretIsFallback())
}

func TestDerive_GroupsProviderVariables(t *testing.T) {
	snap := Derive(mustValidate(t, MapSource{
		"OPENAI_API_KEY":    "sk-test",
		"OPENAI_MODEL":      "gpt-4o",
		"OPENAI_MAX_TOKENS": "2048",
	}))

	assert.Equal(t, "openai", snap.AI.OpenAI.Name)
	assert.Equal(t, "sk-test", snap.AI.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", snap.AI.OpenAI.Model)
	assert.Equal(t, 2048, snap.AI.OpenAI.MaxTokens)
	assert.True(t, snap.AI.OpenAI.Configured())

	// The other provider keeps its defaults and stays unconfigured.
	assert.Equal(t, "anthropic", snap.AI.Anthropic.Name)
	assert.False(t, snap.AI.Anthropic.Configured())
	assert.Equal(t, 1024, snap.AI.Anthropic.MaxTokens)
}

func TestDerive_CacheTiersIndependent(t *testing.T) {
	// Deliberately inverted tiers: no short <= medium <= long ordering is
	// enforced.
	snap := Derive(mustValidate(t, MapSource{
		"CACHE_TTL_SHORT":  "1000",
		"CACHE_TTL_MEDIUM": "10",
		"CACHE_TTL_LONG":   "1",
	}))

	assert.Equal(t, 1000*time.Second, snap.Cache.TTLShort)
	assert.Equal(t, 10*time.Second, snap.Cache.TTLMedium)
	assert.Equal(t, time.Second, snap.Cache.TTLLong)
	assert.Equal(t, cacheMaxEntries, snap.Cache.MaxEntries)
}

func TestDerive_Idempotent(t *testing.T) {
	parsed := mustValidate(t, MapSource{
		"PORT":            "8088",
		"ALLOWED_ORIGINS": "a,b",
		"FEATURE_CACHING": "false",
	})

	first := Derive(parsed)
	second := Derive(parsed)
	assert.Equal(t, first, second)
}

func TestEndToEnd_PartialEnvironmentMergesWithDefaults(t *testing.T) {
	snap := Derive(mustValidate(t, MapSource{
		"PORT":                    "9090",
		"NODE_ENV":                "production",
		"RATE_LIMIT_MAX_REQUESTS": "50",
	}))

	assert.Equal(t, 9090, snap.Server.Port)
	assert.Equal(t, Production, snap.Server.Environment)
	assert.Equal(t, 50, snap.RateLimit.MaxRequests)

	// Everything else keeps its documented default.
	assert.Equal(t, "info", snap.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, snap.CORS.AllowedOrigins)
	assert.Equal(t, "http://localhost:5173", snap.Frontend.BaseURL)
	assert.False(t, snap.Frontend.ServeStatic)
	assert.Equal(t, 15*time.Minute, snap.RateLimit.Window)
	assert.False(t, snap.RateLimit.SkipSuccessful)
	assert.Equal(t, 300*time.Second, snap.Cache.TTLShort)
	assert.Equal(t, 3600*time.Second, snap.Cache.TTLMedium)
	assert.Equal(t, 86400*time.Second, snap.Cache.TTLLong)
	assert.True(t, snap.Features.RateLimiting)
	assert.True(t, snap.Features.Compression)
	assert.Equal(t, 30*time.Second, snap.HealthCheck.Interval)
	assert.Equal(t, "https://api.openai.com/v1", snap.AI.OpenAI.BaseURL)
}

func TestEndToEnd_InvalidEnvironmentReportsEveryViolation(t *testing.T) {
	_, err := Validate(Table(), MapSource{
		"PORT":     "not-a-number",
		"NODE_ENV": "bogus",
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "NODE_ENV", verrs[0].Path)
	assert.Equal(t, "PORT", verrs[1].Path)
}
