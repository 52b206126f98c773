package config

import "time"

// Environment is the server run mode.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// The recognized environment variables. Declaration order below is the order
// violations are reported in. Any change to recognized configuration is a
// change to this table, never to Validate.
var (
	NodeEnv   = Enum("NODE_ENV", "development", "development", "production", "test")
	Port      = Int("PORT", 3000)
	LogLevel  = Enum("LOG_LEVEL", "info", "debug", "info", "warn", "error")
	LogFormat = Enum("LOG_FORMAT", "text", "text", "json")

	AllowedOrigins = String("ALLOWED_ORIGINS", "http://localhost:5173")

	FrontendURL = String("FRONTEND_URL", "http://localhost:5173")
	ServeStatic = Bool("SERVE_STATIC", false)

	// SessionSecret has no declared default; derivation substitutes the
	// built-in development fallback when it is unset.
	SessionSecret = OptionalString("SESSION_SECRET")

	OpenAIAPIKey    = OptionalString("OPENAI_API_KEY")
	OpenAIBaseURL   = String("OPENAI_BASE_URL", "https://api.openai.com/v1")
	OpenAIModel     = String("OPENAI_MODEL", "gpt-4o-mini")
	OpenAIMaxTokens = Int("OPENAI_MAX_TOKENS", 1024)

	AnthropicAPIKey    = OptionalString("ANTHROPIC_API_KEY")
	AnthropicBaseURL   = String("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	AnthropicModel     = String("ANTHROPIC_MODEL", "claude-3-haiku-20240307")
	AnthropicMaxTokens = Int("ANTHROPIC_MAX_TOKENS", 1024)

	CacheTTLShort  = Int("CACHE_TTL_SHORT", 300)
	CacheTTLMedium = Int("CACHE_TTL_MEDIUM", 3600)
	CacheTTLLong   = Int("CACHE_TTL_LONG", 86400)

	RateLimitWindow      = DurationMS("RATE_LIMIT_WINDOW_MS", 15*time.Minute)
	RateLimitMaxRequests = Int("RATE_LIMIT_MAX_REQUESTS", 100)
	RateLimitSkipOK      = Bool("RATE_LIMIT_SKIP_SUCCESSFUL", false)
	RateLimitSkipFailed  = Bool("RATE_LIMIT_SKIP_FAILED", false)

	FeatureRateLimiting = Bool("FEATURE_RATE_LIMITING", true)
	FeatureLogging      = Bool("FEATURE_LOGGING", true)
	FeatureCORS         = Bool("FEATURE_CORS", true)
	FeatureCompression  = Bool("FEATURE_COMPRESSION", true)
	FeatureCaching      = Bool("FEATURE_CACHING", true)

	HealthCheckInterval = DurationMS("HEALTH_CHECK_INTERVAL_MS", 30*time.Second)
)

// Table returns the full variable specification in declaration order.
func Table() []Field {
	return []Field{
		NodeEnv, Port, LogLevel, LogFormat,
		AllowedOrigins,
		FrontendURL, ServeStatic,
		SessionSecret,
		OpenAIAPIKey, OpenAIBaseURL, OpenAIModel, OpenAIMaxTokens,
		AnthropicAPIKey, AnthropicBaseURL, AnthropicModel, AnthropicMaxTokens,
		CacheTTLShort, CacheTTLMedium, CacheTTLLong,
		RateLimitWindow, RateLimitMaxRequests, RateLimitSkipOK, RateLimitSkipFailed,
		FeatureRateLimiting, FeatureLogging, FeatureCORS, FeatureCompression, FeatureCaching,
		HealthCheckInterval,
	}
}
