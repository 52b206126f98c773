package config

import (
	"strings"
	"time"
)

// fallbackSessionSecret is substituted when SESSION_SECRET is unset. Absence
// is deliberately not a validation error; the bootstrap warns when this
// value is live in production.
const fallbackSessionSecret = "insecure-dev-session-secret"

// cacheMaxEntries bounds the in-memory response cache. Fixed, not
// configurable through the environment.
const cacheMaxEntries = 500

// Snapshot is the immutable configuration handed to the rest of the process.
// It is built exactly once at startup and passed by value; nothing in it is
// mutated afterwards, so it is safe to share across goroutines.
type Snapshot struct {
	Server      Server
	CORS        CORS
	Frontend    Frontend
	AI          AI
	Cache       Cache
	RateLimit   RateLimit
	Features    Features
	HealthCheck HealthCheck
}

type Server struct {
	Environment   Environment
	Port          int
	LogLevel      string
	LogFormat     string
	SessionSecret string
}

// SessionSecretIsFallback reports whether the built-in development secret is
// in use because SESSION_SECRET was not set.
func (s Server) SessionSecretIsFallback() bool {
	return s.SessionSecret == fallbackSessionSecret
}

type CORS struct {
	AllowedOrigins []string
}

type Frontend struct {
	BaseURL     string
	ServeStatic bool
}

// Provider groups the settings of one upstream AI provider. The individual
// values are validated as independent flat variables; grouping happens here.
// APIKey is empty when the provider is not configured.
type Provider struct {
	Name      string
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Configured reports whether an API key is present for the provider.
func (p Provider) Configured() bool { return p.APIKey != "" }

type AI struct {
	OpenAI    Provider
	Anthropic Provider
}

// Cache holds the three independent TTL tiers. No ordering between the tiers
// is enforced.
type Cache struct {
	TTLShort   time.Duration
	TTLMedium  time.Duration
	TTLLong    time.Duration
	MaxEntries int
}

type RateLimit struct {
	Window         time.Duration
	MaxRequests    int
	SkipSuccessful bool
	SkipFailed     bool
}

type Features struct {
	RateLimiting bool
	Logging      bool
	CORS         bool
	Compression  bool
	Caching      bool
}

type HealthCheck struct {
	Interval time.Duration
}

// Derive builds the nested snapshot from a successful validation pass. It is
// pure, deterministic and total: anything that could fail belongs in
// Validate, not here.
func Derive(p Parsed) Snapshot {
	sessionSecret, ok := SessionSecret.Lookup(p)
	if !ok || sessionSecret == "" {
		sessionSecret = fallbackSessionSecret
	}

	return Snapshot{
		Server: Server{
			Environment:   Environment(NodeEnv.Get(p)),
			Port:          Port.Get(p),
			LogLevel:      LogLevel.Get(p),
			LogFormat:     LogFormat.Get(p),
			SessionSecret: sessionSecret,
		},
		CORS: CORS{
			AllowedOrigins: splitList(AllowedOrigins.Get(p)),
		},
		Frontend: Frontend{
			BaseURL:     FrontendURL.Get(p),
			ServeStatic: ServeStatic.Get(p),
		},
		AI: AI{
			OpenAI: Provider{
				Name:      "openai",
				APIKey:    OpenAIAPIKey.Get(p),
				BaseURL:   OpenAIBaseURL.Get(p),
				Model:     OpenAIModel.Get(p),
				MaxTokens: OpenAIMaxTokens.Get(p),
			},
			Anthropic: Provider{
				Name:      "anthropic",
				APIKey:    AnthropicAPIKey.Get(p),
				BaseURL:   AnthropicBaseURL.Get(p),
				Model:     AnthropicModel.Get(p),
				MaxTokens: AnthropicMaxTokens.Get(p),
			},
		},
		Cache: Cache{
			TTLShort:   time.Duration(CacheTTLShort.Get(p)) * time.Second,
			TTLMedium:  time.Duration(CacheTTLMedium.Get(p)) * time.Second,
			TTLLong:    time.Duration(CacheTTLLong.Get(p)) * time.Second,
			MaxEntries: cacheMaxEntries,
		},
		RateLimit: RateLimit{
			Window:         RateLimitWindow.Get(p),
			MaxRequests:    RateLimitMaxRequests.Get(p),
			SkipSuccessful: RateLimitSkipOK.Get(p),
			SkipFailed:     RateLimitSkipFailed.Get(p),
		},
		Features: Features{
			RateLimiting: FeatureRateLimiting.Get(p),
			Logging:      FeatureLogging.Get(p),
			CORS:         FeatureCORS.Get(p),
			Compression:  FeatureCompression.Get(p),
			Caching:      FeatureCaching.Get(p),
		},
		HealthCheck: HealthCheck{
			Interval: HealthCheckInterval.Get(p),
		},
	}
}

// splitList splits a comma-delimited value into trimmed elements. The empty
// string yields an empty list, not [""].
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
