// Package ai exposes the configured upstream model providers.
package ai

import "promptpulse/internal/platform/config"

// Registry holds every known provider in declaration order, configured or
// not. It is built once from the configuration snapshot.
type Registry struct {
	providers []config.Provider
}

// NewRegistry builds the registry from the snapshot's AI namespace.
func NewRegistry(cfg config.AI) *Registry {
	return &Registry{providers: []config.Provider{cfg.OpenAI, cfg.Anthropic}}
}

// Get returns the provider with the given name.
func (r *Registry) Get(name string) (config.Provider, bool) {
	for _, p := range r.providers {
		if p.Name == name {
			return p, true
		}
	}
	return config.Provider{}, false
}

// Configured returns the providers that have an API key.
func (r *Registry) Configured() []config.Provider {
	out := make([]config.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Configured() {
			out = append(out, p)
		}
	}
	return out
}

// Info is a redacted, serializable view of one provider. API keys never
// leave the process.
type Info struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	BaseURL    string `json:"base_url"`
	MaxTokens  int    `json:"max_tokens"`
	Configured bool   `json:"configured"`
}

// Describe returns the redacted view of every provider, for diagnostics
// endpoints.
func (r *Registry) Describe() []Info {
	out := make([]Info, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, Info{
			Name:       p.Name,
			Model:      p.Model,
			BaseURL:    p.BaseURL,
			MaxTokens:  p.MaxTokens,
			Configured: p.Configured(),
		})
	}
	return out
}
