package config

import (
	"fmt"
	"os"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-2.0-flash-001"

	// Temperature is fixed: moderate and non-zero so phrasing varies but
	// stays coherent.
	Temperature = 0.7
)

type Config struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	ListenAddr string
}

// Load reads configuration from the environment. A missing provider
// credential is fatal: the process must refuse to serve any request.
func Load() (*Config, error) {
	return LoadFromEnv(os.Getenv)
}

// LoadFromEnv is Load with an injectable environment lookup, for tests.
func LoadFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Provider:   getenv("LLM_PROVIDER"),
		Model:      getenv("LLM_MODEL"),
		ListenAddr: getenv("LISTEN_ADDR"),
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.APIKey = getenv("OPENAI_API_KEY")
		cfg.BaseURL = getenv("OPENAI_BASE_URL")
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
	case ProviderGemini:
		cfg.APIKey = getenv("GEMINI_API_KEY")
		if cfg.Model == "" {
			cfg.Model = DefaultGeminiModel
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}
