package config

import (
	"os"
	"sync"
)

type AIConfig struct {
	Provider   string // "gateway" or "gemini"
	GatewayURL string
	APIKey     string
	Model      string
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		provider := os.Getenv("AI_PROVIDER")
		if provider == "" {
			provider = "gateway"
		}
		gatewayURL := os.Getenv("AI_GATEWAY_URL")
		if gatewayURL == "" {
			gatewayURL = "https://ai.gateway.lovable.dev/v1"
		}
		model := os.Getenv("AI_MODEL")
		if model == "" {
			model = "google/gemini-2.5-flash"
		}
		aiConfig = &AIConfig{
			Provider:   provider,
			GatewayURL: gatewayURL,
			APIKey:     os.Getenv("AI_API_KEY"),
			Model:      model,
		}
	})
	return aiConfig
}
