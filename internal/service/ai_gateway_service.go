package service

import (
	"context"
	"fmt"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ModelInvoker sends one role-structured prompt to a completion service and
// returns the raw text of the reply. Implementations make exactly one request
// per call; retries are never performed here.
type ModelInvoker interface {
	Invoke(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// AIGatewayService talks to an OpenAI-compatible chat-completions gateway.
type AIGatewayService struct {
	client *resty.Client
	cfg    *config.AIConfig
}

func NewAIGatewayService(cfg *config.AIConfig) *AIGatewayService {
	return &AIGatewayService{
		client: resty.New(),
		cfg:    cfg,
	}
}

func (s *AIGatewayService) Invoke(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", apperror.New(apperror.ModelInvocationError, "AI_API_KEY is not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.cfg.Model,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userContent},
			},
			// Structural hint only; the reply is still parsed defensively.
			"response_format": map[string]string{"type": "json_object"},
		}).
		Post(s.cfg.GatewayURL + "/chat/completions")
	if err != nil {
		return "", apperror.Wrap(apperror.ModelInvocationError, "model request failed", err)
	}

	if !resp.IsSuccess() {
		return "", apperror.New(apperror.ModelInvocationError,
			fmt.Sprintf("model service returned %d: %s", resp.StatusCode(), resp.String()))
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", apperror.New(apperror.ModelInvocationError, "model reply is empty")
	}
	return content, nil
}
