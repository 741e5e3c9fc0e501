package service

import (
	"context"
	"strings"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/config"
	"google.golang.org/genai"
)

// GeminiService is the direct-to-Gemini implementation of ModelInvoker, for
// deployments holding a Google API key instead of a gateway credential.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, cfg *config.AIConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, apperror.New(apperror.ModelInvocationError, "AI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.ModelInvocationError, "failed to create gemini client", err)
	}

	// Gateway-style names carry a vendor prefix Gemini does not know.
	model := strings.TrimPrefix(cfg.Model, "google/")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Invoke(ctx context.Context, systemPrompt, userContent string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.1)),
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(userContent),
		genConfig,
	)
	if err != nil {
		return "", apperror.Wrap(apperror.ModelInvocationError, "generate content failed", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", apperror.Wrap(apperror.ModelInvocationError, "invalid model response", err)
	}

	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return apperror.New(apperror.ModelInvocationError, "response is nil")
	}
	if len(resp.Candidates) == 0 {
		return apperror.New(apperror.ModelInvocationError, "no candidates in response")
	}
	if resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return apperror.New(apperror.ModelInvocationError, "candidate content is empty")
	}
	return nil
}
