package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-2.5-flash"

// GeminiService sends a single text prompt to the Gemini API and returns the
// completion verbatim. No retries, no fallback, no caching.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	apiKey string
}

// NewGeminiService builds the client. A blank API key is tolerated here; the
// misconfiguration is reported on first Generate call instead of at boot.
func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	s := &GeminiService{apiKey: apiKey}
	if apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	s.client = client
	s.model = client.GenerativeModel(geminiModelName)
	return s, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Generate blocks until Gemini returns a completion for the prompt. Every
// API-layer failure comes back as a single *GenerationError carrying the
// cause's description.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" || s.model == nil {
		return "", &ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: fmt.Sprintf("Gemini request failed: %v", err)}
	}

	text := extractText(resp)
	if text == "" {
		return "", &GenerationError{Message: "Gemini returned an empty response"}
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
