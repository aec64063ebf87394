package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestGeminiService_Generate_MissingAPIKey(t *testing.T) {
	svc, err := NewGeminiService(context.Background(), "")
	if err != nil {
		t.Fatalf("constructor must tolerate a blank key: %v", err)
	}
	defer svc.Close()

	_, err = svc.Generate(context.Background(), "hello")

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"nil content",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			"",
		},
		{
			"single text part",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Text("42")}},
				}},
			},
			"42",
		},
		{
			"concatenates text parts",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Text("foo "), genai.Text("bar")}},
				}},
			},
			"foo bar",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractText(tc.resp); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
