package insight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// Provider generates free-text advice from a serialized context and an
// instruction. It is read-only with respect to the domain model.
type Provider interface {
	Generate(ctx context.Context, contextPayload string, instruction string) (string, error)
}

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("model returned empty response")

const systemInstruction = "You are LifeOS AI, a high-performance personal productivity and financial coaching assistant. Your mission is to deliver actionable insights, keep the user motivated, and suggest routine optimizations based on the data provided."

// Config wires Gemini access.
type Config struct {
	APIKey string
	Model  string
}

// Gemini talks to the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini returns a Provider backed by Gemini. The API key falls back to
// GEMINI_API_KEY, then GOOGLE_API_KEY.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	if apiKey == "" {
		return nil, errors.New("gemini api key missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Generate asks the model for advice grounded on the supplied context.
func (g *Gemini) Generate(ctx context.Context, contextPayload string, instruction string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText("Context: "+contextPayload, genai.RoleUser),
		genai.NewContentFromText(instruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(0.7)),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
