package llmclient

import (
	"context"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client. It only
// focuses on the API call itself; logging is applied via Middleware.
type GeminiClient struct {
	cli       *genai.Client
	model     string
	maxTokens int32
	search    bool
}

// NewGeminiClient creates a Gemini completion client. The genai client reads
// GEMINI_API_KEY from the environment. When search is true, the Google Search
// tool is attached so replies are grounded in live web results; this is the
// variant the website extractor uses.
func NewGeminiClient(ctx context.Context, model string, maxTokens int, search bool) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if maxTokens <= 0 {
		maxTokens = 1500
	}
	return &GeminiClient{cli: cli, model: model, maxTokens: int32(maxTokens), search: search}, nil
}

func (g *GeminiClient) Name() string {
	if g.search {
		return "Gemini+search:" + g.model
	}
	return "Gemini:" + g.model
}
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		MaxOutputTokens:   g.maxTokens,
	}
	if g.search {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
		cfg,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if txt == "" {
		return "", ErrEmptyReply
	}
	return txt, nil
}
