package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PerplexityClient calls the Perplexity chat completions API (OpenAI-compatible).
// The online models ground their replies in live web search, which is what the
// website extractor needs. See: https://docs.perplexity.ai/api-reference
type PerplexityClient struct {
	http      *http.Client
	apiKey    string
	model     string
	baseURL   string
	maxTokens int
}

func NewPerplexityClient(apiKey, model string, maxTokens int, timeout time.Duration) *PerplexityClient {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PerplexityClient{
		http:      &http.Client{Timeout: timeout},
		apiKey:    apiKey,
		model:     model,
		baseURL:   "https://api.perplexity.ai/chat/completions",
		maxTokens: maxTokens,
	}
}

func (p *PerplexityClient) Name() string { return "Perplexity:" + p.model }
func (p *PerplexityClient) Close() error { return nil }

type pplxChatReq struct {
	Model       string        `json:"model"`
	Messages    []pplxMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}
type pplxMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type pplxChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *PerplexityClient) Complete(ctx context.Context, system, user string) (string, error) {
	if p.apiKey == "" {
		return "", ErrNoCredential
	}

	reqBody := pplxChatReq{
		Model: p.model,
		Messages: []pplxMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   p.maxTokens,
		Temperature: 0.1,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(body) > max {
			body = body[:max]
		}
		return "", fmt.Errorf("perplexity: unexpected status %s: %s", resp.Status, string(body))
	}
	var out pplxChatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyReply
	}
	return out.Choices[0].Message.Content, nil
}
