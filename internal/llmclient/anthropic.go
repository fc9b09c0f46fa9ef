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

const anthropicVersion = "2023-06-01"

// AnthropicClient calls the Anthropic Messages API.
// See: https://docs.anthropic.com/en/api/messages
type AnthropicClient struct {
	http      *http.Client
	apiKey    string
	model     string
	baseURL   string
	maxTokens int
}

// NewAnthropicClient creates a client for the given model. An empty apiKey is
// allowed; calls will then short-circuit with ErrNoCredential instead of
// hitting the network.
func NewAnthropicClient(apiKey, model string, maxTokens int, timeout time.Duration) *AnthropicClient {
	if maxTokens <= 0 {
		maxTokens = 1500
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnthropicClient{
		http:      &http.Client{Timeout: timeout},
		apiKey:    apiKey,
		model:     model,
		baseURL:   "https://api.anthropic.com/v1/messages",
		maxTokens: maxTokens,
	}
}

func (a *AnthropicClient) Name() string { return "Anthropic:" + a.model }
func (a *AnthropicClient) Close() error { return nil }

type anthropicReq struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type anthropicResp struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (a *AnthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	if a.apiKey == "" {
		return "", ErrNoCredential
	}

	reqBody := anthropicReq{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: user}},
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.http.Do(req)
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
		return "", fmt.Errorf("anthropic: unexpected status %s: %s", resp.Status, string(body))
	}
	var out anthropicResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 || out.Content[0].Text == "" {
		return "", ErrEmptyReply
	}
	return out.Content[0].Text, nil
}
