// Package insight implements the LLM provider boundary over the Anthropic
// Messages API.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"reflourish/config"
	"reflourish/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
	defaultTimeout   = 30 * time.Second
	apiVersion       = "2023-06-01"
)

type claudeClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	maxTokens  int
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewClaudeClient creates an InsightService backed by the Anthropic API.
// Fails fast when no API key is configured.
func NewClaudeClient(cfg *config.Config) (service.InsightService, error) {
	insightCfg := cfg.Insight
	if insightCfg == nil || insightCfg.APIKey == "" {
		return nil, errors.New("insight api key must be provided")
	}

	client := &claudeClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     insightCfg.APIKey,
		maxTokens:  defaultMaxTokens,
	}
	if insightCfg.BaseURL != "" {
		client.baseURL = insightCfg.BaseURL
	}
	if insightCfg.Model != "" {
		client.model = insightCfg.Model
	}
	if insightCfg.MaxTokens > 0 {
		client.maxTokens = insightCfg.MaxTokens
	}
	if insightCfg.Timeout > 0 {
		client.httpClient.Timeout = insightCfg.Timeout
	}

	return client, nil
}

// GenerateInsight sends the prompt to the provider and returns the JSON
// object found in its reply. The model is instructed to answer in JSON;
// anything else is an error, never a fabricated fallback.
func (c *claudeClient) GenerateInsight(ctx context.Context, prompt string) (json.RawMessage, error) {
	reqBody, err := json.Marshal(&messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal insight request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build insight request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "insight request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read insight response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("insight provider returned status %d: %s", resp.StatusCode, body)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal insight response")
	}

	for _, block := range parsed.Content {
		if block.Type != "text" {
			continue
		}
		if raw := extractJSON(block.Text); raw != nil {
			return raw, nil
		}
	}

	return nil, errors.New("insight response contained no JSON object")
}

// extractJSON pulls the first JSON object out of a text block. Models often
// wrap their JSON in prose or code fences.
func extractJSON(text string) json.RawMessage {
	start := -1
	depth := 0
	for i, r := range text {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					candidate := json.RawMessage(text[start : i+1])
					if json.Valid(candidate) {
						return candidate
					}
					start = -1
				}
			}
		}
	}

	return nil
}
