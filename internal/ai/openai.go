package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIModel    = "gpt-4o-mini"
)

// httpClient is shared by all OpenAI requests; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// OpenAIProvider implements Generator against the OpenAI chat completions endpoint.
type OpenAIProvider struct {
	apiKey string
}

func NewOpenAIProvider(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	return &OpenAIProvider{apiKey: apiKey}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt to OpenAI and returns the reply text with usage counts.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (Result, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:    openAIModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return Result{}, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return Result{}, fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("openai: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("openai: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return Result{}, fmt.Errorf("openai: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return Result{}, fmt.Errorf("openai: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return Result{}, fmt.Errorf("openai: API returned empty choices array")
	}

	text := cr.Choices[0].Message.Content
	usage := Usage{
		Model:        openAIModel,
		PromptTokens: cr.Usage.PromptTokens,
		OutputTokens: cr.Usage.CompletionTokens,
	}
	if usage.PromptTokens == 0 {
		usage.PromptTokens = estimateTokens(prompt)
		usage.OutputTokens = estimateTokens(text)
	}
	return Result{Text: text, Usage: usage}, nil
}
