package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DeepSeekClient calls the DeepSeek chat-completions API to turn a computed
// summary into an operational suggestion.
type DeepSeekClient struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewDeepSeekClient creates a DeepSeek client. If baseURL is empty, defaults
// to "https://api.deepseek.com"; if model is empty, defaults to
// "deepseek-chat".
func NewDeepSeekClient(apiKey, baseURL, model string) *DeepSeekClient {
	if baseURL == "" {
		baseURL = "https://api.deepseek.com"
	}
	if model == "" {
		model = "deepseek-chat"
	}
	return &DeepSeekClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AdvisorError represents an error response from the suggestion API.
type AdvisorError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *AdvisorError) Error() string {
	return e.Message
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest sends the rendered prompt to the API and returns the suggestion
// text. Identical prompts may be served from the development-only response
// cache when it is enabled.
func (c *DeepSeekClient) Suggest(ctx context.Context, s Summary) (string, error) {
	if c.APIKey == "" {
		return "", &AdvisorError{
			StatusCode: http.StatusUnauthorized,
			Code:       "MISSING_API_KEY",
			Message:    "advisor API key is required",
		}
	}

	prompt := BuildPrompt(s)

	cache := GetCache()
	if cache != nil {
		if text, found := cache.Get(CacheKey(c.Model, prompt)); found {
			return text, nil
		}
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &AdvisorError{
			StatusCode: resp.StatusCode,
			Code:       advisorErrorCode(resp.StatusCode),
			Message:    fmt.Sprintf("suggestion API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode suggestion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", &AdvisorError{
			StatusCode: resp.StatusCode,
			Code:       "EMPTY_RESPONSE",
			Message:    "suggestion API returned no choices",
		}
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", &AdvisorError{
			StatusCode: resp.StatusCode,
			Code:       "EMPTY_RESPONSE",
			Message:    "suggestion API returned empty content",
		}
	}

	if cache != nil {
		cache.Set(CacheKey(c.Model, prompt), text)
	}
	return text, nil
}

func advisorErrorCode(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "INVALID_API_KEY"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "UPSTREAM_ERROR"
	}
}
