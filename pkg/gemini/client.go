package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// Config Gemini REST 클라이언트 설정
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the generateContent endpoint. Requests are not retried.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient Gemini 클라이언트 생성
func NewClient(cfg Config) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

// GenerateContent sends a single-turn prompt and returns the concatenated text parts.
// An empty string with a nil error means the model returned no text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var result generateResponse
	var apiErr apiError
	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetPathParam("model", c.model).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		logger.Error("Gemini API call failed", err, map[string]interface{}{
			"model": c.model,
		})
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if resp.IsError() {
		logger.Error("Gemini API returned error", nil, map[string]interface{}{
			"model":       c.model,
			"status_code": resp.StatusCode(),
			"status":      apiErr.Error.Status,
			"message":     apiErr.Error.Message,
		})
		return "", fmt.Errorf("gemini API error: %s (status: %d)", apiErr.Error.Message, resp.StatusCode())
	}

	var text strings.Builder
	if len(result.Candidates) > 0 {
		for _, p := range result.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}

	logger.Debug("Gemini API call succeeded", map[string]interface{}{
		"model":    c.model,
		"duration": time.Since(start).String(),
		"length":   text.Len(),
	})
	return text.String(), nil
}
