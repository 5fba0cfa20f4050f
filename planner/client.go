package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client is the black-box planning backend: prompt in, raw generation out.
type Client interface {
	GeneratePlan(ctx context.Context, prompt string) (string, error)
}

// HTTPClient talks to the real LLM planning service.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewHTTPClientFromEnv() *HTTPClient {
	return &HTTPClient{
		BaseURL: os.Getenv("PLANNER_URL"),
		APIKey:  os.Getenv("PLANNER_API_KEY"),
		HTTP:    &http.Client{Timeout: 90 * time.Second},
	}
}

type upstreamRequest struct {
	Prompt string `json:"prompt"`
}

type upstreamResponse struct {
	Text        string `json:"text"`
	BlockReason string `json:"block_reason,omitempty"`
}

func (c *HTTPClient) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(upstreamRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrUpstreamAuth
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrUpstreamQuota
	case resp.StatusCode >= 500:
		return "", ErrUpstreamUnavailable
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var out upstreamResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		// some deployments return the generation as plain text
		out.Text = string(raw)
	}
	if out.BlockReason != "" {
		return "", ErrSafetyBlocked
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", ErrEmptyGeneration
	}
	return out.Text, nil
}
