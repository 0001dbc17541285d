package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator produces marketing copy for a product from a keyword list. It is
// a pure external collaborator: implementations must never touch store state.
type Generator interface {
	GenerateDescription(ctx context.Context, keywords []string) (string, error)
}

const systemPrompt = "You are a professional marketing copywriter for an e-commerce clothing store named StyleSphere. " +
	"Write a compelling, concise product description for a product listing page based on the provided keywords. " +
	"Highlight features, benefits and overall appeal. Reply with the description text only."

// Config configures the OpenAI-compatible client. Zero values fall back to
// the public OpenAI endpoint and a small default model.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
}

func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpc:   cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = "https://api.openai.com/v1"
	}
	if c.model == "" {
		c.model = "gpt-4o-mini"
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return c
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
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) GenerateDescription(ctx context.Context, keywords []string) (string, error) {
	if len(keywords) == 0 {
		return "", errors.New("no keywords provided")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Keywords to incorporate: " + strings.Join(keywords, ", ")},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("completion request failed: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response had no choices")
	}

	description := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if description == "" {
		return "", errors.New("completion response was empty")
	}
	return description, nil
}
