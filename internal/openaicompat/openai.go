// Package openaicompat talks to any OpenAI-compatible chat completion endpoint.
package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"studymate/internal/llm"

	openai "github.com/sashabaranov/go-openai"
)

const providerName = "openai"

// ErrNoChoices is returned when the endpoint answers without any choices.
var ErrNoChoices = errors.New("no choices returned")

type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a client for apiKey against endpoint (the default OpenAI URL when empty).
func NewClient(apiKey, endpoint, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if model == "" {
		return nil, fmt.Errorf("openai model name is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}

	log.Printf("INFO: OpenAI-compatible client initialized for model '%s' at %s", model, cfg.BaseURL)
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (c *Client) ModelName() string { return c.model }

// Generate sends prompt as a single user message and returns the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &llm.InvocationError{Provider: providerName, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &llm.InvocationError{Provider: providerName, Err: ErrNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
