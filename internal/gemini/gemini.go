package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"studymate/internal/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ModelName is the Gemini model used when none is configured
const ModelName = "gemini-2.5-flash"

const providerName = "gemini"

// Client wraps the Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewClient creates a new Gemini client for the given model.
// The returned client is read-only after construction and can be shared across requests.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if modelName == "" {
		modelName = ModelName
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Printf("INFO: Gemini client initialized for model '%s'", modelName)
	return &Client{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() {
	c.client.Close()
}

// ModelName returns the configured model name.
func (c *Client) ModelName() string {
	return c.modelName
}

// Generate sends a single text prompt and returns the completion text.
// There is exactly one attempt per call.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return completionText(c.model.GenerateContent(ctx, genai.Text(prompt)))
}

// errNoContent is wrapped when the model answers without any text parts.
var errNoContent = errors.New("no content generated")

// completionText turns a GenerateContent result into completion text. Call
// failures and empty answers both surface as *llm.InvocationError.
func completionText(resp *genai.GenerateContentResponse, err error) (string, error) {
	if err != nil {
		return "", &llm.InvocationError{Provider: providerName, Err: err}
	}
	text := extractText(resp)
	if text == "" {
		return "", &llm.InvocationError{Provider: providerName, Err: errNoContent}
	}
	return text, nil
}

// extractText concatenates the text parts of every candidate in the response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}
