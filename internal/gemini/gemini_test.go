package gemini

import (
	"context"
	"errors"
	"testing"

	"studymate/internal/llm"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"nil content",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			"",
		},
		{
			"single part",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("hello")}}},
			}},
			"hello",
		},
		{
			"multiple parts skip blobs",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Text("1. First "),
					genai.Blob{MIMEType: "image/png", Data: []byte{0x1}},
					genai.Text("question"),
				}}},
			}},
			"1. First question",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractText(tc.resp); got != tc.expected {
				t.Errorf("extractText() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	client, err := NewClient(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if client != nil {
		t.Error("client should be nil on error")
	}
}

func TestCompletionText(t *testing.T) {
	callErr := errors.New("rpc error: quota exceeded")
	textResp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []genai.Part{genai.Text("Answer")}}},
	}}
	blobOnly := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{0x1}}}}},
	}}

	testCases := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		err      error
		expected string
		cause    error
	}{
		{"text passes through", textResp, nil, "Answer", nil},
		{"call error wrapped", nil, callErr, "", callErr},
		{"nil response", nil, nil, "", errNoContent},
		{"no candidates", &genai.GenerateContentResponse{}, nil, "", errNoContent},
		{"no text parts", blobOnly, nil, "", errNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := completionText(tc.resp, tc.err)
			if got != tc.expected {
				t.Errorf("completionText() = %q, want %q", got, tc.expected)
			}
			if tc.cause == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var invErr *llm.InvocationError
			if !errors.As(err, &invErr) {
				t.Fatalf("expected *llm.InvocationError, got %T (%v)", err, err)
			}
			if invErr.Provider != "gemini" || !errors.Is(err, tc.cause) {
				t.Errorf("error = %v, want gemini provider wrapping %v", err, tc.cause)
			}
		})
	}
}
