// pkg/ai/client.go

// Package ai produces chatbot replies. No implementation calls an external
// model yet.
package ai

import "context"

type Client interface {
	Reply(ctx context.Context, message string) (string, error)
}

// New picks the client for the configured key: with a key, the Gemini
// placeholder; without, the echo mock.
func New(geminiAPIKey string) Client {
	if geminiAPIKey != "" {
		return NewGemini(geminiAPIKey)
	}
	return NewMock()
}

// NewAgri is New for the agri-chatbot endpoint, whose keyless reply asks for
// a key instead of echoing.
func NewAgri(geminiAPIKey string) Client {
	if geminiAPIKey != "" {
		return NewGemini(geminiAPIKey)
	}
	return NewAgriMock()
}
