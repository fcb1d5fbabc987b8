// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Reply(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("You said: %s. (This is a placeholder response from the chatbot.)", message), nil
}

type agriMockClient struct{}

func NewAgriMock() Client { return &agriMockClient{} }

func (m *agriMockClient) Reply(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("I heard: %s. (No model key set — set GEMINI_API_KEY to get smarter responses.)", message), nil
}
