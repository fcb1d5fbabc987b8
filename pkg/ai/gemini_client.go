// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"
)

// gemini stands in for a Gemini-backed client. It holds the key so wiring
// does not change when real calls land, but answers locally.
type gemini struct {
	key string
}

func NewGemini(key string) Client { return &gemini{key: key} }

func (g *gemini) Reply(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("(Gemini placeholder) I understood: %s. I can give soil, pest and market tips.", message), nil
}
