package model

import (
	"context"

	"github.com/harunnryd/llmswitch/internal/model/contract"

	"github.com/sashabaranov/go-openai"
)

// Provider performs one chat-completion call with fully built parameters.
type Provider interface {
	Name() string
	Generate(ctx context.Context, params contract.Params) (*openai.ChatCompletionResponse, error)
}
