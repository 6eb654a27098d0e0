package contract

import (
	"github.com/sashabaranov/go-openai"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// FunctionDef is a function-calling schema forwarded to the backend as-is.
type FunctionDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type CompletionRequest struct {
	Messages    []Message     `json:"messages"`
	Temperature float32       `json:"temperature"`
	Functions   []FunctionDef `json:"functions,omitempty"`
}

// Params is the backend-specific parameter set for one chat completion call.
// Cloud requests carry Engine and APIVersion, local requests carry Model.
type Params struct {
	Engine      string        `json:"engine,omitempty"`
	APIVersion  string        `json:"api_version,omitempty"`
	Model       string        `json:"model,omitempty"`
	Messages    []Message     `json:"messages"`
	Temperature float32       `json:"temperature"`
	Functions   []FunctionDef `json:"functions,omitempty"`
}

// CompletionResponse is the backend's response, passed through without
// normalization. Backend names the kind that produced it.
type CompletionResponse struct {
	Backend string `json:"backend"`
	openai.ChatCompletionResponse
}

// FirstContent returns the content of the first choice, if any.
func (r *CompletionResponse) FirstContent() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}
