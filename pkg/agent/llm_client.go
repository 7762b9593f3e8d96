// Package agent provides the shared plumbing for the pipeline's specialist
// agents: the gRPC transport to the model sidecar, entity-recognition and
// embedding providers, token accounting, and the per-run Runtime bundle
// every agent constructor receives.
package agent

import (
	"context"
	"fmt"

	"github.com/linguaflow/linguaflow/pkg/config"
)

// Message roles understood by the sidecar.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a sidecar conversation.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call.
type Request struct {
	// RunID correlates sidecar logs with the pipeline run.
	RunID        string
	SystemPrompt string
	Messages     []Message
	Platform     config.PlatformConfig
}

// Response is the folded result of one completion stream.
type Response struct {
	// Skipped is set when the provider declined the request without an
	// error, e.g. a safety filter. Content is empty in that case and the
	// caller keeps the source text untranslated.
	Skipped    bool
	SkipReason string

	Reasoning string
	Content   string

	PromptTokens     int
	CompletionTokens int
}

// LLMClient sends conversations to the model sidecar.
type LLMClient interface {
	// Send runs one completion and folds the streamed chunks into a
	// Response. Provider failures surface as *ProviderError.
	Send(ctx context.Context, req *Request) (*Response, error)

	// Close releases the underlying connection.
	Close() error
}

// ProviderError is an upstream model failure reported by the sidecar.
type ProviderError struct {
	Message   string
	Code      string
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("llm provider: %s (code %s)", e.Message, e.Code)
	}
	return "llm provider: " + e.Message
}
