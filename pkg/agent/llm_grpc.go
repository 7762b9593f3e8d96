package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/linguaflow/linguaflow/pkg/config"
	llmv1 "github.com/linguaflow/linguaflow/proto"
)

// GRPCClient is the production LLMClient over the sidecar's gRPC API.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient connects to the sidecar at addr (e.g. "localhost:50051").
// The connection is lazy; dial problems surface on the first call.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to LLM sidecar at %s: %w", addr, err)
	}
	return &GRPCClient{conn: conn, client: llmv1.NewLLMServiceClient(conn)}, nil
}

// Send implements LLMClient. Text and reasoning deltas are concatenated,
// the usage chunk fills the token counts, an error chunk aborts the call.
func (c *GRPCClient) Send(ctx context.Context, req *Request) (*Response, error) {
	stream, err := c.client.Complete(ctx, toProtoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("starting completion stream: %w", err)
	}

	var fold responseFold
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("receiving completion chunk: %w", err)
		}
		if err := fold.apply(chunk); err != nil {
			return nil, err
		}
	}
	return fold.result(), nil
}

// Close implements LLMClient.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// responseFold accumulates streamed chunks into a single Response.
type responseFold struct {
	content   strings.Builder
	reasoning strings.Builder
	resp      Response
}

func (f *responseFold) apply(chunk *llmv1.CompleteChunk) error {
	switch part := chunk.GetContent().(type) {
	case *llmv1.CompleteChunk_Text:
		f.content.WriteString(part.Text.GetContent())
	case *llmv1.CompleteChunk_Reasoning:
		f.reasoning.WriteString(part.Reasoning.GetContent())
	case *llmv1.CompleteChunk_Usage:
		f.resp.PromptTokens = int(part.Usage.GetPromptTokens())
		f.resp.CompletionTokens = int(part.Usage.GetCompletionTokens())
	case *llmv1.CompleteChunk_Error:
		return &ProviderError{
			Message:   part.Error.GetMessage(),
			Code:      part.Error.GetCode(),
			Retryable: part.Error.GetRetryable(),
		}
	case *llmv1.CompleteChunk_Skipped:
		f.resp.Skipped = true
		f.resp.SkipReason = part.Skipped.GetReason()
	}
	// Chunks carrying only is_final have nil content; nothing to fold.
	return nil
}

func (f *responseFold) result() *Response {
	f.resp.Content = f.content.String()
	f.resp.Reasoning = f.reasoning.String()
	return &f.resp
}

func toProtoRequest(req *Request) *llmv1.CompleteRequest {
	return &llmv1.CompleteRequest{
		RunId:        req.RunID,
		Platform:     toProtoPlatform(req.Platform),
		SystemPrompt: req.SystemPrompt,
		Messages:     toProtoMessages(req.Messages),
	}
}

func toProtoMessages(messages []Message) []*llmv1.Message {
	if len(messages) == 0 {
		return nil
	}
	out := make([]*llmv1.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, &llmv1.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func toProtoPlatform(p config.PlatformConfig) *llmv1.PlatformConfig {
	return &llmv1.PlatformConfig{
		Provider:    p.Provider,
		Model:       p.Model,
		ApiKeyEnv:   p.APIKeyEnv,
		BaseUrl:     p.BaseURL,
		Temperature: p.Temperature,
	}
}
