package agent

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	llmv1 "github.com/linguaflow/linguaflow/proto"
)

// Embedder produces semantic vectors for translation-memory retrieval and
// atom similarity lookups.
type Embedder interface {
	// Embed returns one vector per input text, in order.
	Embed(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// NoopEmbedder disables semantic retrieval. Vector columns stay NULL and
// similarity lookups return nothing.
type NoopEmbedder struct{}

func (NoopEmbedder) Embed(context.Context, []string) ([]pgvector.Vector, error) {
	return nil, nil
}

// GRPCEmbedder calls the sidecar's embedding endpoint. It shares the
// completion client's connection.
type GRPCEmbedder struct {
	client llmv1.LLMServiceClient
	model  string
}

func NewGRPCEmbedder(c *GRPCClient, model string) *GRPCEmbedder {
	return &GRPCEmbedder{client: c.client, model: model}
}

func (e *GRPCEmbedder) Embed(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.Embed(ctx, &llmv1.EmbedRequest{Texts: texts, Model: e.model})
	if err != nil {
		return nil, fmt.Errorf("embedding %d texts: %w", len(texts), err)
	}

	got := resp.GetEmbeddings()
	if len(got) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(got))
	}

	vecs := make([]pgvector.Vector, len(got))
	for i, emb := range got {
		vecs[i] = pgvector.NewVector(emb.GetValues())
	}
	return vecs, nil
}
