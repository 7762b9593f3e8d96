package agent

import (
	"context"
	"fmt"

	"github.com/linguaflow/linguaflow/pkg/config"
	llmv1 "github.com/linguaflow/linguaflow/proto"
)

// Entity is a named entity recognized in source text. Entities seed the
// terminology identification pass with high-priority candidates.
type Entity struct {
	Text  string
	Label string
	Count int
}

// NERProvider extracts candidate terms from source text.
type NERProvider interface {
	RecognizeEntities(ctx context.Context, text string) ([]Entity, error)
}

// NoopNER is the default provider when entity recognition is disabled.
type NoopNER struct{}

func (NoopNER) RecognizeEntities(context.Context, string) ([]Entity, error) {
	return nil, nil
}

// GRPCNER calls the sidecar's entity-recognition endpoint. It shares the
// completion client's connection.
type GRPCNER struct {
	client   llmv1.LLMServiceClient
	cfg      config.NERConfig
	language string
}

func NewGRPCNER(c *GRPCClient, cfg config.NERConfig, sourceLanguage string) *GRPCNER {
	return &GRPCNER{client: c.client, cfg: cfg, language: sourceLanguage}
}

func (n *GRPCNER) RecognizeEntities(ctx context.Context, text string) ([]Entity, error) {
	resp, err := n.client.RecognizeEntities(ctx, &llmv1.RecognizeEntitiesRequest{
		Text:        text,
		Language:    n.language,
		EntityTypes: n.cfg.EntityTypes,
		Model:       n.cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("recognizing entities: %w", err)
	}

	entities := make([]Entity, 0, len(resp.GetEntities()))
	for _, e := range resp.GetEntities() {
		entities = append(entities, Entity{
			Text:  e.GetText(),
			Label: e.GetLabel(),
			Count: int(e.GetCount()),
		})
	}
	return entities, nil
}
