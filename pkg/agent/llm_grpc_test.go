package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/config"
	llmv1 "github.com/linguaflow/linguaflow/proto"
)

func TestToProtoMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "translate this"},
		{Role: RoleAssistant, Content: "好的"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 2)

	assert.Equal(t, "user", result[0].Role)
	assert.Equal(t, "translate this", result[0].Content)
	assert.Equal(t, "assistant", result[1].Role)
	assert.Equal(t, "好的", result[1].Content)

	assert.Nil(t, toProtoMessages(nil))
}

func TestToProtoPlatform(t *testing.T) {
	p := config.PlatformConfig{
		Provider:    "openai",
		Model:       "gpt-4o",
		APIKeyEnv:   "LLM_API_KEY",
		BaseURL:     "https://proxy.internal/v1",
		Temperature: 0.3,
	}

	proto := toProtoPlatform(p)
	assert.Equal(t, "openai", proto.Provider)
	assert.Equal(t, "gpt-4o", proto.Model)
	assert.Equal(t, "LLM_API_KEY", proto.ApiKeyEnv)
	assert.Equal(t, "https://proxy.internal/v1", proto.BaseUrl)
	assert.InDelta(t, 0.3, proto.Temperature, 1e-9)
}

func TestToProtoRequest(t *testing.T) {
	req := &Request{
		RunID:        "run-1",
		SystemPrompt: "You are a translator",
		Messages:     []Message{{Role: RoleUser, Content: "hello"}},
		Platform:     config.PlatformConfig{Provider: "openai", Model: "gpt-4o"},
	}

	proto := toProtoRequest(req)
	assert.Equal(t, "run-1", proto.RunId)
	assert.Equal(t, "You are a translator", proto.SystemPrompt)
	require.Len(t, proto.Messages, 1)
	require.NotNil(t, proto.Platform)
	assert.Equal(t, "gpt-4o", proto.Platform.Model)
}

func TestResponseFold(t *testing.T) {
	t.Run("concatenates text deltas", func(t *testing.T) {
		var fold responseFold
		for _, s := range []string{"你好", "，", "世界"} {
			chunk := &llmv1.CompleteChunk{
				Content: &llmv1.CompleteChunk_Text{Text: &llmv1.TextDelta{Content: s}},
			}
			require.NoError(t, fold.apply(chunk))
		}

		resp := fold.result()
		assert.Equal(t, "你好，世界", resp.Content)
		assert.Empty(t, resp.Reasoning)
		assert.False(t, resp.Skipped)
	})

	t.Run("reasoning kept separate from content", func(t *testing.T) {
		var fold responseFold
		require.NoError(t, fold.apply(&llmv1.CompleteChunk{
			Content: &llmv1.CompleteChunk_Reasoning{Reasoning: &llmv1.ReasoningDelta{Content: "thinking..."}},
		}))
		require.NoError(t, fold.apply(&llmv1.CompleteChunk{
			Content: &llmv1.CompleteChunk_Text{Text: &llmv1.TextDelta{Content: "answer"}},
		}))

		resp := fold.result()
		assert.Equal(t, "thinking...", resp.Reasoning)
		assert.Equal(t, "answer", resp.Content)
	})

	t.Run("usage fills token counts", func(t *testing.T) {
		var fold responseFold
		require.NoError(t, fold.apply(&llmv1.CompleteChunk{
			Content: &llmv1.CompleteChunk_Usage{Usage: &llmv1.UsageInfo{
				PromptTokens:     120,
				CompletionTokens: 45,
				TotalTokens:      165,
			}},
		}))

		resp := fold.result()
		assert.Equal(t, 120, resp.PromptTokens)
		assert.Equal(t, 45, resp.CompletionTokens)
	})

	t.Run("error chunk aborts with ProviderError", func(t *testing.T) {
		var fold responseFold
		err := fold.apply(&llmv1.CompleteChunk{
			Content: &llmv1.CompleteChunk_Error{Error: &llmv1.ErrorInfo{
				Message:   "rate limited",
				Code:      "429",
				Retryable: true,
			}},
		})
		require.Error(t, err)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "rate limited", pe.Message)
		assert.Equal(t, "429", pe.Code)
		assert.True(t, pe.Retryable)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("skipped sets flag and reason", func(t *testing.T) {
		var fold responseFold
		require.NoError(t, fold.apply(&llmv1.CompleteChunk{
			Content: &llmv1.CompleteChunk_Skipped{Skipped: &llmv1.SkippedInfo{Reason: "safety filter"}},
		}))

		resp := fold.result()
		assert.True(t, resp.Skipped)
		assert.Equal(t, "safety filter", resp.SkipReason)
		assert.Empty(t, resp.Content)
	})

	t.Run("final-only chunk is a no-op", func(t *testing.T) {
		var fold responseFold
		require.NoError(t, fold.apply(&llmv1.CompleteChunk{IsFinal: true}))

		resp := fold.result()
		assert.Empty(t, resp.Content)
		assert.Zero(t, resp.PromptTokens)
	})
}
