package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// stubLLM returns queued results in order, repeating the last one.
type stubLLM struct {
	results []stubResult
	calls   int
	lastReq *Request
}

type stubResult struct {
	resp *Response
	err  error
}

func (s *stubLLM) Send(_ context.Context, req *Request) (*Response, error) {
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	s.lastReq = req
	r := s.results[idx]
	return r.resp, r.err
}

func (s *stubLLM) Close() error { return nil }

func newTestRuntime(llm LLMClient) *Runtime {
	return &Runtime{
		RunID:   "run-test",
		Stats:   stats.NewTracker(nil),
		Limiter: ratelimit.New(0, 0),
		LLM:     llm,
		Pipeline: &config.PipelineConfig{
			RequestTimeout: time.Second,
		},
		Platform: config.PlatformConfig{Provider: "openai", Model: "gpt-4o"},
	}
}

func TestCallWithStats(t *testing.T) {
	t.Run("returns response and records usage", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{{
			resp: &Response{Content: "你好", PromptTokens: 100, CompletionTokens: 20},
		}}}
		rt := newTestRuntime(stub)

		resp, err := CallWithStats(context.Background(), rt, "translate", []Message{
			{Role: RoleUser, Content: "hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, "你好", resp.Content)

		snap := rt.Stats.Snapshot()
		assert.Equal(t, 1, snap.TotalRequests)
		assert.Equal(t, 120, snap.Tokens)
		assert.Equal(t, 20, snap.CompletionTokens)
		assert.Equal(t, 0, snap.ActiveLLMCalls)
	})

	t.Run("fills request identity from runtime", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{{resp: &Response{}}}}
		rt := newTestRuntime(stub)

		_, err := CallWithStats(context.Background(), rt, "sys", nil)
		require.NoError(t, err)
		require.NotNil(t, stub.lastReq)
		assert.Equal(t, "run-test", stub.lastReq.RunID)
		assert.Equal(t, "gpt-4o", stub.lastReq.Platform.Model)
		assert.Equal(t, "sys", stub.lastReq.SystemPrompt)
	})

	t.Run("refuses after stop", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{{resp: &Response{}}}}
		rt := newTestRuntime(stub)
		rt.Stop()

		_, err := CallWithStats(context.Background(), rt, "sys", nil)
		require.ErrorIs(t, err, ErrStopped)
		assert.Zero(t, stub.calls)
	})

	t.Run("send error still settles the call gauge", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{{err: errors.New("boom")}}}
		rt := newTestRuntime(stub)

		_, err := CallWithStats(context.Background(), rt, "sys", nil)
		require.Error(t, err)

		snap := rt.Stats.Snapshot()
		assert.Equal(t, 1, snap.TotalRequests)
		assert.Equal(t, 0, snap.ActiveLLMCalls)
		assert.Equal(t, 0, snap.Tokens)
	})
}

func TestCallWithRetry(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Base: time.Millisecond}

	t.Run("retryable error then success", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{
			{err: &ProviderError{Message: "overloaded", Retryable: true}},
			{resp: &Response{Content: "ok"}},
		}}
		rt := newTestRuntime(stub)

		resp, err := CallWithRetry(context.Background(), rt, "sys", nil, policy)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Content)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{
			{err: &ProviderError{Message: "bad request", Retryable: false}},
		}}
		rt := newTestRuntime(stub)

		_, err := CallWithRetry(context.Background(), rt, "sys", nil, policy)
		require.Error(t, err)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("exhausted attempts wrap the last error", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{
			{err: &ProviderError{Message: "overloaded", Retryable: true}},
		}}
		rt := newTestRuntime(stub)

		_, err := CallWithRetry(context.Background(), rt, "sys", nil, RetryPolicy{Attempts: 2, Base: time.Millisecond})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 attempts")

		var pe *ProviderError
		assert.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("stop flag wins over retries", func(t *testing.T) {
		stub := &stubLLM{results: []stubResult{{resp: &Response{}}}}
		rt := newTestRuntime(stub)
		rt.Stop()

		_, err := CallWithRetry(context.Background(), rt, "sys", nil, policy)
		require.ErrorIs(t, err, ErrStopped)
		assert.Zero(t, stub.calls)
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&ProviderError{Retryable: true}))
	assert.False(t, Retryable(&ProviderError{Retryable: false}))
	assert.True(t, Retryable(context.DeadlineExceeded))
	assert.True(t, Retryable(status.Error(codes.Unavailable, "down")))
	assert.True(t, Retryable(status.Error(codes.ResourceExhausted, "quota")))
	assert.False(t, Retryable(status.Error(codes.InvalidArgument, "bad")))
	assert.False(t, Retryable(errors.New("plain failure")))
	assert.False(t, Retryable(ErrStopped))
}
