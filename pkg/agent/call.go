package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrStopped is returned when a call is refused because the run's stop
// flag is set.
var ErrStopped = errors.New("run stopped")

// CallWithStats sends one completion through the run's rate limiter and
// stats tracker. This is the only path agents use to reach the model.
func CallWithStats(ctx context.Context, rt *Runtime, system string, messages []Message) (*Response, error) {
	if rt.Stopped() {
		return nil, ErrStopped
	}

	estimate := CountRequestTokens(system, messages)
	if err := rt.Limiter.Acquire(ctx, estimate); err != nil {
		return nil, err
	}

	req := &Request{
		RunID:        rt.RunID,
		SystemPrompt: system,
		Messages:     messages,
		Platform:     rt.Platform,
	}

	var resp *Response
	err := rt.Stats.TrackCall(func() (int, int, error) {
		callCtx := ctx
		if rt.Pipeline != nil && rt.Pipeline.RequestTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, rt.Pipeline.RequestTimeout)
			defer cancel()
		}

		var sendErr error
		resp, sendErr = rt.LLM.Send(callCtx, req)
		if sendErr != nil {
			return 0, 0, sendErr
		}
		return resp.PromptTokens, resp.CompletionTokens, nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RetryPolicy controls repeat attempts for transient completion failures.
type RetryPolicy struct {
	// Attempts is the total number of tries including the first.
	Attempts int
	// Base is the delay before the first retry.
	Base time.Duration
	// Exponential doubles the delay after each retry.
	Exponential bool
}

// CallWithRetry wraps CallWithStats with the run's retry policy. Only
// retryable provider errors, timeouts and transport outages are retried;
// everything else fails immediately.
func CallWithRetry(ctx context.Context, rt *Runtime, system string, messages []Message, policy RetryPolicy) (*Response, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := policy.Base
	if delay <= 0 {
		delay = time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			if policy.Exponential {
				delay *= 2
			}
		}

		resp, err := CallWithStats(ctx, rt, system, messages)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !Retryable(err) {
			return nil, err
		}
		slog.Warn("LLM call failed, retrying",
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err)
	}
	return nil, fmt.Errorf("completion failed after %d attempts: %w", attempts, lastErr)
}

// Retryable reports whether err is worth another attempt.
func Retryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}
