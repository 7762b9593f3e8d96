// Package ratelimit throttles LLM traffic with a sliding one-minute window
// over both request and token counts. Waiters are admitted strictly in
// arrival order so a small request cannot starve a large one queued ahead
// of it.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrStopped reports that the owning run was cancelled while waiting.
	ErrStopped = errors.New("rate limit wait aborted: run stopped")

	// ErrTimeout reports that a slot did not free up within the acquire
	// timeout.
	ErrTimeout = errors.New("rate limit wait timed out")
)

const (
	// DefaultAcquireTimeout is the longest a single Acquire will wait.
	DefaultAcquireTimeout = 300 * time.Second

	defaultWindow = time.Minute
	defaultPoll   = time.Second
)

type usage struct {
	at     time.Time
	tokens int
}

// Limiter enforces requests-per-minute and tokens-per-minute ceilings.
// A zero or negative ceiling disables that dimension; with both disabled
// Acquire returns immediately.
type Limiter struct {
	rpm     int
	tpm     int
	timeout time.Duration
	window  time.Duration
	poll    time.Duration
	stopped func() bool

	mu         sync.Mutex
	entries    []usage
	queue      []uint64
	nextTicket uint64
}

// Option adjusts limiter behavior at construction time.
type Option func(*Limiter)

// WithTimeout overrides the per-acquire wait ceiling.
func WithTimeout(d time.Duration) Option {
	return func(l *Limiter) { l.timeout = d }
}

// WithStopCheck wires a run-cancellation probe; when it reports true a
// pending Acquire fails fast with ErrStopped.
func WithStopCheck(fn func() bool) Option {
	return func(l *Limiter) { l.stopped = fn }
}

// WithWindow overrides the sliding-window span. Intended for tests.
func WithWindow(d time.Duration) Option {
	return func(l *Limiter) { l.window = d }
}

// WithPollInterval overrides how often waiters re-check for capacity.
// Intended for tests.
func WithPollInterval(d time.Duration) Option {
	return func(l *Limiter) { l.poll = d }
}

// New builds a limiter with the given per-minute ceilings.
func New(rpm, tpm int, opts ...Option) *Limiter {
	l := &Limiter{
		rpm:     rpm,
		tpm:     tpm,
		timeout: DefaultAcquireTimeout,
		window:  defaultWindow,
		poll:    defaultPoll,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Unlimited reports whether both ceilings are disabled.
func (l *Limiter) Unlimited() bool {
	return l.rpm <= 0 && l.tpm <= 0
}

// Acquire blocks until the estimated request fits the window, then records
// it. It fails with ErrStopped when the run is cancelled, ErrTimeout after
// the acquire timeout, or the context error when ctx ends first.
func (l *Limiter) Acquire(ctx context.Context, tokens int) error {
	if tokens < 0 {
		tokens = 0
	}
	if l.Unlimited() {
		l.record(tokens)
		return nil
	}

	ticket := l.enqueue()
	deadline := time.Now().Add(l.timeout)

	for {
		if l.stopped != nil && l.stopped() {
			l.abandon(ticket)
			return ErrStopped
		}
		if err := ctx.Err(); err != nil {
			l.abandon(ticket)
			return err
		}
		if l.tryAdmit(ticket, tokens) {
			return nil
		}
		if time.Now().After(deadline) {
			l.abandon(ticket)
			return ErrTimeout
		}

		timer := time.NewTimer(l.poll)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.abandon(ticket)
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// InFlight reports the requests and tokens currently inside the window.
func (l *Limiter) InFlight() (requests, tokens int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked(time.Now())
	for _, u := range l.entries {
		tokens += u.tokens
	}
	return len(l.entries), tokens
}

func (l *Limiter) enqueue() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextTicket++
	t := l.nextTicket
	l.queue = append(l.queue, t)
	return t
}

// abandon removes a waiter that gave up, wherever it sits in the queue.
func (l *Limiter) abandon(ticket uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, t := range l.queue {
		if t == ticket {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}

func (l *Limiter) tryAdmit(ticket uint64, tokens int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Only the head of the queue may be admitted.
	if len(l.queue) == 0 || l.queue[0] != ticket {
		return false
	}

	now := time.Now()
	l.pruneLocked(now)

	if l.rpm > 0 && len(l.entries) >= l.rpm {
		return false
	}
	if l.tpm > 0 {
		used := 0
		for _, u := range l.entries {
			used += u.tokens
		}
		// A request larger than the whole token budget is admitted
		// alone into an empty window instead of blocking forever.
		if used+tokens > l.tpm && len(l.entries) > 0 {
			return false
		}
	}

	l.entries = append(l.entries, usage{at: now, tokens: tokens})
	l.queue = l.queue[1:]
	return true
}

func (l *Limiter) record(tokens int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	l.pruneLocked(now)
	l.entries = append(l.entries, usage{at: now, tokens: tokens})
}

func (l *Limiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-l.window)
	kept := l.entries[:0]
	for _, u := range l.entries {
		if u.at.After(cutoff) {
			kept = append(kept, u)
		}
	}
	l.entries = kept
}
