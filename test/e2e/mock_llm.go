package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/linguaflow/linguaflow/pkg/agent"
)

// Script routes, one per pipeline prompt. A request is classified by the
// role marker its system prompt carries.
const (
	RouteIdentify = "identify" // terminology identification
	RouteVerify   = "verify"   // term rendering verification
	RouteDraft    = "draft"    // batched line-by-line translation
	RouteBack     = "back"     // back-translation
	RouteEstimate = "estimate" // quality scoring
	RouteRefine   = "refine"   // low-score refinement
	RouteSingle   = "single"   // single-line fallback / retranslation
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one must be set)
	Text  string // reply content
	Error error  // returned from Send()

	// Test control
	BlockUntilCancelled bool            // park Send() until ctx is cancelled
	WaitCh              <-chan struct{} // park Send() until closed, then reply normally
	OnBlock             chan<- struct{} // notified when Send() enters its blocking path
}

// ScriptedLLMClient implements agent.LLMClient with a dual-dispatch mock:
// per-route scripts matched on the prompt's role marker, plus a sequential
// fallback for calls no route covers.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry // consumed in order for unrouted calls
	seqIndex   int
	routes     map[string][]LLMScriptEntry // route → per-route script
	routeIndex map[string]int              // route → current index
	captured   []capturedCall
}

// capturedCall records one Send() for later prompt assertions.
type capturedCall struct {
	route   string
	request *agent.Request
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order by calls no route matches.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.sequential = append(c.sequential, entry)
}

// AddRouted appends entries to a route's script. Entries on one route are
// consumed in order, independent of calls on other routes.
func (c *ScriptedLLMClient) AddRouted(route string, entries ...LLMScriptEntry) {
	c.routes[route] = append(c.routes[route], entries...)
}

// Send implements agent.LLMClient.
func (c *ScriptedLLMClient) Send(ctx context.Context, req *agent.Request) (*agent.Response, error) {
	c.mu.Lock()
	route := routeOf(req)
	c.captured = append(c.captured, capturedCall{route: route, request: req})
	entry, err := c.nextEntry(route)
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	// Handle BlockUntilCancelled: park until the run context ends.
	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	// Handle WaitCh: park until released, then reply normally.
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}

	return &agent.Response{
		Content:          entry.Text,
		PromptTokens:     10,
		CompletionTokens: 5,
	}, nil
}

// Close implements agent.LLMClient.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns the total number of Send() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// Prompts returns the user prompts of every captured call on a route, in
// arrival order.
func (c *ScriptedLLMClient) Prompts(route string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, call := range c.captured {
		if call.route != route {
			continue
		}
		var b strings.Builder
		for _, msg := range call.request.Messages {
			if msg.Role == agent.RoleUser {
				b.WriteString(msg.Content)
			}
		}
		out = append(out, b.String())
	}
	return out
}

// nextEntry selects the next script entry: routed dispatch first, then the
// sequential script. Must be called with c.mu held.
func (c *ScriptedLLMClient) nextEntry(route string) (*LLMScriptEntry, error) {
	if route != "" {
		if entries, ok := c.routes[route]; ok {
			idx := c.routeIndex[route]
			if idx < len(entries) {
				c.routeIndex[route] = idx + 1
				return &entries[idx], nil
			}
		}
	}

	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}

	return nil, fmt.Errorf("ScriptedLLMClient: no more entries (route=%q, sequential=%d/%d)",
		route, c.seqIndex, len(c.sequential))
}

// routeOf classifies a request by the role marker in its system prompt.
// The terminology markers come before the draft marker because the term
// verification prompt also instructs line-by-line output.
func routeOf(req *agent.Request) string {
	sys := req.SystemPrompt
	switch {
	case strings.Contains(sys, "术语识别专家"):
		return RouteIdentify
	case strings.Contains(sys, "术语翻译专家"):
		return RouteVerify
	case strings.Contains(sys, "回译专家"):
		return RouteBack
	case strings.Contains(sys, "质量评估专家"):
		return RouteEstimate
	case strings.Contains(sys, "修正专家"):
		return RouteRefine
	case strings.Contains(sys, "逐行翻译"):
		return RouteDraft
	case strings.Contains(sys, "直接输出译文"):
		return RouteSingle
	default:
		return ""
	}
}
