package agent

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// CountTokens estimates the token count of s using the cl100k_base
// encoding. When the encoding cannot be loaded it falls back to a
// runes/4 heuristic, which overestimates CJK text; the rate limiter
// treats estimates as upper bounds so that is acceptable.
func CountTokens(s string) int {
	if s == "" {
		return 0
	}

	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		n := utf8.RuneCountInString(s) / 4
		if n < 1 {
			n = 1
		}
		return n
	}
	return len(encoding.Encode(s, nil, nil))
}

// CountRequestTokens sums the estimate over a whole completion request.
func CountRequestTokens(system string, messages []Message) int {
	total := CountTokens(system)
	for _, m := range messages {
		total += CountTokens(m.Content)
	}
	return total
}
