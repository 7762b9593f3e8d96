package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	assert.Zero(t, CountTokens(""))

	short := CountTokens("Hello, world.")
	assert.GreaterOrEqual(t, short, 1)

	long := CountTokens(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20))
	assert.Greater(t, long, short)
}

func TestCountRequestTokens(t *testing.T) {
	system := "You are a translator."
	messages := []Message{
		{Role: RoleUser, Content: "First line of the chapter."},
		{Role: RoleUser, Content: "Second line of the chapter."},
	}

	total := CountRequestTokens(system, messages)
	sum := CountTokens(system) + CountTokens(messages[0].Content) + CountTokens(messages[1].Content)
	assert.Equal(t, sum, total)
}
