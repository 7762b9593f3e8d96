package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Run("expands template variables", func(t *testing.T) {
		t.Setenv("TEST_LF_MODEL", "gpt-4o")
		out := ExpandEnv([]byte("model: {{.TEST_LF_MODEL}}"))
		assert.Equal(t, "model: gpt-4o", string(out))
	})

	t.Run("expands multiple variables on one line", func(t *testing.T) {
		t.Setenv("TEST_LF_HOST", "es01")
		t.Setenv("TEST_LF_PORT", "9200")
		out := ExpandEnv([]byte("addr: http://{{.TEST_LF_HOST}}:{{.TEST_LF_PORT}}"))
		assert.Equal(t, "addr: http://es01:9200", string(out))
	})

	t.Run("missing variable expands to empty string", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.DEFINITELY_NOT_SET_ANYWHERE_42}}"))
		assert.Equal(t, "key: ", string(out))
	})

	t.Run("literal dollar signs pass through", func(t *testing.T) {
		in := []byte(`pattern: "^price\\$[0-9]+$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template returns original data", func(t *testing.T) {
		in := []byte("broken: {{.UNCLOSED")
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("values containing equals are preserved", func(t *testing.T) {
		t.Setenv("TEST_LF_EQ", "a=b=c")
		out := ExpandEnv([]byte("v: {{.TEST_LF_EQ}}"))
		assert.Equal(t, "v: a=b=c", string(out))
	})
}
