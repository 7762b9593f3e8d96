package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("plain numbered list", func(t *testing.T) {
		raw := "1. 第一行\n2. 第二行\n3. 第三行"
		got := Extract(raw, 3)
		assert.Equal(t, map[int]string{0: "第一行", 1: "第二行", 2: "第三行"}, got)
	})

	t.Run("textarea wrapper is stripped", func(t *testing.T) {
		raw := "<textarea>\n1. 你好\n2. 再见\n</textarea>"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好", 1: "再见"}, got)
	})

	t.Run("cjk separator", func(t *testing.T) {
		raw := "1、你好\n2、世界"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好", 1: "世界"}, got)
	})

	t.Run("reasoning preamble is ignored", func(t *testing.T) {
		raw := "好的，以下是翻译结果：\n\n1. 你好\n2. 再见"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好", 1: "再见"}, got)
	})

	t.Run("markdown wrapped numbers and content", func(t *testing.T) {
		raw := "**1.** **你好**\n**2.** _再见_"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好", 1: "再见"}, got)
	})

	t.Run("echoed labels are stripped", func(t *testing.T) {
		raw := "1. 译文：你好\n2. 修正后译文: 再见"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好", 1: "再见"}, got)
	})

	t.Run("missing item stays absent", func(t *testing.T) {
		raw := "1. 你好\n3. 再见"
		got := Extract(raw, 3)
		assert.Equal(t, map[int]string{0: "你好", 2: "再见"}, got)
		_, ok := got[1]
		assert.False(t, ok)
	})

	t.Run("out of range numbers are dropped", func(t *testing.T) {
		raw := "1. 你好\n7. 幽灵行"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{0: "你好"}, got)
	})

	t.Run("duplicate numbers keep the last occurrence", func(t *testing.T) {
		raw := "1. 草稿\n1. 终稿"
		got := Extract(raw, 1)
		assert.Equal(t, map[int]string{0: "终稿"}, got)
	})

	t.Run("postamble after blank line is not item content", func(t *testing.T) {
		raw := "1. 你好\n2. 再见\n\n以上就是全部翻译。"
		got := Extract(raw, 2)
		assert.Equal(t, "再见", got[1])
	})

	t.Run("empty content is treated as missing", func(t *testing.T) {
		raw := "1. \n2. 再见"
		got := Extract(raw, 2)
		assert.Equal(t, map[int]string{1: "再见"}, got)
	})

	t.Run("no numbering yields empty map", func(t *testing.T) {
		assert.Empty(t, Extract("无编号的自由回答", 3))
	})
}

func TestCleanMarkdown(t *testing.T) {
	assert.Equal(t, "bold", CleanMarkdown("**bold**"))
	assert.Equal(t, "a b c", CleanMarkdown("*a* __b__ _c_"))
	assert.Equal(t, "nested inner text", CleanMarkdown("**nested *inner* text**"))
	assert.Equal(t, "plain", CleanMarkdown("plain"))
}

func TestStripNumericPrefix(t *testing.T) {
	assert.Equal(t, "content", StripNumericPrefix("12. content"))
	assert.Equal(t, "content", StripNumericPrefix(" 3、content"))
	assert.Equal(t, "no prefix here", StripNumericPrefix("no prefix here"))
	assert.Equal(t, "3,5 is a number", StripNumericPrefix("3,5 is a number"))
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "你好", CleanLine("  译文： “你好”  "))
	assert.Equal(t, `他说"不行"然后离开`, CleanLine(`他说"不行"然后离开`))
	assert.Equal(t, "引用整行", CleanLine(`"引用整行"`))
}
