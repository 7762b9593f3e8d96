package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/agent"
)

func TestTear(t *testing.T) {
	sources := []string{"Alice went home.", "Bob stayed."}
	drafts := []string{"爱丽丝回家了。", "鲍勃留下了。"}
	in := baseInput(nil)

	t.Run("passing scores leave drafts untouched", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate: "<textarea>\n1. 评分：9.0\n2. 评分：8.0\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []string{"Alice went home.", "Bob stayed."}, out.backs)
		assert.Equal(t, []float64{9.0, 8.0}, out.scores)
		assert.Equal(t, []bool{false, false}, out.refined)
		assert.Empty(t, llm.refineReqs)
	})

	t.Run("back-translation failure keeps drafts with default scores", func(t *testing.T) {
		llm := &scriptedLLM{backErr: &agent.ProviderError{Message: "boom", Code: "500"}}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []string{"", ""}, out.backs)
		assert.Equal(t, []float64{defaultScore, defaultScore}, out.scores)
		assert.Empty(t, llm.estimateReqs)
		assert.Empty(t, llm.refineReqs)
	})

	t.Run("estimation failure keeps default scores", func(t *testing.T) {
		llm := &scriptedLLM{
			back:        "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimateErr: &agent.ProviderError{Message: "boom", Code: "500"},
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []float64{defaultScore, defaultScore}, out.scores)
		assert.NotEmpty(t, out.backs[0])
		assert.Empty(t, llm.refineReqs)
	})

	t.Run("refines lines under the threshold", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob left town.\n</textarea>",
			estimate: "<textarea>\n1. 评分：9.0\n2. 评分：5.0\n</textarea>",
			refine:   "<textarea>\n1. 鲍勃留在了原地。\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, "爱丽丝回家了。", out.texts[0])
		assert.Equal(t, "鲍勃留在了原地。", out.texts[1])
		assert.Equal(t, []bool{false, true}, out.refined)
		assert.Equal(t, 5.0, out.scores[1])

		require.Len(t, llm.refineReqs, 1)
		assert.Contains(t, llm.refineReqs[0], "1. 原文: Bob stayed.")
		assert.Contains(t, llm.refineReqs[0], "原译文: 鲍勃留下了。")
		assert.Contains(t, llm.refineReqs[0], "回译: Bob left town.")
		assert.NotContains(t, llm.refineReqs[0], "Alice")
	})

	t.Run("missing refine entries keep their drafts", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate: "<textarea>\n1. 评分：5.0\n2. 评分：5.5\n</textarea>",
			refine:   "<textarea>\n1. 修改一\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, "修改一", out.texts[0])
		assert.Equal(t, "鲍勃留下了。", out.texts[1])
		assert.Equal(t, []bool{true, false}, out.refined)
	})

	t.Run("unchanged refinement output is not flagged", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate: "<textarea>\n1. 评分：5.0\n2. 评分：9.0\n</textarea>",
			refine:   "<textarea>\n1. 爱丽丝回家了。\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []bool{false, false}, out.refined)
	})

	t.Run("refinement failure keeps drafts", func(t *testing.T) {
		llm := &scriptedLLM{
			back:      "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate:  "<textarea>\n1. 评分：5.0\n2. 评分：5.0\n</textarea>",
			refineErr: &agent.ProviderError{Message: "boom", Code: "500"},
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []float64{5.0, 5.0}, out.scores)
		assert.Equal(t, []bool{false, false}, out.refined)
	})

	t.Run("label residue in a refinement is stripped", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate: "<textarea>\n1. 评分：5.0\n2. 评分：9.0\n</textarea>",
			refine:   "<textarea>\n1. 修正后译文：干净的句子\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, "干净的句子", out.texts[0])
		assert.True(t, out.refined[0])
	})

	t.Run("missing score entries fall back to the default", func(t *testing.T) {
		llm := &scriptedLLM{
			back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n</textarea>",
			estimate: "<textarea>\n1. 评分：9.0\n</textarea>",
		}
		a := New(newRuntime(llm))

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, []float64{9.0, defaultScore}, out.scores)
		assert.Empty(t, llm.refineReqs)
	})

	t.Run("stopped runtime skips the loop", func(t *testing.T) {
		llm := &scriptedLLM{}
		rt := newRuntime(llm)
		rt.Stop()
		a := New(rt)

		out := a.tear(context.Background(), 0, sources, drafts, in)

		assert.Equal(t, drafts, out.texts)
		assert.Equal(t, []float64{defaultScore, defaultScore}, out.scores)
		assert.Zero(t, llm.callCount())
	})
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		entry string
		want  float64
	}{
		{"评分：9.5", 9.5},
		{"评分: 7", 7.0},
		{"Score: 8.5", 8.5},
		{"评分：9.5分", 9.5},
		{"9.5分", 9.5},
		{"8/10", 8.0},
		{" 7 ", 7.0},
		{"评分：0", defaultScore},
		{"11", defaultScore},
		{"评分：十分", defaultScore},
		{"高质量", defaultScore},
		{"", defaultScore},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseScore(tc.entry), "entry %q", tc.entry)
	}
}

func TestCleanRefined(t *testing.T) {
	cases := []struct {
		entry string
		want  string
	}{
		{"这是纯译文", "这是纯译文"},
		{"修正后译文：你好", "你好"},
		{"原文: Hello 修正后译文: 你好世界", "你好世界"},
		{"**加粗译文**", "加粗译文"},
		{"译文：", ""},
		{"  前后有空白  ", "前后有空白"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanRefined(tc.entry), "entry %q", tc.entry)
	}
}
