package terminology

import "fmt"

// identifySystemPrompt asks for domain terms and culture-bound expressions
// as one JSON object. parseIdentifyReply mirrors the shape.
func identifySystemPrompt(domain string) string {
	if domain == "" {
		domain = "general"
	}
	return fmt.Sprintf(`你是一位专业的术语识别专家。请从以下文本中识别：
1. 领域术语：专业或领域特有的词汇和短语（如"%s"领域的专业术语）
2. 文化负载词：缺乏直接对等表达的词汇和习语

注意：
- 只识别真正需要固定翻译的术语（如专有名词、专业术语）
- 不要识别普通词汇
- 优先识别出现频率高的术语

请以JSON格式返回识别结果，格式如下：
{
    "terms": [
        {
            "term": "术语原文",
            "category": "domain_term" 或 "cultural_expression",
            "context": "出现上下文",
            "meaning": "语义解释",
            "translation_strategy": "直译/意译/语义补偿"
        }
    ]
}`, domain)
}

// verifySystemPrompt pins the numbered-textarea output contract for n term
// renderings in the target language.
func verifySystemPrompt(n int, target string) string {
	return fmt.Sprintf(`你是一位专业的术语翻译专家。你的任务是为以下术语提供准确的%s翻译。

【翻译要求】
1. 根据术语的类型选择合适的翻译策略：
   - 专有名词（人名、地名）：音译为主
   - 生物/化学术语：使用标准学术译名
   - 普通术语：意译，符合目标语言习惯
2. 翻译必须准确、规范，符合专业领域的惯例
3. 不要添加任何解释或注释

【输出格式要求】
- 必须使用<textarea>标签包裹所有译文
- 逐行翻译，原文有%d行，译文也必须有%d行
- 每行格式：序号. 译文
- 序号必须从1到%d连续，不要跳过
- 不要合并行，不要添加额外说明

格式示例：
<textarea>
1.第一个术语的译文
2.第二个术语的译文
3.第三个术语的译文
</textarea>`, target, n, n, n)
}
