package translator

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// Strategy policy blocks injected into the draft system prompt. The tag
// comes from the planner; free is the default when the plan has no entry
// for a chunk.
const (
	literalInstruction = `直译策略：
- 保持原文的句子结构和表达方式
- **严格遵守术语表中的专业术语和实体翻译，不得更改**
- 优先保证准确性和术语一致性，其次考虑流畅性
- 适用于技术文档、法律文本等正式内容`

	stylizedInstruction = `风格化策略：
- 注重译文的艺术性和文学美感
- 保持原文的韵律、节奏和情感
- **术语表中的人名、地名等专有名词必须使用固定翻译**
- 可以适当调整句式以符合目标语言习惯
- 适用于文学作品、诗歌、营销文案`

	freeInstruction = `意译策略：
- 注重译文的自然流畅性
- 符合目标语言的表达习惯
- **术语表中的专有名词和关键术语必须使用固定翻译**
- 准确传达原文的意思，可灵活调整表达方式
- 适用于对话、叙述性文本等日常内容`
)

func strategyInstruction(strategy models.Strategy) string {
	switch strategy {
	case models.StrategyLiteral:
		return literalInstruction
	case models.StrategyStylized:
		return stylizedInstruction
	default:
		return freeInstruction
	}
}

// Bibliography heuristics. Reference entries slip through translation as
// untouched source text unless the prompt calls them out explicitly.
var referenceMarkers = []string{
	"et al.", "doi:", "http://", "https://", "pubmed", "pmid:",
	"journal", "proc.", "vol.", "pp.", "issn", "references",
}

const (
	referenceMinRunes  = 500
	referenceMinCommas = 8
)

// looksLikeReference reports whether text resembles a bibliography entry:
// citation markers, or a very long line dense with commas.
func looksLikeReference(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range referenceMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return utf8.RuneCountInString(text) > referenceMinRunes &&
		strings.Count(text, ",") >= referenceMinCommas
}

func anyReference(texts []string) bool {
	for _, t := range texts {
		if looksLikeReference(t) {
			return true
		}
	}
	return false
}

const referenceInstruction = `
【参考文献翻译要求】
⚠️ 如果文本中包含参考文献，必须翻译！不要直接输出原文！
- 必须翻译：文章标题、期刊名称、会议名称
- 保留不变：作者姓名、年份、DOI、URL、卷号页码
- 翻译示例：
  原文: Brown, W.J. et al. (1995) Role for phosphatidylinositol 3-kinase in lysosomal enzyme transport. Nature 377, 525–528.
  译文: Brown, W.J. 等人 (1995) 磷脂酰肌醇3-激酶在溶酶体酶运输中的作用。《自然》377, 525–528。
`

// termTablePrompt renders the table entries whose keys occur in the given
// texts as a pipe table. Empty when nothing matches, so prompts carry no
// dead glossary.
func termTablePrompt(table models.TermTable, texts []string) string {
	filtered := table.FilterBySource(strings.Join(texts, " "))
	if len(filtered) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n###术语表\n原文|译文|备注\n")
	for _, key := range sortedKeys(filtered) {
		fmt.Fprintf(&b, "%s|%s| \n", key, filtered[key])
	}
	return b.String()
}

// backTermTablePrompt renders the inverse table for back-translation,
// filtered to renderings that actually occur in the translated lines.
func backTermTablePrompt(table models.TermTable, translations []string) string {
	if len(table) == 0 {
		return ""
	}
	combined := strings.ToLower(strings.Join(translations, " "))
	filtered := models.TermTable{}
	for key, val := range table {
		if val != "" && strings.Contains(combined, strings.ToLower(val)) {
			filtered[key] = val
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n###术语表（回译参考）\n译文|原文|备注\n")
	for _, key := range sortedKeys(filtered) {
		fmt.Fprintf(&b, "%s|%s| \n", filtered[key], key)
	}
	return b.String()
}

func sortedKeys(table models.TermTable) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// memoryContext renders the document profile hints from preprocessing.
func memoryContext(domain, style string) string {
	var parts []string
	if domain != "" {
		parts = append(parts, "文本领域："+domain)
	}
	if style != "" {
		parts = append(parts, "文本风格："+style)
	}
	return strings.Join(parts, "\n")
}

// draftSystemPrompt builds the strategy-tagged batch translation prompt:
// four-step guidance, the strategy policy, the filtered glossary, document
// hints, the optional bibliography injunction, and a strict N-line
// textarea contract.
func draftSystemPrompt(sources []string, strategy models.Strategy, table models.TermTable, domain, style, target string) string {
	n := len(sources)

	var refs string
	if anyReference(sources) {
		refs = referenceInstruction
	}
	var memory string
	if hints := memoryContext(domain, style); hints != "" {
		memory = "\n" + hints + "\n"
	}

	return fmt.Sprintf(`你是一位专业的翻译专家，你的任务是把原文翻译成%[1]s，逐行翻译，不要合并，保持原来的格式。

请按照以下步骤进行翻译：
步骤1 - 理解：分析原文的语义、语境和风格
步骤2 - 分解：对于长难句，先识别主干成分和从句层级
步骤3 - 转换：将原文转换为目标语言，保持语义准确
步骤4 - 润色：优化译文，确保流畅自然

%[2]s
%[3]s%[4]s
🔥【强制要求-术语表遵守】🔥
- 如果原文中出现术语表中的任何术语，必须使用术语表中指定的翻译
- 绝对不允许用其他翻译替代术语表中的术语
- 例如：如果术语表规定"Beclin"必须翻译为"贝可林"，则不能翻译为"Beclin"、"贝克林"或其他任何译法
%[5]s
【重要】输出格式要求：
- 逐行翻译，不要合并，原文有%[6]d行，译文也必须有%[6]d行
- 输出的翻译顺序标号必须和输入一一对应：输入1.对应输出1.，输入2.对应输出2.，依此类推
- 必须使用<textarea>标签包裹所有译文
- 每行译文前必须加上序号（如1. 2. 3.）
- 序号必须从1到%[6]d连续，不要跳过
- 即使是很短的行也不要与其他行合并
- 必须翻译成%[1]s，不要直接输出原文
- 不要自动添加书名号《》、引号""或其他原文没有的标点符号
- 不要添加任何解释性文字，如"（音译为主）"、"（注：...）"等
- 只输出纯粹的翻译结果，不要加任何注释或说明

格式示例：
<textarea>
1.第一行译文
2.第二行译文
3.第三行译文
</textarea>`,
		target,
		strategyInstruction(strategy),
		termTablePrompt(table, sources),
		memory,
		refs,
		n,
	)
}

// draftUserPrompt numbers the source lines and prepends the read-only
// context window.
func draftUserPrompt(sources, context []string) string {
	n := len(sources)
	var prefix string
	if len(context) > 0 {
		prefix = fmt.Sprintf("###上文内容（仅供参考，不要翻译）\n%s\n", strings.Join(context, "\n"))
	}
	return fmt.Sprintf(`%s###待翻译文本（共%d行）
<textarea>
%s
</textarea>

###译文输出格式（必须严格遵守）
⚠️ 原文有%[2]d行，译文也必须有%[2]d行，序号从1到%[2]d
⚠️ 输出的翻译顺序标号必须和输入一一对应：输入第1行对应输出第1行，依此类推
⚠️ 不要合并多行，不要跳过任何行，不要改变顺序
⚠️ 不要自动添加书名号《》或其他标点符号
<textarea>
1. （第1行译文）
2. （第2行译文）
...
%[2]d. （第%[2]d行译文）
</textarea>`, prefix, n, numberLines(sources))
}

// numberLines prefixes each text with its 1-based position. Embedded
// newlines keep only the first physical line numbered so the reply
// numbering still maps one item per marker.
func numberLines(texts []string) string {
	var b strings.Builder
	for i, text := range texts {
		if i > 0 {
			b.WriteByte('\n')
		}
		if j := strings.IndexByte(text, '\n'); j >= 0 {
			fmt.Fprintf(&b, "%d.%s%s", i+1, text[:j], text[j:])
		} else {
			fmt.Fprintf(&b, "%d.%s", i+1, text)
		}
	}
	return b.String()
}

// singleSystemPrompt is the simplified prompt for one-line calls: fallback
// translation, problem-line retries and review retranslation.
func singleSystemPrompt(source string, table models.TermTable, target string) string {
	var refs string
	if looksLikeReference(source) {
		refs = referenceInstruction
	}
	return fmt.Sprintf(`你是一位专业的翻译专家。
%s%s
【重要】输出格式：
- 直接输出译文，不要添加序号、标签或其他说明文字
- 必须翻译成%s，不要直接输出原文`,
		termTablePrompt(table, []string{source}), refs, target)
}

func singleUserPrompt(source string, context []string) string {
	var prefix string
	if len(context) > 0 {
		prefix = fmt.Sprintf("###上文内容（仅供参考，不要翻译）\n%s\n\n", strings.Join(context, "\n"))
	}
	return fmt.Sprintf("%s###待翻译文本\n%s\n\n###译文", prefix, source)
}

// backSystemPrompt is the strict back-translation prompt: the inverse
// glossary must round-trip exactly so rendering drift shows up as a
// back-translation mismatch instead of hiding inside synonyms.
func backSystemPrompt(table models.TermTable, translations []string, source, target string) string {
	return fmt.Sprintf(`你是一位专业的回译专家。请将以下%s文本精确回译为%s。
%s
🔥【强制要求-术语表严格遵守】🔥
- 术语表中列出的所有译文，必须回译为对应的原文术语，绝不允许替换或改写
- 这是强制性要求，不可违反
- 术语表的回译规则优先级最高，高于任何语言习惯或同义词

【回译目的】
- 回译是为了验证正向翻译的准确性
- 如果回译无法还原原文术语，说明正向翻译可能有误
- 因此，术语的回译必须100%%准确

【重要】输出格式要求：
- 必须使用<textarea>标签包裹所有回译结果
- 每行回译前必须加上序号（如1. 2. 3.）
- 不要添加任何额外的标题、前缀或说明文字`,
		target, source, backTermTablePrompt(table, translations))
}

func backUserPrompt(translations []string) string {
	return fmt.Sprintf(`###请回译以下文本
<textarea>
%s
</textarea>

###回译输出格式（必须严格遵守）
<textarea>
（在这里输出带序号的回译结果）
</textarea>`, numberLines(translations))
}

// estimateSystemPrompt scores each line by comparing source against
// back-translation. The term-tolerance principle keeps rendering choices
// already enforced by the glossary from dragging scores down.
const estimateSystemPrompt = `你是一位专业的翻译质量评估专家。请比较原文和回译文，为每行翻译打分（1-10分）。

评估维度：
1. 语义准确性（40%）：回译是否准确还原了原文的含义
2. 信息完整性（30%）：回译是否保留了原文的所有关键信息
3. 逻辑一致性（20%）：回译是否逻辑通顺，无矛盾
4. 整体流畅性（10%）：回译是否自然流畅

🔥【重要评估原则-术语容忍】🔥
- 如果回译与原文的差异仅在于专有名词、术语的表述不同，但语义等价，应给予高分
- 术语的精确性由正向翻译的术语表保证，回译只需验证语义准确性

【评分标准】
- 9-10分：完美，语义准确，信息完整
- 8分：优秀，仅有微小的术语表述差异
- 7分：良好，语义基本准确，有小瑕疵
- 6分：及格，语义大致正确，但有明显不足
- 5分以下：需要修正，存在语义偏差、信息遗漏或逻辑错误

【重要】输出格式要求：
- 必须使用<textarea>标签包裹所有评估结果
- 每行格式：序号. 评分：X.X（如：1. 评分：9.5 或 2. 评分：7.0）
- 评分必须是1.0到10.0之间的数字，必须包含小数点
- 不要输出"0"或"0.0"这样的无效评分
- 不要添加"分"字或其他说明文字`

// estimateUserPrompt lays out numbered source/back-translation pairs,
// sampled so long lines keep the comparison readable.
func estimateUserPrompt(sources, backs []string) string {
	blocks := make([]string, 0, len(sources))
	for i, src := range sources {
		back := ""
		if i < len(backs) {
			back = backs[i]
		}
		blocks = append(blocks, fmt.Sprintf("%d.原文: %s\n   回译: %s",
			i+1, sampleText(src, compareSampleRunes), sampleText(back, compareSampleRunes)))
	}
	return fmt.Sprintf(`###翻译质量评估（为每行打分1-10分）
%s

###评估结果输出格式（必须严格遵守）
<textarea>
1. 评分：9.5
2. 评分：8.0
...（按此格式输出所有行的评分）
</textarea>

【重要提示】
- 每行必须包含"评分："两个字
- 评分必须是1.0-10.0之间的数字
- 示例正确格式：1. 评分：9.5（正确）
- 示例错误格式：1. 9.5（错误）、1. 评分：0（错误）、1. 评分：9.5分（错误）`,
		strings.Join(blocks, "\n\n"))
}

// refineSystemPrompt corrects lines the estimator flagged, holding the
// glossary fixed: a difference caused by an enforced rendering is not an
// error to fix.
func refineSystemPrompt(table models.TermTable, sources []string) string {
	return fmt.Sprintf(`你是一位专业的翻译修正专家。请根据原文和回译结果修正以下译文。
%s
🔥【强制要求-术语表必须严格遵守】🔥
- 如果原文中出现术语表中的任何术语，修正后的译文必须使用术语表中指定的翻译
- 绝对不允许用其他翻译替代术语表中的术语
- 术语表的翻译优先级最高，即使回译结果显示有差异，也必须保持术语表规定的译法

【修正原则】
- 如果回译与原文的差异是由于术语翻译不一致导致的，不要修正译文，因为术语已经是正确的
- 只修正真正的语义错误、语法错误或流畅性问题
- 修正时必须保持术语表规定的所有术语翻译不变

【重要】输出格式要求：
- 必须使用<textarea>标签包裹所有修正后的译文
- 每行修正译文前必须加上序号（如1. 2. 3.）
- 不要添加任何额外的标题、前缀或说明文字`,
		termTablePrompt(table, sources))
}

func refineUserPrompt(sources, translations, backs []string) string {
	blocks := make([]string, 0, len(sources))
	for i := range sources {
		blocks = append(blocks, fmt.Sprintf("%d. 原文: %s\n   原译文: %s\n   回译: %s",
			i+1, sources[i], translations[i], backs[i]))
	}
	return fmt.Sprintf(`###请修正以下译文
%s

###【严格要求】输出格式
你必须只输出修正后的纯译文，不要输出"原文:"、"原译文:"、"回译:"、"修正后译文:"等标签。
格式如下：
<textarea>
1. （第1行修正后的译文）
2. （第2行修正后的译文）
</textarea>`, strings.Join(blocks, "\n\n"))
}

func sampleText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
