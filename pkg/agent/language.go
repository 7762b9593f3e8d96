package agent

import "strings"

// languageNames maps config language codes to the display names used inside
// prompts. Both short codes and the long spelled-out forms are accepted.
var languageNames = map[string]string{
	"zh":                  "中文",
	"zh-cn":               "简体中文",
	"zh-tw":               "繁体中文",
	"chinese_simplified":  "简体中文",
	"chinese_traditional": "繁体中文",
	"en":                  "英文",
	"english":             "英文",
	"ja":                  "日文",
	"japanese":            "日文",
	"ko":                  "韩文",
	"korean":              "韩文",
	"fr":                  "法文",
	"french":              "法文",
	"de":                  "德文",
	"german":              "德文",
	"es":                  "西班牙文",
	"spanish":             "西班牙文",
	"ru":                  "俄文",
	"russian":             "俄文",
	"pt":                  "葡萄牙文",
	"portuguese":          "葡萄牙文",
	"it":                  "意大利文",
	"italian":             "意大利文",
}

// LanguageName returns the prompt display name for a language code.
// Unknown codes pass through unchanged so prompts stay usable.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}
