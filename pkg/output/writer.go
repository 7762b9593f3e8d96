// Package output writes the per-document artifacts of a finished run: a
// plain translated file, one line per item, and a bilingual file that
// interleaves source and translation. Artifact names derive from the
// document name plus a configurable suffix, keeping the original extension.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// Defaults applied when a Config field is empty.
const (
	DefaultTranslatedSuffix = "_translated"
	DefaultBilingualSuffix  = "_bilingual"
)

// Config controls artifact naming and bilingual layout.
type Config struct {
	// TranslatedSuffix is appended to the document name before the
	// extension for the plain translated artifact.
	TranslatedSuffix string
	// BilingualSuffix is appended for the bilingual artifact.
	BilingualSuffix string
	// BilingualOrder puts either the source or the translation first in
	// each bilingual pair.
	BilingualOrder string
}

func (c Config) withDefaults() Config {
	if c.TranslatedSuffix == "" {
		c.TranslatedSuffix = DefaultTranslatedSuffix
	}
	if c.BilingualSuffix == "" {
		c.BilingualSuffix = DefaultBilingualSuffix
	}
	if c.BilingualOrder == "" {
		c.BilingualOrder = config.BilingualSourceFirst
	}
	return c
}

// WriteDocument writes both artifacts for one document under outDir,
// mirroring relPath's directory structure. It returns the paths written.
// Items without a translation fall back to their source text so the
// artifact stays line-aligned with the document.
func WriteDocument(outDir, relPath string, items []*models.Item, cfg Config) ([]string, error) {
	cfg = cfg.withDefaults()

	ext := filepath.Ext(relPath)
	stem := strings.TrimSuffix(relPath, ext)

	translated := filepath.Join(outDir, stem+cfg.TranslatedSuffix+ext)
	bilingual := filepath.Join(outDir, stem+cfg.BilingualSuffix+ext)

	if err := os.MkdirAll(filepath.Dir(translated), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeFile(translated, translatedContent(items)); err != nil {
		return nil, err
	}
	if err := writeFile(bilingual, bilingualContent(items, cfg.BilingualOrder)); err != nil {
		return nil, err
	}
	return []string{translated, bilingual}, nil
}

func translatedContent(items []*models.Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(lineOf(it))
		b.WriteByte('\n')
	}
	return b.String()
}

// bilingualContent renders one source/translation pair per item, pairs
// separated by a blank line.
func bilingualContent(items []*models.Item, order string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		first, second := it.SourceText, lineOf(it)
		if order == config.BilingualTranslationFirst {
			first, second = second, first
		}
		b.WriteString(first)
		b.WriteByte('\n')
		b.WriteString(second)
		b.WriteByte('\n')
	}
	return b.String()
}

func lineOf(it *models.Item) string {
	if strings.TrimSpace(it.TranslatedText) != "" {
		return it.TranslatedText
	}
	return it.SourceText
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
