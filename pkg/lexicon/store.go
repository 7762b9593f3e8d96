// Package lexicon maintains the Elasticsearch terminology index shared by
// all works. Every operation is best-effort: the in-memory term table owned
// by the workflow stays authoritative during a run, and read failures
// degrade to empty results so a down cluster never stalls a translation.
package lexicon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// ErrTermNotFound is returned when a partial update targets an entry that
// does not exist in the index.
var ErrTermNotFound = errors.New("term not found")

// Store wraps the Elasticsearch client for the lexicon index. A nil *Store
// is a valid, empty lexicon: every method no-ops or returns empty results,
// so callers need no enabled-checks.
type Store struct {
	client *elasticsearch.Client
	index  string
}

// New builds a Store from config. Returns nil (not an error) when the
// lexicon is disabled.
func New(cfg *config.ElasticsearchConfig) (*Store, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &Store{client: client, index: cfg.IndexName}, nil
}

// indexMapping is the explicit mapping for the lexicon index. multi_match
// queries rely on entry_key being a keyword and entry_val analyzed text.
const indexMapping = `{
  "mappings": {
    "properties": {
      "work_id":         {"type": "integer"},
      "entry_key":       {"type": "keyword"},
      "entry_val":       {"type": "text", "analyzer": "standard"},
      "word_type":       {"type": "keyword"},
      "domain_tag":      {"type": "keyword"},
      "variants": {
        "type": "nested",
        "properties": {
          "text": {"type": "text"},
          "lang": {"type": "keyword"}
        }
      },
      "examples":        {"type": "text"},
      "translations": {
        "type": "nested",
        "properties": {
          "translation": {"type": "text"},
          "source":      {"type": "keyword"},
          "confidence":  {"type": "float"},
          "rank":        {"type": "integer"},
          "rationale":   {"type": "text"}
        }
      },
      "atom_refs":       {"type": "integer"},
      "confidence":      {"type": "float"},
      "human_confirmed": {"type": "boolean"},
      "updated_at":      {"type": "date"}
    }
  }
}`

// termDoc is the stored document shape.
type termDoc struct {
	WorkID         int                      `json:"work_id"`
	EntryKey       string                   `json:"entry_key"`
	EntryVal       string                   `json:"entry_val"`
	WordType       string                   `json:"word_type"`
	DomainTag      string                   `json:"domain_tag,omitempty"`
	Variants       []variantDoc             `json:"variants,omitempty"`
	Examples       []string                 `json:"examples,omitempty"`
	Translations   []models.TermTranslation `json:"translations,omitempty"`
	AtomRefs       []int                    `json:"atom_refs,omitempty"`
	Confidence     float64                  `json:"confidence"`
	HumanConfirmed bool                     `json:"human_confirmed"`
	UpdatedAt      string                   `json:"updated_at"`
}

type variantDoc struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func (d termDoc) toTerm() models.Term {
	variants := make([]string, 0, len(d.Variants))
	for _, v := range d.Variants {
		variants = append(variants, v.Text)
	}
	return models.Term{
		EntryKey:       d.EntryKey,
		EntryVal:       d.EntryVal,
		WordType:       d.WordType,
		DomainTag:      d.DomainTag,
		Variants:       variants,
		Examples:       d.Examples,
		Translations:   d.Translations,
		AtomRefs:       d.AtomRefs,
		Confidence:     d.Confidence,
		HumanConfirmed: d.HumanConfirmed,
	}
}

// docID builds the document id for (workID, entryKey). The id travels in
// the request path, so it is escaped once here and used consistently by
// every operation.
func (s *Store) docID(workID int, entryKey string) string {
	return url.PathEscape(fmt.Sprintf("%d_%s", workID, entryKey))
}

// EnsureIndex creates the lexicon index with its mapping when missing.
func (s *Store) EnsureIndex(ctx context.Context) error {
	if s == nil {
		return nil
	}

	res, err := s.client.Indices.Exists(
		[]string{s.index},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}
	if res.StatusCode != 404 {
		return fmt.Errorf("unexpected status checking index: %s", res.Status())
	}

	create, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer create.Body.Close()

	if create.IsError() {
		return fmt.Errorf("failed to create index: %s", readError(create))
	}

	slog.Info("Lexicon index created", "index", s.index)
	return nil
}

// UpsertTerm writes the full document for (workID, term.EntryKey), replacing
// any previous version.
func (s *Store) UpsertTerm(ctx context.Context, workID int, term models.Term) error {
	if s == nil {
		return nil
	}
	if term.EntryKey == "" {
		return fmt.Errorf("entry key required")
	}

	variants := make([]variantDoc, 0, len(term.Variants))
	for _, v := range term.Variants {
		variants = append(variants, variantDoc{Text: v, Lang: "auto"})
	}

	doc := termDoc{
		WorkID:         workID,
		EntryKey:       term.EntryKey,
		EntryVal:       term.EntryVal,
		WordType:       term.WordType,
		DomainTag:      term.DomainTag,
		Variants:       variants,
		Examples:       term.Examples,
		Translations:   term.Translations,
		AtomRefs:       term.AtomRefs,
		Confidence:     term.Confidence,
		HumanConfirmed: term.HumanConfirmed,
		UpdatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal term: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(s.docID(workID, term.EntryKey)),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert term: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to upsert term %q: %s", term.EntryKey, readError(res))
	}
	return nil
}

// ConfirmTerm marks the entry human-confirmed; a non-empty entryVal also
// replaces the stored rendering. Partial update, the audit fields survive.
func (s *Store) ConfirmTerm(ctx context.Context, workID int, entryKey, entryVal string) error {
	if s == nil {
		return nil
	}

	fields := map[string]any{
		"human_confirmed": true,
		"updated_at":      time.Now().UTC().Format(time.RFC3339),
	}
	if entryVal != "" {
		fields["entry_val"] = entryVal
	}

	payload, err := json.Marshal(map[string]any{"doc": fields})
	if err != nil {
		return fmt.Errorf("failed to marshal confirm update: %w", err)
	}

	res, err := s.client.Update(
		s.index,
		s.docID(workID, entryKey),
		bytes.NewReader(payload),
		s.client.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to confirm term: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return fmt.Errorf("term %q: %w", entryKey, ErrTermNotFound)
	}
	if res.IsError() {
		return fmt.Errorf("failed to confirm term %q: %s", entryKey, readError(res))
	}
	return nil
}

// Ping checks cluster reachability. A nil store reports healthy: a disabled
// lexicon is not a fault.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return nil
	}

	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping returned %s", res.Status())
	}
	return nil
}

// SearchTerms runs a relevance query over entry_key (boosted), entry_val and
// variant texts. workID > 0 limits hits to that work plus the shared pool
// (work_id 0); domainTag filters exactly. Transport failures degrade to an
// empty result with a warning log.
func (s *Store) SearchTerms(ctx context.Context, query string, workID int, domainTag string, limit int) []models.Term {
	if s == nil || query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	must := []map[string]any{{
		"multi_match": map[string]any{
			"query":  query,
			"fields": []string{"entry_key^3", "entry_val", "variants.text"},
		},
	}}
	var filter []map[string]any
	if workID > 0 {
		filter = append(filter, map[string]any{
			"terms": map[string]any{"work_id": []int{workID, 0}},
		})
	}
	if domainTag != "" {
		filter = append(filter, map[string]any{
			"term": map[string]any{"domain_tag": domainTag},
		})
	}

	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   must,
				"filter": filter,
			},
		},
		"size": limit,
	}

	terms, err := s.search(ctx, body)
	if err != nil {
		slog.Warn("Lexicon search failed, returning empty results", "error", err, "query", query)
		return nil
	}
	return terms
}

// TableFor returns the work's full entry_key→entry_val map (shared pool
// included) for prompt injection. Degrades to an empty table on failure.
func (s *Store) TableFor(ctx context.Context, workID int) models.TermTable {
	if s == nil {
		return nil
	}

	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"terms": map[string]any{"work_id": []int{workID, 0}}},
				},
			},
		},
		"size": 10000,
	}

	terms, err := s.search(ctx, body)
	if err != nil {
		slog.Warn("Lexicon table fetch failed, returning empty table", "error", err, "work_id", workID)
		return nil
	}

	if len(terms) == 0 {
		return nil
	}
	table := models.TermTable{}
	for _, term := range terms {
		if term.EntryVal != "" {
			table[term.EntryKey] = term.EntryVal
		}
	}
	return table
}

// DeleteWorkTerms removes every entry owned by the work. Shared-pool
// entries (work_id 0) are never touched.
func (s *Store) DeleteWorkTerms(ctx context.Context, workID int) error {
	if s == nil {
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"term": map[string]any{"work_id": workID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal delete query: %w", err)
	}

	res, err := s.client.DeleteByQuery(
		[]string{s.index},
		bytes.NewReader(body),
		s.client.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to delete work terms: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to delete work terms: %s", readError(res))
	}
	return nil
}

// search executes a query body and unmarshals the hits.
func (s *Store) search(ctx context.Context, body map[string]any) ([]models.Term, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search returned %s: %s", res.Status(), readError(res))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source termDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	terms := make([]models.Term, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		terms = append(terms, hit.Source.toTerm())
	}
	return terms, nil
}

// readError extracts a short error description from a response body.
func readError(res *esapi.Response) string {
	data, err := io.ReadAll(io.LimitReader(res.Body, 2048))
	if err != nil || len(data) == 0 {
		return res.Status()
	}
	return string(data)
}
