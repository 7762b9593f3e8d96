package lexicon

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// newTestStore points a Store at a fake Elasticsearch endpoint. The client
// verifies the product header on the first response, so every handler must
// go through esHandler.
func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	server := httptest.NewServer(esHandler(handler))
	t.Cleanup(server.Close)

	store, err := New(&config.ElasticsearchConfig{
		Enabled:   true,
		Addresses: []string{server.URL},
		IndexName: "domain_lexicon",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func esHandler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		next(w, r)
	}
}

func TestStore_Disabled(t *testing.T) {
	store, err := New(&config.ElasticsearchConfig{Enabled: false})
	require.NoError(t, err)
	require.Nil(t, store)

	ctx := context.Background()

	// Nil store is a valid empty lexicon
	assert.NoError(t, store.EnsureIndex(ctx))
	assert.NoError(t, store.UpsertTerm(ctx, 1, models.Term{EntryKey: "wand"}))
	assert.NoError(t, store.ConfirmTerm(ctx, 1, "wand", "魔杖"))
	assert.Empty(t, store.SearchTerms(ctx, "wand", 1, "", 10))
	assert.Empty(t, store.TableFor(ctx, 1))
	assert.NoError(t, store.DeleteWorkTerms(ctx, 1))
}

func TestStore_EnsureIndex(t *testing.T) {
	t.Run("creates index with mapping when missing", func(t *testing.T) {
		var createBody string
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodHead:
				w.WriteHeader(http.StatusNotFound)
			case r.Method == http.MethodPut && r.URL.Path == "/domain_lexicon":
				data, _ := io.ReadAll(r.Body)
				createBody = string(data)
				_, _ = w.Write([]byte(`{"acknowledged":true}`))
			default:
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		})

		require.NoError(t, store.EnsureIndex(context.Background()))
		assert.Contains(t, createBody, `"entry_key"`)
		assert.Contains(t, createBody, `"human_confirmed"`)
		assert.Contains(t, createBody, `"nested"`)
	})

	t.Run("existing index is left alone", func(t *testing.T) {
		var created bool
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				created = true
			}
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, store.EnsureIndex(context.Background()))
		assert.False(t, created)
	})
}

func TestStore_UpsertTerm(t *testing.T) {
	t.Run("indexes full document under composite id", func(t *testing.T) {
		var gotPath string
		var gotDoc map[string]any
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDoc))
			_, _ = w.Write([]byte(`{"result":"created"}`))
		})

		err := store.UpsertTerm(context.Background(), 7, models.Term{
			EntryKey:   "Elder Wand",
			EntryVal:   "接骨木魔杖",
			WordType:   models.WordTypeEntity,
			DomainTag:  "literary",
			Variants:   []string{"the Wand of Destiny"},
			AtomRefs:   []int{3, 9},
			Confidence: 0.92,
		})
		require.NoError(t, err)

		assert.Contains(t, gotPath, "/domain_lexicon/_doc/7_Elder%20Wand")
		assert.Equal(t, float64(7), gotDoc["work_id"])
		assert.Equal(t, "Elder Wand", gotDoc["entry_key"])
		assert.Equal(t, "接骨木魔杖", gotDoc["entry_val"])
		assert.Equal(t, "entity", gotDoc["word_type"])
		assert.NotEmpty(t, gotDoc["updated_at"])

		variants, ok := gotDoc["variants"].([]any)
		require.True(t, ok)
		require.Len(t, variants, 1)
		first := variants[0].(map[string]any)
		assert.Equal(t, "the Wand of Destiny", first["text"])
	})

	t.Run("rejects empty entry key", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		err := store.UpsertTerm(context.Background(), 1, models.Term{})
		require.Error(t, err)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		})
		err := store.UpsertTerm(context.Background(), 1, models.Term{EntryKey: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestStore_ConfirmTerm(t *testing.T) {
	t.Run("partial update keeps audit fields", func(t *testing.T) {
		var gotBody map[string]any
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.EscapedPath(), "/domain_lexicon/_update/3_wand")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"result":"updated"}`))
		})

		require.NoError(t, store.ConfirmTerm(context.Background(), 3, "wand", "魔杖"))

		doc, ok := gotBody["doc"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, doc["human_confirmed"])
		assert.Equal(t, "魔杖", doc["entry_val"])
	})

	t.Run("empty value leaves rendering untouched", func(t *testing.T) {
		var gotBody map[string]any
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"result":"updated"}`))
		})

		require.NoError(t, store.ConfirmTerm(context.Background(), 3, "wand", ""))

		doc := gotBody["doc"].(map[string]any)
		_, hasVal := doc["entry_val"]
		assert.False(t, hasVal)
	})

	t.Run("missing term returns error", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found"}`))
		})
		err := store.ConfirmTerm(context.Background(), 3, "ghost", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTermNotFound)
	})
}

func TestStore_Ping(t *testing.T) {
	t.Run("nil store is healthy", func(t *testing.T) {
		var store *Store
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("reachable cluster", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("error status propagates", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		assert.Error(t, store.Ping(context.Background()))
	})
}

func TestStore_SearchTerms(t *testing.T) {
	searchResponse := `{
		"hits": {
			"hits": [
				{"_source": {"work_id": 7, "entry_key": "wand", "entry_val": "魔杖", "word_type": "entity",
					"variants": [{"text": "wands", "lang": "auto"}], "confidence": 0.9, "human_confirmed": true}},
				{"_source": {"work_id": 0, "entry_key": "spell", "entry_val": "咒语", "word_type": "term", "confidence": 0.8}}
			]
		}
	}`

	t.Run("builds boosted query with work and domain filters", func(t *testing.T) {
		var gotQuery map[string]any
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotQuery))
			_, _ = w.Write([]byte(searchResponse))
		})

		terms := store.SearchTerms(context.Background(), "wand", 7, "literary", 5)
		require.Len(t, terms, 2)
		assert.Equal(t, "wand", terms[0].EntryKey)
		assert.Equal(t, "魔杖", terms[0].EntryVal)
		assert.Equal(t, []string{"wands"}, terms[0].Variants)
		assert.True(t, terms[0].HumanConfirmed)
		assert.Equal(t, "spell", terms[1].EntryKey)

		raw, _ := json.Marshal(gotQuery)
		// entry_key dominates relevance; hits include the shared pool
		assert.Contains(t, string(raw), "entry_key^3")
		assert.Contains(t, string(raw), `"work_id":[7,0]`)
		assert.Contains(t, string(raw), `"domain_tag":"literary"`)
		assert.Equal(t, float64(5), gotQuery["size"])
	})

	t.Run("transport failure degrades to empty", func(t *testing.T) {
		server := httptest.NewServer(esHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		store, err := New(&config.ElasticsearchConfig{
			Enabled:   true,
			Addresses: []string{server.URL},
			IndexName: "domain_lexicon",
		})
		require.NoError(t, err)
		server.Close()

		terms := store.SearchTerms(context.Background(), "wand", 7, "", 5)
		assert.Empty(t, terms)
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected for blank query")
		})
		assert.Empty(t, store.SearchTerms(context.Background(), "", 7, "", 5))
	})
}

func TestStore_TableFor(t *testing.T) {
	t.Run("maps keys to renderings, skipping unset values", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"hits": {"hits": [
					{"_source": {"entry_key": "wand", "entry_val": "魔杖"}},
					{"_source": {"entry_key": "pending", "entry_val": ""}},
					{"_source": {"entry_key": "spell", "entry_val": "咒语"}}
				]}
			}`))
		})

		table := store.TableFor(context.Background(), 7)
		assert.Equal(t, models.TermTable{"wand": "魔杖", "spell": "咒语"}, table)
	})

	t.Run("failure degrades to empty table", func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"down"}`))
		})
		assert.Empty(t, store.TableFor(context.Background(), 7))
	})
}

func TestStore_DeleteWorkTerms(t *testing.T) {
	var gotBody map[string]any
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "_delete_by_query")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"deleted": 4}`))
	})

	require.NoError(t, store.DeleteWorkTerms(context.Background(), 7))

	raw, _ := json.Marshal(gotBody)
	assert.Contains(t, string(raw), `"work_id":7`)
}
