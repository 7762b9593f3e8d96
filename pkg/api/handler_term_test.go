package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/lexicon"
)

// newFakeLexicon points a lexicon store at a stub Elasticsearch endpoint.
// The client checks the product header on the first response, so the stub
// sets it on every reply.
func newFakeLexicon(t *testing.T, handler http.HandlerFunc) *lexicon.Store {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	store, err := lexicon.New(&config.ElasticsearchConfig{
		Enabled:   true,
		Addresses: []string{server.URL},
		IndexName: "domain_lexicon",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

var workSeq int

func createWork(t *testing.T, client *database.Client) *ent.ProjectWork {
	t.Helper()
	workSeq++
	work, err := client.ProjectWork.Create().
		SetWorkName(fmt.Sprintf("%s-work-%d", t.Name(), workSeq)).
		SetSourceLang("en").
		SetTargetLang("zh-cn").
		Save(context.Background())
	require.NoError(t, err)
	return work
}

func TestTermEndpointsWithoutLexicon(t *testing.T) {
	s := newTestRouter(nil)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/works/1/terms?q=wand", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/v1/works/1/terms/wand/confirm", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchTermsEndpoint(t *testing.T) {
	s, client := newTestServer(t)
	work := createWork(t, client)
	workPath := "/api/v1/works/" + strconv.Itoa(work.ID)

	searchResponse := `{
		"hits": {"hits": [
			{"_source": {"work_id": 7, "entry_key": "wand", "entry_val": "魔杖", "word_type": "entity", "human_confirmed": true}},
			{"_source": {"work_id": 0, "entry_key": "spell", "entry_val": "咒语", "word_type": "term"}}
		]}
	}`

	t.Run("returns relevance hits", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(searchResponse))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodGet, workPath+"/terms?q=wand&limit=5", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp TermListResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, 2, resp.Count)
		require.Len(t, resp.Terms, 2)
		assert.Equal(t, "wand", resp.Terms[0].EntryKey)
		assert.Equal(t, "魔杖", resp.Terms[0].EntryVal)
		assert.True(t, resp.Terms[0].HumanConfirmed)
	})

	t.Run("missing query parameter", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no search expected")
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodGet, workPath+"/terms", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown work", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no search expected")
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/9999/terms?q=wand", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid work id", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no search expected")
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/abc/terms?q=wand", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmTermEndpoint(t *testing.T) {
	s, client := newTestServer(t)
	work := createWork(t, client)
	confirmPath := "/api/v1/works/" + strconv.Itoa(work.ID) + "/terms/wand/confirm"

	t.Run("marks the entry confirmed", func(t *testing.T) {
		var gotPath string
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"result":"updated"}`))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodPost, confirmPath, ConfirmTermRequest{Translation: "魔杖"})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp ConfirmTermResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, "wand", resp.EntryKey)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Contains(t, gotPath, "_update")
	})

	t.Run("empty body confirms without changing the rendering", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"updated"}`))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodPost, confirmPath, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown term", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found"}`))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodPost, confirmPath, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("index failure maps to bad gateway", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"shard failure"}`))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodPost, confirmPath, nil)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("unknown work", func(t *testing.T) {
		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no update expected")
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodPost, "/api/v1/works/9999/terms/wand/confirm", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
