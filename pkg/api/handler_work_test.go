package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func TestWorkStatsEndpoint(t *testing.T) {
	s, client := newTestServer(t)

	t.Run("invalid work id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/abc/stats", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown work", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/9999/stats", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("fresh work has zero stats", func(t *testing.T) {
		work := createWork(t, client)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/"+strconv.Itoa(work.ID)+"/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var stats models.WorkStats
		unmarshalBody(t, rec, &stats)
		assert.Equal(t, work.ID, stats.WorkID)
		assert.Zero(t, stats.TotalAtoms)
		assert.Zero(t, stats.DocCount)
		assert.Zero(t, stats.TermCount)
	})

	t.Run("lexicon adds the term count", func(t *testing.T) {
		work := createWork(t, client)

		s.SetLexicon(newFakeLexicon(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"hits": {"hits": [
					{"_source": {"entry_key": "wand", "entry_val": "魔杖"}},
					{"_source": {"entry_key": "spell", "entry_val": "咒语"}}
				]}
			}`))
		}))
		defer s.SetLexicon(nil)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/works/"+strconv.Itoa(work.ID)+"/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats models.WorkStats
		unmarshalBody(t, rec, &stats)
		assert.Equal(t, 2, stats.TermCount)
	})
}
