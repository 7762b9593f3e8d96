package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/pkg/models"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestTraceService_AddTrace(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "traces.json")

	t.Run("draft activates immediately", func(t *testing.T) {
		atoms := createTestAtoms(t, client.Client, doc.ID, "draft line")

		trace, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID:  atoms[0].ID,
			Role:    models.RoleTranslator,
			Action:  models.ActionDraft,
			Content: "初稿",
		})
		require.NoError(t, err)
		assert.True(t, trace.IsActive)
		assert.Equal(t, agenttrace.AgentRoleTranslator, trace.AgentRole)
		assert.Equal(t, agenttrace.ActionTypeDraft, trace.ActionType)

		content, err := service.GetActiveTranslation(ctx, atoms[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "初稿", content)
	})

	t.Run("activation moves between traces atomically", func(t *testing.T) {
		atoms := createTestAtoms(t, client.Client, doc.ID, "handoff line")
		atomID := atoms[0].ID

		_, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: models.RoleTranslator, Action: models.ActionDraft, Content: "v1",
		})
		require.NoError(t, err)
		_, err = service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: models.RoleTranslator, Action: models.ActionRefine, Content: "v2",
		})
		require.NoError(t, err)
		_, err = service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: models.RoleTranslator, Action: models.ActionFinal, Content: "v3",
		})
		require.NoError(t, err)

		// Exactly one active trace, and it carries the newest content
		active, err := service.CountActive(ctx, atomID)
		require.NoError(t, err)
		assert.Equal(t, 1, active)

		content, err := service.GetActiveTranslation(ctx, atomID)
		require.NoError(t, err)
		assert.Equal(t, "v3", content)
	})

	t.Run("evaluate never activates nor deactivates", func(t *testing.T) {
		atoms := createTestAtoms(t, client.Client, doc.ID, "evaluate line")
		atomID := atoms[0].ID

		_, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: models.RoleTranslator, Action: models.ActionDraft, Content: "译文",
		})
		require.NoError(t, err)

		eval, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID,
			Role:   models.RoleQualityAssessor,
			Action: models.ActionEvaluate,
			QualityReport: map[string]any{
				"score":    5.5,
				"problems": []any{"missing tone"},
			},
		})
		require.NoError(t, err)
		assert.False(t, eval.IsActive)

		// Draft stays active through the evaluation
		content, err := service.GetActiveTranslation(ctx, atomID)
		require.NoError(t, err)
		assert.Equal(t, "译文", content)

		active, err := service.CountActive(ctx, atomID)
		require.NoError(t, err)
		assert.Equal(t, 1, active)
	})

	t.Run("human edit takes over from agent trace", func(t *testing.T) {
		atoms := createTestAtoms(t, client.Client, doc.ID, "human line")
		atomID := atoms[0].ID

		_, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: models.RoleTranslator, Action: models.ActionDraft, Content: "机器译文",
		})
		require.NoError(t, err)

		_, err = service.AddTrace(ctx, models.AddTraceRequest{
			AtomID:   atomID,
			Role:     models.RoleHuman,
			Action:   models.ActionHumanEdit,
			Content:  "人工译文",
			MetaData: map[string]any{"before": "机器译文"},
		})
		require.NoError(t, err)

		content, err := service.GetActiveTranslation(ctx, atomID)
		require.NoError(t, err)
		assert.Equal(t, "人工译文", content)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.AddTrace(ctx, models.AddTraceRequest{Role: models.RoleTranslator, Action: models.ActionDraft})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.AddTrace(ctx, models.AddTraceRequest{AtomID: 1, Action: models.ActionDraft})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.AddTrace(ctx, models.AddTraceRequest{AtomID: 1, Role: models.RoleTranslator})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTraceService_ListTraces(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "audit.json")
	atoms := createTestAtoms(t, client.Client, doc.ID, "audited line")
	atomID := atoms[0].ID

	// Canonical TEaR ordering: draft, evaluate, refine, final
	actions := []string{models.ActionDraft, models.ActionEvaluate, models.ActionRefine, models.ActionFinal}
	roles := []string{models.RoleTranslator, models.RoleQualityAssessor, models.RoleTranslator, models.RoleTranslator}
	for i, action := range actions {
		_, err := service.AddTrace(ctx, models.AddTraceRequest{
			AtomID: atomID, Role: roles[i], Action: action, Content: action,
		})
		require.NoError(t, err)
	}

	t.Run("returns full log in append order", func(t *testing.T) {
		traces, err := service.ListTraces(ctx, atomID)
		require.NoError(t, err)
		require.Len(t, traces, 4)
		for i, action := range actions {
			assert.Equal(t, agenttrace.ActionType(action), traces[i].ActionType)
		}
		// Only the final trace is active
		assert.False(t, traces[0].IsActive)
		assert.False(t, traces[1].IsActive)
		assert.False(t, traces[2].IsActive)
		assert.True(t, traces[3].IsActive)
	})

	t.Run("missing atom yields empty log", func(t *testing.T) {
		traces, err := service.ListTraces(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, traces)
	})

	t.Run("no active trace returns ErrNotFound", func(t *testing.T) {
		fresh := createTestAtoms(t, client.Client, doc.ID, "untouched line")
		_, err := service.GetActiveTranslation(ctx, fresh[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
