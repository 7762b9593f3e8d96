package workflow

import (
	"context"
	"log/slog"

	"github.com/linguaflow/linguaflow/pkg/output"
	"github.com/linguaflow/linguaflow/pkg/project"
)

// saving writes the output artifacts and the final state file, streaming
// per-file progress. A write failure here is fatal: a run whose artifacts
// cannot land has nothing to show for its work.
func (m *Manager) saving(ctx context.Context) error {
	cfg := m.cfg()
	proj := m.state.Project

	m.rt.Stats.StageProgress(0, len(proj.Documents), "")

	outCfg := output.Config{
		TranslatedSuffix: cfg.OutputFilenameSuffix,
		BilingualSuffix:  output.DefaultBilingualSuffix,
		BilingualOrder:   cfg.BilingualTextOrder,
	}
	err := project.Save(proj, m.in.OutputPath, m.in.ProjectPath, outCfg,
		func(done, total int, file string) {
			m.rt.Stats.StageProgress(done, total, file)
		})
	if err != nil {
		return err
	}

	if m.rt.Works != nil && m.state.WorkID != 0 {
		if err := m.rt.Works.UpdateExtra(ctx, m.state.WorkID, proj.Extra); err != nil {
			slog.Warn("Failed to persist work extra", "work_id", m.state.WorkID, "error", err)
		}
	}

	slog.Info("Artifacts written",
		"run_id", m.rt.RunID,
		"documents", len(proj.Documents),
		"output", m.in.OutputPath)
	return nil
}
