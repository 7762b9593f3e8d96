package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/project"
	"github.com/linguaflow/linguaflow/pkg/services"
)

// bootstrap loads the project, restores any resumable state, and registers
// the work, document and atom rows. A project that cannot load is fatal;
// database registration is best effort because the pipeline can translate
// without it, it just leaves no event-sourced record behind.
func (m *Manager) bootstrap(ctx context.Context) error {
	loadPath := m.in.ProjectPath
	resumed := false
	if project.HasState(m.in.OutputPath) {
		loadPath = m.in.OutputPath
		resumed = true
	}

	proj, err := project.Load(loadPath)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	m.state.Project = proj
	m.state.Table = proj.TermTable()
	if mem := proj.Memory(); len(mem) > 0 {
		m.state.Analysis.Domain = mem["domain"]
		m.state.Analysis.Style = mem["style"]
	}

	m.registerWork(ctx)

	// Totals count what translating will actually process, so a resumed run
	// reports progress over the remaining lines only. Reset also restarts
	// the clock and the token counters.
	pending := proj.PendingCount()
	m.rt.Stats.Reset(pending)

	slog.Info("Project loaded",
		"run_id", m.rt.RunID,
		"name", proj.Name,
		"documents", len(proj.Documents),
		"pending_lines", pending,
		"resumed", resumed)
	return nil
}

// registerWork resolves the project's database identity: the work row, one
// doc row per file and one atom row per line. Ids restored from the state
// file are reused; anything missing is created and written back so the next
// run resumes instead of recreating.
func (m *Manager) registerWork(ctx context.Context) {
	if m.rt.Works == nil || m.rt.Docs == nil || m.rt.Atoms == nil {
		return
	}
	proj := m.state.Project
	cfg := m.cfg()

	workID := proj.WorkID()
	if workID == 0 {
		// The name is derived, not timestamped, so retranslating the same
		// project converges on the same work row.
		name := fmt.Sprintf("%s_%s2%s", proj.Name, cfg.SourceLanguage, cfg.TargetLanguage)
		work, err := m.rt.Works.GetOrCreateWork(ctx, name, cfg.SourceLanguage, cfg.TargetLanguage, map[string]any{
			"multi_agent": cfg.UseMultiAgentMode,
		})
		if err != nil {
			slog.Warn("Failed to register work, continuing without persistence", "error", err)
			return
		}
		workID = work.ID
		proj.SetWorkID(workID)
	}
	m.state.WorkID = workID

	if m.rt.Runs != nil && m.rt.RunID != "" {
		if err := m.rt.Runs.SetWorkID(ctx, m.rt.RunID, workID); err != nil {
			slog.Warn("Failed to link run to work", "work_id", workID, "error", err)
		}
	}

	m.state.DocMap = proj.DocMap()
	m.state.AtomMap = proj.AtomMap()
	for _, doc := range proj.Documents {
		m.registerDoc(ctx, workID, doc)
	}
	proj.SetDocMap(m.state.DocMap)
	proj.SetAtomMap(m.state.AtomMap)
	m.persistExtra(ctx)
}

// registerDoc attaches one document's database ids to its items, creating
// the doc and atom rows on first contact.
func (m *Manager) registerDoc(ctx context.Context, workID int, doc *project.Document) {
	docID, ok := m.state.DocMap[doc.Path]
	if !ok {
		row, err := m.rt.Docs.UpsertDoc(ctx, workID, doc.Path)
		if err != nil {
			slog.Warn("Failed to register document", "path", doc.Path, "error", err)
			return
		}
		docID = row.ID
		m.state.DocMap[doc.Path] = docID
	}

	if rows, ok := m.state.AtomMap[doc.Path]; ok {
		for _, it := range doc.Items {
			if id, ok := rows[it.RowIndex]; ok {
				it.AtomID = id
			}
		}
		m.hydrateAtoms(ctx, docID, doc)
		return
	}

	atoms, err := m.rt.Atoms.CreateAtomsBatch(ctx, docID, doc.Items)
	if errors.Is(err, services.ErrAlreadyExists) {
		m.adoptAtoms(ctx, docID, doc)
		return
	}
	if err != nil {
		slog.Warn("Failed to create atoms", "path", doc.Path, "error", err)
		return
	}

	rows := make(map[int]int, len(atoms))
	for i, atom := range atoms {
		doc.Items[i].AtomID = atom.ID
		rows[doc.Items[i].RowIndex] = atom.ID
	}
	m.state.AtomMap[doc.Path] = rows

	if err := m.rt.Docs.MarkProcessed(ctx, docID, len(atoms)); err != nil {
		slog.Warn("Failed to mark document processed", "path", doc.Path, "error", err)
	}
}

// adoptAtoms reattaches a document whose atoms already exist, as happens
// when a run was cancelled before its state file landed. Ids come back from
// the database, and any translation already persisted there is copied onto
// the item so the run picks up where the last one stopped.
func (m *Manager) adoptAtoms(ctx context.Context, docID int, doc *project.Document) {
	atoms, err := m.rt.Atoms.ListAtoms(ctx, docID)
	if err != nil {
		slog.Warn("Failed to list existing atoms", "path", doc.Path, "error", err)
		return
	}

	byPos := make(map[int]*ent.ProcessingAtom, len(atoms))
	for _, atom := range atoms {
		byPos[atom.Position] = atom
	}

	rows := make(map[int]int, len(atoms))
	for _, it := range doc.Items {
		atom, ok := byPos[it.RowIndex]
		if !ok {
			continue
		}
		it.AtomID = atom.ID
		rows[it.RowIndex] = atom.ID
	}
	m.state.AtomMap[doc.Path] = rows
	hydrateItems(doc.Items, byPos)
	slog.Info("Adopted existing atoms", "path", doc.Path, "atoms", len(rows))
}

// hydrateAtoms reads back what an interrupted run persisted for a document
// whose ids were restored from the state file. The state file is written
// before translating starts, so on resume the database atoms are the fresher
// source for which lines already carry a translation.
func (m *Manager) hydrateAtoms(ctx context.Context, docID int, doc *project.Document) {
	atoms, err := m.rt.Atoms.ListAtoms(ctx, docID)
	if err != nil {
		slog.Warn("Failed to read back atoms", "path", doc.Path, "error", err)
		return
	}
	byPos := make(map[int]*ent.ProcessingAtom, len(atoms))
	for _, atom := range atoms {
		byPos[atom.Position] = atom
	}
	if n := hydrateItems(doc.Items, byPos); n > 0 {
		slog.Info("Restored translations from interrupted run", "path", doc.Path, "lines", n)
	}
}

// hydrateItems copies persisted translations onto items still marked
// untranslated and reports how many lines were restored.
func hydrateItems(items []*models.Item, byPos map[int]*ent.ProcessingAtom) int {
	restored := 0
	for _, it := range items {
		atom, ok := byPos[it.RowIndex]
		if !ok {
			continue
		}
		if it.Untranslated() && atom.StatusCode >= models.AtomDrafted &&
			atom.TranslatedText != nil && strings.TrimSpace(*atom.TranslatedText) != "" {
			it.TranslatedText = *atom.TranslatedText
			it.Status = atom.StatusCode
			restored++
		}
	}
	return restored
}

// persistExtra writes the resume payload to the state file and mirrors it
// onto the work row. Both writes are best effort.
func (m *Manager) persistExtra(ctx context.Context) {
	proj := m.state.Project
	if err := project.SaveState(proj, m.in.OutputPath); err != nil {
		slog.Warn("Failed to save project state", "error", err)
	}
	if m.rt.Works != nil && m.state.WorkID != 0 {
		if err := m.rt.Works.UpdateExtra(ctx, m.state.WorkID, proj.Extra); err != nil {
			slog.Warn("Failed to persist work extra", "work_id", m.state.WorkID, "error", err)
		}
	}
}
