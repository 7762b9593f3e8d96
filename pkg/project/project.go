// Package project loads and saves translation projects. A project is either
// a directory of raw documents (.txt with one item per line, .json with an
// item array) or a saved state file that round-trips everything a resumed
// run needs: items with their translations, and the extra map carrying
// database ids and the terminology table.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/output"
)

// StateFilename is the resumable project state written into the output
// directory on save. A directory containing it loads as a saved project.
const StateFilename = "project.json"

// Extra keys persisted for resume. Atom map keys are row indices, stored as
// strings in JSON and restored to integers on load.
const (
	extraWorkID  = "db_work_id"
	extraDocMap  = "db_doc_map"
	extraAtomMap = "db_atom_map"
	extraTerms   = "terminology_database"
	extraMemory  = "memory_storage"
)

// Document is one source file's ordered items. Path is relative to the
// project root.
type Document struct {
	Path  string         `json:"path"`
	Items []*models.Item `json:"items"`
}

// Project is the in-memory document set one run works on.
type Project struct {
	Name      string         `json:"name"`
	Documents []*Document    `json:"files"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// Load reads a project from path: a directory holding a saved state file, a
// directory of raw documents, a single state file, or a single document.
func Load(path string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}

	var p *Project
	if info.IsDir() {
		state := filepath.Join(path, StateFilename)
		if _, err := os.Stat(state); err == nil {
			p, err = loadState(state)
			if err != nil {
				return nil, err
			}
		} else {
			p, err = loadDir(path)
			if err != nil {
				return nil, err
			}
		}
	} else {
		p, err = loadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if len(p.Documents) == 0 {
		return nil, fmt.Errorf("project %s holds no documents", path)
	}
	p.normalize()
	return p, nil
}

// HasState reports whether dir holds a saved project state file.
func HasState(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, StateFilename))
	return err == nil
}

func loadState(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project state: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("corrupt project state %s: %w", path, err)
	}
	return &p, nil
}

func loadDir(dir string) (*Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read project directory: %w", err)
	}

	p := &Project{Name: filepath.Base(dir)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		var doc *Document
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt":
			doc, err = loadTextDoc(filepath.Join(dir, name), name)
		case ".json":
			doc, err = loadJSONDoc(filepath.Join(dir, name), name)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		p.Documents = append(p.Documents, doc)
	}
	sort.Slice(p.Documents, func(i, j int) bool { return p.Documents[i].Path < p.Documents[j].Path })
	return p, nil
}

func loadFile(path string) (*Project, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		doc, err := loadTextDoc(path, name)
		if err != nil {
			return nil, err
		}
		return &Project{Name: stem(name), Documents: []*Document{doc}}, nil
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		// A state file carries a "files" array; anything else is a single
		// document payload.
		var probe struct {
			Files []json.RawMessage `json:"files"`
		}
		if err := json.Unmarshal(data, &probe); err == nil && probe.Files != nil {
			return loadState(path)
		}
		doc, err := parseJSONDoc(data, name)
		if err != nil {
			return nil, err
		}
		return &Project{Name: stem(name), Documents: []*Document{doc}}, nil
	default:
		return nil, fmt.Errorf("unsupported project file %s", name)
	}
}

// loadTextDoc reads one item per line. Blank lines stay as items so the
// output keeps the document's line structure.
func loadTextDoc(path, rel string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	doc := &Document{Path: rel}
	if text == "" {
		return doc, nil
	}
	for i, line := range strings.Split(text, "\n") {
		doc.Items = append(doc.Items, &models.Item{RowIndex: i, SourceText: line})
	}
	return doc, nil
}

func loadJSONDoc(path, rel string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return parseJSONDoc(data, rel)
}

// parseJSONDoc accepts a bare item array or an object wrapping one under
// "items".
func parseJSONDoc(data []byte, rel string) (*Document, error) {
	doc := &Document{Path: rel}
	if err := json.Unmarshal(data, &doc.Items); err == nil {
		return doc, nil
	}
	var wrapped struct {
		Items []*models.Item `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("unparseable document %s: %w", rel, err)
	}
	doc.Items = wrapped.Items
	return doc, nil
}

// normalize stamps the owning path onto every item and repairs row indices
// that are missing or colliding. Indices must be unique and increasing per
// document because they key the atom map.
func (p *Project) normalize() {
	if p.Extra == nil {
		p.Extra = map[string]any{}
	}
	for _, doc := range p.Documents {
		ordered := true
		for i, it := range doc.Items {
			it.FilePath = doc.Path
			if i > 0 && it.RowIndex <= doc.Items[i-1].RowIndex {
				ordered = false
			}
		}
		if ordered || len(doc.Items) < 2 {
			continue
		}
		for i, it := range doc.Items {
			it.RowIndex = i
		}
	}
}

// Items returns every item in document order.
func (p *Project) Items() []*models.Item {
	var items []*models.Item
	for _, doc := range p.Documents {
		items = append(items, doc.Items...)
	}
	return items
}

// PendingCount counts the items translation will actually process:
// untranslated with non-blank source.
func (p *Project) PendingCount() int {
	n := 0
	for _, doc := range p.Documents {
		for _, it := range doc.Items {
			if it.Untranslated() && strings.TrimSpace(it.SourceText) != "" {
				n++
			}
		}
	}
	return n
}

// SaveState writes the resumable state file into dir. The write goes
// through a temp file so a crash never leaves a truncated state behind.
func SaveState(p *Project, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project state: %w", err)
	}

	path := filepath.Join(dir, StateFilename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit project state: %w", err)
	}
	return nil
}

// Save writes the state file plus every document's output artifacts.
// progress, when non-nil, runs after each document with the artifact paths
// already on disk. inDir resolves absolute document paths to relative ones;
// documents loaded by this package are always relative already.
func Save(p *Project, outDir, inDir string, cfg output.Config, progress func(done, total int, file string)) error {
	if err := SaveState(p, outDir); err != nil {
		return err
	}

	for i, doc := range p.Documents {
		rel := doc.Path
		if filepath.IsAbs(rel) {
			if r, err := filepath.Rel(inDir, rel); err == nil && !strings.HasPrefix(r, "..") {
				rel = r
			} else {
				rel = filepath.Base(rel)
			}
		}
		if _, err := output.WriteDocument(outDir, rel, doc.Items, cfg); err != nil {
			return fmt.Errorf("failed to write %s: %w", doc.Path, err)
		}
		if progress != nil {
			progress(i+1, len(p.Documents), doc.Path)
		}
	}
	return nil
}

// WorkID returns the persisted database work id, or zero.
func (p *Project) WorkID() int {
	id, _ := asInt(p.Extra[extraWorkID])
	return id
}

// SetWorkID records the database work id for resume.
func (p *Project) SetWorkID(id int) {
	p.Extra[extraWorkID] = id
}

// DocMap returns the persisted file-path-to-doc-id map.
func (p *Project) DocMap() map[string]int {
	out := map[string]int{}
	raw, ok := p.Extra[extraDocMap].(map[string]any)
	if !ok {
		if typed, ok := p.Extra[extraDocMap].(map[string]int); ok {
			for k, v := range typed {
				out[k] = v
			}
		}
		return out
	}
	for path, v := range raw {
		if id, ok := asInt(v); ok {
			out[path] = id
		}
	}
	return out
}

// SetDocMap records the file-path-to-doc-id map for resume.
func (p *Project) SetDocMap(m map[string]int) {
	p.Extra[extraDocMap] = m
}

// AtomMap returns the persisted atom id map, file path to row index to atom
// id. JSON stores row indices as string keys; they are restored to ints
// here.
func (p *Project) AtomMap() map[string]map[int]int {
	out := map[string]map[int]int{}
	switch raw := p.Extra[extraAtomMap].(type) {
	case map[string]map[int]int:
		for path, rows := range raw {
			fileMap := map[int]int{}
			for row, id := range rows {
				fileMap[row] = id
			}
			out[path] = fileMap
		}
	case map[string]any:
		for path, v := range raw {
			rows, ok := v.(map[string]any)
			if !ok {
				continue
			}
			fileMap := map[int]int{}
			for key, idv := range rows {
				row, rowOK := asInt(key)
				id, idOK := asInt(idv)
				if rowOK && idOK {
					fileMap[row] = id
				}
			}
			out[path] = fileMap
		}
	}
	return out
}

// SetAtomMap records the atom id map for resume.
func (p *Project) SetAtomMap(m map[string]map[int]int) {
	p.Extra[extraAtomMap] = m
}

// TermTable returns the terminology table persisted with the project.
// Values may be plain renderings or richer objects carrying a
// "translation" field; both decode.
func (p *Project) TermTable() models.TermTable {
	table := models.TermTable{}
	raw, ok := p.Extra[extraTerms].(map[string]any)
	if !ok {
		if typed, ok := p.Extra[extraTerms].(models.TermTable); ok {
			for k, v := range typed {
				table[k] = v
			}
		}
		return table
	}
	for term, v := range raw {
		switch val := v.(type) {
		case string:
			if val != "" {
				table[term] = val
			}
		case map[string]any:
			if rendering, ok := val["translation"].(string); ok && rendering != "" {
				table[term] = rendering
			}
		}
	}
	return table
}

// SetTermTable records the terminology table for resume.
func (p *Project) SetTermTable(t models.TermTable) {
	p.Extra[extraTerms] = t
}

// Memory returns the persisted document profile (domain, style).
func (p *Project) Memory() map[string]string {
	out := map[string]string{}
	raw, ok := p.Extra[extraMemory].(map[string]any)
	if !ok {
		if typed, ok := p.Extra[extraMemory].(map[string]string); ok {
			for k, v := range typed {
				out[k] = v
			}
		}
		return out
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// SetMemory records the document profile for resume.
func (p *Project) SetMemory(m map[string]string) {
	p.Extra[extraMemory] = m
}

// asInt converts the value shapes JSON decoding produces for ids: numbers
// arrive as float64, map keys as strings.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		var i int
		if _, err := fmt.Sscanf(n, "%d", &i); err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
