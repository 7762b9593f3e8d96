package models

// Agent roles recorded on traces.
const (
	RoleTranslator         = "translator"
	RoleQualityAssessor    = "quality_assessor"
	RoleConsistencyChecker = "consistency_checker"
	RoleHuman              = "human"
)

// Trace action types.
const (
	ActionDraft     = "draft"
	ActionRefine    = "refine"
	ActionEvaluate  = "evaluate"
	ActionFinal     = "final"
	ActionHumanEdit = "human_edit"
)

// ActionActivates reports whether a trace action replaces the atom's active
// translation. Evaluations are annotations; everything else carries content.
func ActionActivates(action string) bool {
	return action != ActionEvaluate
}

// AddTraceRequest contains fields for appending one trace to an atom.
type AddTraceRequest struct {
	AtomID        int            `json:"atom_id"`
	Role          string         `json:"agent_role"`
	Action        string         `json:"action_type"`
	Content       string         `json:"content,omitempty"`
	QualityReport map[string]any `json:"quality_report,omitempty"`
	MetaData      map[string]any `json:"meta_data,omitempty"`
	InputTokens   int            `json:"input_tokens,omitempty"`
	OutputTokens  int            `json:"output_tokens,omitempty"`
}
