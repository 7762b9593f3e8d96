package models

// Stage identifies a phase of the workflow graph. Stage names are published
// in TaskUpdate events and recorded on the run row.
type Stage string

const (
	StagePlanning        Stage = "planning"
	StagePreprocessing   Stage = "preprocessing"
	StageTerminology     Stage = "terminology"
	StageTranslating     Stage = "translating"
	StageBacktranslation Stage = "backtranslation"
	StageEntityCheck     Stage = "entity_check"
	StageSaving          Stage = "saving"
	StageCompleted       Stage = "completed"
)

// OrderedStages returns the stage graph in execution order. Every node has
// exactly one predecessor; transitions are strictly serial.
func OrderedStages() []Stage {
	return []Stage{
		StagePlanning,
		StagePreprocessing,
		StageTerminology,
		StageTranslating,
		StageBacktranslation,
		StageEntityCheck,
		StageSaving,
		StageCompleted,
	}
}

// PreTranslation reports whether the stage runs before any line has been
// translated. Progress snapshots published during these stages clamp the
// completed line count to zero so consumers don't render stale progress.
func (s Stage) PreTranslation() bool {
	switch s {
	case StagePlanning, StagePreprocessing, StageTerminology:
		return true
	}
	return false
}

// AgentStage tags a progress snapshot with the pipeline phase that produced
// it, plus optional batch detail ("chunk 3/12").
type AgentStage struct {
	Stage     Stage  `json:"stage"`
	BatchInfo string `json:"batch_info,omitempty"`
}
