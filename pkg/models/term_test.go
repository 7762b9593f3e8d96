package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermTable_FilterBySource(t *testing.T) {
	table := TermTable{
		"Beclin":    "Beclin1",
		"autophagy": "自噬",
		"Kinase":    "激酶",
	}

	tests := []struct {
		name   string
		source string
		want   TermTable
	}{
		{
			name:   "case-insensitive key match",
			source: "BECLIN regulates autophagy.",
			want:   TermTable{"Beclin": "Beclin1", "autophagy": "自噬"},
		},
		{
			name:   "no match returns nil",
			source: "Completely unrelated text.",
			want:   nil,
		},
		{
			name:   "empty source returns nil",
			source: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.FilterBySource(tt.source))
		})
	}
}

func TestTermTable_Inverse(t *testing.T) {
	table := TermTable{"Beclin": "Beclin1"}
	inv := table.Inverse()
	assert.Equal(t, TermTable{"Beclin1": "Beclin"}, inv)

	assert.Nil(t, TermTable{}.Inverse())
}

func TestNormalizeForMatch(t *testing.T) {
	assert.Equal(t, "beclin1", NormalizeForMatch("Beclin-1"))
	assert.Equal(t, "cellcycle", NormalizeForMatch("  Cell  Cycle "))
	assert.Equal(t, "pp525528", NormalizeForMatch("pp 525–528"))
}

func TestNormalizeWordType(t *testing.T) {
	assert.Equal(t, WordTypeEntity, NormalizeWordType("named_entity"))
	assert.Equal(t, WordTypeTerm, NormalizeWordType("terminology"))
	assert.Equal(t, WordTypeTerm, NormalizeWordType("domain_term"))
	assert.Equal(t, WordTypeIdiom, NormalizeWordType("cultural_expression"))
	assert.Equal(t, "concept", NormalizeWordType("concept"))
}

func TestStage_PreTranslation(t *testing.T) {
	assert.True(t, StagePlanning.PreTranslation())
	assert.True(t, StagePreprocessing.PreTranslation())
	assert.True(t, StageTerminology.PreTranslation())
	assert.False(t, StageTranslating.PreTranslation())
	assert.False(t, StageSaving.PreTranslation())
}

func TestOrderedStages(t *testing.T) {
	stages := OrderedStages()
	assert.Equal(t, StagePlanning, stages[0])
	assert.Equal(t, StageCompleted, stages[len(stages)-1])
	assert.Len(t, stages, 8)
}
