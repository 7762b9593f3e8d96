// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentTrace is the predicate function for agenttrace builders.
type AgentTrace func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// KnowledgeBase is the predicate function for knowledgebase builders.
type KnowledgeBase func(*sql.Selector)

// ProcessingAtom is the predicate function for processingatom builders.
type ProcessingAtom func(*sql.Selector)

// ProjectWork is the predicate function for projectwork builders.
type ProjectWork func(*sql.Selector)

// SourceDoc is the predicate function for sourcedoc builders.
type SourceDoc func(*sql.Selector)

// TranslationRun is the predicate function for translationrun builders.
type TranslationRun func(*sql.Selector)
