// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/schema"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenttraceFields := schema.AgentTrace{}.Fields()
	_ = agenttraceFields
	// agenttraceDescInputTokens is the schema descriptor for input_tokens field.
	agenttraceDescInputTokens := agenttraceFields[6].Descriptor()
	// agenttrace.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agenttrace.DefaultInputTokens = agenttraceDescInputTokens.Default.(int)
	// agenttraceDescOutputTokens is the schema descriptor for output_tokens field.
	agenttraceDescOutputTokens := agenttraceFields[7].Descriptor()
	// agenttrace.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agenttrace.DefaultOutputTokens = agenttraceDescOutputTokens.Default.(int)
	// agenttraceDescIsActive is the schema descriptor for is_active field.
	agenttraceDescIsActive := agenttraceFields[8].Descriptor()
	// agenttrace.DefaultIsActive holds the default value on creation for the is_active field.
	agenttrace.DefaultIsActive = agenttraceDescIsActive.Default.(bool)
	// agenttraceDescCreatedAt is the schema descriptor for created_at field.
	agenttraceDescCreatedAt := agenttraceFields[9].Descriptor()
	// agenttrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttrace.DefaultCreatedAt = agenttraceDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescRunID is the schema descriptor for run_id field.
	eventDescRunID := eventFields[0].Descriptor()
	// event.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	event.RunIDValidator = eventDescRunID.Validators[0].(func(string) error)
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[1].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	knowledgebaseFields := schema.KnowledgeBase{}.Fields()
	_ = knowledgebaseFields
	// knowledgebaseDescCreatedAt is the schema descriptor for created_at field.
	knowledgebaseDescCreatedAt := knowledgebaseFields[5].Descriptor()
	// knowledgebase.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgebase.DefaultCreatedAt = knowledgebaseDescCreatedAt.Default.(func() time.Time)
	processingatomFields := schema.ProcessingAtom{}.Fields()
	_ = processingatomFields
	// processingatomDescSourceHash is the schema descriptor for source_hash field.
	processingatomDescSourceHash := processingatomFields[3].Descriptor()
	// processingatom.SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	processingatom.SourceHashValidator = processingatomDescSourceHash.Validators[0].(func(string) error)
	// processingatomDescStatusCode is the schema descriptor for status_code field.
	processingatomDescStatusCode := processingatomFields[5].Descriptor()
	// processingatom.DefaultStatusCode holds the default value on creation for the status_code field.
	processingatom.DefaultStatusCode = processingatomDescStatusCode.Default.(int)
	// processingatomDescCreatedAt is the schema descriptor for created_at field.
	processingatomDescCreatedAt := processingatomFields[10].Descriptor()
	// processingatom.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingatom.DefaultCreatedAt = processingatomDescCreatedAt.Default.(func() time.Time)
	// processingatomDescUpdatedAt is the schema descriptor for updated_at field.
	processingatomDescUpdatedAt := processingatomFields[11].Descriptor()
	// processingatom.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processingatom.DefaultUpdatedAt = processingatomDescUpdatedAt.Default.(func() time.Time)
	// processingatom.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processingatom.UpdateDefaultUpdatedAt = processingatomDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectworkFields := schema.ProjectWork{}.Fields()
	_ = projectworkFields
	// projectworkDescCreatedAt is the schema descriptor for created_at field.
	projectworkDescCreatedAt := projectworkFields[8].Descriptor()
	// projectwork.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectwork.DefaultCreatedAt = projectworkDescCreatedAt.Default.(func() time.Time)
	// projectworkDescUpdatedAt is the schema descriptor for updated_at field.
	projectworkDescUpdatedAt := projectworkFields[9].Descriptor()
	// projectwork.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectwork.DefaultUpdatedAt = projectworkDescUpdatedAt.Default.(func() time.Time)
	// projectwork.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectwork.UpdateDefaultUpdatedAt = projectworkDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourcedocFields := schema.SourceDoc{}.Fields()
	_ = sourcedocFields
	// sourcedocDescAtomCount is the schema descriptor for atom_count field.
	sourcedocDescAtomCount := sourcedocFields[2].Descriptor()
	// sourcedoc.DefaultAtomCount holds the default value on creation for the atom_count field.
	sourcedoc.DefaultAtomCount = sourcedocDescAtomCount.Default.(int)
	// sourcedocDescCreatedAt is the schema descriptor for created_at field.
	sourcedocDescCreatedAt := sourcedocFields[4].Descriptor()
	// sourcedoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	sourcedoc.DefaultCreatedAt = sourcedocDescCreatedAt.Default.(func() time.Time)
	translationrunFields := schema.TranslationRun{}.Fields()
	_ = translationrunFields
	// translationrunDescCreatedAt is the schema descriptor for created_at field.
	translationrunDescCreatedAt := translationrunFields[13].Descriptor()
	// translationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	translationrun.DefaultCreatedAt = translationrunDescCreatedAt.Default.(func() time.Time)
}
