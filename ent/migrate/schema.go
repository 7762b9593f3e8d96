// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentTracesColumns holds the columns for the "agent_traces" table.
	AgentTracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_role", Type: field.TypeEnum, Enums: []string{"translator", "quality_assessor", "consistency_checker", "human"}},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"draft", "refine", "evaluate", "final", "human_edit"}},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "quality_report", Type: field.TypeJSON, Nullable: true},
		{Name: "meta_data", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "atom_id", Type: field.TypeInt},
	}
	// AgentTracesTable holds the schema information for the "agent_traces" table.
	AgentTracesTable = &schema.Table{
		Name:       "agent_traces",
		Columns:    AgentTracesColumns,
		PrimaryKey: []*schema.Column{AgentTracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_traces_processing_atoms_traces",
				Columns:    []*schema.Column{AgentTracesColumns[10]},
				RefColumns: []*schema.Column{ProcessingAtomsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttrace_atom_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentTracesColumns[10], AgentTracesColumns[9]},
			},
			{
				Name:    "agenttrace_atom_id",
				Unique:  true,
				Columns: []*schema.Column{AgentTracesColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "channel", Type: field.TypeString, Size: 100},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_run_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// KnowledgeBasesColumns holds the columns for the "knowledge_bases" table.
	KnowledgeBasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "kb_type", Type: field.TypeEnum, Enums: []string{"tm", "glossary", "style_guide", "external"}},
		{Name: "vector", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(768)"}},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "work_id", Type: field.TypeInt},
	}
	// KnowledgeBasesTable holds the schema information for the "knowledge_bases" table.
	KnowledgeBasesTable = &schema.Table{
		Name:       "knowledge_bases",
		Columns:    KnowledgeBasesColumns,
		PrimaryKey: []*schema.Column{KnowledgeBasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_bases_project_works_knowledge_entries",
				Columns:    []*schema.Column{KnowledgeBasesColumns[6]},
				RefColumns: []*schema.Column{ProjectWorksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgebase_work_id_kb_type",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeBasesColumns[6], KnowledgeBasesColumns[2]},
			},
		},
	}
	// ProcessingAtomsColumns holds the columns for the "processing_atoms" table.
	ProcessingAtomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "source_text", Type: field.TypeString, Size: 2147483647},
		{Name: "source_hash", Type: field.TypeString, Size: 32},
		{Name: "translated_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status_code", Type: field.TypeInt, Default: 0, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "examination", Type: field.TypeJSON, Nullable: true},
		{Name: "context_info", Type: field.TypeJSON, Nullable: true},
		{Name: "semantic_vec", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(768)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeInt},
	}
	// ProcessingAtomsTable holds the schema information for the "processing_atoms" table.
	ProcessingAtomsTable = &schema.Table{
		Name:       "processing_atoms",
		Columns:    ProcessingAtomsColumns,
		PrimaryKey: []*schema.Column{ProcessingAtomsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_atoms_source_docs_atoms",
				Columns:    []*schema.Column{ProcessingAtomsColumns[12]},
				RefColumns: []*schema.Column{SourceDocsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingatom_doc_id_position",
				Unique:  true,
				Columns: []*schema.Column{ProcessingAtomsColumns[12], ProcessingAtomsColumns[1]},
			},
			{
				Name:    "processingatom_doc_id_status_code",
				Unique:  false,
				Columns: []*schema.Column{ProcessingAtomsColumns[12], ProcessingAtomsColumns[5]},
			},
		},
	}
	// ProjectWorksColumns holds the columns for the "project_works" table.
	ProjectWorksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "work_name", Type: field.TypeString, Unique: true},
		{Name: "source_lang", Type: field.TypeString},
		{Name: "target_lang", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_info", Type: field.TypeJSON, Nullable: true},
		{Name: "translation_guide", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prompt_templates", Type: field.TypeJSON, Nullable: true},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectWorksTable holds the schema information for the "project_works" table.
	ProjectWorksTable = &schema.Table{
		Name:       "project_works",
		Columns:    ProjectWorksColumns,
		PrimaryKey: []*schema.Column{ProjectWorksColumns[0]},
	}
	// SourceDocsColumns holds the columns for the "source_docs" table.
	SourceDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "atom_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "work_id", Type: field.TypeInt},
	}
	// SourceDocsTable holds the schema information for the "source_docs" table.
	SourceDocsTable = &schema.Table{
		Name:       "source_docs",
		Columns:    SourceDocsColumns,
		PrimaryKey: []*schema.Column{SourceDocsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_docs_project_works_docs",
				Columns:    []*schema.Column{SourceDocsColumns[5]},
				RefColumns: []*schema.Column{ProjectWorksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcedoc_work_id_file_path",
				Unique:  true,
				Columns: []*schema.Column{SourceDocsColumns[5], SourceDocsColumns[1]},
			},
		},
	}
	// TranslationRunsColumns holds the columns for the "translation_runs" table.
	TranslationRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "project_path", Type: field.TypeString},
		{Name: "output_path", Type: field.TypeString},
		{Name: "config_overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "review", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "work_id", Type: field.TypeInt, Nullable: true},
	}
	// TranslationRunsTable holds the schema information for the "translation_runs" table.
	TranslationRunsTable = &schema.Table{
		Name:       "translation_runs",
		Columns:    TranslationRunsColumns,
		PrimaryKey: []*schema.Column{TranslationRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "translation_runs_project_works_runs",
				Columns:    []*schema.Column{TranslationRunsColumns[13]},
				RefColumns: []*schema.Column{ProjectWorksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "translationrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranslationRunsColumns[4], TranslationRunsColumns[12]},
			},
			{
				Name:    "translationrun_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TranslationRunsColumns[4], TranslationRunsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentTracesTable,
		EventsTable,
		KnowledgeBasesTable,
		ProcessingAtomsTable,
		ProjectWorksTable,
		SourceDocsTable,
		TranslationRunsTable,
	}
)

func init() {
	AgentTracesTable.ForeignKeys[0].RefTable = ProcessingAtomsTable
	KnowledgeBasesTable.ForeignKeys[0].RefTable = ProjectWorksTable
	ProcessingAtomsTable.ForeignKeys[0].RefTable = SourceDocsTable
	SourceDocsTable.ForeignKeys[0].RefTable = ProjectWorksTable
	TranslationRunsTable.ForeignKeys[0].RefTable = ProjectWorksTable
}
