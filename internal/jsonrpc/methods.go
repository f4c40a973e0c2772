package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brbranch/upnote_mcp/internal/model"
	"github.com/brbranch/upnote_mcp/internal/service"
)

// stringSchema は単純なstring型スキーマ
func stringSchema() model.JSONSchema {
	return model.JSONSchema{Type: "string"}
}

// stringArraySchema はstring配列スキーマ
func stringArraySchema() model.JSONSchema {
	return model.JSONSchema{
		Type:  "array",
		Items: &model.JSONSchema{Type: "string"},
	}
}

// boolSchema はboolean型スキーマ
func boolSchema() model.JSONSchema {
	return model.JSONSchema{Type: "boolean"}
}

// mcpTools はtools/listで公開するツールカタログ
var mcpTools = []model.Tool{
	{
		Name:        "create_note",
		Description: "Create a new note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"title":    stringSchema(),
				"text":     stringSchema(),
				"notebook": stringSchema(),
				"tags":     stringArraySchema(),
				"pinned":   boolSchema(),
				"favorite": boolSchema(),
			},
			Required: []string{"title", "text"},
		},
	},
	{
		Name:        "create_markdown_note",
		Description: "Create a markdown formatted note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"title":         stringSchema(),
				"content":       stringSchema(),
				"notebook":      stringSchema(),
				"tags":          stringArraySchema(),
				"add_timestamp": boolSchema(),
			},
			Required: []string{"title", "content"},
		},
	},
	{
		Name:        "create_task_note",
		Description: "Create a task list note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"title":    stringSchema(),
				"tasks":    stringArraySchema(),
				"notebook": stringSchema(),
				"due_date": stringSchema(),
				"priority": {Type: "string", Enum: []string{"low", "medium", "high"}},
			},
			Required: []string{"title", "tasks"},
		},
	},
	{
		Name:        "create_meeting_note",
		Description: "Create a meeting note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"title":     stringSchema(),
				"date":      stringSchema(),
				"attendees": stringArraySchema(),
				"agenda":    stringArraySchema(),
				"notebook":  stringSchema(),
				"location":  stringSchema(),
			},
			Required: []string{"title", "date"},
		},
	},
	{
		Name:        "create_project_note",
		Description: "Create a project note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"project_name": stringSchema(),
				"description":  stringSchema(),
				"milestones":   stringArraySchema(),
				"team_members": stringArraySchema(),
				"due_date":     stringSchema(),
				"priority":     {Type: "string", Enum: []string{"low", "medium", "high"}},
			},
			Required: []string{"project_name", "description"},
		},
	},
	{
		Name:        "create_daily_note",
		Description: "Create a daily journal note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"date":        stringSchema(),
				"mood":        stringSchema(),
				"weather":     stringSchema(),
				"goals":       stringArraySchema(),
				"reflections": stringSchema(),
			},
		},
	},
	{
		Name:        "search_notes",
		Description: "Search for notes in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"query":       stringSchema(),
				"mode":        stringSchema(),
				"notebook_id": stringSchema(),
				"tag_id":      stringSchema(),
			},
			Required: []string{"query"},
		},
	},
	{
		Name:        "open_note",
		Description: "Open a specific note in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"note_id": stringSchema(),
				"title":   stringSchema(),
				"edit":    boolSchema(),
			},
		},
	},
	{
		Name:        "create_notebook",
		Description: "Create a new notebook in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"title":  stringSchema(),
				"color":  stringSchema(),
				"parent": stringSchema(),
			},
			Required: []string{"title"},
		},
	},
	{
		Name:        "open_notebook",
		Description: "Open a notebook in UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"name":        stringSchema(),
				"notebook_id": stringSchema(),
			},
		},
	},
	{
		Name:        "open_upnote",
		Description: "Open the UpNote application",
		InputSchema: model.JSONSchema{
			Type:       "object",
			Properties: map[string]model.JSONSchema{},
		},
	},
	{
		Name:        "import_note",
		Description: "Import a note into UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"path":     stringSchema(),
				"notebook": stringSchema(),
				"format":   stringSchema(),
			},
			Required: []string{"path"},
		},
	},
	{
		Name:        "export_note",
		Description: "Export a note from UpNote",
		InputSchema: model.JSONSchema{
			Type: "object",
			Properties: map[string]model.JSONSchema{
				"note_id":   stringSchema(),
				"format":    {Type: "string", Enum: []string{"md", "html", "pdf"}},
				"dest_path": stringSchema(),
			},
			Required: []string{"note_id", "format", "dest_path"},
		},
	},
}

// callTool はツール名に応じてサービスを呼び出す
func (h *Handler) callTool(ctx context.Context, name string, args map[string]any) (*service.NoteResult, error) {
	switch name {
	case "create_note":
		var p CreateNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateNote(ctx, p.ToRequest())
	case "create_markdown_note":
		var p CreateMarkdownNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateMarkdownNote(ctx, p.ToRequest())
	case "create_task_note":
		var p CreateTaskNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateTaskNote(ctx, p.ToRequest())
	case "create_meeting_note":
		var p CreateMeetingNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateMeetingNote(ctx, p.ToRequest())
	case "create_project_note":
		var p CreateProjectNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateProjectNote(ctx, p.ToRequest())
	case "create_daily_note":
		var p CreateDailyNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateDailyNote(ctx, p.ToRequest())
	case "search_notes":
		var p SearchNotesParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.SearchNotes(ctx, p.ToRequest())
	case "open_note":
		var p OpenNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.OpenNote(ctx, p.ToRequest())
	case "create_notebook":
		var p CreateNotebookParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.CreateNotebook(ctx, p.ToRequest())
	case "open_notebook":
		var p OpenNotebookParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.OpenNotebook(ctx, p.ToRequest())
	case "open_upnote":
		return h.noteService.OpenApp(ctx)
	case "import_note":
		var p ImportNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.ImportNote(ctx, p.ToRequest())
	case "export_note":
		var p ExportNoteParams
		if err := mapParams(args, &p); err != nil {
			return nil, err
		}
		return h.noteService.ExportNote(ctx, p.ToRequest())
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mapParams はanyをターゲット構造体にマッピング
func mapParams(params any, target any) error {
	if params == nil {
		return nil
	}

	// anyをJSONに変換してから構造体にアンマーシャル
	b, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}
