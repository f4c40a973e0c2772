package service

import (
	"context"
	"errors"
)

// NoteService はUpNoteのノート操作を提供
type NoteService interface {
	CreateNote(ctx context.Context, req *CreateNoteRequest) (*NoteResult, error)
	CreateMarkdownNote(ctx context.Context, req *CreateMarkdownNoteRequest) (*NoteResult, error)
	CreateTaskNote(ctx context.Context, req *CreateTaskNoteRequest) (*NoteResult, error)
	CreateMeetingNote(ctx context.Context, req *CreateMeetingNoteRequest) (*NoteResult, error)
	CreateProjectNote(ctx context.Context, req *CreateProjectNoteRequest) (*NoteResult, error)
	CreateDailyNote(ctx context.Context, req *CreateDailyNoteRequest) (*NoteResult, error)
	SearchNotes(ctx context.Context, req *SearchNotesRequest) (*NoteResult, error)
	OpenNote(ctx context.Context, req *OpenNoteRequest) (*NoteResult, error)
	CreateNotebook(ctx context.Context, req *CreateNotebookRequest) (*NoteResult, error)
	OpenNotebook(ctx context.Context, req *OpenNotebookRequest) (*NoteResult, error)
	OpenApp(ctx context.Context) (*NoteResult, error)
	ImportNote(ctx context.Context, req *ImportNoteRequest) (*NoteResult, error)
	ExportNote(ctx context.Context, req *ExportNoteRequest) (*NoteResult, error)
}

// エラー定義
var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTextRequired        = errors.New("text is required")
	ErrContentRequired     = errors.New("content is required")
	ErrTasksRequired       = errors.New("tasks is required")
	ErrDateRequired        = errors.New("date is required")
	ErrProjectNameRequired = errors.New("project_name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrQueryRequired       = errors.New("query is required")
	ErrPathRequired        = errors.New("path is required")
	ErrNoteIDRequired      = errors.New("note_id is required")
	ErrFormatRequired      = errors.New("format is required")
	ErrDestinationRequired = errors.New("dest_path is required")
)
