package service

import (
	"context"
	"strings"
	"time"

	"github.com/brbranch/upnote_mcp/internal/upnote"
)

// noteService はNoteServiceの実装
type noteService struct {
	client *upnote.Client
	now    func() time.Time
}

// NoteOption はnoteServiceのオプション
type NoteOption func(*noteService)

// WithClock は現在時刻の取得関数を設定（テスト用）
func WithClock(now func() time.Time) NoteOption {
	return func(s *noteService) {
		s.now = now
	}
}

// NewNoteService はNoteServiceの新しいインスタンスを作成
func NewNoteService(client *upnote.Client, opts ...NoteOption) NoteService {
	s := &noteService{
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// result はクライアントの戻り値をNoteResultに変換する
func (s *noteService) result(url string, err error) (*NoteResult, error) {
	if err != nil {
		return nil, err
	}
	return &NoteResult{
		URL:    url,
		Opened: !s.client.DryRun(),
	}, nil
}

// markdownOn はmarkdown=trueのポインタを返す
func markdownOn() *bool {
	on := true
	return &on
}

// CreateNote は新規ノートを作成する
func (s *noteService) CreateNote(ctx context.Context, req *CreateNoteRequest) (*NoteResult, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Text == "" {
		return nil, ErrTextRequired
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:    req.Title,
		Text:     req.Text,
		Notebook: req.Notebook,
		Tags:     req.Tags,
		Pinned:   req.Pinned,
		Favorite: req.Favorite,
		Markdown: markdownOn(),
	}))
}

// CreateMarkdownNote はmarkdownノートを作成する
func (s *noteService) CreateMarkdownNote(ctx context.Context, req *CreateMarkdownNoteRequest) (*NoteResult, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Content == "" {
		return nil, ErrContentRequired
	}

	content := req.Content
	if req.AddTimestamp {
		content = upnote.FormatContent(content, true, false, s.now())
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:    req.Title,
		Text:     content,
		Notebook: req.Notebook,
		Tags:     req.Tags,
		Pinned:   req.Pinned,
		Favorite: req.Favorite,
		Color:    req.Color,
		Reminder: req.Reminder,
		Markdown: markdownOn(),
	}))
}

// CreateTaskNote はタスクリスト付きノートを作成する
func (s *noteService) CreateTaskNote(ctx context.Context, req *CreateTaskNoteRequest) (*NoteResult, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if len(req.Tasks) == 0 {
		return nil, ErrTasksRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	tags := req.Tags
	if len(tags) == 0 {
		tags = []string{"todo", "tasks"}
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:    req.Title,
		Text:     upnote.TaskNoteContent(req.Title, req.Tasks, req.DueDate),
		Notebook: req.Notebook,
		Tags:     tags,
		Priority: priority,
		DueDate:  req.DueDate,
		Reminder: req.Reminder,
		Markdown: markdownOn(),
	}))
}

// CreateMeetingNote は会議ノートを作成する
func (s *noteService) CreateMeetingNote(ctx context.Context, req *CreateMeetingNoteRequest) (*NoteResult, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Date == "" {
		return nil, ErrDateRequired
	}

	notebook := req.Notebook
	if notebook == "" {
		notebook = "Meeting Notes"
	}
	tags := req.Tags
	if len(tags) == 0 {
		tags = []string{"meeting", "meeting-notes"}
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:    req.Title,
		Text:     upnote.MeetingNoteContent(req.Title, req.Date, req.Attendees, req.Agenda, req.Location),
		Notebook: notebook,
		Tags:     tags,
		Location: req.Location,
		Template: "meeting",
		Markdown: markdownOn(),
	}))
}

// CreateProjectNote はプロジェクトノートを作成する
func (s *noteService) CreateProjectNote(ctx context.Context, req *CreateProjectNoteRequest) (*NoteResult, error) {
	if req.ProjectName == "" {
		return nil, ErrProjectNameRequired
	}
	if req.Description == "" {
		return nil, ErrDescriptionRequired
	}

	notebook := req.Notebook
	if notebook == "" {
		notebook = "Projects"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:    "📋 " + req.ProjectName,
		Text:     upnote.ProjectNoteContent(req.ProjectName, req.Description, req.Milestones, req.TeamMembers, req.DueDate, s.now()),
		Notebook: notebook,
		Tags:     []string{"project", "plan", priority},
		DueDate:  req.DueDate,
		Priority: priority,
		Template: "project",
		Markdown: markdownOn(),
	}))
}

// CreateDailyNote は日次ノートを作成する
func (s *noteService) CreateDailyNote(ctx context.Context, req *CreateDailyNoteRequest) (*NoteResult, error) {
	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	notebook := req.Notebook
	if notebook == "" {
		notebook = "Diary"
	}

	return s.result(s.client.CreateNote(&upnote.Note{
		Title:       "📅 " + date,
		Text:        upnote.DailyNoteContent(date, req.Mood, req.Weather, req.Goals, req.Reflections),
		Notebook:    notebook,
		Tags:        []string{"diary", "daily", strings.ReplaceAll(date, "-", "")},
		CreatedDate: date,
		Template:    "daily",
		Markdown:    markdownOn(),
	}))
}

// SearchNotes はUpNoteの検索ビューを開く
func (s *noteService) SearchNotes(ctx context.Context, req *SearchNotesRequest) (*NoteResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrQueryRequired
	}

	return s.result(s.client.SearchNotes(req.Query, &upnote.SearchOptions{
		Mode:       req.Mode,
		NotebookID: req.NotebookID,
		TagID:      req.TagID,
		FilterID:   req.FilterID,
		SpaceID:    req.SpaceID,
	}))
}

// OpenNote は既存ノートを開く
func (s *noteService) OpenNote(ctx context.Context, req *OpenNoteRequest) (*NoteResult, error) {
	return s.result(s.client.OpenNote(req.NoteID, req.Title, req.Edit))
}

// CreateNotebook はノートブックを作成する
func (s *noteService) CreateNotebook(ctx context.Context, req *CreateNotebookRequest) (*NoteResult, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	return s.result(s.client.CreateNotebook(req.Title, req.Color, req.Parent))
}

// OpenNotebook はノートブックを開く
func (s *noteService) OpenNotebook(ctx context.Context, req *OpenNotebookRequest) (*NoteResult, error) {
	return s.result(s.client.OpenNotebook(req.Name, req.NotebookID))
}

// OpenApp はUpNoteアプリを開く
func (s *noteService) OpenApp(ctx context.Context) (*NoteResult, error) {
	return s.result(s.client.OpenApp())
}

// ImportNote はファイルからノートをインポートする
func (s *noteService) ImportNote(ctx context.Context, req *ImportNoteRequest) (*NoteResult, error) {
	if req.Path == "" {
		return nil, ErrPathRequired
	}

	return s.result(s.client.ImportNote(req.Path, req.Notebook, req.Format))
}

// ExportNote はノートをエクスポートする
func (s *noteService) ExportNote(ctx context.Context, req *ExportNoteRequest) (*NoteResult, error) {
	if req.NoteID == "" {
		return nil, ErrNoteIDRequired
	}
	if req.Format == "" {
		return nil, ErrFormatRequired
	}
	if req.DestPath == "" {
		return nil, ErrDestinationRequired
	}

	return s.result(s.client.ExportNote(req.NoteID, req.Title, req.Format, req.DestPath))
}
