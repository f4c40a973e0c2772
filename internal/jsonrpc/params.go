package jsonrpc

import (
	"github.com/brbranch/upnote_mcp/internal/service"
)

// CreateNoteParams は create_note のパラメータ
type CreateNoteParams struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Notebook string   `json:"notebook"`
	Tags     []string `json:"tags"`
	Pinned   *bool    `json:"pinned"`
	Favorite *bool    `json:"favorite"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateNoteParams) ToRequest() *service.CreateNoteRequest {
	return &service.CreateNoteRequest{
		Title:    p.Title,
		Text:     p.Text,
		Notebook: p.Notebook,
		Tags:     p.Tags,
		Pinned:   p.Pinned,
		Favorite: p.Favorite,
	}
}

// CreateMarkdownNoteParams は create_markdown_note のパラメータ
type CreateMarkdownNoteParams struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Notebook     string   `json:"notebook"`
	Tags         []string `json:"tags"`
	AddTimestamp bool     `json:"add_timestamp"`
	Pinned       *bool    `json:"pinned"`
	Favorite     *bool    `json:"favorite"`
	Color        string   `json:"color"`
	Reminder     string   `json:"reminder"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateMarkdownNoteParams) ToRequest() *service.CreateMarkdownNoteRequest {
	return &service.CreateMarkdownNoteRequest{
		Title:        p.Title,
		Content:      p.Content,
		Notebook:     p.Notebook,
		Tags:         p.Tags,
		AddTimestamp: p.AddTimestamp,
		Pinned:       p.Pinned,
		Favorite:     p.Favorite,
		Color:        p.Color,
		Reminder:     p.Reminder,
	}
}

// CreateTaskNoteParams は create_task_note のパラメータ
type CreateTaskNoteParams struct {
	Title    string   `json:"title"`
	Tasks    []string `json:"tasks"`
	Notebook string   `json:"notebook"`
	DueDate  string   `json:"due_date"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags"`
	Reminder string   `json:"reminder"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateTaskNoteParams) ToRequest() *service.CreateTaskNoteRequest {
	return &service.CreateTaskNoteRequest{
		Title:    p.Title,
		Tasks:    p.Tasks,
		Notebook: p.Notebook,
		DueDate:  p.DueDate,
		Priority: p.Priority,
		Tags:     p.Tags,
		Reminder: p.Reminder,
	}
}

// CreateMeetingNoteParams は create_meeting_note のパラメータ
type CreateMeetingNoteParams struct {
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Attendees []string `json:"attendees"`
	Agenda    []string `json:"agenda"`
	Notebook  string   `json:"notebook"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateMeetingNoteParams) ToRequest() *service.CreateMeetingNoteRequest {
	return &service.CreateMeetingNoteRequest{
		Title:     p.Title,
		Date:      p.Date,
		Attendees: p.Attendees,
		Agenda:    p.Agenda,
		Notebook:  p.Notebook,
		Location:  p.Location,
		Tags:      p.Tags,
	}
}

// CreateProjectNoteParams は create_project_note のパラメータ
type CreateProjectNoteParams struct {
	ProjectName string   `json:"project_name"`
	Description string   `json:"description"`
	Milestones  []string `json:"milestones"`
	TeamMembers []string `json:"team_members"`
	DueDate     string   `json:"due_date"`
	Notebook    string   `json:"notebook"`
	Priority    string   `json:"priority"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateProjectNoteParams) ToRequest() *service.CreateProjectNoteRequest {
	return &service.CreateProjectNoteRequest{
		ProjectName: p.ProjectName,
		Description: p.Description,
		Milestones:  p.Milestones,
		TeamMembers: p.TeamMembers,
		DueDate:     p.DueDate,
		Notebook:    p.Notebook,
		Priority:    p.Priority,
	}
}

// CreateDailyNoteParams は create_daily_note のパラメータ
type CreateDailyNoteParams struct {
	Date        string   `json:"date"`
	Mood        string   `json:"mood"`
	Weather     string   `json:"weather"`
	Goals       []string `json:"goals"`
	Reflections string   `json:"reflections"`
	Notebook    string   `json:"notebook"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateDailyNoteParams) ToRequest() *service.CreateDailyNoteRequest {
	return &service.CreateDailyNoteRequest{
		Date:        p.Date,
		Mood:        p.Mood,
		Weather:     p.Weather,
		Goals:       p.Goals,
		Reflections: p.Reflections,
		Notebook:    p.Notebook,
	}
}

// SearchNotesParams は search_notes のパラメータ
type SearchNotesParams struct {
	Query      string `json:"query"`
	Mode       string `json:"mode"`
	NotebookID string `json:"notebook_id"`
	TagID      string `json:"tag_id"`
	FilterID   string `json:"filter_id"`
	SpaceID    string `json:"space_id"`
}

// ToRequest はサービスリクエストに変換
func (p *SearchNotesParams) ToRequest() *service.SearchNotesRequest {
	return &service.SearchNotesRequest{
		Query:      p.Query,
		Mode:       p.Mode,
		NotebookID: p.NotebookID,
		TagID:      p.TagID,
		FilterID:   p.FilterID,
		SpaceID:    p.SpaceID,
	}
}

// OpenNoteParams は open_note のパラメータ
type OpenNoteParams struct {
	NoteID string `json:"note_id"`
	Title  string `json:"title"`
	Edit   *bool  `json:"edit"`
}

// ToRequest はサービスリクエストに変換
func (p *OpenNoteParams) ToRequest() *service.OpenNoteRequest {
	return &service.OpenNoteRequest{
		NoteID: p.NoteID,
		Title:  p.Title,
		Edit:   p.Edit,
	}
}

// CreateNotebookParams は create_notebook のパラメータ
type CreateNotebookParams struct {
	Title  string `json:"title"`
	Color  string `json:"color"`
	Parent string `json:"parent"`
}

// ToRequest はサービスリクエストに変換
func (p *CreateNotebookParams) ToRequest() *service.CreateNotebookRequest {
	return &service.CreateNotebookRequest{
		Title:  p.Title,
		Color:  p.Color,
		Parent: p.Parent,
	}
}

// OpenNotebookParams は open_notebook のパラメータ
type OpenNotebookParams struct {
	Name       string `json:"name"`
	NotebookID string `json:"notebook_id"`
}

// ToRequest はサービスリクエストに変換
func (p *OpenNotebookParams) ToRequest() *service.OpenNotebookRequest {
	return &service.OpenNotebookRequest{
		Name:       p.Name,
		NotebookID: p.NotebookID,
	}
}

// ImportNoteParams は import_note のパラメータ
type ImportNoteParams struct {
	Path     string `json:"path"`
	Notebook string `json:"notebook"`
	Format   string `json:"format"`
}

// ToRequest はサービスリクエストに変換
func (p *ImportNoteParams) ToRequest() *service.ImportNoteRequest {
	return &service.ImportNoteRequest{
		Path:     p.Path,
		Notebook: p.Notebook,
		Format:   p.Format,
	}
}

// ExportNoteParams は export_note のパラメータ
type ExportNoteParams struct {
	NoteID   string `json:"note_id"`
	Title    string `json:"title"`
	Format   string `json:"format"`
	DestPath string `json:"dest_path"`
}

// ToRequest はサービスリクエストに変換
func (p *ExportNoteParams) ToRequest() *service.ExportNoteRequest {
	return &service.ExportNoteRequest{
		NoteID:   p.NoteID,
		Title:    p.Title,
		Format:   p.Format,
		DestPath: p.DestPath,
	}
}
