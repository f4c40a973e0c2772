package service

// NoteResult は各操作の結果
// Openedはdry-runでない場合にtrue
type NoteResult struct {
	URL    string
	Opened bool
}

// CreateNoteRequest はノート作成リクエスト
type CreateNoteRequest struct {
	Title    string
	Text     string
	Notebook string
	Tags     []string
	Pinned   *bool
	Favorite *bool
}

// CreateMarkdownNoteRequest はmarkdownノート作成リクエスト
type CreateMarkdownNoteRequest struct {
	Title        string
	Content      string
	Notebook     string
	Tags         []string
	AddTimestamp bool
	Pinned       *bool
	Favorite     *bool
	Color        string
	Reminder     string
}

// CreateTaskNoteRequest はタスクノート作成リクエスト
type CreateTaskNoteRequest struct {
	Title    string
	Tasks    []string
	Notebook string
	DueDate  string
	Priority string // low | medium | high（既定medium）
	Tags     []string
	Reminder string
}

// CreateMeetingNoteRequest は会議ノート作成リクエスト
type CreateMeetingNoteRequest struct {
	Title     string
	Date      string
	Attendees []string
	Agenda    []string
	Notebook  string
	Location  string
	Tags      []string
}

// CreateProjectNoteRequest はプロジェクトノート作成リクエスト
type CreateProjectNoteRequest struct {
	ProjectName string
	Description string
	Milestones  []string
	TeamMembers []string
	DueDate     string
	Notebook    string
	Priority    string
}

// CreateDailyNoteRequest は日次ノート作成リクエスト
type CreateDailyNoteRequest struct {
	Date        string // 空なら今日
	Mood        string
	Weather     string
	Goals       []string
	Reflections string
	Notebook    string
}

// SearchNotesRequest は検索リクエスト
type SearchNotesRequest struct {
	Query      string
	Mode       string
	NotebookID string
	TagID      string
	FilterID   string
	SpaceID    string
}

// OpenNoteRequest はノートオープンリクエスト
type OpenNoteRequest struct {
	NoteID string
	Title  string
	Edit   *bool
}

// CreateNotebookRequest はノートブック作成リクエスト
type CreateNotebookRequest struct {
	Title  string
	Color  string
	Parent string
}

// OpenNotebookRequest はノートブックオープンリクエスト
type OpenNotebookRequest struct {
	Name       string
	NotebookID string
}

// ImportNoteRequest はインポートリクエスト
type ImportNoteRequest struct {
	Path     string
	Notebook string
	Format   string
}

// ExportNoteRequest はエクスポートリクエスト
type ExportNoteRequest struct {
	NoteID   string
	Title    string
	Format   string // md | html | pdf
	DestPath string
}
