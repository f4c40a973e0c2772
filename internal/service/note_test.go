package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brbranch/upnote_mcp/internal/upnote"
)

// newTestService はdry-runクライアントを使うNoteServiceを生成
func newTestService(t *testing.T) NoteService {
	t.Helper()
	client := upnote.NewClient(upnote.WithDryRun(true))
	fixed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return NewNoteService(client, WithClock(func() time.Time { return fixed }))
}

// TestNoteService_CreateNote は基本のノート作成をテスト
func TestNoteService_CreateNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateNote(context.Background(), &CreateNoteRequest{
		Title: "Test Note",
		Text:  "hello",
		Tags:  []string{"work"},
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if !strings.HasPrefix(res.URL, "upnote://x-callback-url/note/new?") {
		t.Errorf("unexpected url: %q", res.URL)
	}
	if !strings.Contains(res.URL, "markdown=true") {
		t.Errorf("expected markdown=true in %q", res.URL)
	}
	if res.Opened {
		t.Error("dry-run result must report Opened=false")
	}
}

// TestNoteService_CreateNote_Validation は必須チェックをテスト
func TestNoteService_CreateNote_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     *CreateNoteRequest
		wantErr error
	}{
		{"missing title", &CreateNoteRequest{Text: "body"}, ErrTitleRequired},
		{"missing text", &CreateNoteRequest{Title: "t"}, ErrTextRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateNote(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestNoteService_CreateMarkdownNote はタイムスタンプ付加をテスト
func TestNoteService_CreateMarkdownNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateMarkdownNote(context.Background(), &CreateMarkdownNoteRequest{
		Title:        "Doc",
		Content:      "# Heading",
		AddTimestamp: true,
	})
	if err != nil {
		t.Fatalf("CreateMarkdownNote: %v", err)
	}
	// 固定時刻のタイムスタンプがエンコードされて含まれること
	if !strings.Contains(res.URL, "2025-03-14%2009%3A30%3A00") {
		t.Errorf("expected timestamp in %q", res.URL)
	}

	if _, err := svc.CreateMarkdownNote(context.Background(), &CreateMarkdownNoteRequest{Title: "Doc"}); !errors.Is(err, ErrContentRequired) {
		t.Errorf("expected ErrContentRequired, got %v", err)
	}
}

// TestNoteService_CreateTaskNote は既定値と本文生成をテスト
func TestNoteService_CreateTaskNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateTaskNote(context.Background(), &CreateTaskNoteRequest{
		Title: "Sprint",
		Tasks: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("CreateTaskNote: %v", err)
	}
	// 既定タグとpriority
	if !strings.Contains(res.URL, "tags=todo%2Ctasks") {
		t.Errorf("expected default tags in %q", res.URL)
	}
	if !strings.Contains(res.URL, "priority=medium") {
		t.Errorf("expected default priority in %q", res.URL)
	}
	// チェックリスト本文
	if !strings.Contains(res.URL, "-%20%5B%20%5D%20a") {
		t.Errorf("expected checklist in %q", res.URL)
	}

	if _, err := svc.CreateTaskNote(context.Background(), &CreateTaskNoteRequest{Title: "Sprint"}); !errors.Is(err, ErrTasksRequired) {
		t.Errorf("expected ErrTasksRequired, got %v", err)
	}
}

// TestNoteService_CreateMeetingNote は会議ノートの既定値をテスト
func TestNoteService_CreateMeetingNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateMeetingNote(context.Background(), &CreateMeetingNoteRequest{
		Title:     "Weekly Sync",
		Date:      "2025-03-14",
		Attendees: []string{"alice"},
		Agenda:    []string{"status"},
	})
	if err != nil {
		t.Fatalf("CreateMeetingNote: %v", err)
	}
	if !strings.Contains(res.URL, "notebook=Meeting%20Notes") {
		t.Errorf("expected default notebook in %q", res.URL)
	}
	if !strings.Contains(res.URL, "template=meeting") {
		t.Errorf("expected template in %q", res.URL)
	}

	if _, err := svc.CreateMeetingNote(context.Background(), &CreateMeetingNoteRequest{Title: "x"}); !errors.Is(err, ErrDateRequired) {
		t.Errorf("expected ErrDateRequired, got %v", err)
	}
}

// TestNoteService_CreateProjectNote はプロジェクトノートの既定値をテスト
func TestNoteService_CreateProjectNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateProjectNote(context.Background(), &CreateProjectNoteRequest{
		ProjectName: "Apollo",
		Description: "Ship it",
	})
	if err != nil {
		t.Fatalf("CreateProjectNote: %v", err)
	}
	if !strings.Contains(res.URL, "notebook=Projects") {
		t.Errorf("expected default notebook in %q", res.URL)
	}
	if !strings.Contains(res.URL, "tags=project%2Cplan%2Cmedium") {
		t.Errorf("expected tags in %q", res.URL)
	}

	if _, err := svc.CreateProjectNote(context.Background(), &CreateProjectNoteRequest{ProjectName: "x"}); !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("expected ErrDescriptionRequired, got %v", err)
	}
}

// TestNoteService_CreateDailyNote は日付省略時に今日を使うことをテスト
func TestNoteService_CreateDailyNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateDailyNote(context.Background(), &CreateDailyNoteRequest{})
	if err != nil {
		t.Fatalf("CreateDailyNote: %v", err)
	}
	if !strings.Contains(res.URL, "created_date=2025-03-14") {
		t.Errorf("expected created_date in %q", res.URL)
	}
	if !strings.Contains(res.URL, "tags=diary%2Cdaily%2C20250314") {
		t.Errorf("expected date tag in %q", res.URL)
	}
	if !strings.Contains(res.URL, "notebook=Diary") {
		t.Errorf("expected default notebook in %q", res.URL)
	}
}

// TestNoteService_SearchNotes は検索の必須チェックをテスト
func TestNoteService_SearchNotes(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.SearchNotes(context.Background(), &SearchNotesRequest{Query: "plan"})
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if !strings.Contains(res.URL, "action=search") || !strings.Contains(res.URL, "query=plan") {
		t.Errorf("unexpected url: %q", res.URL)
	}

	if _, err := svc.SearchNotes(context.Background(), &SearchNotesRequest{Query: "   "}); !errors.Is(err, ErrQueryRequired) {
		t.Errorf("expected ErrQueryRequired, got %v", err)
	}
}

// TestNoteService_OpenNote は必須なしの操作をテスト
func TestNoteService_OpenNote(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.OpenNote(context.Background(), &OpenNoteRequest{NoteID: "abc"})
	if err != nil {
		t.Fatalf("OpenNote: %v", err)
	}
	if res.URL != "upnote://x-callback-url/note/open?id=abc" {
		t.Errorf("unexpected url: %q", res.URL)
	}
}

// TestNoteService_ExportNote はエクスポートの必須チェックをテスト
func TestNoteService_ExportNote(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     *ExportNoteRequest
		wantErr error
	}{
		{"missing note_id", &ExportNoteRequest{Format: "md", DestPath: "/tmp/x"}, ErrNoteIDRequired},
		{"missing format", &ExportNoteRequest{NoteID: "a", DestPath: "/tmp/x"}, ErrFormatRequired},
		{"missing dest", &ExportNoteRequest{NoteID: "a", Format: "md"}, ErrDestinationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ExportNote(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	res, err := svc.ExportNote(context.Background(), &ExportNoteRequest{NoteID: "a", Format: "md", DestPath: "/tmp/x.md"})
	if err != nil {
		t.Fatalf("ExportNote: %v", err)
	}
	if !strings.Contains(res.URL, "/export?") {
		t.Errorf("unexpected url: %q", res.URL)
	}
}

// TestNoteService_ImportNote はインポートの必須チェックをテスト
func TestNoteService_ImportNote(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ImportNote(context.Background(), &ImportNoteRequest{}); !errors.Is(err, ErrPathRequired) {
		t.Errorf("expected ErrPathRequired, got %v", err)
	}

	res, err := svc.ImportNote(context.Background(), &ImportNoteRequest{Path: "/tmp/in.md"})
	if err != nil {
		t.Fatalf("ImportNote: %v", err)
	}
	if !strings.Contains(res.URL, "/import?file=") {
		t.Errorf("unexpected url: %q", res.URL)
	}
}

// TestNoteService_OpenApp はアプリ起動をテスト
func TestNoteService_OpenApp(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.OpenApp(context.Background())
	if err != nil {
		t.Fatalf("OpenApp: %v", err)
	}
	if res.URL != "upnote://x-callback-url/open" {
		t.Errorf("unexpected url: %q", res.URL)
	}
}
