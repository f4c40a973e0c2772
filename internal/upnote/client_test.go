package upnote

import (
	"errors"
	"strings"
	"testing"
)

// recordOpener は開いたURLを記録するOpener
type recordOpener struct {
	urls []string
	err  error
}

func (o *recordOpener) Open(url string) error {
	if o.err != nil {
		return o.err
	}
	o.urls = append(o.urls, url)
	return nil
}

// TestClient_BuildURL はURL組み立てをテスト
func TestClient_BuildURL(t *testing.T) {
	c := NewClient()

	tests := []struct {
		name   string
		action string
		params map[string]any
		want   string
	}{
		{
			name:   "no params",
			action: "open",
			params: nil,
			want:   "upnote://x-callback-url/open",
		},
		{
			name:   "sorted keys",
			action: "note/new",
			params: map[string]any{"title": "Test", "notebook": "Inbox"},
			want:   "upnote://x-callback-url/note/new?notebook=Inbox&title=Test",
		},
		{
			name:   "space is percent-20",
			action: "note/new",
			params: map[string]any{"title": "Hello World"},
			want:   "upnote://x-callback-url/note/new?title=Hello%20World",
		},
		{
			name:   "list joined by comma",
			action: "note/new",
			params: map[string]any{"tags": []string{"work", "todo"}},
			want:   "upnote://x-callback-url/note/new?tags=work%2Ctodo",
		},
		{
			name:   "bool values",
			action: "note/new",
			params: map[string]any{"markdown": true, "pinned": false},
			want:   "upnote://x-callback-url/note/new?markdown=true&pinned=false",
		},
		{
			name:   "empty values skipped",
			action: "note/new",
			params: map[string]any{"title": "Test", "notebook": "", "tags": []string{}, "edit": (*bool)(nil)},
			want:   "upnote://x-callback-url/note/new?title=Test",
		},
		{
			name:   "markdown characters escaped",
			action: "note/new",
			params: map[string]any{"text": "# Head\n- item"},
			want:   "upnote://x-callback-url/note/new?text=%23%20Head%0A-%20item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.BuildURL(tt.action, tt.params); got != tt.want {
				t.Errorf("BuildURL = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestClient_CreateNote_DryRun はdry-runでURLを返し開かないことをテスト
func TestClient_CreateNote_DryRun(t *testing.T) {
	opener := &recordOpener{}
	c := NewClient(WithOpener(opener), WithDryRun(true))

	markdown := true
	url, err := c.CreateNote(&Note{
		Title:    "Test Note",
		Text:     "body",
		Markdown: &markdown,
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if !strings.HasPrefix(url, "upnote://x-callback-url/note/new?") {
		t.Errorf("unexpected url: %q", url)
	}
	if !strings.Contains(url, "markdown=true") {
		t.Errorf("expected markdown=true in %q", url)
	}
	if len(opener.urls) != 0 {
		t.Errorf("dry-run must not open URLs, opened %v", opener.urls)
	}
}

// TestClient_CreateNote_Opens は通常モードでオープナーが呼ばれることをテスト
func TestClient_CreateNote_Opens(t *testing.T) {
	opener := &recordOpener{}
	c := NewClient(WithOpener(opener))

	url, err := c.CreateNote(&Note{Title: "Test", Text: "body"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if len(opener.urls) != 1 || opener.urls[0] != url {
		t.Errorf("expected opened url %q, got %v", url, opener.urls)
	}
}

// TestClient_CreateNote_OpenError はオープン失敗の伝播をテスト
func TestClient_CreateNote_OpenError(t *testing.T) {
	opener := &recordOpener{err: ErrOpenFailed}
	c := NewClient(WithOpener(opener))

	if _, err := c.CreateNote(&Note{Title: "Test", Text: "body"}); !errors.Is(err, ErrOpenFailed) {
		t.Errorf("expected ErrOpenFailed, got %v", err)
	}
}

// TestClient_SearchNotes は検索ビューのURL形式をテスト
func TestClient_SearchNotes(t *testing.T) {
	c := NewClient(WithDryRun(true))

	url, err := c.SearchNotes("  project plan  ", nil)
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	want := "upnote://x-callback-url/view?action=search&query=project%20plan"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

// TestClient_SearchNotes_Options は検索オプションの付加をテスト
func TestClient_SearchNotes_Options(t *testing.T) {
	c := NewClient(WithDryRun(true))

	url, err := c.SearchNotes("q", &SearchOptions{Mode: "notebooks", NotebookID: "nb1"})
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	want := "upnote://x-callback-url/view?action=search&mode=notebooks&notebookId=nb1&query=q"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

// TestClient_OpenNote はノートオープンURLをテスト
func TestClient_OpenNote(t *testing.T) {
	c := NewClient(WithDryRun(true))

	edit := true
	url, err := c.OpenNote("abc123", "", &edit)
	if err != nil {
		t.Fatalf("OpenNote: %v", err)
	}
	want := "upnote://x-callback-url/note/open?edit=true&id=abc123"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

// TestClient_Notebooks はノートブック操作のURLをテスト
func TestClient_Notebooks(t *testing.T) {
	c := NewClient(WithDryRun(true))

	url, err := c.CreateNotebook("Projects", "blue", "")
	if err != nil {
		t.Fatalf("CreateNotebook: %v", err)
	}
	if url != "upnote://x-callback-url/notebook/new?color=blue&title=Projects" {
		t.Errorf("unexpected url: %q", url)
	}

	url, err = c.OpenNotebook("Projects", "")
	if err != nil {
		t.Fatalf("OpenNotebook: %v", err)
	}
	if url != "upnote://x-callback-url/notebook/open?name=Projects" {
		t.Errorf("unexpected url: %q", url)
	}
}

// TestClient_OpenApp はアプリ起動URLをテスト
func TestClient_OpenApp(t *testing.T) {
	c := NewClient(WithDryRun(true))

	url, err := c.OpenApp()
	if err != nil {
		t.Fatalf("OpenApp: %v", err)
	}
	if url != "upnote://x-callback-url/open" {
		t.Errorf("unexpected url: %q", url)
	}
}

// TestClient_ImportExport はインポート/エクスポートURLをテスト
func TestClient_ImportExport(t *testing.T) {
	c := NewClient(WithDryRun(true))

	url, err := c.ImportNote("/tmp/note.md", "Inbox", "md")
	if err != nil {
		t.Fatalf("ImportNote: %v", err)
	}
	if url != "upnote://x-callback-url/import?file=%2Ftmp%2Fnote.md&format=md&notebook=Inbox" {
		t.Errorf("unexpected url: %q", url)
	}

	url, err = c.ExportNote("abc123", "", "md", "/tmp/out.md")
	if err != nil {
		t.Fatalf("ExportNote: %v", err)
	}
	if url != "upnote://x-callback-url/export?destination=%2Ftmp%2Fout.md&format=md&id=abc123" {
		t.Errorf("unexpected url: %q", url)
	}
}

// TestClient_WithBaseScheme はベーススキームの上書きをテスト
func TestClient_WithBaseScheme(t *testing.T) {
	c := NewClient(WithBaseScheme("testnote://x-callback-url"), WithDryRun(true))

	url, err := c.OpenApp()
	if err != nil {
		t.Fatalf("OpenApp: %v", err)
	}
	if url != "testnote://x-callback-url/open" {
		t.Errorf("unexpected url: %q", url)
	}
}
