// Package upnote implements the UpNote x-callback-url client for mcp-upnote.
package upnote

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultBaseScheme はUpNoteのx-callback-urlベーススキーム
const DefaultBaseScheme = "upnote://x-callback-url"

// Client はUpNoteのURLスキームクライアント
// URLを組み立ててOSのオープナーに渡す。dryRunの場合は開かずURLのみ返す
type Client struct {
	baseScheme string
	opener     Opener
	dryRun     bool
}

// Option はクライアントオプション
type Option func(*Client)

// WithBaseScheme はベーススキームを設定
func WithBaseScheme(scheme string) Option {
	return func(c *Client) {
		if scheme != "" {
			c.baseScheme = scheme
		}
	}
}

// WithOpener はURLオープナーを設定（テスト用）
func WithOpener(o Opener) Option {
	return func(c *Client) {
		c.opener = o
	}
}

// WithDryRun はdry-runモードを設定
func WithDryRun(dryRun bool) Option {
	return func(c *Client) {
		c.dryRun = dryRun
	}
}

// NewClient は新しいClientを生成
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseScheme: DefaultBaseScheme,
		opener:     NewExecOpener(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DryRun はdry-runモードかを返す
func (c *Client) DryRun() bool {
	return c.dryRun
}

// BuildURL はアクションとパラメータから完全なURLを組み立てる
// nil・空値のパラメータは除外し、キーはソート順で出力する
// スペースは "+" ではなく "%20" にエンコードする（UpNote側の解釈に合わせる）
func (c *Client) BuildURL(action string, params map[string]any) string {
	u := c.baseScheme + "/" + action
	query := encodeQuery(params)
	if query != "" {
		u += "?" + query
	}
	return u
}

// encodeQuery はパラメータをクエリ文字列にエンコードする
func encodeQuery(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if _, ok := formatValue(params[k]); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := formatValue(params[k])
		pairs = append(pairs, escape(k)+"="+escape(v))
	}
	return strings.Join(pairs, "&")
}

// formatValue は値を文字列化する。除外すべき値の場合はfalseを返す
func formatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		if val == "" {
			return "", false
		}
		return val, true
	case []string:
		if len(val) == 0 {
			return "", false
		}
		return strings.Join(val, ","), true
	case bool:
		return strconv.FormatBool(val), true
	case *bool:
		if val == nil {
			return "", false
		}
		return strconv.FormatBool(*val), true
	case int:
		return strconv.Itoa(val), true
	default:
		return fmt.Sprint(val), true
	}
}

// escape はクエリ成分をパーセントエンコードする（スペースは%20）
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Open は組み立て済みURLをオープナーで開く。dryRunの場合は何もしない
func (c *Client) Open(u string) error {
	if c.dryRun {
		return nil
	}
	return c.opener.Open(u)
}

// open はURLを開く。dryRunの場合は開かずURLのみ返す
func (c *Client) open(u string) (string, error) {
	if c.dryRun {
		return u, nil
	}
	if err := c.opener.Open(u); err != nil {
		return "", err
	}
	return u, nil
}

// Note はノート作成パラメータ
// ゼロ値のフィールドはURLに含めない
type Note struct {
	Text     string
	Title    string
	Notebook string
	Folder   string
	Tags     []string
	Category string

	Markdown *bool
	Pinned   *bool
	Favorite *bool
	Starred  *bool
	Color    string
	Priority string

	Reminder     string
	DueDate      string
	CreatedDate  string
	ModifiedDate string

	Location    string
	Attachment  string
	Attachments []string

	Template string
	Author   string
	Source   string
}

// CreateNote は新規ノートを作成する
func (c *Client) CreateNote(note *Note) (string, error) {
	params := map[string]any{
		"text":          note.Text,
		"title":         note.Title,
		"notebook":      note.Notebook,
		"folder":        note.Folder,
		"tags":          note.Tags,
		"category":      note.Category,
		"markdown":      note.Markdown,
		"pinned":        note.Pinned,
		"favorite":      note.Favorite,
		"starred":       note.Starred,
		"color":         note.Color,
		"priority":      note.Priority,
		"reminder":      note.Reminder,
		"due_date":      note.DueDate,
		"created_date":  note.CreatedDate,
		"modified_date": note.ModifiedDate,
		"location":      note.Location,
		"attachment":    note.Attachment,
		"attachments":   note.Attachments,
		"template":      note.Template,
		"author":        note.Author,
		"source":        note.Source,
	}
	return c.open(c.BuildURL("note/new", params))
}

// OpenNote は既存ノートを開く
func (c *Client) OpenNote(noteID, title string, edit *bool) (string, error) {
	params := map[string]any{
		"id":    noteID,
		"title": title,
		"edit":  edit,
	}
	return c.open(c.BuildURL("note/open", params))
}

// SearchOptions は検索ビューのオプション
type SearchOptions struct {
	Mode       string
	NotebookID string
	TagID      string
	FilterID   string
	SpaceID    string
}

// SearchNotes はUpNoteの検索ビューを開く
// エンドポイント: view?action=search&query=...
func (c *Client) SearchNotes(query string, opts *SearchOptions) (string, error) {
	params := map[string]any{
		"action": "search",
		"query":  strings.TrimSpace(query),
	}
	if opts != nil {
		params["mode"] = opts.Mode
		params["notebookId"] = opts.NotebookID
		params["tagId"] = opts.TagID
		params["filterId"] = opts.FilterID
		params["spaceId"] = opts.SpaceID
	}
	return c.open(c.BuildURL("view", params))
}

// CreateNotebook は新規ノートブックを作成する
func (c *Client) CreateNotebook(title, color, parent string) (string, error) {
	params := map[string]any{
		"title":  title,
		"color":  color,
		"parent": parent,
	}
	return c.open(c.BuildURL("notebook/new", params))
}

// OpenNotebook はノートブックを開く
func (c *Client) OpenNotebook(name, notebookID string) (string, error) {
	params := map[string]any{
		"name": name,
		"id":   notebookID,
	}
	return c.open(c.BuildURL("notebook/open", params))
}

// OpenApp はUpNoteアプリを開く
func (c *Client) OpenApp() (string, error) {
	return c.open(c.BuildURL("open", nil))
}

// ImportNote はファイルからノートをインポートする
func (c *Client) ImportNote(path, notebook, format string) (string, error) {
	params := map[string]any{
		"file":     path,
		"notebook": notebook,
		"format":   format,
	}
	return c.open(c.BuildURL("import", params))
}

// ExportNote はノートをエクスポートする
func (c *Client) ExportNote(noteID, title, format, destination string) (string, error) {
	params := map[string]any{
		"id":          noteID,
		"title":       title,
		"format":      format,
		"destination": destination,
	}
	return c.open(c.BuildURL("export", params))
}
