// Package debug implements the MCP debug wrapper (proxy + tripwire) for mcp-upnote.
package debug

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ログカテゴリ
const (
	CatStartup  = "STARTUP"
	CatEnv      = "ENV"
	CatInput    = "INPUT"
	CatError    = "ERROR"
	CatStderr   = "STDERR"
	CatShutdown = "SHUTDOWN"
	CatComplete = "COMPLETE"
	CatC2S      = "C→S"
	CatS2C      = "S→C"
)

// Logger はデバッグラッパーのロガー
// ログファイルとstderrの両方に書き、起動からの経過秒を付加する
// stdoutはプロトコル中継専用のため決して書かない
type Logger struct {
	l     *log.Logger
	start time.Time
}

// NewLogger はwに書き込むLoggerを生成
// 通常はログファイルとos.Stderrのio.MultiWriterを渡す
func NewLogger(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
	})
	return &Logger{
		l:     l,
		start: time.Now(),
	}
}

// Log はカテゴリ付きで1行ログを出力する
func (lg *Logger) Log(category, msg string, keyvals ...any) {
	elapsed := fmt.Sprintf("%8.3fs", time.Since(lg.start).Seconds())
	kv := append([]any{"elapsed", elapsed, "cat", category}, keyvals...)
	lg.l.Info(msg, kv...)
}

// Logf はフォーマット済みメッセージでLogを呼ぶ
func (lg *Logger) Logf(category, format string, args ...any) {
	lg.Log(category, fmt.Sprintf(format, args...))
}
