package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Session は1回のデバッグ実行を表す
// ログファイルと双方向のタップファイル(生バイトの写し)をまとめて管理する
type Session struct {
	ID         string
	LogDir     string
	LogPath    string
	TapInPath  string
	TapOutPath string
	StartedAt  time.Time

	logFile *os.File
	Logger  *Logger
}

// NewSession はログディレクトリを作成しセッションを開始する
// ログは日付入りファイルとstderrの両方に出る
func NewSession(logDir string) (*Session, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	logPath := filepath.Join(logDir, fmt.Sprintf("mcp_debug_%s.log", now.Format("20060102")))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	s := &Session{
		ID:         uuid.New().String(),
		LogDir:     logDir,
		LogPath:    logPath,
		TapInPath:  filepath.Join(logDir, "proxy_client_to_server.bin"),
		TapOutPath: filepath.Join(logDir, "proxy_server_to_client.bin"),
		StartedAt:  now,
		logFile:    logFile,
		Logger:     NewLogger(io.MultiWriter(logFile, os.Stderr)),
	}
	return s, nil
}

// OpenTapIn はクライアント→サーバーのタップファイルを開く
func (s *Session) OpenTapIn() (*os.File, error) {
	return os.Create(s.TapInPath)
}

// OpenTapOut はサーバー→クライアントのタップファイルを開く
func (s *Session) OpenTapOut() (*os.File, error) {
	return os.Create(s.TapOutPath)
}

// Close はログファイルを閉じる
func (s *Session) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}
