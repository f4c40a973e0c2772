package config

import (
	"os"
	"strconv"

	"github.com/brbranch/upnote_mcp/internal/model"
)

// 環境変数名の定数
const (
	EnvDryRun        = "UPNOTE_MCP_DRY_RUN"
	EnvLogDir        = "UPNOTE_MCP_LOG_DIR"
	EnvOpenCommand   = "UPNOTE_MCP_OPEN_COMMAND"
	EnvWrapperMode   = "MCP_WRAPPER_MODE"
	EnvWrapperServer = "MCP_WRAPPER_SERVER"
)

// ApplyEnvOverrides は環境変数による設定上書きを適用する
// config を直接変更する
func ApplyEnvOverrides(config *model.Config) {
	if raw := os.Getenv(EnvDryRun); raw != "" {
		if dryRun, err := strconv.ParseBool(raw); err == nil {
			config.UpNote.DryRun = dryRun
		}
	}
	if logDir := os.Getenv(EnvLogDir); logDir != "" {
		config.Paths.LogDir = logDir
		config.Debug.LogDir = logDir
	}
	if cmd := os.Getenv(EnvOpenCommand); cmd != "" {
		config.UpNote.OpenCommand = cmd
	}
}

// WrapperMode はデバッグラッパーの動作モードを環境変数から取得する
// "proxy" | "tripwire"、未設定なら空文字
func WrapperMode() string {
	return os.Getenv(EnvWrapperMode)
}

// WrapperServer はラップ対象サーバーの起動コマンドを環境変数から取得する
func WrapperServer() string {
	return os.Getenv(EnvWrapperServer)
}
