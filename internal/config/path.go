package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName はXDGベースディレクトリ配下のアプリディレクトリ名
	AppDirName = "mcp-upnote"
	// DefaultConfigFile はデフォルトの設定ファイル名
	DefaultConfigFile = "config.json"
	// LogSubDir はログサブディレクトリ名
	LogSubDir = "logs"
)

// DefaultConfigPath はデフォルトの設定ファイルパスを返す
// $XDG_CONFIG_HOME/mcp-upnote/config.json
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, DefaultConfigFile)
}

// DefaultLogDir はデフォルトのログディレクトリを返す
// $XDG_STATE_HOME/mcp-upnote/logs
func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogSubDir)
}

// ExpandTilde は"~"をホームディレクトリに展開する
// "~/" で始まる場合のみ展開し、それ以外はそのまま返す
func ExpandTilde(path string) (string, error) {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}

	// それ以外（"~user" など）はそのまま返す
	return path, nil
}

// EnsureDir はディレクトリが存在することを確認し、なければ作成する
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
