package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/brbranch/upnote_mcp/internal/model"
)

// Manager は設定の読み書きを管理する
type Manager struct {
	mu         sync.RWMutex
	config     *model.Config
	configPath string
}

// NewManager は新しいManagerを作成する
// configPathが空文字の場合、デフォルトパス($XDG_CONFIG_HOME/mcp-upnote/config.json)を使用
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	} else {
		expanded, err := ExpandTilde(configPath)
		if err != nil {
			return nil, err
		}
		configPath = expanded
	}

	config := DefaultConfig(configPath)

	return &Manager{
		config:     config,
		configPath: configPath,
	}, nil
}

// Load は設定ファイルを読み込む
// ファイルが存在しない場合はデフォルト設定を使用（エラーなし）
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// ファイルが存在しない場合はデフォルト設定を使う
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var config model.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// ファイルに無いフィールドはデフォルトを維持する
	if config.UpNote.BaseScheme == "" {
		config.UpNote.BaseScheme = model.DefaultBaseScheme
	}
	if config.TransportDefaults.DefaultTransport == "" {
		config.TransportDefaults.DefaultTransport = model.TransportStdio
	}
	if config.Paths.ConfigPath == "" {
		config.Paths.ConfigPath = m.configPath
	}
	if config.Paths.LogDir == "" {
		config.Paths.LogDir = DefaultLogDir()
	}

	m.config = &config
	return nil
}

// Save は設定ファイルを保存する
func (m *Manager) Save() error {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	configDir := filepath.Dir(m.configPath)
	if err := EnsureDir(configDir); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 一時ファイルに書き込み（atomicな保存のため）
	tmpFile := m.configPath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}

	if err := os.Rename(tmpFile, m.configPath); err != nil {
		os.Remove(tmpFile) // クリーンアップ
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	return nil
}

// GetConfig は現在の設定を返す（ロード済みの場合）
func (m *Manager) GetConfig() *model.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetConfigPath は設定ファイルパスを返す
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// NewManagerWithConfig は指定した設定でManagerを作成する（テスト用）
func NewManagerWithConfig(cfg *model.Config) *Manager {
	return &Manager{
		config:     cfg,
		configPath: "", // テスト用なので空
	}
}

// DefaultConfig はデフォルト設定を返す
func DefaultConfig(configPath string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Paths = model.PathsConfig{
		ConfigPath: configPath,
		LogDir:     DefaultLogDir(),
	}
	return cfg
}
