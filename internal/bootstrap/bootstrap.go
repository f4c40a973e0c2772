// Package bootstrap provides common initialization logic for mcp-upnote.
package bootstrap

import (
	"fmt"

	"github.com/brbranch/upnote_mcp/internal/config"
	"github.com/brbranch/upnote_mcp/internal/model"
	"github.com/brbranch/upnote_mcp/internal/service"
	"github.com/brbranch/upnote_mcp/internal/upnote"
)

// Services は初期化されたサービス群を保持
type Services struct {
	NoteService service.NoteService
	Client      *upnote.Client
	Config      *model.Config
}

// Initialize は設定を読み込み、必要なサービスを初期化する
func Initialize(configPath string) (*Services, error) {
	configManager, err := config.NewManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	if err := configManager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := configManager.GetConfig()
	config.ApplyEnvOverrides(cfg)

	// 1. UpNoteクライアント初期化
	var opts []upnote.Option
	if cfg.UpNote.BaseScheme != "" {
		opts = append(opts, upnote.WithBaseScheme(cfg.UpNote.BaseScheme))
	}
	if cfg.UpNote.OpenCommand != "" {
		opts = append(opts, upnote.WithOpener(upnote.NewExecOpener(cfg.UpNote.OpenCommand)))
	}
	if cfg.UpNote.DryRun {
		opts = append(opts, upnote.WithDryRun(true))
	}
	client := upnote.NewClient(opts...)

	// 2. Service初期化
	noteService := service.NewNoteService(client)

	return &Services{
		NoteService: noteService,
		Client:      client,
		Config:      cfg,
	}, nil
}
