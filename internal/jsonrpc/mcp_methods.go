package jsonrpc

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/brbranch/upnote_mcp/internal/model"
)

// ServerVersion はサーバーのバージョン（ビルド時に設定可能）
var ServerVersion = "1.0.0"

// handleInitialize は initialize メソッドを処理
// クライアントのprotocolVersionが日付形式（"202"始まり）ならそれをエコーし、
// そうでなければ"1.0.0"を返す
func (h *Handler) handleInitialize(ctx context.Context, params any) (any, error) {
	var p model.InitializeParams
	if err := mapParams(params, &p); err != nil {
		return nil, err
	}

	protocolVersion := "1.0.0"
	if strings.HasPrefix(p.ProtocolVersion, "202") {
		protocolVersion = p.ProtocolVersion
	}

	h.logger.Info("initialize", "client", p.ClientInfo.Name, "protocolVersion", protocolVersion)

	return &model.InitializeResult{
		ProtocolVersion: protocolVersion,
		ServerInfo: model.ServerInfo{
			Name:    "mcp-upnote",
			Version: ServerVersion,
		},
		Capabilities: model.ServerCapabilities(),
	}, nil
}

// handleToolsList は tools/list メソッドを処理
func (h *Handler) handleToolsList(ctx context.Context, params any) (any, error) {
	return &model.ToolsListResult{
		Tools: mcpTools,
	}, nil
}

// handleToolsCall は tools/call メソッドを処理
// ツール実行の成否はJSON-RPCエラーではなくcontent内の
// {"success":...}ペイロードとisErrorで表現する
func (h *Handler) handleToolsCall(ctx context.Context, params any) (any, error) {
	var p model.ToolsCallParams
	if err := mapParams(params, &p); err != nil {
		return nil, err
	}

	if p.Name == "" {
		return toolError("tool name is required"), nil
	}

	h.logger.Info("tools/call", "tool", p.Name)

	result, err := h.callTool(ctx, p.Name, p.Arguments)
	if err != nil {
		return toolError(err.Error()), nil
	}

	payload, err := json.Marshal(map[string]any{
		"success": true,
		"url":     result.URL,
		"opened":  result.Opened,
	})
	if err != nil {
		return toolError(err.Error()), nil
	}

	return &model.ToolsCallResult{
		Content: []model.ContentItem{
			model.NewTextContent(string(payload)),
		},
	}, nil
}

// toolError はツール失敗のToolsCallResultを生成
func toolError(message string) *model.ToolsCallResult {
	payload, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   message,
	})
	return &model.ToolsCallResult{
		Content: []model.ContentItem{
			model.NewTextContent(string(payload)),
		},
		IsError: true,
	}
}
