// Package jsonrpc implements JSON-RPC 2.0 handlers for mcp-upnote.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/brbranch/upnote_mcp/internal/model"
	"github.com/brbranch/upnote_mcp/internal/service"
)

// Handler はJSON-RPCリクエストを処理する
type Handler struct {
	noteService service.NoteService
	logger      *log.Logger
}

// HandlerOption はHandlerのオプション
type HandlerOption func(*Handler)

// WithLogger はロガーを設定
func WithLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New は新しいHandlerを生成
// ログはstderrにのみ出力する（stdoutはプロトコル専用）
func New(noteService service.NoteService, opts ...HandlerOption) *Handler {
	h := &Handler{
		noteService: noteService,
		logger:      log.New(os.Stderr),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle はJSON-RPCリクエストをパースしてディスパッチ
// 戻り値は応答のJSON bytes（通知の場合はnil）と、shutdown要求かどうか
func (h *Handler) Handle(ctx context.Context, requestBytes []byte) ([]byte, bool) {
	// 1. パース
	var req model.Request
	if err := json.Unmarshal(requestBytes, &req); err != nil {
		return h.encodeError(model.NewParseError(err.Error())), false
	}

	// 2. 通知（id省略/null）は応答しない
	if req.IsNotification() {
		h.logger.Debug("notification received", "method", req.Method)
		return nil, false
	}

	// 3. バージョン確認
	if req.JSONRPC != "2.0" {
		return h.encodeError(model.NewInvalidRequest(req.ID, "jsonrpc must be 2.0")), false
	}

	// 4. method確認
	if req.Method == "" {
		return h.encodeError(model.NewInvalidRequest(req.ID, "method is required")), false
	}

	// 5. shutdownは空resultを返してからループを終了させる
	if req.Method == "shutdown" {
		h.logger.Info("shutdown requested")
		return h.encodeResponse(model.NewResponse(req.ID, map[string]any{})), true
	}

	// 6. ディスパッチ
	result, err := h.dispatch(ctx, req.ID, req.Method, req.Params)
	if err != nil {
		h.logger.Error("request failed", "method", req.Method, "err", err)
		return h.encodeError(h.mapError(req.ID, err)), false
	}

	// 7. 成功レスポンス
	return h.encodeResponse(model.NewResponse(req.ID, result)), false
}

// dispatch はメソッドに応じて適切なハンドラーを呼び出す
func (h *Handler) dispatch(ctx context.Context, id any, method string, params any) (any, error) {
	switch method {
	case "initialize":
		return h.handleInitialize(ctx, params)
	case "tools/list":
		return h.handleToolsList(ctx, params)
	case "tools/call":
		return h.handleToolsCall(ctx, params)
	case "ping":
		return map[string]any{}, nil
	default:
		return nil, &methodNotFoundError{method: method}
	}
}

// mapError はエラーをJSON-RPCエラーに変換
// ツールやオープナーのエラーはhandleToolsCall側でcontentに包まれるため、
// ここに来るのはプロトコルレベルの失敗のみ
func (h *Handler) mapError(id any, err error) *model.ErrorResponse {
	// method not found
	var mnfErr *methodNotFoundError
	if errors.As(err, &mnfErr) {
		return model.NewMethodNotFound(id, mnfErr.method)
	}

	// internal error
	return model.NewInternalError(id, err.Error())
}

func (h *Handler) encodeResponse(resp *model.Response) []byte {
	b, _ := json.Marshal(resp)
	return b
}

func (h *Handler) encodeError(resp *model.ErrorResponse) []byte {
	b, _ := json.Marshal(resp)
	return b
}

// methodNotFoundError はメソッド未検出エラー
type methodNotFoundError struct {
	method string
}

func (e *methodNotFoundError) Error() string {
	return "method not found: " + e.method
}
