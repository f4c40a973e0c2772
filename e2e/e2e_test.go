//go:build e2e

// Package e2e exercises the full stdio server stack in-process:
// framing detection, JSON-RPC dispatch, tool execution against a
// dry-run UpNote client.
package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/brbranch/upnote_mcp/internal/jsonrpc"
	"github.com/brbranch/upnote_mcp/internal/service"
	"github.com/brbranch/upnote_mcp/internal/transport/stdio"
	"github.com/brbranch/upnote_mcp/internal/upnote"
)

// session は起動済みのstdioサーバーへの接続
type session struct {
	in   io.WriteCloser
	out  *bufio.Reader
	done chan error
}

// startServer はdry-runクライアントでサーバーをin-process起動する
func startServer(t *testing.T) *session {
	t.Helper()

	client := upnote.NewClient(upnote.WithDryRun(true))
	noteService := service.NewNoteService(client)
	handler := jsonrpc.New(noteService)

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	server := stdio.New(handler, stdio.WithReader(inR), stdio.WithWriter(outW))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
		outW.Close()
	}()

	t.Cleanup(func() { inW.Close() })

	return &session{
		in:   inW,
		out:  bufio.NewReader(outR),
		done: done,
	}
}

// sendNDJSON はNDJSONフレーミングでリクエストを送り応答を読む
func (s *session) sendNDJSON(t *testing.T, request string) map[string]any {
	t.Helper()

	if _, err := io.WriteString(s.in, request+"\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	line, err := s.out.ReadString('\n')
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		t.Fatalf("invalid response %q: %v", line, err)
	}
	return resp
}

// sendLSP はLSPフレーミングでリクエストを送り応答を読む
func (s *session) sendLSP(t *testing.T, request string) map[string]any {
	t.Helper()

	frame := fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(request), request)
	if _, err := io.WriteString(s.in, frame); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// ヘッダー読み取り
	var contentLength int
	for {
		line, err := s.out.ReadString('\n')
		if err != nil {
			t.Fatalf("header read failed: %v", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if v, ok := strings.CutPrefix(line, "Content-Length: "); ok {
			contentLength, err = strconv.Atoi(v)
			if err != nil {
				t.Fatalf("invalid Content-Length %q: %v", v, err)
			}
		}
	}
	if contentLength <= 0 {
		t.Fatal("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(s.out, body); err != nil {
		t.Fatalf("body read failed: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid response %q: %v", body, err)
	}
	return resp
}

// toolPayload はtools/call応答からcontentのJSONペイロードを取り出す
func toolPayload(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result, got %v", resp)
	}
	content, ok := result["content"].([]any)
	if !ok || len(content) != 1 {
		t.Fatalf("expected 1 content item, got %v", result)
	}
	text := content[0].(map[string]any)["text"].(string)

	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("content text is not JSON: %v", err)
	}
	return payload
}

// TestE2E_NDJSONLifecycle はNDJSONでの一連のフロー（initialize→tools/list→tools/call→shutdown）をテスト
func TestE2E_NDJSONLifecycle(t *testing.T) {
	s := startServer(t)

	// initialize
	resp := s.sendNDJSON(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"e2e"}}}`)
	result := resp["result"].(map[string]any)
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}

	// notifications/initialized（応答なし）
	if _, err := io.WriteString(s.in, `{"jsonrpc":"2.0","method":"notifications/initialized"}`+"\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// tools/list
	resp = s.sendNDJSON(t, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	tools := resp["result"].(map[string]any)["tools"].([]any)
	if len(tools) != 13 {
		t.Errorf("expected 13 tools, got %d", len(tools))
	}

	// tools/call
	resp = s.sendNDJSON(t, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"create_note","arguments":{"title":"E2E","text":"hello world"}}}`)
	payload := toolPayload(t, resp)
	if payload["success"] != true {
		t.Fatalf("expected success, got %v", payload)
	}
	url, _ := payload["url"].(string)
	if !strings.HasPrefix(url, "upnote://x-callback-url/note/new?") {
		t.Errorf("unexpected url: %q", url)
	}
	if !strings.Contains(url, "text=hello%20world") {
		t.Errorf("space not encoded as %%20: %q", url)
	}
	if payload["opened"] != false {
		t.Errorf("dry-run should report opened=false, got %v", payload["opened"])
	}

	// shutdown
	resp = s.sendNDJSON(t, `{"jsonrpc":"2.0","id":4,"method":"shutdown"}`)
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Errorf("expected empty result, got %v", resp)
	}

	select {
	case err := <-s.done:
		if err != nil {
			t.Errorf("server exited with error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

// TestE2E_LSPLifecycle はLSPフレーミングでの一連のフローをテスト
func TestE2E_LSPLifecycle(t *testing.T) {
	s := startServer(t)

	resp := s.sendLSP(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","clientInfo":{"name":"e2e"}}}`)
	result := resp["result"].(map[string]any)
	if result["protocolVersion"] != "2025-06-18" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}

	resp = s.sendLSP(t, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"search_notes","arguments":{"query":"project notes"}}}`)
	payload := toolPayload(t, resp)
	if payload["success"] != true {
		t.Fatalf("expected success, got %v", payload)
	}
	url, _ := payload["url"].(string)
	if !strings.Contains(url, "view?action=search") {
		t.Errorf("unexpected search url: %q", url)
	}
	if !strings.Contains(url, "query=project%20notes") {
		t.Errorf("query not encoded: %q", url)
	}

	resp = s.sendLSP(t, `{"jsonrpc":"2.0","id":3,"method":"shutdown"}`)
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Errorf("expected empty result, got %v", resp)
	}

	select {
	case err := <-s.done:
		if err != nil {
			t.Errorf("server exited with error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

// TestE2E_ToolValidationError は検証エラーがisErrorペイロードで返ることをテスト
func TestE2E_ToolValidationError(t *testing.T) {
	s := startServer(t)

	resp := s.sendNDJSON(t, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_note","arguments":{"title":"no text"}}}`)
	if _, hasError := resp["error"]; hasError {
		t.Fatalf("tool failure must not be a JSON-RPC error: %v", resp)
	}

	result := resp["result"].(map[string]any)
	if result["isError"] != true {
		t.Fatalf("expected isError true, got %v", result)
	}
	payload := toolPayload(t, resp)
	if payload["success"] != false {
		t.Errorf("expected success false, got %v", payload)
	}
}
