// Package framing implements dual message framing (NDJSON / LSP) for mcp-upnote.
package framing

import "bytes"

// Mode はストリームのフレーミング方式
// 方向ごとに最初の判定成功後は固定され、再判定しない
type Mode int

const (
	// ModeUnknown は未判定（バイト不足、呼び出し側は追加バイトで再試行）
	ModeUnknown Mode = iota
	// ModeNDJSON は改行区切りJSON（1行=1メッセージ）
	ModeNDJSON
	// ModeLSP はContent-Lengthヘッダー方式（LSPスタイル）
	ModeLSP
)

// String はモード名を返す
func (m Mode) String() string {
	switch m {
	case ModeNDJSON:
		return "ndjson"
	case ModeLSP:
		return "lsp"
	default:
		return "unknown"
	}
}

// detectWindow はヘッダー終端を探索する先頭バイト数
const detectWindow = 128

var (
	headerToken      = []byte("Content-Length:")
	headerTerminator = []byte("\r\n\r\n")
)

// Detect は先頭バイト列からフレーミング方式を判定する
// 判定優先順位:
//  1. "Content-Length:" で始まる、または先頭128バイト内に "\r\n\r\n" がある → LSP
//  2. 最初の非空白バイトが '{' または '[' → NDJSON
//  3. どちらでもない → ModeUnknown
//
// 注意: NDJSONメッセージのJSON文字列値が最初の改行より前に "\r\n\r\n" を
// 含む場合はLSPと誤判定しうる（ヒューリスティックの既知の限界）
func Detect(b []byte) Mode {
	window := b
	if len(window) > detectWindow {
		window = window[:detectWindow]
	}
	if bytes.HasPrefix(b, headerToken) || bytes.Contains(window, headerTerminator) {
		return ModeLSP
	}
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return ModeNDJSON
	}
	return ModeUnknown
}
