package framing

import (
	"bytes"
	"strconv"
	"strings"
)

// DecodeNDJSON はバッファから1行分のメッセージを取り出す
// 完全な行がない場合は consumed=0 を返す（バッファは変更しない）
// 行末の '\n' と直前の '\r' はペイロードから除去される
func DecodeNDJSON(buf []byte) (payload []byte, consumed int) {
	nl := bytes.IndexByte(buf, '\n')
	if nl == -1 {
		return nil, 0
	}
	line := bytes.TrimSuffix(buf[:nl], []byte("\r"))
	return line, nl + 1
}

// DecodeLSP はバッファからLSP形式の1メッセージを取り出す
// ヘッダー終端が無い、Content-Lengthが欠落・非正、本文が揃っていない場合は
// consumed=0 を返す。不正ヘッダーは再同期を許すため「未完」として扱う
// （バッファ上限の管理は呼び出し側の責務）
func DecodeLSP(buf []byte) (payload []byte, consumed int) {
	sep := bytes.Index(buf, headerTerminator)
	if sep == -1 {
		return nil, 0
	}
	n := parseContentLength(buf[:sep])
	if n <= 0 {
		return nil, 0
	}
	start := sep + len(headerTerminator)
	if len(buf) < start+n {
		return nil, 0
	}
	return buf[start : start+n], start + n
}

// Decode はモードに応じたデコード規則でバッファから1メッセージを取り出す
// どちらの規則もバッファへの副作用を持たない。消費分の切り詰めは呼び出し側が行う
func Decode(mode Mode, buf []byte) (payload []byte, consumed int) {
	switch mode {
	case ModeNDJSON:
		return DecodeNDJSON(buf)
	case ModeLSP:
		return DecodeLSP(buf)
	default:
		return nil, 0
	}
}

// parseContentLength はヘッダーブロックからContent-Length値を取り出す
// キーは大文字小文字を区別しない。欠落・数値でない場合は0を返す
func parseContentLength(headers []byte) int {
	for _, line := range bytes.Split(headers, []byte("\r\n")) {
		k, v, ok := bytes.Cut(line, []byte(":"))
		if !ok {
			continue
		}
		if !strings.EqualFold(string(bytes.TrimSpace(k)), "content-length") {
			continue
		}
		n, err := strconv.Atoi(string(bytes.TrimSpace(v)))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
