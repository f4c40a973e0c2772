package debug

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/brbranch/upnote_mcp/internal/framing"
)

// Sniffer は中継中のバイト列からメッセージ境界を検出し要約をログに出す
// 中継そのものには一切干渉しない(観測のみ)
type Sniffer struct {
	logger   *Logger
	category string
	buf      framing.Buffer
	mode     framing.Mode
}

// NewSniffer は指定カテゴリ(C→S / S→C)のSnifferを生成
func NewSniffer(logger *Logger, category string) *Sniffer {
	return &Sniffer{
		logger:   logger,
		category: category,
		mode:     framing.ModeUnknown,
	}
}

// Mode は検出済みのフレーミングモードを返す
func (s *Sniffer) Mode() framing.Mode {
	return s.mode
}

// Observe はバイト列を取り込み、完成したメッセージ数を返す
// バッファ上限を超えた場合は取りこぼし覚悟でリセットする(中継は継続する)
func (s *Sniffer) Observe(p []byte) int {
	s.buf.Append(p)

	if s.buf.Len() > framing.MaxBufferSize {
		s.logger.Logf(CatError, "%s sniff buffer exceeded %d bytes, resetting", s.category, framing.MaxBufferSize)
		s.buf.Reset()
		s.mode = framing.ModeUnknown
		return 0
	}

	if s.mode == framing.ModeUnknown {
		s.mode = framing.Detect(s.buf.Bytes())
		if s.mode == framing.ModeUnknown {
			return 0
		}
		s.logger.Logf(s.category, "framing detected: %s", s.mode)
	}

	count := 0
	for {
		payload, consumed := framing.Decode(s.mode, s.buf.Bytes())
		if consumed == 0 {
			return count
		}
		msg := append([]byte(nil), payload...)
		s.buf.Discard(consumed)
		if len(bytes.TrimSpace(msg)) == 0 {
			continue
		}
		s.logger.Log(s.category, summarize(msg))
		count++
	}
}

// summarize はJSON-RPCメッセージの1行要約を作る
func summarize(msg []byte) string {
	if !gjson.ValidBytes(msg) {
		return fmt.Sprintf("non-JSON message length=%d", len(msg))
	}
	parsed := gjson.ParseBytes(msg)
	if !parsed.IsObject() {
		return fmt.Sprintf("JSON (non-dict) length=%d", len(msg))
	}

	method := parsed.Get("method")
	id := parsed.Get("id")
	switch {
	case method.Exists() && id.Exists():
		return fmt.Sprintf("request method=%s id=%s length=%d", method.String(), id.Raw, len(msg))
	case method.Exists():
		return fmt.Sprintf("notification method=%s length=%d", method.String(), len(msg))
	case parsed.Get("error").Exists():
		return fmt.Sprintf("error response id=%s code=%s length=%d", id.Raw, parsed.Get("error.code").Raw, len(msg))
	case id.Exists():
		return fmt.Sprintf("response id=%s length=%d", id.Raw, len(msg))
	default:
		return fmt.Sprintf("JSON object length=%d", len(msg))
	}
}
