package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brbranch/upnote_mcp/internal/framing"
)

// extraReadSize は1行目で判定できなかったときの追加読み取り上限
const extraReadSize = 8192

// rawPreviewSize は要約失敗時に残す生バイトの上限
const rawPreviewSize = 256

// Tripwire はクライアントが最初に送ってくるバイト列を観測して終了する
// MCPクライアントの設定ミス(フレーミング不一致など)の切り分けに使う
type Tripwire struct {
	session *Session
	stdin   io.Reader
}

// NewTripwire はTripwireを生成する
func NewTripwire(session *Session) *Tripwire {
	return &Tripwire{
		session: session,
		stdin:   os.Stdin,
	}
}

// Run は最初の入力を読み、要約または生バイトのプレビューをログに残す
// 1回の結果を出したら必ず終了する(サーバーとしては動かない)
func (t *Tripwire) Run() error {
	logger := t.session.Logger
	logger.Log(CatStartup, "tripwire starting", "session", t.session.ID, "log", t.session.LogPath)

	reader := bufio.NewReader(t.stdin)
	sniffer := NewSniffer(logger, CatInput)

	line, err := reader.ReadBytes('\n')
	if len(line) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Logf(CatError, "read failed: %v", err)
		} else {
			logger.Log(CatInput, "No bytes from client (EOF?)")
		}
		logger.Log(CatComplete, "tripwire finished")
		return nil
	}

	total := append([]byte(nil), line...)
	count := sniffer.Observe(line)

	// 1行で完結しないフレーミング(LSPヘッダーなど)のために一度だけ追加で読む
	if count == 0 {
		extra := make([]byte, extraReadSize)
		n, rerr := reader.Read(extra)
		if n > 0 {
			total = append(total, extra[:n]...)
			count = sniffer.Observe(extra[:n])
		}
		if count == 0 {
			if rerr != nil && errors.Is(rerr, io.EOF) && sniffer.Mode() != framing.ModeUnknown {
				logger.Log(CatError, "unexpected end of input")
			}
			logger.Log(CatInput, fmt.Sprintf("raw bytes (first %d): %q", rawPreviewSize, preview(total)))
		}
	}

	logger.Log(CatInput, "received", "bytes", len(total), "messages", count)
	logger.Log(CatComplete, "tripwire finished")
	return nil
}

// preview は先頭rawPreviewSizeバイトを返す
func preview(b []byte) []byte {
	if len(b) > rawPreviewSize {
		return b[:rawPreviewSize]
	}
	return b
}
