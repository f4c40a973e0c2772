package framing

import (
	"fmt"
	"io"
	"sync"
)

// Encode はペイロードをモードに応じてフレーミングする
// NDJSON: ペイロード + "\n"
// LSP: "Content-Length: <n>\r\n\r\n" + ペイロード（末尾改行なし）
// ペイロードはコンパクトなJSONテキストを想定するが、内容には関与しない
func Encode(mode Mode, payload []byte) []byte {
	if mode == ModeLSP {
		header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(payload))
		frame := make([]byte, 0, len(header)+len(payload))
		frame = append(frame, header...)
		frame = append(frame, payload...)
		return frame
	}
	frame := make([]byte, 0, len(payload)+1)
	frame = append(frame, payload...)
	frame = append(frame, '\n')
	return frame
}

// Writer は検出済みモードでメッセージを書き出す
// 1メッセージ=1回のWrite（ヘッダーと本文を分割しない）とし、
// 並行書き込みでもフレームが混ざらないようmutexで直列化する
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	mode Mode
}

// NewWriter は新しいWriterを生成
func NewWriter(w io.Writer, mode Mode) *Writer {
	return &Writer{w: w, mode: mode}
}

// Mode は現在の書き込みフレーミング方式を返す
func (w *Writer) Mode() Mode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

// SetMode は書き込みフレーミング方式を設定する
// 受信側の判定結果を反映するために一度だけ呼ばれる想定
func (w *Writer) SetMode(mode Mode) {
	w.mu.Lock()
	w.mode = mode
	w.mu.Unlock()
}

// WriteMessage は1メッセージをフレーミングして書き込み、可能ならフラッシュする
func (w *Writer) WriteMessage(payload []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	frame := Encode(w.mode, payload)
	n, err := w.w.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	if f, ok := w.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
