// Package stdio implements stdio transport for mcp-upnote.
package stdio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/brbranch/upnote_mcp/internal/framing"
)

// readChunkSize は1回のReadで要求する最大バイト数
const readChunkSize = 4096

// Handler はJSON-RPCリクエストを処理するインターフェース
// responseがnilの場合は通知（応答なし）。shutdownがtrueなら応答送信後にループを終了する
type Handler interface {
	Handle(ctx context.Context, requestBytes []byte) (response []byte, shutdown bool)
}

// Server はstdio JSON-RPCサーバー
// 受信フレーミング（NDJSON / LSP）は最初のバイト列から一度だけ判定し、
// 以後のメッセージと全応答に同じ方式を適用する
type Server struct {
	handler Handler
	reader  io.Reader
	writer  io.Writer
}

// Option はサーバーオプション
type Option func(*Server)

// WithReader はreaderを設定（テスト用）
func WithReader(r io.Reader) Option {
	return func(s *Server) {
		s.reader = r
	}
}

// WithWriter はwriterを設定（テスト用）
func WithWriter(w io.Writer) Option {
	return func(s *Server) {
		s.writer = w
	}
}

// New は新しいServerを生成
func New(handler Handler, opts ...Option) *Server {
	s := &Server{
		handler: handler,
		reader:  os.Stdin,
		writer:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run はサーバーを起動し、EOF・shutdown・contextキャンセルのいずれかまで実行
func (s *Server) Run(ctx context.Context) error {
	writer := framing.NewWriter(s.writer, framing.ModeUnknown)
	var buf framing.Buffer
	mode := framing.ModeUnknown

	// コンテキストキャンセルをチェックするチャネル
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(done)
	}()

	chunk := make([]byte, readChunkSize)
	for {
		// コンテキストキャンセルをチェック
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		n, readErr := s.reader.Read(chunk)
		if n > 0 {
			buf.Append(chunk[:n])
			if buf.Len() > framing.MaxBufferSize {
				return fmt.Errorf("message exceeds %d bytes: token too long", framing.MaxBufferSize)
			}

			// フレーミング方式は最初に判定できた時点で固定
			if mode == framing.ModeUnknown {
				mode = framing.Detect(buf.Bytes())
				if mode != framing.ModeUnknown {
					writer.SetMode(mode)
				}
			}

			stop, err := s.drain(ctx, &buf, mode, writer)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}

		if readErr != nil {
			if readErr == io.EOF {
				// EOF: 末尾改行のない最終行があれば処理してから正常終了
				if mode == framing.ModeNDJSON && buf.Len() > 0 {
					buf.Append([]byte("\n"))
					if _, err := s.drain(ctx, &buf, mode, writer); err != nil {
						return err
					}
				}
				return nil
			}
			return readErr
		}
	}
}

// drain はバッファ内の完全なメッセージをすべて処理する
// shutdown要求を受けた場合はstop=trueを返す
func (s *Server) drain(ctx context.Context, buf *framing.Buffer, mode framing.Mode, writer *framing.Writer) (stop bool, err error) {
	if mode == framing.ModeUnknown {
		return false, nil
	}

	for {
		payload, consumed := framing.Decode(mode, buf.Bytes())
		if consumed == 0 {
			return false, nil
		}
		// Discardはバッファを前詰めするため、先にコピーする
		msg := append([]byte(nil), payload...)
		buf.Discard(consumed)

		// 空メッセージ（空行など）はスキップ
		if len(bytes.TrimSpace(msg)) == 0 {
			continue
		}

		response, shutdown := s.handler.Handle(ctx, msg)
		if response != nil {
			if err := writer.WriteMessage(response); err != nil {
				return false, err
			}
		}
		if shutdown {
			return true, nil
		}
	}
}
