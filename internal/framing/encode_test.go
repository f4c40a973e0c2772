package framing

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// TestEncode_NDJSON はNDJSONエンコードをテスト
func TestEncode_NDJSON(t *testing.T) {
	got := Encode(ModeNDJSON, []byte(`{"id":1}`))
	want := "{\"id\":1}\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

// TestEncode_LSP はLSPエンコードのバイト列をテスト
func TestEncode_LSP(t *testing.T) {
	got := Encode(ModeLSP, []byte(`{}`))
	want := "Content-Length: 2\r\n\r\n{}"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

// TestEncode_RoundTrip は両モードでエンコード→デコードの往復をテスト
func TestEncode_RoundTrip(t *testing.T) {
	payload := []byte(`{"jsonrpc":"2.0","id":1,"result":{}}`)

	for _, mode := range []Mode{ModeNDJSON, ModeLSP} {
		frame := Encode(mode, payload)
		decoded, consumed := Decode(mode, frame)
		if consumed != len(frame) {
			t.Errorf("%v: consumed = %d, want %d", mode, consumed, len(frame))
		}
		if !bytes.Equal(decoded, payload) {
			t.Errorf("%v: decoded = %q, want %q", mode, decoded, payload)
		}
	}
}

// TestWriter_WriteMessage は書き込みモードの反映をテスト
func TestWriter_WriteMessage(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, ModeNDJSON)

	if err := w.WriteMessage([]byte(`{"id":1}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if got := out.String(); got != "{\"id\":1}\n" {
		t.Errorf("output = %q", got)
	}

	out.Reset()
	w.SetMode(ModeLSP)
	if w.Mode() != ModeLSP {
		t.Errorf("Mode() = %v, want ModeLSP", w.Mode())
	}
	if err := w.WriteMessage([]byte(`{}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if got := out.String(); got != "Content-Length: 2\r\n\r\n{}" {
		t.Errorf("output = %q", got)
	}
}

// errorWriter は書き込みエラーをシミュレートするWriter
type errorWriter struct {
	err error
}

func (w *errorWriter) Write(p []byte) (n int, err error) {
	return 0, w.err
}

// TestWriter_WriteError は書き込みエラーの伝播をテスト
func TestWriter_WriteError(t *testing.T) {
	w := NewWriter(&errorWriter{err: io.ErrClosedPipe}, ModeNDJSON)
	if err := w.WriteMessage([]byte(`{}`)); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected ErrClosedPipe, got %v", err)
	}
}
