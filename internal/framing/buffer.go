package framing

// MaxBufferSize はフレームバッファの上限（1MB）
const MaxBufferSize = 1024 * 1024

// Buffer はストリーム方向ごとのフレームバッファ
// 末尾への追記と先頭からの消費のみを許可する
// 完全なメッセージが取り出せるまで部分データを保持する
type Buffer struct {
	data []byte
}

// Append はバイト列を末尾に追加する
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// Bytes は未消費のバイト列を返す（呼び出し側は変更しないこと）
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len は未消費バイト数を返す
func (b *Buffer) Len() int {
	return len(b.data)
}

// Discard は先頭からnバイトを消費する
func (b *Buffer) Discard(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.data) {
		b.data = b.data[:0]
		return
	}
	b.data = append(b.data[:0], b.data[n:]...)
}

// Reset は全バイトを破棄する
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
