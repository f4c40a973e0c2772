package debug

import (
	"errors"
	"io"
)

// flusher はバッファ付きライターの明示フラッシュ用
type flusher interface {
	Flush() error
}

// Pump はsrcからdstへバイトを中継する
// 1バイトずつ読み、受けた分を即座に書いてフラッシュする
// レイテンシより可視性を優先する診断用の実装
// tapには中継した生バイトの写しを書く(nilなら書かない)
type Pump struct {
	name    string
	src     io.Reader
	dst     io.Writer
	tap     io.Writer
	sniffer *Sniffer
	logger  *Logger
}

// NewPump はPumpを生成する
func NewPump(name string, src io.Reader, dst io.Writer, tap io.Writer, sniffer *Sniffer, logger *Logger) *Pump {
	return &Pump{
		name:    name,
		src:     src,
		dst:     dst,
		tap:     tap,
		sniffer: sniffer,
		logger:  logger,
	}
}

// Run はEOFか書き込みエラーまで中継を続ける
// 読み取りエラーはログに残して終了、Sniffer内のpanicは中継を止めない
func (p *Pump) Run() {
	buf := make([]byte, 1)
	total := 0
	for {
		n, err := p.src.Read(buf)
		if n > 0 {
			total += n
			if werr := p.forward(buf[:n]); werr != nil {
				p.logger.Logf(CatError, "%s write failed after %d bytes: %v", p.name, total, werr)
				return
			}
			p.observe(buf[:n])
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Logf(CatError, "%s read failed after %d bytes: %v", p.name, total, err)
			}
			p.logger.Logf(CatShutdown, "%s closed after %d bytes", p.name, total)
			return
		}
	}
}

// forward はdstとtapに書き、dstを即フラッシュする
func (p *Pump) forward(b []byte) error {
	if _, err := p.dst.Write(b); err != nil {
		return err
	}
	if f, ok := p.dst.(flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	if p.tap != nil {
		// タップへの書き込み失敗は中継を止めない
		if _, err := p.tap.Write(b); err != nil {
			p.logger.Logf(CatError, "%s tap write failed: %v", p.name, err)
			p.tap = nil
		}
	}
	return nil
}

// observe はSnifferに観測させる
// 要約処理の不具合で中継を道連れにしないためpanicを握りつぶす
func (p *Pump) observe(b []byte) {
	if p.sniffer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Logf(CatError, "%s sniffer panic: %v", p.name, r)
			p.sniffer = nil
		}
	}()
	p.sniffer.Observe(b)
}
