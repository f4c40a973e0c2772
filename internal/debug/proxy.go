package debug

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// terminateGrace は子プロセスにSIGTERMを送ってから強制終了するまでの猶予
const terminateGrace = 5 * time.Second

// Proxy は実サーバーを子プロセスとして起動し、stdin/stdoutを透過中継する
// 中継した全バイトはタップファイルに、メッセージ要約はログに残る
type Proxy struct {
	session *Session
	command []string

	stdin  io.Reader
	stdout io.Writer
}

// NewProxy はサーバーコマンド(スペース区切り)でProxyを生成
func NewProxy(session *Session, command string) (*Proxy, error) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, fmt.Errorf("server command is empty")
	}
	return &Proxy{
		session: session,
		command: args,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}, nil
}

// Run は子プロセスの終了まで中継する
// ctxキャンセルでSIGTERM→猶予→Killの順に子を止める
func (p *Proxy) Run(ctx context.Context) error {
	logger := p.session.Logger
	logger.Log(CatStartup, "proxy starting", "session", p.session.ID, "server", strings.Join(p.command, " "))
	logger.Log(CatEnv, "environment", "pid", os.Getpid(), "log", p.session.LogPath)

	cmd := exec.Command(p.command[0], p.command[1:]...)
	serverIn, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open server stdin: %w", err)
	}
	// stdout/stderrはStdoutPipeではなく自前のパイプで受ける
	// Waitはパイプを閉じるため、排水前に子の最終出力が失われる
	outR, outW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to open server stdout: %w", err)
	}
	cmd.Stdout = outW
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return fmt.Errorf("failed to open server stderr: %w", err)
	}
	cmd.Stderr = errW

	if err := cmd.Start(); err != nil {
		outR.Close()
		outW.Close()
		errR.Close()
		errW.Close()
		return fmt.Errorf("failed to start server: %w", err)
	}
	// 親側の書き込み端を閉じる。子の終了で読み取り側が素のEOFになる
	outW.Close()
	errW.Close()
	logger.Log(CatStartup, "server started", "pid", cmd.Process.Pid)

	tapIn, err := p.session.OpenTapIn()
	if err != nil {
		logger.Logf(CatError, "failed to open client tap: %v", err)
	}
	tapOut, err := p.session.OpenTapOut()
	if err != nil {
		logger.Logf(CatError, "failed to open server tap: %v", err)
	}

	c2s := NewPump("client→server", p.stdin, serverIn, tapWriter(tapIn), NewSniffer(logger, CatC2S), logger)
	s2c := NewPump("server→client", outR, p.stdout, tapWriter(tapOut), NewSniffer(logger, CatS2C), logger)

	// 子の終了後に排水を待つgoroutine（server→clientポンプとstderrミラー）
	var drained sync.WaitGroup
	drained.Add(2)
	go func() {
		defer drained.Done()
		s2c.Run()
	}()
	go func() {
		defer drained.Done()
		p.mirrorStderr(errR)
	}()

	// クライアント側は子の終了後もstdinでブロックし得るため待ち合わせない
	go func() {
		c2s.Run()
		// クライアント切断をサーバーのEOFとして伝える
		serverIn.Close()
	}()

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	var runErr error
	select {
	case runErr = <-waitCh:
		logger.Log(CatComplete, "server exited", "err", runErr)
	case <-ctx.Done():
		logger.Log(CatShutdown, "interrupt received, terminating server")
		runErr = p.terminate(cmd, waitCh)
	}

	// パイプに残った最終出力を書き切ってからタップを閉じる
	drained.Wait()
	outR.Close()
	errR.Close()
	closeTap(tapIn)
	closeTap(tapOut)
	return runErr
}

// terminate はSIGTERM→猶予待ち→Killで子プロセスを止める
func (p *Proxy) terminate(cmd *exec.Cmd, waitCh <-chan error) error {
	logger := p.session.Logger
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		logger.Logf(CatError, "failed to signal server: %v", err)
	}
	select {
	case err := <-waitCh:
		logger.Log(CatComplete, "server exited after signal", "err", err)
		return err
	case <-time.After(terminateGrace):
		logger.Log(CatShutdown, "server did not exit, killing")
		if err := cmd.Process.Kill(); err != nil {
			logger.Logf(CatError, "failed to kill server: %v", err)
		}
		return <-waitCh
	}
}

// mirrorStderr は子プロセスのstderrを1行ずつログに写す
func (p *Proxy) mirrorStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.session.Logger.Log(CatStderr, scanner.Text())
	}
}

// tapWriter はnil *os.Fileをnil io.Writerに落とす
func tapWriter(f *os.File) io.Writer {
	if f == nil {
		return nil
	}
	return f
}

func closeTap(f *os.File) {
	if f != nil {
		f.Close()
	}
}
