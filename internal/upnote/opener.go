package upnote

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// エラー定義
var (
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
	ErrOpenFailed          = errors.New("failed to open URL")
)

// Opener はURLをOSに開かせるインターフェース
type Opener interface {
	Open(url string) error
}

// ExecOpener はOS標準コマンドでURLを開くOpener
// commandが指定されている場合はそのコマンドを使う（スペース区切り、末尾にURLを付加）
type ExecOpener struct {
	command string
}

// NewExecOpener は新しいExecOpenerを生成
func NewExecOpener(command string) *ExecOpener {
	return &ExecOpener{command: command}
}

// Open はURLを開く
func (o *ExecOpener) Open(url string) error {
	name, args, err := o.commandFor(url)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return nil
}

// commandFor はプラットフォームに応じたコマンドを返す
func (o *ExecOpener) commandFor(url string) (string, []string, error) {
	if o.command != "" {
		parts := strings.Fields(o.command)
		return parts[0], append(parts[1:], url), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}, nil
	case "linux":
		return "xdg-open", []string{url}, nil
	case "windows":
		// startはシェル組み込みのためcmd経由。空文字はウィンドウタイトル
		return "cmd", []string{"/c", "start", "", url}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}
