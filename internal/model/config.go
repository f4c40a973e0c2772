package model

// Config はサーバー全体の設定を表す
type Config struct {
	TransportDefaults TransportDefaults `json:"transportDefaults"`
	UpNote            UpNoteConfig      `json:"upnote"`
	Debug             DebugConfig       `json:"debug"`
	HTTP              HTTPConfig        `json:"http"`
	Paths             PathsConfig       `json:"paths"`
}

// TransportDefaults はtransportのデフォルト設定
type TransportDefaults struct {
	DefaultTransport string `json:"defaultTransport"` // "stdio" | "http"
}

// UpNoteConfig はUpNoteクライアント設定
type UpNoteConfig struct {
	BaseScheme  string `json:"baseScheme"`            // 既定 "upnote://x-callback-url"
	OpenCommand string `json:"openCommand,omitempty"` // 空ならOS標準コマンド
	DryRun      bool   `json:"dryRun"`                // trueならURLを開かず返すのみ
}

// DebugConfig はデバッグラッパー設定
type DebugConfig struct {
	LogDir        string `json:"logDir,omitempty"`        // 空ならStateHome配下
	ServerCommand string `json:"serverCommand,omitempty"` // ラップ対象の起動コマンド
}

// HTTPConfig はHTTPトランスポート設定
type HTTPConfig struct {
	CORSOrigins []string `json:"corsOrigins,omitempty"` // 空なら全拒否
}

// PathsConfig はファイルパス設定
type PathsConfig struct {
	ConfigPath string `json:"configPath"` // 設定ファイルパス
	LogDir     string `json:"logDir"`     // ログディレクトリ
}

// Transport定数
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// DefaultBaseScheme はUpNoteのx-callback-urlベーススキーム
const DefaultBaseScheme = "upnote://x-callback-url"

// DefaultConfig は既定値の設定を生成
func DefaultConfig() *Config {
	return &Config{
		TransportDefaults: TransportDefaults{DefaultTransport: TransportStdio},
		UpNote: UpNoteConfig{
			BaseScheme: DefaultBaseScheme,
		},
	}
}
