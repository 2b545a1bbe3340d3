// Package config はtxtarコマンドの設定管理を行います
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const Version = "0.1.0"

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "TXTAR"

// 出力フォーマット
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrInvalidFormat は未対応の出力フォーマットが指定された場合のエラー
	ErrInvalidFormat = errors.New("未対応の出力フォーマットです")

	// ErrInvalidWorkers はワーカー数が不正な場合のエラー
	ErrInvalidWorkers = errors.New("ワーカー数は1以上を指定してください")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	Encoding  string
	OutputDir string
	Format    string
	DebugMode bool
	Parallel  bool
	Workers   int
	Overwrite bool
}

// RegisterFlags は全コマンド共通のフラグを登録します
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("encoding", "e", "utf-8", "character encoding of archive text (e.g. shift_jis, euc-jp)")
	fs.StringP("output", "o", ".", "output directory for extracted files")
	fs.StringP("format", "f", FormatText, "output format for list (text, json, yaml)")
	fs.BoolP("debug", "d", false, "enable debug output")
}

// RegisterExtractFlags は extract コマンド用のフラグを登録します
func RegisterExtractFlags(fs *pflag.FlagSet) {
	fs.BoolP("parallel", "p", false, "use parallel extraction")
	fs.IntP("workers", "w", 4, "number of worker goroutines for parallel extraction")
	fs.Bool("overwrite", false, "overwrite existing files")
}

// NewViper は環境変数（TXTAR_*）を読み込むviperを作成します
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("encoding", "utf-8")
	v.SetDefault("output", ".")
	v.SetDefault("format", FormatText)
	v.SetDefault("workers", 4)
	return v
}

// Load はフラグと環境変数から設定を組み立てます。
// 優先順位はフラグ、環境変数、デフォルト値の順です。
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("フラグの設定に失敗しました: %w", err)
		}
	}

	cfg := &Config{
		Encoding:  v.GetString("encoding"),
		OutputDir: v.GetString("output"),
		Format:    strings.ToLower(v.GetString("format")),
		DebugMode: v.GetBool("debug"),
		Parallel:  v.GetBool("parallel"),
		Workers:   v.GetInt("workers"),
		Overwrite: v.GetBool("overwrite"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, c.Format)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	w       io.Writer
}

// NewDebugLogger は標準エラー出力に書き込むDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithWriter(enabled, os.Stderr)
}

// NewDebugLoggerWithWriter は出力先を指定してDebugLoggerを作成します
func NewDebugLoggerWithWriter(enabled bool, w io.Writer) *DebugLogger {
	return &DebugLogger{enabled: enabled, w: w}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprintf(d.w, format, a...)
	}
}
