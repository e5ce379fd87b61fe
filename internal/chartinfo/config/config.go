// Package config はchartinfoコマンドの設定管理を行います
package config

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/shiroemons/go-chartread/internal/chartinfo/fileutil"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	ChartPath string   `toml:"-"`
	OutputDir string   `toml:"output_dir"`
	Format    string   `toml:"format"`
	Encoding  string   `toml:"encoding"`
	Sections  []string `toml:"sections"`
	Full      bool     `toml:"full"`
	DebugMode bool     `toml:"debug"`
	DryRun    bool     `toml:"dry_run"`
}

// Default はデフォルト設定を返します
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Format:    FormatText,
		Encoding:  fileutil.EncodingAuto,
	}
}

// LoadFile はTOMLの設定ファイルを読み込み、cfg に上書きします
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, undecoded[0].String())
	}
	return nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if c.ChartPath == "" {
		return ErrNoChartPath
	}
	if !slices.Contains([]string{FormatText, FormatYAML, FormatJSON}, c.Format) {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, c.Format)
	}
	if c.Encoding != "" && c.Encoding != fileutil.EncodingAuto {
		if _, err := fileutil.LookupEncoding(c.Encoding); err != nil {
			return err
		}
	}
	return nil
}

// Extension は出力ファイルの拡張子を返します
func (c *Config) Extension() string {
	if c.Format == FormatText {
		return "txt"
	}
	return c.Format
}

// Flags はコマンドライン引数の値を保持します
type Flags struct {
	ConfigPath string
	values     Config
}

// BindFlags はフラグを登録します
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	d := Default()

	// 設定ファイル
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to TOML config file")

	// 出力
	fs.StringVarP(&f.values.OutputDir, "output", "o", d.OutputDir, "output directory for the generated files")
	fs.StringVarP(&f.values.Format, "format", "f", d.Format, "output format (text, yaml, json)")
	fs.StringSliceVarP(&f.values.Sections, "section", "s", nil, "only report the given sections (repeatable)")
	fs.BoolVar(&f.values.Full, "full", false, "include every event in the report")

	// 入力
	fs.StringVarP(&f.values.Encoding, "encoding", "e", d.Encoding, "chart text encoding (auto, utf-8, utf-16, shift_jis, windows-1252, ...)")

	// デバッグ・ドライラン
	fs.BoolVarP(&f.values.DebugMode, "debug", "d", false, "enable debug output")
	fs.BoolVarP(&f.values.DryRun, "dry-run", "n", false, "perform a dry run without writing output files")

	return f
}

// Resolve は設定ファイルとフラグから設定を組み立てます。
// 明示的に指定されたフラグは設定ファイルの値より優先します。
func (f *Flags) Resolve(fs *pflag.FlagSet, chartPath string) (*Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		if err := LoadFile(f.ConfigPath, cfg); err != nil {
			return nil, err
		}
	}

	if fs.Changed("output") {
		cfg.OutputDir = f.values.OutputDir
	}
	if fs.Changed("format") {
		cfg.Format = f.values.Format
	}
	if fs.Changed("section") {
		cfg.Sections = f.values.Sections
	}
	if fs.Changed("full") {
		cfg.Full = f.values.Full
	}
	if fs.Changed("encoding") {
		cfg.Encoding = f.values.Encoding
	}
	if fs.Changed("debug") {
		cfg.DebugMode = f.values.DebugMode
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = f.values.DryRun
	}

	cfg.ChartPath = chartPath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	w       io.Writer
}

// NewDebugLogger は標準出力に書き込むDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithWriter(enabled, os.Stdout)
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
