// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shiroemons/go-chartread/internal/chartinfo/config"
	apperrors "github.com/shiroemons/go-chartread/internal/chartinfo/errors"
	"github.com/shiroemons/go-chartread/internal/chartinfo/fileutil"
	"github.com/shiroemons/go-chartread/internal/chartinfo/interfaces"
	"github.com/shiroemons/go-chartread/internal/chartinfo/models"
	"github.com/shiroemons/go-chartread/internal/chartinfo/parser"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	parser interfaces.Parser
	fs     interfaces.FileSystem
	stdout io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Parser     interfaces.Parser
	Logger     interfaces.Logger
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	app := &App{
		config: cfg,
		logger: opts.Logger,
		parser: opts.Parser,
		fs:     opts.FileSystem,
		stdout: opts.Stdout,
	}

	// デフォルト値を設定
	if app.logger == nil {
		app.logger = config.NewDebugLogger(cfg.DebugMode)
	}
	if app.parser == nil {
		app.parser = parser.NewChartParser()
	}
	if app.fs == nil {
		app.fs = fileutil.NewOSFileSystem()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}

	return app
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	report, err := a.buildReport()
	if err != nil {
		return err
	}

	// 出力の生成
	output, err := Render(report, a.config.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	// 標準出力に表示
	fmt.Fprint(a.stdout, output)

	if a.config.DryRun {
		a.logger.Printf("ドライランのため保存をスキップしました\n")
		return nil
	}

	// ファイル名の生成と保存
	outputFilename := fileutil.GenerateOutputFilename(a.config.ChartPath, a.config.Extension())
	outputPath := filepath.Join(a.config.OutputDir, outputFilename)

	// テキスト形式のみBOMを付ける
	withBOM := a.config.Format == config.FormatText
	if err := fileutil.SaveToFile(a.fs, outputPath, output, withBOM); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}

	a.logger.Printf("データを %s に保存しました\n", outputPath)

	return nil
}

// buildReport は譜面ファイルを読み込み、解析結果を作成します
func (a *App) buildReport() (*models.Report, error) {
	path := a.config.ChartPath

	if !a.fs.FileExists(path) {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, apperrors.NewFileError("open", path, apperrors.ErrFileNotFound))
	}

	a.logger.Printf("譜面ファイル %s を読み込みます...\n", path)
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, apperrors.NewFileError("read", path, err))
	}

	// 文字コード変換
	text, encoding, err := fileutil.DecodeChart(data, a.config.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	a.logger.Printf("文字コード: %s (%d バイト)\n", encoding, len(data))

	// 譜面の解析
	c, err := a.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseChart, apperrors.NewParseError(filepath.Base(path), err))
	}
	a.logger.Printf("%d 個のセクションを読み込みました\n", len(c.Sections))

	sections, err := a.parser.Summarize(c, models.SummaryOptions{
		Sections: a.config.Sections,
		Full:     a.config.Full,
	})
	if err != nil {
		return nil, err
	}

	return &models.Report{
		File:     filepath.Base(path),
		Encoding: encoding,
		Sections: sections,
	}, nil
}
