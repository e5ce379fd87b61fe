// Package interfaces はchartinfoコマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/shiroemons/go-chartread/internal/chartinfo/models"
	"github.com/shiroemons/go-chartread/pkg/chart"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// Parser は譜面を解析するインターフェース
type Parser interface {
	Parse(data string) (*chart.Chart, error)
	Summarize(c *chart.Chart, opts models.SummaryOptions) ([]models.SectionReport, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
