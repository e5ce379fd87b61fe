package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-chartread/internal/chartinfo/config"
	"github.com/shiroemons/go-chartread/internal/chartinfo/models"
)

// Render は解析結果を指定された形式の文字列に変換します
func Render(report *models.Report, format string) (string, error) {
	switch format {
	case config.FormatText:
		return renderText(report), nil
	case config.FormatYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case config.FormatJSON:
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// renderText は人が読むためのテキストを生成します
func renderText(report *models.Report) string {
	var builder strings.Builder

	// ヘッダー情報
	fmt.Fprintf(&builder, "#譜面データ: %s (%s)\n", report.File, report.Encoding)
	builder.WriteString("#ノート数、特殊フレーズ数、BPM変更数、拍子変更数、イベント数、位置の範囲[tick]\n")

	for _, s := range report.Sections {
		c := s.Counts
		fmt.Fprintf(&builder, "[%s]\n", s.Name)
		fmt.Fprintf(&builder, "  %d,%d,%d,%d,%d", c.Notes, c.Specials, c.Tempos, c.TimeSignatures, c.Events)
		if c.Total() > 0 {
			fmt.Fprintf(&builder, ",%d-%d", s.FirstPosition, s.LastPosition)
		}
		builder.WriteString("\n")

		for _, m := range s.Metadata {
			fmt.Fprintf(&builder, "  %s: %s\n", m.Key, m.Value)
		}

		// イベント一覧（--full のみ）
		for _, e := range s.Notes {
			fmt.Fprintf(&builder, "  note %d fret=%d length=%d\n", e.Position, e.Fret, e.Length)
		}
		for _, e := range s.Specials {
			fmt.Fprintf(&builder, "  special %d key=%d length=%d\n", e.Position, e.Key, e.Length)
		}
		for _, e := range s.Tempos {
			fmt.Fprintf(&builder, "  tempo %d bpm=%d\n", e.Position, e.BPM)
		}
		for _, e := range s.TimeSignatures {
			fmt.Fprintf(&builder, "  timesig %d %d/%d\n", e.Position, e.Numerator, e.Denominator)
		}
		for _, e := range s.Events {
			fmt.Fprintf(&builder, "  event %d %s\n", e.Position, e.Data)
		}
	}

	return builder.String()
}
