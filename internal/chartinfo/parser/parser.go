// Package parser は譜面の解析と概要の作成を行います
package parser

import (
	"fmt"
	"sort"

	"github.com/shiroemons/go-chartread/internal/chartinfo/models"
	"github.com/shiroemons/go-chartread/pkg/chart"
)

// ChartParser は譜面テキストを解析します
type ChartParser struct{}

// NewChartParser は新しいChartParserを作成します
func NewChartParser() *ChartParser {
	return &ChartParser{}
}

// Parse は譜面テキストを解析します
func (p *ChartParser) Parse(data string) (*chart.Chart, error) {
	return chart.Parse(data)
}

// Summarize は解析済みの譜面からセクションごとの概要を作成します。
// opts.Sections が指定された場合はその順序で出力します。
func (p *ChartParser) Summarize(c *chart.Chart, opts models.SummaryOptions) ([]models.SectionReport, error) {
	if len(opts.Sections) == 0 {
		reports := make([]models.SectionReport, 0, len(c.Sections))
		for i := range c.Sections {
			reports = append(reports, summarizeSection(&c.Sections[i], opts.Full))
		}
		return reports, nil
	}

	reports := make([]models.SectionReport, 0, len(opts.Sections))
	for _, name := range opts.Sections {
		section, ok := c.Section(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
		}
		reports = append(reports, summarizeSection(section, opts.Full))
	}
	return reports, nil
}

// summarizeSection は1セクション分の概要を作成します
func summarizeSection(s *chart.Section, full bool) models.SectionReport {
	report := models.SectionReport{
		Name: s.Name,
		Counts: models.EventCounts{
			Notes:          len(s.NoteEvents),
			Specials:       len(s.SpecialEvents),
			Tempos:         len(s.BPMEvents),
			TimeSignatures: len(s.TSEvents),
			Events:         len(s.Events),
		},
		Metadata: sortedMetadata(s.KeyValuePairs),
	}

	// 全イベントの位置の範囲
	span := positionSpan{}
	for _, e := range s.NoteEvents {
		span.add(e.Position)
	}
	for _, e := range s.SpecialEvents {
		span.add(e.Position)
	}
	for _, e := range s.BPMEvents {
		span.add(e.Position)
	}
	for _, e := range s.TSEvents {
		span.add(e.Position)
	}
	for _, e := range s.Events {
		span.add(e.Position)
	}
	report.FirstPosition, report.LastPosition = span.first, span.last

	if full {
		for _, e := range s.NoteEvents {
			report.Notes = append(report.Notes, models.Note{Position: e.Position, Fret: e.Fret, Length: e.Length})
		}
		for _, e := range s.SpecialEvents {
			report.Specials = append(report.Specials, models.Special{Position: e.Position, Key: e.Key, Length: e.Length})
		}
		for _, e := range s.BPMEvents {
			report.Tempos = append(report.Tempos, models.Tempo{Position: e.Position, BPM: e.BPM})
		}
		for _, e := range s.TSEvents {
			report.TimeSignatures = append(report.TimeSignatures, models.TimeSignature{Position: e.Position, Numerator: e.Numerator, Denominator: e.Denominator})
		}
		for _, e := range s.Events {
			report.Events = append(report.Events, models.Marker{Position: e.Position, Data: e.Data})
		}
	}

	return report
}

// positionSpan はイベント位置の最小値と最大値を記録します
type positionSpan struct {
	first, last int
	seen        bool
}

func (s *positionSpan) add(pos int) {
	if !s.seen {
		s.first, s.last, s.seen = pos, pos, true
		return
	}
	s.first = min(s.first, pos)
	s.last = max(s.last, pos)
}

// sortedMetadata はメタデータをキー順に並べます
func sortedMetadata(kv map[string]string) []models.MetadataEntry {
	if len(kv) == 0 {
		return nil
	}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]models.MetadataEntry, len(keys))
	for i, k := range keys {
		entries[i] = models.MetadataEntry{Key: k, Value: kv[k]}
	}
	return entries
}
