package mocks

import (
	"github.com/shiroemons/go-chartread/internal/chartinfo/models"
	"github.com/shiroemons/go-chartread/pkg/chart"
)

// MockParser はテスト用のParserモック
type MockParser struct {
	ParseFunc     func(data string) (*chart.Chart, error)
	SummarizeFunc func(c *chart.Chart, opts models.SummaryOptions) ([]models.SectionReport, error)
	ParseCalls    int
}

// Parse はモックの解析処理を実行します
func (m *MockParser) Parse(data string) (*chart.Chart, error) {
	m.ParseCalls++
	if m.ParseFunc != nil {
		return m.ParseFunc(data)
	}
	return &chart.Chart{}, nil
}

// Summarize はモックの概要作成処理を実行します
func (m *MockParser) Summarize(c *chart.Chart, opts models.SummaryOptions) ([]models.SectionReport, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(c, opts)
	}
	return nil, nil
}
