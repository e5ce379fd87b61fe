// Package models はchartinfoコマンドで使用するデータモデルを定義します
package models

// Report は譜面ファイル1つ分の解析結果を表します
type Report struct {
	File     string          `json:"file" yaml:"file"`
	Encoding string          `json:"encoding" yaml:"encoding"` // 判定した文字コード
	Sections []SectionReport `json:"sections" yaml:"sections"`
}

// SectionReport はセクションの概要を表します
type SectionReport struct {
	Name          string          `json:"name" yaml:"name"`
	Counts        EventCounts     `json:"counts" yaml:"counts"`
	FirstPosition int             `json:"first_position" yaml:"first_position"` // イベントがない場合は0
	LastPosition  int             `json:"last_position" yaml:"last_position"`
	Metadata      []MetadataEntry `json:"metadata,omitempty" yaml:"metadata,omitempty"` // キー順

	// 以下は SummaryOptions.Full の場合のみ
	Notes          []Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Specials       []Special       `json:"specials,omitempty" yaml:"specials,omitempty"`
	Tempos         []Tempo         `json:"tempos,omitempty" yaml:"tempos,omitempty"`
	TimeSignatures []TimeSignature `json:"time_signatures,omitempty" yaml:"time_signatures,omitempty"`
	Events         []Marker        `json:"events,omitempty" yaml:"events,omitempty"`
}

// EventCounts は種別ごとのイベント数を表します
type EventCounts struct {
	Notes          int `json:"notes" yaml:"notes"`
	Specials       int `json:"specials" yaml:"specials"`
	Tempos         int `json:"tempos" yaml:"tempos"`
	TimeSignatures int `json:"time_signatures" yaml:"time_signatures"`
	Events         int `json:"events" yaml:"events"`
}

// Total は全イベント数を返します
func (c EventCounts) Total() int {
	return c.Notes + c.Specials + c.Tempos + c.TimeSignatures + c.Events
}

// MetadataEntry はメタデータの1項目を表します
type MetadataEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Note はノートを表します
type Note struct {
	Position int `json:"position" yaml:"position"`
	Fret     int `json:"fret" yaml:"fret"`
	Length   int `json:"length" yaml:"length"`
}

// Special は特殊フレーズを表します
type Special struct {
	Position int `json:"position" yaml:"position"`
	Key      int `json:"key" yaml:"key"`
	Length   int `json:"length" yaml:"length"`
}

// Tempo はテンポ変更を表します
type Tempo struct {
	Position int `json:"position" yaml:"position"`
	BPM      int `json:"bpm" yaml:"bpm"`
}

// TimeSignature は拍子変更を表します
type TimeSignature struct {
	Position    int `json:"position" yaml:"position"`
	Numerator   int `json:"numerator" yaml:"numerator"`
	Denominator int `json:"denominator" yaml:"denominator"`
}

// Marker は汎用イベントを表します
type Marker struct {
	Position int    `json:"position" yaml:"position"`
	Data     string `json:"data" yaml:"data"`
}

// SummaryOptions は概要の作成方法を指定します
type SummaryOptions struct {
	Sections []string // 空の場合は全セクション
	Full     bool     // イベント一覧を含める
}
