// Package chart はリズムゲームの譜面ファイル（.chart形式）のテキストを解析するためのパッケージです。
//
// 譜面は角括弧で囲まれたセクション名と、波括弧で囲まれた本体から構成されます:
//
//	[Song]
//	{
//	  Resolution = 192
//	}
//	[ExpertSingle]
//	{
//	  768 = N 0 0
//	  768 = S 2 192
//	}
//
// 基本的な使い方:
//
//	c, err := chart.Parse(text)
//	if err != nil {
//	    var perr *chart.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Line で失敗した行番号を取得できます
//	    }
//	    return err
//	}
//	for _, section := range c.Sections {
//	    // セクションを処理...
//	}
//
// ファイルの読み込みと文字コードの判定は呼び出し側の責務です。
package chart

// Chart は解析済みの譜面全体を表します
type Chart struct {
	Sections []Section
}

// Section は1つのセクションを表します
type Section struct {
	Name          string
	NoteEvents    []NoteEvent
	SpecialEvents []SpecialEvent
	BPMEvents     []BPMEvent
	TSEvents      []TimeSigEvent
	Events        []Event
	KeyValuePairs map[string]string
}

// NoteEvent はフレット付きのノートを表します
type NoteEvent struct {
	Position int
	Fret     int
	Length   int // 保持するtick数
}

// SpecialEvent はスターパワー等の特殊フレーズを表します
type SpecialEvent struct {
	Position int
	Key      int
	Length   int
}

// BPMEvent はテンポ変更を表します
type BPMEvent struct {
	Position int
	BPM      int
}

// TimeSigEvent は拍子変更を表します
type TimeSigEvent struct {
	Position    int
	Numerator   int
	Denominator int // 省略時は2
}

// Event は汎用のイベントマーカーを表します
type Event struct {
	Position int
	Data     string
}

// Parse は譜面テキスト全体を解析します。
// 最初に見つかった不正な構文でエラーを返し、部分的な結果は返しません。
func Parse(data string) (*Chart, error) {
	r := newLineReader(data)
	chart := &Chart{}

	for !r.empty() {
		section, err := readSection(r)
		if err != nil {
			return nil, err
		}
		chart.Sections = append(chart.Sections, section)
	}

	return chart, nil
}

// ParseBytes はバイト列の譜面を解析します
func ParseBytes(data []byte) (*Chart, error) {
	return Parse(string(data))
}

// Section は指定された名前の最初のセクションを返します
func (c *Chart) Section(name string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].Name == name {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// Value はメタデータの値を返します
func (s *Section) Value(key string) (string, bool) {
	v, ok := s.KeyValuePairs[key]
	return v, ok
}
