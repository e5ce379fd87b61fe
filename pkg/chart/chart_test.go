package chart

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "\r\n \t\n"} {
		c, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if len(c.Sections) != 0 {
			t.Errorf("Parse(%q): expected 0 sections, got %d", input, len(c.Sections))
		}
	}
}

func TestParse_EmptySection(t *testing.T) {
	c, err := Parse("[Song]\n{\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(c.Sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(c.Sections))
	}

	s := c.Sections[0]
	if s.Name != "Song" {
		t.Errorf("Expected name 'Song', got '%s'", s.Name)
	}
	if len(s.NoteEvents)+len(s.SpecialEvents)+len(s.BPMEvents)+len(s.TSEvents)+len(s.Events) != 0 {
		t.Errorf("Expected no events, got %+v", s)
	}
	if len(s.KeyValuePairs) != 0 {
		t.Errorf("Expected no metadata, got %v", s.KeyValuePairs)
	}
}

func TestParse_NoteOrder(t *testing.T) {
	c, err := Parse("[Song]\n{\n100=N 3 0\n200=N 4 192\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []NoteEvent{{100, 3, 0}, {200, 4, 192}}
	if !reflect.DeepEqual(c.Sections[0].NoteEvents, expected) {
		t.Errorf("Expected %+v, got %+v", expected, c.Sections[0].NoteEvents)
	}
}

func TestParse_FullChart(t *testing.T) {
	input := strings.Join([]string{
		"[Song]",
		"{",
		"  Name = \"Test Song\"",
		"  Resolution = 192",
		"  Offset = 0",
		"}",
		"[SyncTrack]",
		"{",
		"  0 = TS 4",
		"  0 = B 120000",
		"  768 = TS 3 3",
		"  1536 = B 140000",
		"}",
		"[Events]",
		"{",
		"  0 = E \"section_Intro\"",
		"  768 = E end",
		"}",
		"[ExpertSingle]",
		"{",
		"  0 = N 0 0",
		"  0 = S 2 768",
		"  192 = N 1 96",
		"  384 = N 5 0",
		"  384 = X 1 0",
		"}",
	}, "\r\n")

	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		names[i] = s.Name
	}
	if want := []string{"Song", "SyncTrack", "Events", "ExpertSingle"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("Expected sections %v, got %v", want, names)
	}

	song := c.Sections[0]
	if v, _ := song.Value("Name"); v != `"TestSong"` {
		t.Errorf("Expected Name '\"TestSong\"', got '%s'", v)
	}
	if v, _ := song.Value("Resolution"); v != "192" {
		t.Errorf("Expected Resolution '192', got '%s'", v)
	}

	sync := c.Sections[1]
	if want := []TimeSigEvent{{0, 4, 2}, {768, 3, 3}}; !reflect.DeepEqual(sync.TSEvents, want) {
		t.Errorf("Expected TS events %+v, got %+v", want, sync.TSEvents)
	}
	if want := []BPMEvent{{0, 120000}, {1536, 140000}}; !reflect.DeepEqual(sync.BPMEvents, want) {
		t.Errorf("Expected BPM events %+v, got %+v", want, sync.BPMEvents)
	}

	events := c.Sections[2]
	if want := []Event{{0, `"section_Intro"`}, {768, "end"}}; !reflect.DeepEqual(events.Events, want) {
		t.Errorf("Expected events %+v, got %+v", want, events.Events)
	}

	expert, ok := c.Section("ExpertSingle")
	if !ok {
		t.Fatal("Expected ExpertSingle section")
	}
	if want := []NoteEvent{{0, 0, 0}, {192, 1, 96}, {384, 5, 0}}; !reflect.DeepEqual(expert.NoteEvents, want) {
		t.Errorf("Expected notes %+v, got %+v", want, expert.NoteEvents)
	}
	if want := []SpecialEvent{{0, 2, 768}}; !reflect.DeepEqual(expert.SpecialEvents, want) {
		t.Errorf("Expected specials %+v, got %+v", want, expert.SpecialEvents)
	}
	if len(expert.KeyValuePairs) != 0 {
		t.Errorf("Expected no metadata, got %v", expert.KeyValuePairs)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		line     int
	}{
		{
			name:     "{ がない",
			input:    "[Song]\n}\n",
			expected: ErrMissingBraceOpen,
			line:     2,
		},
		{
			name:     "ヘッダーが短い",
			input:    "[\n{\n}\n",
			expected: ErrEmptyHeader,
			line:     1,
		},
		{
			name:     "} がない",
			input:    "[Song]\n{\nResolution = 192\n",
			expected: ErrUnexpectedEOF,
			line:     3,
		},
		{
			name:     "ヘッダーのみ",
			input:    "[Song]",
			expected: ErrUnexpectedEOF,
			line:     1,
		},
		{
			name:     "トークン不足",
			input:    "[Song]\n{\n100=N\n}\n",
			expected: ErrIncompleteLine,
			line:     3,
		},
		{
			name:     "不正なノート",
			input:    "[ExpertSingle]\n{\n0 = N 0 0\n192 = N 1\n}\n",
			expected: ErrBadNoteEvent,
			line:     4,
		},
		{
			name:     "不正な特殊イベント",
			input:    "[ExpertSingle]\n{\n192 = S a b\n}\n",
			expected: ErrBadSpecialEvent,
			line:     3,
		},
		{
			name:     "不正なBPM",
			input:    "[SyncTrack]\n{\n0 = B fast\n}\n",
			expected: ErrBadBPMEvent,
			line:     3,
		},
		{
			name:     "不正な拍子",
			input:    "[SyncTrack]\n{\n0 = TS four\n}\n",
			expected: ErrBadTimeSigEvent,
			line:     3,
		},
		{
			name:     "不正なイベント",
			input:    "[Events]\n{\n0 = E section intro\n}\n",
			expected: ErrBadEvent,
			line:     3,
		},
		{
			name:     "後続セクションのエラー",
			input:    "[Song]\n{\n}\n\n[Bad]\n\n0 = N 0 0\n",
			expected: ErrMissingBraceOpen,
			line:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Expected error but got none")
			}
			if c != nil {
				t.Errorf("Expected nil chart on error, got %+v", c)
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, perr.Line)
			}
		})
	}
}

func TestParse_HeaderStripsOuterCharacters(t *testing.T) {
	c, err := Parse("[[Nested]]\n{\n}\n[]\n{\n}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Sections[0].Name != "[Nested]" {
		t.Errorf("Expected '[Nested]', got '%s'", c.Sections[0].Name)
	}
	if c.Sections[1].Name != "" {
		t.Errorf("Expected empty name, got '%s'", c.Sections[1].Name)
	}
}

func TestParse_MetadataLastWriteWins(t *testing.T) {
	c, err := Parse("[Song]\n{\nResolution = 192\nResolution = 480\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := c.Sections[0].Value("Resolution"); v != "480" {
		t.Errorf("Expected '480', got '%s'", v)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected any
		wantErr  error
	}{
		{name: "メタデータ", line: "Resolution = 192", expected: keyValue{"Resolution", "192"}},
		{name: "メタデータの連結", line: `Name = "My Song"`, expected: keyValue{"Name", `"MySong"`}},
		{name: "=が詰まったメタデータはトークン不足", line: "Genre=rock metal", wantErr: ErrIncompleteLine},
		{name: "キーに=を含むメタデータ", line: "a=b = c", expected: keyValue{"a=b", "c"}},
		{name: "値に=が詰まったメタデータ", line: "Name =Foo Bar", expected: keyValue{"Name", "Bar"}},
		{name: "数値キーのノート", line: "100 = N 3 0", expected: NoteEvent{100, 3, 0}},
		{name: "=が詰まったノート", line: "100=N 3 0", expected: NoteEvent{100, 3, 0}},
		{name: "=が右に詰まったノート", line: "100 =N 3 0", expected: NoteEvent{100, 3, 0}},
		{name: "拍子（分母省略）", line: "100=TS 4", expected: TimeSigEvent{100, 4, 2}},
		{name: "拍子（分母あり）", line: "100=TS 4 3", expected: TimeSigEvent{100, 4, 3}},
		{name: "未知の種別", line: "100=X 5 5", expected: nil},
		{name: "未知の種別（スペース区切り）", line: "100 = A 5", expected: nil},
		{name: "+付きはキー扱い", line: "+100 = N 3 0", expected: keyValue{"+100", "N30"}},
		{name: "トークン不足", line: "100=N", wantErr: ErrIncompleteLine},
		{name: "トークン不足（メタデータ）", line: "Resolution 192", wantErr: ErrIncompleteLine},
		{name: "不正なノート", line: "100 = N", wantErr: ErrBadNoteEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifyLine(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyLine(%q) failed: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("classifyLine(%q) = %#v; want %#v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestParse_MetadataKeepsSpaceSplit(t *testing.T) {
	c, err := Parse("[S]\n{\nName = Foo Bar\na=b = c\nName2 =Foo Bar\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := map[string]string{"Name": "FooBar", "a=b": "c", "Name2": "Bar"}
	if !reflect.DeepEqual(c.Sections[0].KeyValuePairs, expected) {
		t.Errorf("Expected %v, got %v", expected, c.Sections[0].KeyValuePairs)
	}
}

func TestParseBytes(t *testing.T) {
	c, err := ParseBytes([]byte("[Song]\r\n{\r\n100 = B 120000\r\n}\r\n"))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if len(c.Sections) != 1 || c.Sections[0].Name != "Song" {
		t.Fatalf("Expected one section 'Song', got %+v", c.Sections)
	}
	if want := []BPMEvent{{100, 120000}}; !reflect.DeepEqual(c.Sections[0].BPMEvents, want) {
		t.Errorf("Expected %+v, got %+v", want, c.Sections[0].BPMEvents)
	}

	if _, err := ParseBytes([]byte("[Song]\n}\n")); !errors.Is(err, ErrMissingBraceOpen) {
		t.Errorf("Expected ErrMissingBraceOpen, got %v", err)
	}
}

func TestParse_Independent(t *testing.T) {
	input := "[Song]\n{\nResolution = 192\n}\n"
	a, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	a.Sections[0].KeyValuePairs["Resolution"] = "480"
	if v, _ := b.Sections[0].Value("Resolution"); v != "192" {
		t.Errorf("Expected independent results, got '%s'", v)
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: 3, Text: "100=N", Err: ErrIncompleteLine}
	if got := err.Error(); got != `3行目: 行が不完全です: "100=N"` {
		t.Errorf("Unexpected message: %s", got)
	}
	if !errors.Is(err, ErrIncompleteLine) {
		t.Error("Expected errors.Is to match ErrIncompleteLine")
	}
}
