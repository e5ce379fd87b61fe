package chart

import (
	"strconv"
	"strings"
)

// eventScanner は1行のイベントを先頭から読み進めます。
// 要素の前の空白（スペースとタブ）は読み飛ばします。
type eventScanner struct {
	s string
	i int
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (sc *eventScanner) skipBlanks() {
	for sc.i < len(sc.s) && isBlank(sc.s[sc.i]) {
		sc.i++
	}
}

// literal は lit が続いていれば読み進めます
func (sc *eventScanner) literal(lit string) bool {
	sc.skipBlanks()
	if !strings.HasPrefix(sc.s[sc.i:], lit) {
		return false
	}
	sc.i += len(lit)
	return true
}

// integer は符号付き10進数を読みます。32ビットに収まらない値は失敗します。
func (sc *eventScanner) integer() (int, bool) {
	sc.skipBlanks()
	start := sc.i
	j := start
	if j < len(sc.s) && (sc.s[j] == '+' || sc.s[j] == '-') {
		j++
	}
	digits := j
	for j < len(sc.s) && isDigit(sc.s[j]) {
		j++
	}
	if j == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(sc.s[start:j], 10, 32)
	if err != nil {
		return 0, false
	}
	sc.i = j
	return int(n), true
}

// optionalInteger は整数があれば読み、なければ位置を戻して def を返します
func (sc *eventScanner) optionalInteger(def int) int {
	saved := sc.i
	if n, ok := sc.integer(); ok {
		return n
	}
	sc.i = saved
	return def
}

// token は空白以外の文字の並びを読みます（空でもかまいません）
func (sc *eventScanner) token() string {
	sc.skipBlanks()
	start := sc.i
	for sc.i < len(sc.s) && !isBlank(sc.s[sc.i]) {
		sc.i++
	}
	return sc.s[start:sc.i]
}

// end は行末まで読み終えたかを返します
func (sc *eventScanner) end() bool {
	sc.skipBlanks()
	return sc.i == len(sc.s)
}

// header は `INT '=' marker` を読み、位置を返します
func (sc *eventScanner) header(marker string) (int, bool) {
	pos, ok := sc.integer()
	if !ok || !sc.literal("=") || !sc.literal(marker) {
		return 0, false
	}
	return pos, true
}

// parseNoteEvent は `INT = N INT INT` を解析します
func parseNoteEvent(line string) (NoteEvent, error) {
	sc := &eventScanner{s: line}
	pos, ok := sc.header("N")
	if !ok {
		return NoteEvent{}, ErrBadNoteEvent
	}
	fret, ok1 := sc.integer()
	length, ok2 := sc.integer()
	if !ok1 || !ok2 || !sc.end() {
		return NoteEvent{}, ErrBadNoteEvent
	}
	return NoteEvent{Position: pos, Fret: fret, Length: length}, nil
}

// parseSpecialEvent は `INT = S INT INT` を解析します
func parseSpecialEvent(line string) (SpecialEvent, error) {
	sc := &eventScanner{s: line}
	pos, ok := sc.header("S")
	if !ok {
		return SpecialEvent{}, ErrBadSpecialEvent
	}
	key, ok1 := sc.integer()
	length, ok2 := sc.integer()
	if !ok1 || !ok2 || !sc.end() {
		return SpecialEvent{}, ErrBadSpecialEvent
	}
	return SpecialEvent{Position: pos, Key: key, Length: length}, nil
}

// parseBPMEvent は `INT = B INT` を解析します
func parseBPMEvent(line string) (BPMEvent, error) {
	sc := &eventScanner{s: line}
	pos, ok := sc.header("B")
	if !ok {
		return BPMEvent{}, ErrBadBPMEvent
	}
	bpm, ok := sc.integer()
	if !ok || !sc.end() {
		return BPMEvent{}, ErrBadBPMEvent
	}
	return BPMEvent{Position: pos, BPM: bpm}, nil
}

// parseTimeSigEvent は `INT = TS INT [INT]` を解析します
func parseTimeSigEvent(line string) (TimeSigEvent, error) {
	sc := &eventScanner{s: line}
	pos, ok := sc.header("TS")
	if !ok {
		return TimeSigEvent{}, ErrBadTimeSigEvent
	}
	num, ok := sc.integer()
	if !ok {
		return TimeSigEvent{}, ErrBadTimeSigEvent
	}
	denom := sc.optionalInteger(2)
	if !sc.end() {
		return TimeSigEvent{}, ErrBadTimeSigEvent
	}
	return TimeSigEvent{Position: pos, Numerator: num, Denominator: denom}, nil
}

// parseEvent は `INT = E TOKEN` を解析します
func parseEvent(line string) (Event, error) {
	sc := &eventScanner{s: line}
	pos, ok := sc.header("E")
	if !ok {
		return Event{}, ErrBadEvent
	}
	data := sc.token()
	if !sc.end() {
		return Event{}, ErrBadEvent
	}
	return Event{Position: pos, Data: strings.Clone(data)}, nil
}
