package chart

import (
	"strconv"
	"strings"
)

// keyValue はメタデータの1行を表します
type keyValue struct {
	key   string
	value string
}

// readSection は先頭のセクションを1つ読み込みます
func readSection(r *lineReader) (Section, error) {
	header, err := r.next()
	if err != nil {
		return Section{}, r.fail(err, "")
	}
	if len(header) < 2 {
		return Section{}, r.fail(ErrEmptyHeader, header)
	}

	section := Section{
		Name:          strings.Clone(header[1 : len(header)-1]),
		KeyValuePairs: make(map[string]string),
	}

	open, err := r.next()
	if err != nil {
		return Section{}, r.fail(err, "")
	}
	if open != "{" {
		return Section{}, r.fail(ErrMissingBraceOpen, open)
	}

	for {
		line, err := r.next()
		if err != nil {
			return Section{}, r.fail(err, "")
		}
		if line == "}" {
			break
		}

		value, err := classifyLine(line)
		if err != nil {
			return Section{}, r.fail(err, line)
		}

		switch v := value.(type) {
		case NoteEvent:
			section.NoteEvents = append(section.NoteEvents, v)
		case SpecialEvent:
			section.SpecialEvents = append(section.SpecialEvents, v)
		case BPMEvent:
			section.BPMEvents = append(section.BPMEvents, v)
		case TimeSigEvent:
			section.TSEvents = append(section.TSEvents, v)
		case Event:
			section.Events = append(section.Events, v)
		case keyValue:
			section.KeyValuePairs[v.key] = v.value
		}
	}

	return section, nil
}

// classifyLine はセクション本体の1行を解析します。
// 戻り値はイベントの値か keyValue で、未知の種別の場合は nil を返します。
func classifyLine(line string) (any, error) {
	tokens, valueAt := splitLine(line)
	if len(tokens) < 3 {
		return nil, ErrIncompleteLine
	}

	if !isPlainInt(tokens[0]) {
		return keyValue{
			key:   strings.Clone(tokens[0]),
			value: strings.Clone(strings.Join(tokens[valueAt:], "")),
		}, nil
	}

	switch tokens[valueAt] {
	case "N":
		return parseNoteEvent(line)
	case "S":
		return parseSpecialEvent(line)
	case "B":
		return parseBPMEvent(line)
	case "TS":
		return parseTimeSigEvent(line)
	case "E":
		return parseEvent(line)
	}

	// 未知の種別は記録しない
	return nil, nil
}

// splitLine は行をスペースで分割し、区切りの = の次のトークン位置を返します。
// `100=N 3 0` や `100 =N 3 0` のように数値キーの = が隣のトークンと繋がっている場合は、
// = を取り除いて分割します。メタデータ行はスペース区切りのまま扱います。
func splitLine(line string) ([]string, int) {
	raw := strings.Split(line, " ")

	if i := strings.IndexByte(raw[0], '='); i > 0 && isPlainInt(raw[0][:i]) {
		tokens := make([]string, 0, len(raw)+1)
		tokens = append(tokens, raw[0][:i])
		if rest := raw[0][i+1:]; rest != "" {
			tokens = append(tokens, rest)
		}
		return append(tokens, raw[1:]...), 1
	}

	if len(raw) > 1 && len(raw[1]) > 1 && raw[1][0] == '=' && isPlainInt(raw[0]) {
		tokens := make([]string, 0, len(raw))
		tokens = append(tokens, raw[0], raw[1][1:])
		return append(tokens, raw[2:]...), 1
	}

	return raw, 2
}

// isPlainInt は s が前後に余分な文字のない32ビット整数かを返します
func isPlainInt(s string) bool {
	if s == "" || s[0] == '+' {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}
