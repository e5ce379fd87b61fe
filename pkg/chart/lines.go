package chart

import "strings"

// 行間で読み飛ばす空白文字
const whitespace = " \f\n\r\t\v"

// skipWhitespace は先頭の空白文字を取り除きます
func skipWhitespace(s string) string {
	return strings.TrimLeft(s, whitespace)
}

// lineReader は入力を1行ずつ切り出します。元の文字列は変更しません。
type lineReader struct {
	src    string
	pos    int
	line   int // 直前に返した行の行番号
	nextNo int // pos にある行の行番号
}

func newLineReader(src string) *lineReader {
	r := &lineReader{src: src, nextNo: 1}
	r.skip()
	return r
}

// empty は未読の入力が残っていないかを返します
func (r *lineReader) empty() bool {
	return r.pos >= len(r.src)
}

// next は次の論理行を返します。
// 改行の直前の \r は改行の一部として扱い、行の後ろの空白は読み飛ばします。
func (r *lineReader) next() (string, error) {
	if r.empty() {
		return "", ErrUnexpectedEOF
	}

	rest := r.src[r.pos:]
	r.line = r.nextNo

	i := strings.IndexByte(rest, '\n')
	if i < 0 {
		r.pos = len(r.src)
		return rest, nil
	}

	line := strings.TrimSuffix(rest[:i], "\r")
	r.pos += i + 1
	r.nextNo++
	r.skip()
	return line, nil
}

func (r *lineReader) skip() {
	rest := r.src[r.pos:]
	trimmed := skipWhitespace(rest)
	skipped := rest[:len(rest)-len(trimmed)]
	r.nextNo += strings.Count(skipped, "\n")
	r.pos += len(skipped)
}

// fail は直前の行の位置情報を付けてエラーを返します
func (r *lineReader) fail(err error, text string) error {
	return &ParseError{Line: r.line, Text: text, Err: err}
}
