// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-chartread/internal/chartinfo/interfaces"
)

// EncodingAuto は文字コードを自動判定します
const EncodingAuto = "auto"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// LookupEncoding は文字コード名からエンコーディングを取得します。
// 名前はWHATWGのラベル（utf-8, utf-16le, shift_jis, windows-1252 など）です。
func LookupEncoding(name string) (encoding.Encoding, error) {
	if strings.EqualFold(name, "utf-16") {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// DecodeChart は譜面ファイルのバイト列をUTF-8文字列に変換し、使用した文字コード名も返します。
// BOMがある場合はBOMを優先します。
// auto の場合、BOMがなく不正なUTF-8であればShift-JISとして読み込みます。
func DecodeChart(data []byte, name string) (string, string, error) {
	if bomName := detectBOM(data); bomName != "" {
		text, err := decode(data, unicode.BOMOverride(transform.Nop))
		return text, bomName, err
	}

	if name == "" || strings.EqualFold(name, EncodingAuto) {
		if utf8.Valid(data) {
			return string(data), "utf-8", nil
		}
		text, err := decode(data, japanese.ShiftJIS.NewDecoder())
		return text, "shift_jis", err
	}

	enc, err := LookupEncoding(name)
	if err != nil {
		return "", "", err
	}
	text, err := decode(data, enc.NewDecoder())
	return text, strings.ToLower(name), err
}

// detectBOM はBOMから文字コード名を判定します
func detectBOM(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be"
	}
	return ""
}

func decode(data []byte, t transform.Transformer) (string, error) {
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return string(out), nil
}

// SaveToFile はファイルシステムにテキストを保存します。
// withBOM が true の場合はUTF-8 BOMを先頭に付けます。
func SaveToFile(fs interfaces.FileSystem, outputPath string, content string, withBOM bool) error {
	// 出力先ディレクトリを作成（存在しない場合）
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	var buf bytes.Buffer
	if withBOM {
		buf.Write(bomUTF8)
	}
	buf.WriteString(content)

	if err := fs.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}

// GenerateOutputFilename は入力ファイル名から出力ファイル名を生成します
func GenerateOutputFilename(inputPath, ext string) string {
	// ファイル名の部分だけを取得（拡張子なし）
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// XXX_info.ext 形式の名前を生成
	return fmt.Sprintf("%s_info.%s", baseName, ext)
}
