package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF は行が必要な位置で入力が終わった場合のエラー
	ErrUnexpectedEOF = errors.New("行が残っていません")

	// ErrEmptyHeader はセクション名の行が短すぎる場合のエラー
	ErrEmptyHeader = errors.New("セクションヘッダーが空です")

	// ErrMissingBraceOpen はセクションが { で始まらない場合のエラー
	ErrMissingBraceOpen = errors.New("セクションが { で始まっていません")

	// ErrIncompleteLine は行のトークンが足りない場合のエラー
	ErrIncompleteLine = errors.New("行が不完全です")

	// ErrBadNoteEvent はノートイベントの構文エラー
	ErrBadNoteEvent = errors.New("不正なノートイベントです")

	// ErrBadSpecialEvent は特殊イベントの構文エラー
	ErrBadSpecialEvent = errors.New("不正な特殊イベントです")

	// ErrBadBPMEvent はBPMイベントの構文エラー
	ErrBadBPMEvent = errors.New("不正なBPMイベントです")

	// ErrBadTimeSigEvent は拍子イベントの構文エラー
	ErrBadTimeSigEvent = errors.New("不正な拍子イベントです")

	// ErrBadEvent は汎用イベントの構文エラー
	ErrBadEvent = errors.New("不正なイベントです")
)

// ParseError は譜面の解析エラー
type ParseError struct {
	Line int    // 行番号（1始まり、不明な場合は0）
	Text string // 問題の行
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	if e.Text == "" {
		return fmt.Sprintf("%d行目: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%d行目: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap は元のエラーを返します
func (e *ParseError) Unwrap() error {
	return e.Err
}
