package parser

import "errors"

var (
	// ErrSectionNotFound は指定されたセクションが譜面に存在しない場合のエラー
	ErrSectionNotFound = errors.New("セクションが見つかりません")
)
