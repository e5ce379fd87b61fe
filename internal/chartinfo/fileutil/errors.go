package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrUnknownEncoding は文字コード名が不明な場合のエラー
	ErrUnknownEncoding = errors.New("不明な文字コードです")

	// ErrDecode は文字コード変換に失敗した場合のエラー
	ErrDecode = errors.New("文字コード変換エラー")
)
