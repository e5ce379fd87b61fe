package app

import "errors"

var (
	// ErrReadFile は譜面ファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("譜面ファイルの読み込みに失敗しました")

	// ErrDecode は文字コード変換に失敗した場合のエラー
	ErrDecode = errors.New("譜面ファイルの文字コード変換に失敗しました")

	// ErrParseChart は譜面の解析に失敗した場合のエラー
	ErrParseChart = errors.New("譜面の解析に失敗しました")

	// ErrRender は出力の生成に失敗した場合のエラー
	ErrRender = errors.New("出力の生成に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrUnknownFormat は出力形式が不明な場合のエラー
	ErrUnknownFormat = errors.New("不明な出力形式です")
)
