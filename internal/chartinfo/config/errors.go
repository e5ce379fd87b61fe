package config

import "errors"

var (
	// ErrLoadConfig は設定ファイルの読み込みに失敗した場合のエラー
	ErrLoadConfig = errors.New("設定ファイルの読み込みに失敗しました")

	// ErrUnknownConfigKey は設定ファイルに不明なキーがある場合のエラー
	ErrUnknownConfigKey = errors.New("設定ファイルに不明なキーがあります")

	// ErrNoChartPath は譜面ファイルが指定されていない場合のエラー
	ErrNoChartPath = errors.New("譜面ファイルが指定されていません")

	// ErrInvalidFormat は出力形式が不正な場合のエラー
	ErrInvalidFormat = errors.New("不正な出力形式です")
)
