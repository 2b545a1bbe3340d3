package app

import "errors"

var (
	// ErrNoFilesFound はアーカイブ内にファイルがない場合のエラー
	ErrNoFilesFound = errors.New("アーカイブ内にファイルがありません")

	// ErrExtractFailed はファイルの展開に失敗した場合のエラー
	ErrExtractFailed = errors.New("ファイルの展開に失敗しました")

	// ErrAddFile はアーカイブへのファイル追加に失敗した場合のエラー
	ErrAddFile = errors.New("アーカイブへのファイル追加に失敗しました")

	// ErrUnsupportedFormat は未対応の出力フォーマットの場合のエラー
	ErrUnsupportedFormat = errors.New("未対応の出力フォーマットです")
)
