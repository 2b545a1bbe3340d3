package txtar

import "errors"

var (
	// ErrInvalidName はファイル名として使えない文字列が指定された場合のエラー
	ErrInvalidName = errors.New("txtar: 無効なファイル名です")

	// ErrMarkerInContent はファイル内容にマーカー行が含まれている場合のエラー
	ErrMarkerInContent = errors.New("txtar: ファイル内容にマーカー行が含まれています")
)
