package fileutil

import "errors"

var (
	// ErrUnknownEncoding は未対応の文字コードが指定された場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")

	// ErrDecode は文字コードの変換に失敗した場合のエラー
	ErrDecode = errors.New("文字コードの変換に失敗しました")

	// ErrEncode は出力用の文字コードへの変換に失敗した場合のエラー
	ErrEncode = errors.New("出力用の文字コードへの変換に失敗しました")

	// ErrUnsafePath は展開先がディレクトリ外を指すファイル名の場合のエラー
	ErrUnsafePath = errors.New("出力ディレクトリの外を指すファイル名です")

	// ErrFileExists は出力先にファイルが既に存在する場合のエラー
	ErrFileExists = errors.New("ファイルが既に存在します")

	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrGetCurrentDirectory はカレントディレクトリを取得できない場合のエラー
	ErrGetCurrentDirectory = errors.New("カレントディレクトリを取得できませんでした")

	// ErrReadDirectory はディレクトリ内のファイル一覧を取得できない場合のエラー
	ErrReadDirectory = errors.New("ディレクトリ内のファイル一覧を取得できませんでした")

	// ErrMultipleArchives は複数のアーカイブが見つかった場合のエラー
	ErrMultipleArchives = errors.New("複数の.txtarファイルが見つかりました。読み込むファイルを指定してください")
)
