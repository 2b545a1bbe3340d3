// Package interfaces はtxtarコマンドで使用するインターフェースを定義します
package interfaces

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	Stat(name string) (FileInfo, error)
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// ArchiveFinder は読み込むアーカイブファイルを検索するインターフェースです
type ArchiveFinder interface {
	Find() (string, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
