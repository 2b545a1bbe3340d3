// Package models はtxtarコマンドで使用するデータモデルを定義します
package models

// Entry はアーカイブ内のファイルの概要を表します
type Entry struct {
	Index    int    `json:"index" yaml:"index"`
	Name     string `json:"name" yaml:"name"`
	Size     int    `json:"size" yaml:"size"`                             // 内容のバイト数
	Lines    int    `json:"lines" yaml:"lines"`                           // 内容の行数
	Shadowed bool   `json:"shadowed,omitempty" yaml:"shadowed,omitempty"` // 同名の先行ファイルがある
}

// Listing はアーカイブの一覧情報を表します
type Listing struct {
	Source  string  `json:"source" yaml:"source"`
	Comment string  `json:"comment" yaml:"comment"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// ExtractResult は展開処理の結果を表します
type ExtractResult struct {
	Count    int      // 展開したファイル数
	NotFound []string // 指定されたがアーカイブになかったファイル名
	Skipped  []string // 同名の先行ファイルがあるため展開しなかったファイル名
}
