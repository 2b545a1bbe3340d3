package txtar

import (
	"fmt"
	"iter"
	"slices"
)

// File はアーカイブ内の1つのファイルを表します
type File struct {
	Name    string // マーカー行のファイル名（前後の空白は除去済み）
	Content string // ファイルの内容（空でなければ必ず改行で終わる）
}

// Archive は解析済みの txtar アーカイブです。
// 生成後は変更されないため、複数のgoroutineから同時に読み取れます。
type Archive struct {
	comment string
	files   []File
}

// IndexError は範囲外のインデックスでファイルを参照した場合のパニック値です
type IndexError struct {
	Index int
	Len   int
}

// Error はエラーメッセージを返します
func (e *IndexError) Error() string {
	return fmt.Sprintf("txtar: インデックス %d は範囲外です (ファイル数 %d)", e.Index, e.Len)
}

// Comment は最初のマーカー行より前のコメントを返します。
// コメントがない場合は空文字列を返します。
func (a *Archive) Comment() string {
	return a.comment
}

// Len はファイル数を返します
func (a *Archive) Len() int {
	return len(a.files)
}

// At は i 番目のファイルを返します。
// i が範囲外の場合は *IndexError でパニックします。
func (a *Archive) At(i int) File {
	if i < 0 || i >= len(a.files) {
		panic(&IndexError{Index: i, Len: len(a.files)})
	}
	return a.files[i]
}

// Get は name に一致する最初のファイルを返します。
// 大文字小文字は区別されます。見つからない場合は false を返します。
func (a *Archive) Get(name string) (File, bool) {
	for _, f := range a.files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Files はファイル一覧のコピーを返します
func (a *Archive) Files() []File {
	return slices.Clone(a.files)
}

// All はアーカイブ内のファイルを出現順に列挙します
func (a *Archive) All() iter.Seq2[int, File] {
	return func(yield func(int, File) bool) {
		for i, f := range a.files {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Names はファイル名を出現順に列挙します（重複もそのまま含みます）
func (a *Archive) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range a.files {
			if !yield(f.Name) {
				return
			}
		}
	}
}

// Equal は2つのアーカイブのコメントとファイル列が一致するか判定します
func (a *Archive) Equal(b *Archive) bool {
	return a.comment == b.comment && slices.Equal(a.files, b.files)
}
