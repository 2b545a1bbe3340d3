package txtar

import (
	"fmt"
	"slices"
	"strings"
)

// Builder はアーカイブを組み立てるための可変なビルダーです。
// Build で生成した Archive は以後の Builder の変更の影響を受けません。
type Builder struct {
	comment string
	files   []File
}

// NewBuilder は新しいBuilderを作成します
func NewBuilder() *Builder {
	return &Builder{}
}

// SetComment はコメントを設定します。
// コメントにマーカー行が含まれる場合は ErrMarkerInContent を返します。
func (b *Builder) SetComment(comment string) error {
	if line, ok := findMarker(comment); ok {
		return fmt.Errorf("%w: コメント: %q", ErrMarkerInContent, line)
	}
	b.comment = comment
	return nil
}

// Add はファイルを末尾に追加します。
// 同じ名前のファイルを複数追加することもできます。
func (b *Builder) Add(name, content string) error {
	if strings.ContainsAny(name, "\r\n") || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if line, ok := findMarker(content); ok {
		return fmt.Errorf("%w: %s: %q", ErrMarkerInContent, name, line)
	}
	b.files = append(b.files, File{Name: name, Content: content})
	return nil
}

// Len は追加済みのファイル数を返します
func (b *Builder) Len() int {
	return len(b.files)
}

// Build は現在の内容からアーカイブを生成します
func (b *Builder) Build() *Archive {
	files := slices.Clone(b.files)
	for i := range files {
		files[i].Content = fixNewline(files[i].Content)
	}
	return &Archive{comment: fixNewline(b.comment), files: files}
}

// findMarker は s に含まれる最初のマーカー行を返します
func findMarker(s string) (string, bool) {
	for line := range strings.Lines(s) {
		line = strings.TrimSuffix(line, "\n")
		if _, ok := parseMarker(line); ok {
			return line, true
		}
	}
	return "", false
}
