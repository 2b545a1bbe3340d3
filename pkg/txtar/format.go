package txtar

import (
	"bytes"
	"io"
)

// Format はアーカイブを txtar 形式のテキストに変換します。
// コメントと各ファイルの内容は末尾の改行が補われます。
func (a *Archive) Format() []byte {
	var buf bytes.Buffer
	buf.WriteString(fixNewline(a.comment))
	for _, f := range a.files {
		buf.WriteString(markerStart)
		buf.WriteString(f.Name)
		buf.WriteString(markerEnd)
		buf.WriteByte('\n')
		buf.WriteString(fixNewline(f.Content))
	}
	return buf.Bytes()
}

// String は Format の結果を文字列で返します
func (a *Archive) String() string {
	return string(a.Format())
}

// WriteTo はアーカイブを txtar 形式で w に書き込みます
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Format())
	return int64(n), err
}
