package txtar

import "strings"

const (
	markerStart = "-- "
	markerEnd   = " --"
	markerLen   = len(markerStart) + len(markerEnd)
)

// Parse は txtar 形式のテキストを解析します。
// どのような入力でも失敗しません。
func Parse(s string) *Archive {
	a := &Archive{}

	// 現在のセグメント開始位置とファイル名
	segStart := 0
	inFile := false
	var name string

	closeSegment := func(end int) {
		content := fixNewline(s[segStart:end])
		if inFile {
			a.files = append(a.files, File{Name: name, Content: content})
		} else {
			a.comment = content
		}
	}

	for pos := 0; pos < len(s); {
		end := strings.IndexByte(s[pos:], '\n')
		next := len(s)
		if end < 0 {
			end = len(s)
		} else {
			end += pos
			next = end + 1
		}

		if n, ok := parseMarker(s[pos:end]); ok {
			closeSegment(pos)
			inFile = true
			name = n
			segStart = next
		}
		pos = next
	}
	closeSegment(len(s))

	return a
}

// ParseBytes はバイト列を txtar として解析します
func ParseBytes(b []byte) *Archive {
	return Parse(string(b))
}

// parseMarker は改行を含まない1行がマーカー行であればファイル名を返します
func parseMarker(line string) (string, bool) {
	if len(line) < markerLen {
		return "", false
	}
	if !strings.HasPrefix(line, markerStart) || !strings.HasSuffix(line, markerEnd) {
		return "", false
	}
	return strings.TrimSpace(line[len(markerStart) : len(line)-len(markerEnd)]), true
}

// fixNewline は空でなく改行で終わらない文字列に改行を補います
func fixNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
