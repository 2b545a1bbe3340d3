package txtar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Add(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"通常のファイル", "a.txt", "x\n", nil},
		{"空のファイル名", "", "x\n", nil},
		{"内部の空白", "my file", "", nil},
		{"前後の空白", " a ", "", ErrInvalidName},
		{"タブ", "a\t", "", ErrInvalidName},
		{"改行を含む", "a\nb", "", ErrInvalidName},
		{"マーカー行を含む内容", "a", "x\n-- b --\ny\n", ErrMarkerInContent},
		{"マーカーに似た行", "a", "-- --\n-- b ---\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			err := b.Add(tt.file, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, b.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, b.Len())
		})
	}
}

func TestBuilder_SetComment(t *testing.T) {
	b := NewBuilder()
	assert.ErrorIs(t, b.SetComment("x\n-- a --\n"), ErrMarkerInContent)
	require.NoError(t, b.SetComment("note"))
	assert.Equal(t, "note\n", b.Build().Comment())
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("a", "1"))
	require.NoError(t, b.Add("a", ""))

	a := b.Build()
	assert.Equal(t, []File{{Name: "a", Content: "1\n"}, {Name: "a", Content: ""}}, a.Files())

	// Build 後の変更は既存のアーカイブに影響しない
	require.NoError(t, b.Add("b", "2"))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Build().Len())

	// 生成したアーカイブは再解析しても同じになる
	assert.True(t, a.Equal(Parse(a.String())))
}
