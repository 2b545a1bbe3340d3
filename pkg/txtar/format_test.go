package txtar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_Format(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetComment("comment1\ncomment2\n"))
	require.NoError(t, b.Add("file1", "File 1 text.\n-- foo ---\nMore file 1 text.\n"))
	require.NoError(t, b.Add("file 2", "File 2 text.\n"))
	require.NoError(t, b.Add("empty", ""))
	require.NoError(t, b.Add("noNL", "hello world"))

	want := "comment1\ncomment2\n" +
		"-- file1 --\nFile 1 text.\n-- foo ---\nMore file 1 text.\n" +
		"-- file 2 --\nFile 2 text.\n" +
		"-- empty --\n" +
		"-- noNL --\nhello world\n"

	a := b.Build()
	assert.Equal(t, want, string(a.Format()))
	assert.Equal(t, want, a.String())
}

func TestArchive_WriteTo(t *testing.T) {
	a := Parse("c\n-- a --\nx")
	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "c\n-- a --\nx\n", buf.String())
}

func TestArchive_Format_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"only comment",
		"hello\n-- a.txt --\nworld\n",
		"-- a --\n-- b --\nX\n",
		"--  --\nY",
		"-- a --\n1\n-- a --\n2\n",
		"-- x -- --\n-- --\n",
	}

	for _, input := range inputs {
		a := Parse(input)
		again := Parse(a.String())
		assert.True(t, a.Equal(again), "入力 %q の再解析結果が一致しません", input)
	}
}
