package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shiroemons/go-txtar/internal/errors"
	"github.com/shiroemons/go-txtar/internal/fileutil"
	"github.com/shiroemons/go-txtar/internal/mocks"
	"github.com/shiroemons/go-txtar/pkg/txtar"
)

func TestApp_Create(t *testing.T) {
	src := filepath.FromSlash("/src")
	fs := mocks.NewMockFileSystem()
	fs.Files[filepath.Join(src, "b.txt")] = []byte("b\n")
	fs.Files[filepath.Join(src, "a.txt")] = []byte("a")
	fs.Files[filepath.Join(src, "sub", "c.txt")] = []byte("c\n")
	fs.Files[filepath.FromSlash("/other/note.md")] = []byte("# note\n")

	app, _, _ := newTestApp(t, newTestConfig(), fs, "")

	data, err := app.Create(context.Background(), "created by test", []string{src, filepath.FromSlash("/other/note.md")})
	require.NoError(t, err)

	want := "created by test\n" +
		"-- a.txt --\na\n" +
		"-- b.txt --\nb\n" +
		"-- sub/c.txt --\nc\n" +
		"-- note.md --\n# note\n"
	assert.Equal(t, want, string(data))

	// 作成したアーカイブを解析すると同じファイルが得られる
	archive := txtar.ParseBytes(data)
	assert.Equal(t, 4, archive.Len())
	f, ok := archive.Get("sub/c.txt")
	require.True(t, ok)
	assert.Equal(t, "c\n", f.Content)
}

func TestApp_Create_RelativeFile(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files[filepath.FromSlash("dir/x.txt")] = []byte("x\n")

	app, _, _ := newTestApp(t, newTestConfig(), fs, "")
	data, err := app.Create(context.Background(), "", []string{filepath.FromSlash("./dir/x.txt")})
	require.NoError(t, err)
	assert.Equal(t, "-- dir/x.txt --\nx\n", string(data))
}

func TestApp_Create_Errors(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["/bad.txt"] = []byte("line\n-- marker --\n")
	app, _, _ := newTestApp(t, newTestConfig(), fs, "")

	_, err := app.Create(context.Background(), "", []string{"/bad.txt"})
	assert.ErrorIs(t, err, ErrAddFile)
	assert.ErrorIs(t, err, txtar.ErrMarkerInContent)

	_, err = app.Create(context.Background(), "-- c --", nil)
	assert.ErrorIs(t, err, txtar.ErrMarkerInContent)

	_, err = app.Create(context.Background(), "", []string{"/missing"})
	var archiveErr *apperrors.ArchiveError
	require.True(t, errors.As(err, &archiveErr))
	assert.Equal(t, "stat", archiveErr.Op)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = app.Create(ctx, "", []string{"/bad.txt"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Create_ShiftJIS(t *testing.T) {
	sjis, err := fileutil.EncodeText("東方\n", "shift_jis")
	require.NoError(t, err)

	fs := mocks.NewMockFileSystem()
	fs.Files["/th.txt"] = sjis

	cfg := newTestConfig()
	cfg.Encoding = "shift_jis"
	app, _, _ := newTestApp(t, cfg, fs, "")

	data, err := app.Create(context.Background(), "コメント", []string{"/th.txt"})
	require.NoError(t, err)

	text, err := fileutil.DecodeText(data, "shift_jis")
	require.NoError(t, err)
	assert.Equal(t, "コメント\n-- th.txt --\n東方\n", text)
}

func TestFileArchiveName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.txt", "a.txt"},
		{filepath.FromSlash("./dir/a.txt"), "dir/a.txt"},
		{filepath.FromSlash("../up/a.txt"), "a.txt"},
		{filepath.FromSlash("/abs/a.txt"), "a.txt"},
	}

	for _, tt := range tests {
		if got := fileArchiveName(tt.path); got != tt.want {
			t.Errorf("fileArchiveName(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}
