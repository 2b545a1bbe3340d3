package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-txtar/internal/interfaces"
)

// ArchiveExt はアーカイブファイルの拡張子
const ArchiveExt = ".txtar"

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ReadDir はディレクトリを読み込みます（名前順）
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry
	}
	return result, nil
}

// Getwd は現在の作業ディレクトリを取得します
func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// ArchiveFinder はカレントディレクトリから.txtarファイルを検索します
type ArchiveFinder struct {
	fs interfaces.FileSystem
}

// NewArchiveFinder は新しいArchiveFinderを作成します
func NewArchiveFinder(fs interfaces.FileSystem) *ArchiveFinder {
	return &ArchiveFinder{fs: fs}
}

// Find はカレントディレクトリにある唯一の.txtarファイルのパスを返します。
// 見つからない場合は空文字列を返します。
func (f *ArchiveFinder) Find() (string, error) {
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
	}

	files, err := f.fs.ReadDir(currentDir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadDirectory, currentDir, err)
	}

	var found []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(file.Name()), ArchiveExt) {
			found = append(found, filepath.Join(currentDir, file.Name()))
		}
	}

	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, path := range found {
			names[i] = filepath.Base(path)
		}
		return "", fmt.Errorf("%w: %s", ErrMultipleArchives, strings.Join(names, ", "))
	}
}
