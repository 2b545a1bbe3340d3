// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/shiroemons/go-txtar/internal/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック。
// 並列展開のテストで使うため、操作はミューテックスで保護されています。
type MockFileSystem struct {
	mu         sync.Mutex
	Files      map[string][]byte
	Dirs       map[string]bool
	WorkingDir string
	Error      error
	WriteError error // WriteFile のみが返すエラー
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:      make(map[string][]byte),
		Dirs:       make(map[string]bool),
		WorkingDir: "/test/dir",
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, exists := fs.Files[filename]
	return exists
}

// ReadFile はファイルを読み込みます
func (fs *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Error != nil {
		return nil, fs.Error
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	return data, nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Error != nil {
		return fs.Error
	}
	if fs.WriteError != nil {
		return fs.WriteError
	}
	fs.Files[filename] = append([]byte(nil), data...)
	return nil
}

// MkdirAll はディレクトリを作成します
func (fs *MockFileSystem) MkdirAll(path string, perm uint32) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Error != nil {
		return fs.Error
	}
	fs.Dirs[path] = true
	return nil
}

// Stat はファイル情報を取得します
func (fs *MockFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Error != nil {
		return nil, fs.Error
	}
	if _, exists := fs.Files[name]; exists {
		return &MockFileInfo{name: filepath.Base(name), isDir: false}, nil
	}
	if fs.isDir(name) {
		return &MockFileInfo{name: filepath.Base(name), isDir: true}, nil
	}
	return nil, errors.New("file not found")
}

// ReadDir はディレクトリを読み込みます（名前順）
func (fs *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.Error != nil {
		return nil, fs.Error
	}
	if !fs.isDir(dirname) {
		return nil, errors.New("directory not found")
	}

	// 直下のエントリを集める（ファイルの親ディレクトリも暗黙のディレクトリとして扱う）
	children := make(map[string]bool)
	for path := range fs.Files {
		if name, rest, ok := childOf(dirname, path); ok {
			children[name] = children[name] || rest
		}
	}
	for path := range fs.Dirs {
		if name, _, ok := childOf(dirname, path); ok {
			children[name] = true
		}
	}

	entries := make([]interfaces.DirEntry, 0, len(children))
	for name, isDir := range children {
		entries = append(entries, &MockDirEntry{name: name, isDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// Getwd は現在の作業ディレクトリを返します
func (fs *MockFileSystem) Getwd() (string, error) {
	if fs.Error != nil {
		return "", fs.Error
	}
	return fs.WorkingDir, nil
}

// isDir は明示的に作成されたか、ファイルの祖先であるパスをディレクトリとみなします
func (fs *MockFileSystem) isDir(name string) bool {
	if fs.Dirs[name] {
		return true
	}
	prefix := strings.TrimSuffix(name, string(filepath.Separator)) + string(filepath.Separator)
	for path := range fs.Files {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for path := range fs.Dirs {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// childOf は path が dir 配下にあれば直下の名前と、さらに下の階層があるかを返します
func childOf(dir, path string) (name string, deeper bool, ok bool) {
	prefix := strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(path, prefix) {
		return "", false, false
	}
	rest := path[len(prefix):]
	if rest == "" {
		return "", false, false
	}
	name, _, deeper = strings.Cut(rest, string(filepath.Separator))
	return name, deeper, true
}

// MockFileInfo はテスト用のFileInfo実装
type MockFileInfo struct {
	name  string
	isDir bool
}

// Name はファイル名を返します
func (fi *MockFileInfo) Name() string {
	return fi.name
}

// IsDir はディレクトリかどうかを返します
func (fi *MockFileInfo) IsDir() bool {
	return fi.isDir
}

// MockDirEntry はテスト用のDirEntry実装
type MockDirEntry struct {
	name  string
	isDir bool
}

// Name はエントリ名を返します
func (de *MockDirEntry) Name() string {
	return de.name
}

// IsDir はディレクトリかどうかを返します
func (de *MockDirEntry) IsDir() bool {
	return de.isDir
}
