// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はアーカイブ内にファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrNoArchive は読み込むアーカイブが見つからない場合のエラー
	ErrNoArchive = errors.New("アーカイブが指定されていません")
)

// ArchiveError はアーカイブ関連のエラー
type ArchiveError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ArchiveError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// NewArchiveError は新しいArchiveErrorを作成します
func NewArchiveError(op, path string, err error) *ArchiveError {
	return &ArchiveError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// EntryError はアーカイブ内の個別ファイルに関するエラー
type EntryError struct {
	Name string // アーカイブ内のファイル名
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *EntryError) Error() string {
	return fmt.Sprintf("%q: %v", e.Name, e.Err)
}

// Unwrap は元のエラーを返します
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError は新しいEntryErrorを作成します
func NewEntryError(name string, err error) *EntryError {
	return &EntryError{
		Name: name,
		Err:  err,
	}
}
