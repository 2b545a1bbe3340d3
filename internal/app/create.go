package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/shiroemons/go-txtar/internal/errors"
	"github.com/shiroemons/go-txtar/internal/fileutil"
	"github.com/shiroemons/go-txtar/pkg/txtar"
)

// Create はディスク上のファイルからアーカイブを作成し、設定された文字コードで返します。
// ディレクトリを指定した場合は配下のファイルを名前順に再帰的に追加し、
// ファイル名はそのディレクトリからの相対パスになります。
func (a *App) Create(ctx context.Context, comment string, paths []string) ([]byte, error) {
	b := txtar.NewBuilder()
	if err := b.SetComment(comment); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddFile, err)
	}

	for _, p := range paths {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p = filepath.Clean(p)
		info, err := a.fs.Stat(p)
		if err != nil {
			return nil, apperrors.NewArchiveError("stat", p, err)
		}

		if !info.IsDir() {
			if err := a.addFile(b, p, fileArchiveName(p)); err != nil {
				return nil, err
			}
			continue
		}

		files, err := a.collectFiles(p)
		if err != nil {
			return nil, apperrors.NewArchiveError("readdir", p, err)
		}
		for _, f := range files {
			if err := a.addFile(b, f, fileutil.ArchiveName(p, f)); err != nil {
				return nil, err
			}
		}
	}

	archive := b.Build()
	a.logger.Printf("%d 個のファイルからアーカイブを作成しました\n", archive.Len())
	return fileutil.EncodeText(archive.String(), a.config.Encoding)
}

// addFile はファイルを読み込んでビルダーに追加します
func (a *App) addFile(b *txtar.Builder, path, name string) error {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return apperrors.NewArchiveError("read", path, err)
	}
	text, err := fileutil.DecodeText(data, a.config.Encoding)
	if err != nil {
		return apperrors.NewArchiveError("decode", path, err)
	}
	if err := b.Add(name, text); err != nil {
		return fmt.Errorf("%w: %w", ErrAddFile, err)
	}
	a.logger.Printf("追加しました: %s\n", name)
	return nil
}

// collectFiles はディレクトリ配下のファイルを名前順に再帰的に列挙します
func (a *App) collectFiles(dir string) ([]string, error) {
	entries, err := a.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !e.IsDir() {
			files = append(files, path)
			continue
		}
		sub, err := a.collectFiles(path)
		if err != nil {
			return nil, err
		}
		files = append(files, sub...)
	}
	return files, nil
}

// fileArchiveName は直接指定されたファイルのアーカイブ内の名前を返します。
// 絶対パスや親ディレクトリを指すパスはベース名だけを使います。
func fileArchiveName(path string) string {
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return filepath.Base(clean)
	}
	return filepath.ToSlash(clean)
}
