// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/shiroemons/go-txtar/internal/config"
	apperrors "github.com/shiroemons/go-txtar/internal/errors"
	"github.com/shiroemons/go-txtar/internal/fileutil"
	"github.com/shiroemons/go-txtar/internal/interfaces"
	"github.com/shiroemons/go-txtar/internal/models"
	"github.com/shiroemons/go-txtar/pkg/txtar"
)

// StdinName は標準入力から読み込んだ場合のソース名
const StdinName = "<stdin>"

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
	finder interfaces.ArchiveFinder
	stdin  io.Reader
	stderr io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Finder     interfaces.ArchiveFinder
	Stdin      io.Reader
	Stderr     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var finder interfaces.ArchiveFinder
	if opts.Finder != nil {
		finder = opts.Finder
	} else {
		finder = fileutil.NewArchiveFinder(fs)
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	return &App{
		config: cfg,
		logger: config.NewDebugLoggerWithWriter(cfg.DebugMode, stderr),
		fs:     fs,
		finder: finder,
		stdin:  stdin,
		stderr: stderr,
	}
}

// Load はアーカイブを読み込みます。
// path が "-" の場合は標準入力から、空の場合はカレントディレクトリの.txtarファイルを
// 自動検出し、見つからなければ標準入力から読み込みます。
func (a *App) Load(ctx context.Context, path string) (*txtar.Archive, string, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	default:
	}

	if path == "" {
		found, err := a.finder.Find()
		if err != nil {
			return nil, "", err
		}
		if found != "" {
			a.logger.Printf("自動検出したアーカイブファイル %s を読み込みます\n", found)
		}
		path = found
	}

	if path == "" || path == "-" {
		a.logger.Printf("標準入力からアーカイブを読み込みます\n")
		archive, err := fileutil.DecodeArchive(a.stdin, a.config.Encoding)
		if err != nil {
			return nil, "", apperrors.NewArchiveError("read", StdinName, err)
		}
		return archive, StdinName, nil
	}

	archive, err := fileutil.ReadArchive(a.fs, path, a.config.Encoding)
	if err != nil {
		return nil, "", apperrors.NewArchiveError("read", path, err)
	}
	a.logger.Printf("アーカイブ %s を読み込みました（%d ファイル）\n", path, archive.Len())
	return archive, path, nil
}

// List はアーカイブ内のファイル一覧を返します
func (a *App) List(ctx context.Context, path string) (models.Listing, error) {
	archive, source, err := a.Load(ctx, path)
	if err != nil {
		return models.Listing{}, err
	}
	return NewListing(source, archive), nil
}

// NewListing はアーカイブから一覧情報を作成します
func NewListing(source string, archive *txtar.Archive) models.Listing {
	listing := models.Listing{
		Source:  source,
		Comment: archive.Comment(),
		Entries: make([]models.Entry, 0, archive.Len()),
	}

	seen := make(map[string]bool)
	for i, f := range archive.All() {
		listing.Entries = append(listing.Entries, models.Entry{
			Index:    i,
			Name:     f.Name,
			Size:     len(f.Content),
			Lines:    strings.Count(f.Content, "\n"),
			Shadowed: seen[f.Name],
		})
		seen[f.Name] = true
	}
	return listing
}

// Cat は name に一致する最初のファイルの内容を返します
func (a *App) Cat(ctx context.Context, path, name string) (string, error) {
	archive, _, err := a.Load(ctx, path)
	if err != nil {
		return "", err
	}

	f, ok := archive.Get(name)
	if !ok {
		return "", apperrors.NewEntryError(name, apperrors.ErrFileNotFound)
	}
	return f.Content, nil
}

// Comment はアーカイブのコメントを返します
func (a *App) Comment(ctx context.Context, path string) (string, error) {
	archive, _, err := a.Load(ctx, path)
	if err != nil {
		return "", err
	}
	return archive.Comment(), nil
}
