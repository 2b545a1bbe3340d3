// Package fileutil はファイル操作と文字コード変換のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-txtar/internal/interfaces"
	"github.com/shiroemons/go-txtar/pkg/txtar"
)

// LookupEncoding は名前から文字コードを取得します。
// 空文字列は UTF-8 として扱います。名前は WHATWG のラベル（shift_jis, euc-jp など）です。
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// utf8BOM はUTF-8のBOM
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// isUTF8 は enc がUTF-8か判定します
func isUTF8(enc encoding.Encoding) bool {
	if enc == unicode.UTF8 {
		return true
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// DecodeText は指定された文字コードのバイト列をUTF-8文字列に変換します。
// 先頭のBOMは取り除かれます。UTF-8として不正なバイト列は置換せず ErrDecode を返します。
func DecodeText(data []byte, encName string) (string, error) {
	enc, err := LookupEncoding(encName)
	if err != nil {
		return "", err
	}

	if isUTF8(enc) || bytes.HasPrefix(data, utf8BOM) {
		if !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
			return "", fmt.Errorf("%w: UTF-8として不正なバイト列が含まれています", ErrDecode)
		}
	}

	decoder := unicode.BOMOverride(enc.NewDecoder())
	ret, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return string(ret), nil
}

// EncodeText はUTF-8文字列を指定された文字コードに変換します
func EncodeText(text string, encName string) ([]byte, error) {
	enc, err := LookupEncoding(encName)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: UTF-8として不正なバイト列が含まれています", ErrEncode)
	}

	ret, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return ret, nil
}

// DecodeArchive は r からアーカイブを読み込んで解析します
func DecodeArchive(r io.Reader, encName string) (*txtar.Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := DecodeText(data, encName)
	if err != nil {
		return nil, err
	}
	return txtar.Parse(text), nil
}

// ReadArchive はファイルからアーカイブを読み込んで解析します
func ReadArchive(fs interfaces.FileSystem, path string, encName string) (*txtar.Archive, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := DecodeText(data, encName)
	if err != nil {
		return nil, err
	}
	return txtar.Parse(text), nil
}

// SafeJoin はアーカイブ内のファイル名を root 配下のパスに変換します。
// 絶対パスや root の外を指す名前はエラーになります。
func SafeJoin(root, name string) (string, error) {
	p := filepath.Clean(filepath.FromSlash(name))
	if name == "" || p == "." || p == ".." || isAbs(p) ||
		strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return filepath.Join(root, p), nil
}

// isAbs は p が絶対パスか判定します。
// Windowsでは filepath.IsAbs(`\foo`) が false になるため区切り文字も確認します。
func isAbs(p string) bool {
	return filepath.IsAbs(p) || strings.HasPrefix(p, string(filepath.Separator))
}

// SaveToFile は親ディレクトリを作成してからファイルに書き込みます。
// overwrite が false で既にファイルが存在する場合は ErrFileExists を返します。
func SaveToFile(fs interfaces.FileSystem, outputPath string, data []byte, overwrite bool) error {
	if !overwrite && fs.FileExists(outputPath) {
		return fmt.Errorf("%w: %s", ErrFileExists, outputPath)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
		}
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// ArchiveName はディスク上のパスをアーカイブ内のファイル名（スラッシュ区切り）に変換します
func ArchiveName(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(filepath.Clean(rel))
}
