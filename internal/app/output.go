package app

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-txtar/internal/config"
	"github.com/shiroemons/go-txtar/internal/models"
)

// RenderListing は一覧情報を指定されたフォーマットで w に書き込みます
func RenderListing(w io.Writer, listing models.Listing, format string) error {
	switch format {
	case config.FormatText, "":
		return renderText(w, listing)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listing); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// renderText は一覧を表形式で出力します
func renderText(w io.Writer, listing models.Listing) error {
	var err error
	printf := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}

	printf("アーカイブ内のファイル一覧: %s\n", listing.Source)
	printf("----------------------------\n")
	printf("%-32s %10s %8s\n", "ファイル名", "サイズ", "行数")
	printf("----------------------------\n")

	if len(listing.Entries) == 0 {
		printf("ファイルがありません\n")
	}
	for _, e := range listing.Entries {
		name := e.Name
		if e.Shadowed {
			name += " (重複)"
		}
		printf("%-32s %10d %8d\n", name, e.Size, e.Lines)
	}
	printf("----------------------------\n")
	return err
}
