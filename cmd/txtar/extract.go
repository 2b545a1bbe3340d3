package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiroemons/go-txtar/internal/config"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extract <archive> [name...]",
		Aliases: []string{"x"},
		Short:   "Extract files from an archive into the output directory",
		Long: `Extract writes the files of an archive below the output directory (-o).
When names are given only those files are extracted. If several files share
a name, only the first one is written. Names that would escape the output
directory are rejected. Existing files are kept unless --overwrite is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			if len(args) > 1 {
				fmt.Fprintf(out, "%d 個の指定されたファイルを展開中...\n", len(args)-1)
			} else {
				fmt.Fprintln(out, "アーカイブ内の全ファイルを展開中...")
			}

			result, extractErr := a.Extract(cmd.Context(), args[0], args[1:])

			if len(result.NotFound) > 0 {
				fmt.Fprintf(errOut, "\n警告: 指定されたファイルのうち、以下は見つかりませんでした:\n")
				for _, f := range result.NotFound {
					fmt.Fprintf(errOut, "- %s\n", f)
				}
			}
			if len(result.Skipped) > 0 && cfg.DebugMode {
				fmt.Fprintf(errOut, "重複したため展開しなかったファイル: %d 個\n", len(result.Skipped))
			}

			// エラーがあっても一部成功していれば表示
			if extractErr == nil || result.Count > 0 {
				fmt.Fprintf(out, "\n%d 個のファイルを %s に展開しました\n", result.Count, cfg.OutputDir)
			}
			return extractErr
		},
	}
	config.RegisterExtractFlags(cmd.Flags())
	return cmd
}
