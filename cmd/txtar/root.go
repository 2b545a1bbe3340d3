package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-txtar/internal/app"
	"github.com/shiroemons/go-txtar/internal/config"
)

// newRootCmd はサブコマンドを登録したルートコマンドを作成します
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "txtar",
		Short: "List, extract and create txtar text archives",
		Long: `txtar works with the txtar text archive format: a comment followed by
files introduced by "-- NAME --" marker lines.

Settings can also be given as environment variables:
  TXTAR_ENCODING, TXTAR_OUTPUT, TXTAR_FORMAT, TXTAR_DEBUG, TXTAR_WORKERS

When no archive argument is given, a single *.txtar file in the current
directory is used, otherwise the archive is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(),
		newCatCmd(),
		newCommentCmd(),
		newExtractCmd(),
		newCreateCmd(),
		newVersionCmd(),
	)
	return root
}

// newApp はフラグと環境変数から設定を読み込んでAppを作成します
func newApp(cmd *cobra.Command) (*app.App, *config.Config, error) {
	cfg, err := config.Load(config.NewViper(), cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return app.NewWithOptions(cfg, app.Options{
		Stdin:  cmd.InOrStdin(),
		Stderr: cmd.ErrOrStderr(),
	}), cfg, nil
}

// archiveArg は省略可能なアーカイブ引数を返します
func archiveArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
