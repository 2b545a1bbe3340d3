package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-txtar/internal/fileutil"
)

func newCreateCmd() *cobra.Command {
	var comment string
	var outFile string

	cmd := &cobra.Command{
		Use:     "create <path...>",
		Aliases: []string{"c"},
		Short:   "Create an archive from files and directories",
		Long: `Create writes a txtar archive built from the given files and directories
to standard output (or --file). Directories are walked recursively in name
order and their files are named relative to the directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp(cmd)
			if err != nil {
				return err
			}
			data, err := a.Create(cmd.Context(), comment, args)
			if err != nil {
				return err
			}
			if outFile != "" {
				return fileutil.SaveToFile(fileutil.NewOSFileSystem(), outFile, data, true)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "comment placed before the first file")
	cmd.Flags().StringVar(&outFile, "file", "", "write the archive to this file instead of standard output")
	return cmd
}
