package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <archive> <name>",
		Short: "Print the content of the first file with the given name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp(cmd)
			if err != nil {
				return err
			}
			content, err := a.Cat(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment [archive]",
		Short: "Print the comment that precedes the first file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp(cmd)
			if err != nil {
				return err
			}
			comment, err := a.Comment(cmd.Context(), archiveArg(args))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), comment)
			return err
		},
	}
}
