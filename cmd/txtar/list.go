package main

import (
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-txtar/internal/app"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [archive]",
		Aliases: []string{"l", "ls"},
		Short:   "List the files in an archive",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := newApp(cmd)
			if err != nil {
				return err
			}
			listing, err := a.List(cmd.Context(), archiveArg(args))
			if err != nil {
				return err
			}
			return app.RenderListing(cmd.OutOrStdout(), listing, cfg.Format)
		},
	}
}
