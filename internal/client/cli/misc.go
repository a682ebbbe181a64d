package cli

import (
	"fmt"

	"github.com/dmitrijs2005/bucketdrop/internal/buildinfo"
	"github.com/dmitrijs2005/bucketdrop/internal/client/api"
	"github.com/spf13/cobra"
)

func newHealthCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if err := a.client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("server %s: %s", a.config.ServerURL, api.Message(err))
			}
			fmt.Fprintf(a.out, "server %s: ok\n", a.config.ServerURL)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
