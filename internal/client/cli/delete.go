package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app func() *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete an object (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			key := args[0]

			if !yes {
				ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s?", key), a.out)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(a.out, "Aborted.")
					return nil
				}
			}

			if err := a.ensureToken(); err != nil {
				return err
			}

			return a.orch.Delete(cmd.Context(), key)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
