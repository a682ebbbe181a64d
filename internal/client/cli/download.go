package cli

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/bucketdrop/internal/client/api"
	"github.com/dmitrijs2005/bucketdrop/internal/filex"
	"github.com/spf13/cobra"
)

func newDownloadCmd(app func() *App) *cobra.Command {
	var urlOnly bool

	cmd := &cobra.Command{
		Use:   "download <key>",
		Short: "Download an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			key := args[0]

			if urlOnly {
				resp, err := a.client.DownloadURL(cmd.Context(), key)
				if err != nil {
					return fmt.Errorf("%s", api.Message(err))
				}
				fmt.Fprintln(a.out, resp.DownloadURL)
				return nil
			}

			dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
			if err != nil {
				return err
			}

			target, err := filex.CreateTarget(dir, key)
			if err != nil {
				return err
			}

			_, err = a.orch.Download(cmd.Context(), key, target)
			if cerr := target.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(target.Name())
				return err
			}

			fmt.Fprintln(a.out, target.Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&urlOnly, "url", false, "only print a signed download URL")
	return cmd
}
