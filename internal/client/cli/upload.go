package cli

import (
	"fmt"

	"github.com/dmitrijs2005/bucketdrop/internal/filex"
	"github.com/spf13/cobra"
)

func newUploadCmd(app func() *App) *cobra.Command {
	var (
		name        string
		dir         string
		contentType string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file",
		Long: `Upload asks the server for a signed upload URL and then PUTs the file
straight to object storage. The stored key is <dir>/<timestamp>-<name>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			f, err := filex.OpenLocal(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ct := f.ContentType
			if contentType != "" {
				ct = contentType
			}

			if err := a.orch.Stage(f.Name, ct, f, f.Size); err != nil {
				return err
			}

			finalName, finalDir := name, dir
			if interactive {
				fmt.Fprintf(a.out, "Staged %s (%s, %s)\n", f.Name, ct, formatFileSize(f.Size))
				if finalName, err = GetSimpleText(a.reader, "File name", firstNonEmpty(name, f.Name), a.out); err != nil {
					return err
				}
				if finalDir, err = GetSimpleText(a.reader, "Directory (empty for root)", dir, a.out); err != nil {
					return err
				}
			}

			if err := a.orch.Confirm(finalName, finalDir); err != nil {
				return err
			}
			return a.orch.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "file name to store (default: local name)")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to store the file under")
	cmd.Flags().StringVar(&contentType, "type", "", "content type (default: detected)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for name and directory")
	return cmd
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
