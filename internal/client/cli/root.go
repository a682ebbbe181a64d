package cli

import (
	"io"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/client/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	server      string
	token       string
	timeout     time.Duration
	downloadDir string
	verbose     bool
}

// NewRootCmd builds the command tree. in and out replace stdin and stdout
// for prompts and output.
func NewRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	var app *App

	root := &cobra.Command{
		Use:   "bucketdrop",
		Short: "Browse and transfer files in a bucketdrop bucket",
		Long: `bucketdrop talks to a bucketdrop server, which hands out short-lived signed URLs.
File contents go straight between this machine and object storage.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			app = NewApp(cfg, in, out, opts.verbose)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to JSON config file")
	pf.StringVarP(&opts.server, "server", "s", "", "server base URL")
	pf.StringVarP(&opts.token, "token", "t", "", "bearer token")
	pf.DurationVar(&opts.timeout, "timeout", 0, "request timeout")
	pf.StringVarP(&opts.downloadDir, "download-dir", "d", "", "directory for downloads")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	appFn := func() *App { return app }

	root.AddCommand(
		newListCmd(appFn),
		newTreeCmd(appFn),
		newUploadCmd(appFn),
		newDownloadCmd(appFn),
		newDeleteCmd(appFn),
		newHealthCmd(appFn),
		newVersionCmd(),
	)

	return root
}

// apply copies flags the user actually set over cfg.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("server") {
		cfg.ServerURL = o.server
	}
	if f.Changed("token") {
		cfg.AuthToken = o.token
	}
	if f.Changed("timeout") {
		cfg.RequestTimeout = o.timeout
	}
	if f.Changed("download-dir") {
		cfg.DownloadDir = o.downloadDir
	}
}
