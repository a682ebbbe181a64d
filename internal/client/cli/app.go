package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/dmitrijs2005/bucketdrop/internal/client/api"
	"github.com/dmitrijs2005/bucketdrop/internal/client/config"
	"github.com/dmitrijs2005/bucketdrop/internal/client/transfer"
	"github.com/dmitrijs2005/bucketdrop/internal/logging"
	"github.com/dmitrijs2005/bucketdrop/internal/netx"
)

// App holds what every command needs once configuration is resolved.
type App struct {
	config *config.Config
	client *api.Client
	orch   *transfer.Orchestrator
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, in io.Reader, out io.Writer, verbose bool) *App {
	logger := logging.Nop()
	if verbose {
		logger = logging.NewWithLevel(c.LogFormat, os.Stderr, "debug")
	}

	client := api.NewClient(c.ServerURL, c.AuthToken, c.RequestTimeout)
	// RequestTimeout bounds API calls only; object bodies go straight to
	// storage and may take longer.
	orch := transfer.NewOrchestrator(client, netx.NewTransferClient(), newColorNotifier(out), logger)

	return &App{
		config: c,
		client: client,
		orch:   orch,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ensureToken prompts for a token when none is configured and the session
// is interactive.
func (a *App) ensureToken() error {
	if a.config.AuthToken != "" || !stdinIsTerminal() {
		return nil
	}
	tok, err := GetToken(a.out)
	if err != nil {
		return err
	}
	a.config.AuthToken = tok
	a.client.SetToken(tok)
	return nil
}
