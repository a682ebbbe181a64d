package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bucketdrop/internal/buildinfo"
	"github.com/dmitrijs2005/bucketdrop/internal/server"
	"github.com/dmitrijs2005/bucketdrop/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "bucketdrop: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
