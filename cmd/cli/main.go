package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jabuspark/internal/buildinfo"
	"github.com/dmitrijs2005/jabuspark/internal/client/cli"
	"github.com/dmitrijs2005/jabuspark/internal/client/config"
	"github.com/sethvargo/go-envconfig"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.Load(ctx, os.Args[1:], envconfig.OsLookuper())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
