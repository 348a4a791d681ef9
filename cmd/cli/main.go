package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/featurepulse/featurepulse-go/internal/buildinfo"
	"github.com/featurepulse/featurepulse-go/internal/cli"
	"github.com/featurepulse/featurepulse-go/internal/config"
	"github.com/featurepulse/featurepulse-go/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = zl.Sync() }()

	app, err := cli.NewApp(ctx, cfg, logging.NewZapLogger(zl))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
