package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/LulubuluL/pokedex/internal/cli"
	"github.com/LulubuluL/pokedex/internal/config"
	"github.com/LulubuluL/pokedex/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
