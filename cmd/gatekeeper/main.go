package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mtavares/gatekeeper/cmd/gatekeeper/serve"
	"github.com/mtavares/gatekeeper/cmd/gatekeeper/users"
)

func main() {
	app := &cli.App{
		Name:  "gatekeeper",
		Usage: "A small user API protected by HTTP Basic Authentication",
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
