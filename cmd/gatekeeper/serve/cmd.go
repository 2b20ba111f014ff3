package serve

import (
	"github.com/urfave/cli/v2"

	"github.com/mtavares/gatekeeper/api"
	"github.com/mtavares/gatekeeper/auth"
	"github.com/mtavares/gatekeeper/internal/cmdflags"
	"github.com/mtavares/gatekeeper/internal/config"
	"github.com/mtavares/gatekeeper/internal/httpserver"
	"github.com/mtavares/gatekeeper/internal/logutil"
	"github.com/mtavares/gatekeeper/user"
)

func Cmd() *cli.Command {
	var bindAddr string
	var authType string
	var usersFile string
	var debug bool
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the gatekeeper API server",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.AuthType(&authType),
			cmdflags.UsersFile(&usersFile),
			cmdflags.Debug(&debug),
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if bindAddr == "" {
				bindAddr = cfg.Bind()
			}
			if authType == "" {
				authType = cfg.AuthType
			}
			if usersFile == "" {
				usersFile = cfg.UsersFile
			}
			logger := logutil.Root(debug)
			appCtx := logutil.WithLogger(ctx.Context, logger)

			store, err := user.LoadFileStore(appCtx, usersFile, true)
			if err != nil {
				return err
			}
			strategy, err := auth.ForType(authType, store)
			if err != nil {
				return err
			}
			logger.Info().
				Str("auth.type", authType).
				Str("users.file", usersFile).
				Msg("Gatekeeper configured")
			return httpserver.Serve(appCtx, bindAddr, api.AsHandler(store, strategy))
		},
	}
}
