package cmdflags

import (
	"github.com/urfave/cli/v2"
)

func UsersFile(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "users",
		Aliases:     []string{"u"},
		Usage:       "Path to the JSON user file",
		Destination: out,
		Value:       *out,
	}
}

func AuthType(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "auth-type",
		Usage:       "Authentication strategy (auth or basic_auth)",
		Destination: out,
		Value:       *out,
	}
}

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Aliases:     []string{"b"},
		Usage:       "Address to bind the API server to",
		Destination: out,
		Value:       *out,
	}
}

func Debug(out *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "debug",
		Usage:       "Enable debug logging",
		Destination: out,
		Value:       *out,
	}
}
