package users

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mtavares/gatekeeper/internal/cmdflags"
	"github.com/mtavares/gatekeeper/internal/config"
	"github.com/mtavares/gatekeeper/user"
)

func Cmd() *cli.Command {
	var usersFile string
	return &cli.Command{
		Name:  "users",
		Usage: "Manage the users the API authenticates against",
		Flags: []cli.Flag{
			cmdflags.UsersFile(&usersFile),
		},
		Before: func(ctx *cli.Context) error {
			if usersFile == "" {
				cfg, err := config.FromEnv()
				if err != nil {
					return err
				}
				usersFile = cfg.UsersFile
			}
			return nil
		},
		Subcommands: []*cli.Command{
			registerCmd(&usersFile),
			listCmd(&usersFile),
		},
	}
}

// readPassword takes the first line from in. A closed or blank stdin
// is an error, registering a user without a password is never silent.
func readPassword(in io.Reader) (string, error) {
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("missing password from stdin")
	}
	passwd := strings.TrimSpace(sc.Text())
	if len(passwd) == 0 {
		return "", errors.New("missing password from stdin")
	}
	return passwd, nil
}

func registerCmd(usersFile *string) *cli.Command {
	var email string
	var firstName string
	var lastName string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user in the user file (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the user to register",
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "first-name",
				Destination: &firstName,
			},
			&cli.StringFlag{
				Name:        "last-name",
				Destination: &lastName,
			},
		},
		Action: func(ctx *cli.Context) error {
			passwd, err := readPassword(os.Stdin)
			if err != nil {
				return err
			}
			store, err := user.LoadFileStore(ctx.Context, *usersFile, true)
			if err != nil {
				return err
			}
			u, err := user.New(email, passwd, firstName, lastName)
			if err != nil {
				return err
			}
			return store.Add(ctx.Context, u)
		},
	}
}

func listCmd(usersFile *string) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the registered users",
		Action: func(ctx *cli.Context) error {
			store, err := user.LoadFileStore(ctx.Context, *usersFile, false)
			if err != nil {
				return err
			}
			all, err := store.All(ctx.Context)
			if err != nil {
				return err
			}
			for _, u := range all {
				fmt.Printf("%v\t%v\t%v\n", u.ID, u.Email, u.DisplayName())
			}
			return nil
		},
	}
}
