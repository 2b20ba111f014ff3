package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

type (
	// Config carries the environment-provided settings. Flags may
	// override any of them.
	Config struct {
		AuthType  string `env:"AUTH_TYPE" envDefault:"basic_auth"`
		Host      string `env:"API_HOST" envDefault:"0.0.0.0"`
		Port      int    `env:"API_PORT" envDefault:"5000"`
		UsersFile string `env:"API_USERS_FILE" envDefault:"users.json"`
	}
)

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unable to parse environment, cause %w", err)
	}
	return cfg, nil
}

// Bind returns the host:port pair the server listens on.
func (c Config) Bind() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
