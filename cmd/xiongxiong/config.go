package main

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrLoadingEnv        = errors.New("failed to load .env file")
	ErrParsingConfig     = errors.New("failed to parse environment variables into config")
	ErrMissingPrivateKey = errors.New("private key is not configured")
)

// Config is read from the environment. Command line flags take precedence.
type Config struct {
	PrivateKey      string        `env:"XIONGXIONG_PRIVATE_KEY"`
	PrivateKeyFile  string        `env:"XIONGXIONG_PRIVATE_KEY_FILE"`
	Algorithm       string        `env:"XIONGXIONG_ALGORITHM" envDefault:"sha1"`
	Lifetime        time.Duration `env:"XIONGXIONG_LIFETIME" envDefault:"1h"`
	HTTPAddr        string        `env:"XIONGXIONG_HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"XIONGXIONG_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
}

// loadConfig loads the given .env files, or the default .env if present,
// and parses the environment. Variables already set are not overridden.
func loadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnv, err)
		}
	} else {
		// The default .env is optional.
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// privateKey returns the key bytes. A key file wins over an inline key.
func (c Config) privateKey() ([]byte, error) {
	if c.PrivateKeyFile != "" {
		b, err := os.ReadFile(c.PrivateKeyFile)
		if err != nil {
			return nil, errors.Join(ErrMissingPrivateKey, err)
		}
		return b, nil
	}
	if c.PrivateKey == "" {
		return nil, ErrMissingPrivateKey
	}
	return []byte(c.PrivateKey), nil
}

// setKey applies the --key flag: a path when such a file exists, else the
// key itself.
func (c *Config) setKey(value string) {
	if fi, err := os.Stat(value); err == nil && fi.Mode().IsRegular() {
		c.PrivateKeyFile = value
		c.PrivateKey = ""
		return
	}
	c.PrivateKey = value
	c.PrivateKeyFile = ""
}
