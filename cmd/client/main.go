package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/client"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/config"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/credentials"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/repositories"
)

var (
	buildVersion = "N/A"
	buildCommit  = "N/A"
	buildDate    = "N/A"
)

const redisKeyPrefix = "withdrawctl:"

type credentialStore interface {
	Save(ctx context.Context, creds models.Credentials) error
	Load(ctx context.Context) (*models.Credentials, bool)
	Clear(ctx context.Context) error
}

// app carries what every command needs. store is built in Before from the
// loaded config unless it was set up front.
type app struct {
	cfg   config.Client
	store credentialStore
	out   io.Writer
	in    io.Reader
}

func main() {
	a := &app{out: os.Stdout, in: os.Stdin}
	if err := a.cli().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) cli() *cli.App {
	app := cli.NewApp()
	app.Name = "withdrawctl"
	app.Version = fmt.Sprintf("%s (commit %s, build %s)", buildVersion, buildCommit, buildDate)
	app.Usage = "batch crypto withdrawals through the withdrawal API"
	app.Writer = a.out
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.env",
			Usage:   "path to the env file with client settings",
		},
	}
	app.Before = a.setup
	app.Commands = a.commands()
	return app
}

func (a *app) setup(c *cli.Context) error {
	if a.store != nil {
		return nil
	}

	cfg, err := config.LoadClient(c.String("config"))
	if err != nil {
		return err
	}
	if err := logger.InitializeConsole(cfg.LogLevel); err != nil {
		return err
	}

	storage, err := newStorage(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.store = credentials.NewStore(storage)
	return nil
}

// newStorage picks the credential backend named in cfg.
func newStorage(cfg config.Client) (credentials.Storage, error) {
	switch cfg.CredentialsBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return repositories.NewRedisKVRepository(rdb, redisKeyPrefix, cfg.CredentialsTTL), nil
	case config.BackendFile, "":
		path, err := cfg.CredentialsPath()
		if err != nil {
			return nil, fmt.Errorf("resolve credentials file: %w", err)
		}
		return repositories.NewFileKVRepository(path), nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", cfg.CredentialsBackend)
	}
}

// apiClient returns a client authenticated with the stored key pair.
func (a *app) apiClient(ctx context.Context) (*client.Client, error) {
	creds, ok := a.store.Load(ctx)
	if !ok {
		return nil, fmt.Errorf("%w (run 'withdrawctl login' first)", client.ErrNoCredentials)
	}
	return client.New(a.cfg.APIURL, a.cfg.HTTPTimeout, *creds), nil
}

// publicClient is for endpoints that need no key pair.
func (a *app) publicClient() *client.Client {
	return client.New(a.cfg.APIURL, a.cfg.HTTPTimeout, models.Credentials{})
}
