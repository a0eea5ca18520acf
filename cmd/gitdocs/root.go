package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gitdocs"
	"github.com/kailas-cloud/gitdocs/internal/config"
	"github.com/kailas-cloud/gitdocs/internal/logger"
	"github.com/kailas-cloud/gitdocs/internal/metrics"
	"github.com/kailas-cloud/gitdocs/internal/version"
)

// storeName selects which configured store a command operates on.
var storeName string

var rootCmd = &cobra.Command{
	Use:   "gitdocs",
	Short: "JSON document store backed by a git repository",
	Long: `gitdocs stores JSON documents as files in a git working copy.

Documents are addressed by relative path and edited through dotted-path
updates; the working copy synchronizes with its remote via pull, commit
and push. Stores are defined in config/<env>.yaml and selected with
--store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeName, "store", "s", "", "configured store name (defaults to the first store)")
	rootCmd.Version = version.Version
}

// openStore builds the selected store from configuration, with logging and
// metrics wired in.
func openStore() (*gitdocs.Store, *zap.Logger, error) {
	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	metrics.RegisterStoreMetrics()

	sc, err := selectStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []gitdocs.Option{
		gitdocs.WithAuthor(sc.Author.Name, sc.Author.Email),
		gitdocs.WithTimeout(time.Duration(sc.TimeoutSec) * time.Second),
		gitdocs.WithLogger(log),
	}
	if sc.Branch != "" {
		opts = append(opts, gitdocs.WithBranch(sc.Branch))
	}
	if sc.Auth.Token != "" {
		opts = append(opts, gitdocs.WithTokenAuth(sc.Auth.Token))
	} else if sc.Auth.Username != "" {
		opts = append(opts, gitdocs.WithBasicAuth(sc.Auth.Username, sc.Auth.Password))
	}
	if sc.Auth.Insecure {
		opts = append(opts, gitdocs.WithInsecureTLS())
	}

	store, err := gitdocs.New(sc.Name, sc.URL, sc.Path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return store, log, nil
}

func selectStore(cfg config.Config) (config.StoreConfig, error) {
	if storeName == "" {
		if len(cfg.Stores) == 0 {
			return config.StoreConfig{}, fmt.Errorf("no stores configured")
		}
		return cfg.Stores[0], nil
	}
	sc, ok := cfg.Store(storeName)
	if !ok {
		return config.StoreConfig{}, fmt.Errorf("unknown store %q", storeName)
	}
	return sc, nil
}
