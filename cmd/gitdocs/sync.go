package main

import (
	"github.com/spf13/cobra"
)

var syncMessage string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Clone or validate the store's working copy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.Initialize(cmd.Context())
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull with rebase, commit local changes and push",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.Sync(cmd.Context(), syncMessage)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Discard all uncommitted changes, including untracked files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.Clean(cmd.Context())
	},
}

func init() {
	syncCmd.Flags().StringVarP(&syncMessage, "message", "m", "gitdocs sync", "commit message")
	rootCmd.AddCommand(initCmd, syncCmd, cleanCmd)
}
