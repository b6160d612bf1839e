// Package cli implements the lastfm command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tefra/lastfm/internal/config"
	"github.com/tefra/lastfm/internal/lastfm"
)

var (
	cfgFile   string
	jsonOut   bool
	limitFlag int

	cfg    *config.Config
	client *lastfm.Client
)

var rootCmd = &cobra.Command{
	Use:   "lastfm",
	Short: "Query and scrobble to Last.fm from the command line",
	Long:  `A Last.fm client: artist, album, track, tag and chart lookups plus authenticated scrobbling.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFrom(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client = lastfm.New(cfg.APIKey, cfg.APISecret)
		if cfg.HasSession() {
			client.SetSessionKey(cfg.Session)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/lastfm/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().IntVarP(&limitFlag, "limit", "n", 10, "number of results to fetch")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
