package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/config"
	"github.com/prepdrill/prepdrill/internal/engine"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdrill",
	Short: "Adaptive exam-prep drilling from the terminal",
	Long: "Prepdrill — adaptive practice, spaced review, timed mock exams, and a\n" +
		"score prediction for certification-style exams.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./config.yaml, ~/.config/prepdrill/config.yaml)")
	rootCmd.PersistentFlags().String("pool", "", "Path to the question pool JSON file (overrides PREPDRILL_POOL env var)")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openEngine loads config, opens the store, and restores the latest
// snapshot. The caller closes the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(profile.Default(), st, cfg)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	if err := eng.Load(cmd.Context()); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}

// loadPool reads and validates the question pool named by --pool, the
// PREPDRILL_POOL env var, or ./pool.json.
func loadPool(cmd *cobra.Command) ([]pool.Item, error) {
	path, _ := cmd.Flags().GetString("pool")
	if path == "" {
		path = os.Getenv("PREPDRILL_POOL")
	}
	if path == "" {
		path = "pool.json"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question pool %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	items, err := pool.Load(f, profile.Default())
	if err != nil {
		return nil, fmt.Errorf("load question pool %s: %w", path, err)
	}
	return items, nil
}
