package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtime/internal/config"
	"github.com/abhisek/mathtime/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathtime",
	Short: "Arithmetic practice game for young kids",
	Long: "Mathtime is a terminal game where children aged 5-8 solve addition and\n" +
		"subtraction problems against the clock and earn video minutes.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0, 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHTIME_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATHTIME_CONFIG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env from the working directory, then the config file
// named by --config (or the default location).
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHTIME_DB or db_path from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
