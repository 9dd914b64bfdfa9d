package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"filesum/internal/adapters/filesystem"
	"filesum/internal/adapters/sqlite"
	"filesum/internal/config"
	"filesum/internal/logging"
	"filesum/internal/ports"
)

var (
	configPath string
	dbPath     string
	logLevel   string
	record     bool

	cfg      *config.Config
	logger   *log.Logger
	resolver ports.SumResolver
	store    *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "filesum-cli",
	Short: "Sum numbers across files that reference each other",
	Long: `filesum-cli resolves a text file into a total: every numeric line is
added, and every line naming another file (relative to the current file)
pulls in that file's total as well.

Resolutions can be recorded into a local SQLite database and compared
with later ones.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, source, err := config.Load(config.LoadOptions{ConfigFile: configPath})
		if err != nil {
			return err
		}
		cfg = loaded

		flags := cmd.Flags()
		if flags.Changed("db") {
			cfg.DBPath = dbPath
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("record") {
			cfg.Record = record
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		if source != "" {
			logger.Debug("loaded config", "file", source)
		}

		resolver = filesystem.NewOSResolver(filesystem.WithLogger(logger))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		err := store.Close()
		store = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/filesum/config.yaml)")
	flags.StringVar(&dbPath, "db", config.DefaultDBPath(), "path to the snapshot database")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&record, "record", false, "record resolutions in the snapshot database")
}

// GetResolver returns the initialized resolver
func GetResolver() ports.SumResolver {
	return resolver
}

// GetStore opens the snapshot database on first use
func GetStore() (ports.SnapshotStore, error) {
	if store != nil {
		return store, nil
	}

	s := sqlite.NewStore()
	if err := s.Open(cfg.DBPath); err != nil {
		return nil, err
	}
	logger.Debug("opened snapshot store", "path", s.Path())
	store = s
	return store, nil
}
