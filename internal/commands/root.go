package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/buildinfo"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/log"
)

// envFile is read, when present, before LEDGERLAB_* overrides are applied.
const envFile = ".env"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *log.Logger
}

// setup loads configuration and builds the logger. It runs before the
// subcommands that read configuration; init and util never touch it, so a
// broken config file can still be replaced with init --force.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.WithRunID()
	a.logger.WithComponent(log.ComponentConfig).Debug("configuration loaded",
		log.String(log.FieldPath, a.configPath),
		log.String(log.FieldSortKey, cfg.Expenses.DefaultSort))
	return nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Replay bank ledgers and summarize expenses from CSV files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(a.configured(newLedgerCommand(a)))
	rootCmd.AddCommand(a.configured(newExpensesCommand(a)))
	rootCmd.AddCommand(newUtilCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// configured runs setup before cmd and flushes the logger after it.
func (a *app) configured(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	cmd.PostRun = func(cmd *cobra.Command, args []string) {
		a.logger.WithComponent(log.ComponentCLI).Debug("command finished",
			log.String(log.FieldCommand, cmd.Name()))
		_ = a.logger.Sync()
	}
	return cmd
}
