package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerlab/internal/expense"
	"github.com/cleared-dev/ledgerlab/internal/log"
)

// FileName is the default config file looked up in the working directory.
const FileName = "ledgerlab.yaml"

// Environment variables that override file settings.
const (
	EnvLogLevel     = "LEDGERLAB_LOG_LEVEL"
	EnvExpensesSort = "LEDGERLAB_EXPENSES_SORT"
	EnvExpensesTop  = "LEDGERLAB_EXPENSES_TOP"
	EnvLedgerOwner  = "LEDGERLAB_LEDGER_OWNER"
)

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Expenses ExpensesConfig `yaml:"expenses"`
	Log      LogConfig      `yaml:"log"`
}

// LedgerConfig holds defaults for the ledger command.
type LedgerConfig struct {
	DefaultOwner string `yaml:"default_owner,omitempty"`
}

// ExpensesConfig holds defaults for the expenses command.
type ExpensesConfig struct {
	DefaultSort string `yaml:"default_sort"`
	Top         int    `yaml:"top"` // 0 = no limit
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a ledgerlab.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Expenses: ExpensesConfig{
			DefaultSort: string(expense.SortAmountDesc),
		},
		Log: LogConfig{
			Level: log.DefaultLevel,
		},
	}
}

// ApplyEnv loads envFiles (if present) into the process environment and then
// applies LEDGERLAB_* overrides on top of cfg. Variables already set in the
// environment win over values from the files.
func (c *Config) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvExpensesSort); ok {
		c.Expenses.DefaultSort = v
	}
	if v, ok := os.LookupEnv(EnvLedgerOwner); ok {
		c.Ledger.DefaultOwner = v
	}
	if v, ok := os.LookupEnv(EnvExpensesTop); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvExpensesTop, err)
		}
		c.Expenses.Top = n
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}

	if _, err := expense.ParseSortKey(c.Expenses.DefaultSort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid default sort: %v", err))
	}

	if c.Expenses.Top < 0 {
		problems = append(problems, fmt.Sprintf("invalid top %d: must not be negative", c.Expenses.Top))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
