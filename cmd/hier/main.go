package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0-dev"

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
)

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

// app is the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    Config
	logger *zap.Logger

	buildLogger func(zap.Config) (*zap.Logger, error)
}

func newApp() *app {
	return &app{
		logger:      zap.NewNop(),
		buildLogger: func(c zap.Config) (*zap.Logger, error) { return c.Build() },
	}
}

// execute runs root and flushes the logger whether or not the command failed.
func (a *app) execute(root *cobra.Command) error {
	defer func() { _ = a.logger.Sync() }()
	return root.Execute()
}

func main() {
	a := newApp()
	if err := a.execute(newRootCmd(a)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hier",
		Short:         "Link flat parent/child records into trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := a.buildLogger(config)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger

			// config init replaces the file, so its current contents do not matter.
			if cmd.Name() == "init" {
				a.cfg = defaultConfig()
				return nil
			}
			cfg, err := loadConfig(a.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("config loaded",
				zap.String("path", a.configPath),
				zap.String("id", cfg.ID),
				zap.String("parent", cfg.Parent))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigFile, "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hier "+version)
		},
	}
}
