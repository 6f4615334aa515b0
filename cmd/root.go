package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/itsmostafa/minipy/internal/config"
	"github.com/itsmostafa/minipy/internal/console"
	"github.com/itsmostafa/minipy/internal/version"
	"github.com/spf13/cobra"
)

var configFile string
var trace bool

var rootCmd = &cobra.Command{
	Use:   "minipy",
	Short: "Interpreter for a minimal indentation-scoped scripting language",
	Long: `minipy runs programs written in a small Python-flavored language:
integer variables, print, if/else and while, with expressions folded
strictly left to right.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("minipy %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Log every executed line to stderr")
}

// loadConfig resolves the config file, environment and persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = trace
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	return console.NewLogger(os.Stderr, cfg.Trace)
}

// Execute runs the root command. An interrupt cancels the running program.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		console.FormatError(os.Stderr, err)
		os.Exit(1)
	}
}
