package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/itsmostafa/minipy/internal/runner"
	"github.com/spf13/cobra"
)

var runEngine string
var runMaxSteps int
var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program",
	Long:  `Run a program and write each printed value to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("engine") {
			cfg.Engine = runEngine
		}
		if cmd.Flags().Changed("max-steps") {
			cfg.MaxSteps = runMaxSteps
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = runTimeout
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read program: %w", err)
		}

		opts := cfg.RunnerOptions()
		opts.Logger = newLogger(cfg)
		r, err := runner.New(cfg.Engine, opts)
		if err != nil {
			return err
		}
		return r.Run(cmd.Context(), string(src), cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringVar(&runEngine, "engine", runner.NameNative, "Engine to use (native, goja)")
	runCmd.Flags().IntVarP(&runMaxSteps, "max-steps", "n", 0, "Maximum executed lines (0 = unlimited)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Abort the run after this long (0 = no limit)")

	rootCmd.AddCommand(runCmd)
}
