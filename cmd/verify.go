package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/minipy/internal/console"
	"github.com/itsmostafa/minipy/internal/verify"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Check that the native and goja engines agree",
	Long:  `Run each program on the native interpreter and on the goja reference engine, and compare their output and errors.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := cfg.RunnerOptions()
		opts.Logger = newLogger(cfg)
		v := verify.NewVerifier(opts)

		failed := 0
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read program: %w", err)
			}
			report := v.Run(cmd.Context(), path, string(src))
			console.FormatReport(cmd.OutOrStdout(), report)
			if !report.Agreed {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d programs disagree", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
