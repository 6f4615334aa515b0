package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/minipy/internal/console"
	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/runner"
	"github.com/spf13/cobra"
)

var inspectJS bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the logical lines of a program",
	Long:  `Tokenize and segment a program without running it, showing each logical line with its indentation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read program: %w", err)
		}
		program, err := interp.Compile(string(src))
		if err != nil {
			return err
		}

		if inspectJS {
			fmt.Fprint(cmd.OutOrStdout(), runner.Translate(program))
			return nil
		}
		console.FormatProgram(cmd.OutOrStdout(), program)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJS, "js", false, "Print the JavaScript translation used by the goja engine")
	rootCmd.AddCommand(inspectCmd)
}
