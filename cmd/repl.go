package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/itsmostafa/minipy/internal/config"
	"github.com/itsmostafa/minipy/internal/console"
	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/lexer"
	"github.com/itsmostafa/minipy/internal/runner"
	"github.com/itsmostafa/minipy/internal/token"
	"github.com/itsmostafa/minipy/internal/version"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	promptMain = ">>> "
	promptCont = "... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Variables persist between inputs.
A line ending in ':' opens a block that is closed by an empty line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		console.FormatBanner(out, version.Version, uuid.NewString())

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		if histPath, ok := historyPath(cfg.HistoryFile); ok {
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				f, err := os.Create(histPath)
				if err != nil {
					console.FormatError(cmd.ErrOrStderr(), fmt.Errorf("failed to save history: %w", err))
					return
				}
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}()
		}

		env := interp.NewEnv()
		opts := cfg.RunnerOptions()
		opts.Logger = newLogger(cfg)
		native := runner.NewNative(opts, env)

		for {
			src, ok := readInput(ln)
			if !ok {
				fmt.Fprintln(out)
				return nil
			}

			switch strings.TrimSpace(src) {
			case "":
				continue
			case ":quit":
				return nil
			case ":vars":
				console.FormatVars(out, env)
				continue
			case ":reset":
				env.Reset()
				continue
			}

			// an interrupt cancels this input only, not the session
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err := native.Run(ctx, src, out)
			stop()
			if err != nil {
				console.FormatError(cmd.ErrOrStderr(), err)
			}
			ln.AppendHistory(strings.ReplaceAll(strings.TrimRight(src, "\n"), "\n", " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// historyPath resolves the REPL history file. An empty name falls back to
// the default; relative names live under the home directory, and ok is false
// when that cannot be resolved.
func historyPath(name string) (path string, ok bool) {
	if name == "" {
		name = config.Default().HistoryFile
	}
	if filepath.IsAbs(name) {
		return name, true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, name), true
}

// readInput reads one statement, or a whole block when the first line opens
// one. ok is false at end of input.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder

	line, err := ln.Prompt(promptMain)
	if errors.Is(err, io.EOF) {
		return "", false
	}
	if err != nil {
		return "", true
	}
	b.WriteString(line)
	b.WriteByte('\n')

	if !opensBlock(line) {
		return b.String(), true
	}

	for {
		line, err := ln.Prompt(promptCont)
		if errors.Is(err, io.EOF) {
			return b.String(), true
		}
		if err != nil {
			return "", true
		}
		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// opensBlock reports whether line is an if, while or else header.
func opensBlock(line string) bool {
	toks, err := lexer.Tokenize(line)
	if err != nil || len(toks) < 2 {
		return false
	}
	switch toks[0].Kind {
	case token.If, token.While, token.Else:
	default:
		return false
	}
	for _, tok := range toks {
		if tok.Kind == token.Colon {
			return true
		}
	}
	return false
}
