package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/halfshift"
	"github.com/zoobzio/halfshift/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	// flags
	shift1  string
	shift2  string
	envFile string
	verbose bool

	// newLogger is swapped in tests.
	newLogger func(level string, verbose bool) (*zap.Logger, error)
}

func rootCmd() *cobra.Command {
	a := &app{newLogger: buildLogger}
	return a.command()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "halfshift",
		Short: "Two-shift half-alphabet substitution cipher",
		Long: `halfshift encrypts and decrypts text with a reversible substitution cipher
driven by two integer shifts. Each letter moves only within its own half of
the alphabet (A-M, N-Z, a-m, n-z); everything else is left untouched.

Shifts come from --shift1/--shift2, HALFSHIFT_SHIFT1/HALFSHIFT_SHIFT2, or an
interactive prompt, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := a.newLogger(cfg.LogLevel, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.shift1, "shift1", "", "first shift (integer)")
	flags.StringVar(&a.shift2, "shift2", "", "second shift (integer)")
	flags.StringVar(&a.envFile, "env-file", "", "path to a .env file (default .env)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(a.runCmd())
	cmd.AddCommand(a.transformCmd(halfshift.Encrypt))
	cmd.AddCommand(a.transformCmd(halfshift.Decrypt))
	cmd.AddCommand(a.verifyCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// buildLogger returns a production zap logger at the configured level.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// shiftPair resolves the shifts from flags, then config, then a prompt on
// the command's input. Malformed values fail with halfshift.ErrInvalidShift
// before any file is touched.
func (a *app) shiftPair(cmd *cobra.Command) (halfshift.ShiftPair, error) {
	s1, s2 := a.shift1, a.shift2
	if s1 == "" {
		s1 = a.cfg.Shift1
	}
	if s2 == "" {
		s2 = a.cfg.Shift2
	}

	if s1 == "" || s2 == "" {
		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		var err error
		if s1 == "" {
			if s1, err = prompt(in, out, "enter shift 1:"); err != nil {
				return halfshift.ShiftPair{}, err
			}
		}
		if s2 == "" {
			if s2, err = prompt(in, out, "enter shift 2:"); err != nil {
				return halfshift.ShiftPair{}, err
			}
		}
	}

	pair, err := halfshift.ParseShiftPair(s1, s2)
	if err != nil {
		return halfshift.ShiftPair{}, err
	}

	a.logger.Debug("Shifts resolved", zap.Int("shift1", pair.Shift1), zap.Int("shift2", pair.Shift2))
	return pair, nil
}

// prompt writes label and reads one line.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	if _, err := fmt.Fprint(out, label); err != nil {
		return "", err
	}

	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ":"), err)
	}
	return strings.TrimSpace(line), nil
}
