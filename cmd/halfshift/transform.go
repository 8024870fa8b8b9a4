package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/halfshift"
	"github.com/zoobzio/halfshift/internal/textfile"
)

// transformCmd builds the encrypt or decrypt subcommand.
func (a *app) transformCmd(dir halfshift.Direction) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   string(dir),
		Short: fmt.Sprintf("%s a single file", titleCase(string(dir))),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := a.shiftPair(cmd)
			if err != nil {
				return err
			}

			src, dst := in, out
			if src == "" {
				src = a.defaultInput(dir)
			}
			if dst == "" {
				dst = a.defaultOutput(dir)
			}

			text, err := textfile.Read(src)
			if err != nil {
				return err
			}

			c := halfshift.NewCipher(pair)
			var result string
			if dir == halfshift.Decrypt {
				result = c.Decrypt(cmd.Context(), text)
			} else {
				result = c.Encrypt(cmd.Context(), text)
			}

			if err := textfile.Write(dst, result); err != nil {
				return err
			}

			a.logger.Info("Transformed",
				zap.String("direction", string(dir)),
				zap.String("from", src),
				zap.String("to", dst))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input file (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default from config)")
	return cmd
}

func (a *app) defaultInput(dir halfshift.Direction) string {
	if dir == halfshift.Decrypt {
		return a.cfg.EncryptedPath
	}
	return a.cfg.RawPath
}

func (a *app) defaultOutput(dir halfshift.Direction) string {
	if dir == halfshift.Decrypt {
		return a.cfg.DecryptedPath
	}
	return a.cfg.EncryptedPath
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
