package main

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/halfshift"
	"github.com/zoobzio/halfshift/internal/textfile"
)

func (a *app) verifyCmd() *cobra.Command {
	var original, decrypted string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare an original file with its decrypted form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if original == "" {
				original = a.cfg.RawPath
			}
			if decrypted == "" {
				decrypted = a.cfg.DecryptedPath
			}

			want, err := textfile.Read(original)
			if err != nil {
				return err
			}
			got, err := textfile.Read(decrypted)
			if err != nil {
				return err
			}

			return a.report(cmd, halfshift.Check(cmd.Context(), want, "", got))
		},
	}

	cmd.Flags().StringVar(&original, "original", "", "original file (default from config)")
	cmd.Flags().StringVar(&decrypted, "decrypted", "", "decrypted file (default from config)")
	return cmd
}
