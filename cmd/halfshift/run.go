package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/halfshift"
	"github.com/zoobzio/halfshift/internal/textfile"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Encrypt, decrypt and verify the configured files",
		Long: `Run reads the raw file, writes its encryption to the encrypted file,
re-reads that file, writes its decryption to the decrypted file, and then
compares the raw and decrypted files. It exits non-zero on a mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := a.shiftPair(cmd)
			if err != nil {
				return err
			}
			return a.run(cmd, pair)
		},
	}
}

func (a *app) run(cmd *cobra.Command, pair halfshift.ShiftPair) error {
	ctx := cmd.Context()
	c := halfshift.NewCipher(pair)

	raw, err := textfile.Read(a.cfg.RawPath)
	if err != nil {
		return err
	}
	if err := textfile.Write(a.cfg.EncryptedPath, c.Encrypt(ctx, raw)); err != nil {
		return err
	}
	a.logger.Info("Encrypted", zap.String("from", a.cfg.RawPath), zap.String("to", a.cfg.EncryptedPath))

	encrypted, err := textfile.Read(a.cfg.EncryptedPath)
	if err != nil {
		return err
	}
	if err := textfile.Write(a.cfg.DecryptedPath, c.Decrypt(ctx, encrypted)); err != nil {
		return err
	}
	a.logger.Info("Decrypted", zap.String("from", a.cfg.EncryptedPath), zap.String("to", a.cfg.DecryptedPath))

	// Compare what is on disk, not what is in memory.
	original, err := textfile.Read(a.cfg.RawPath)
	if err != nil {
		return err
	}
	decrypted, err := textfile.Read(a.cfg.DecryptedPath)
	if err != nil {
		return err
	}

	return a.report(cmd, halfshift.Check(ctx, original, encrypted, decrypted))
}

// report prints the status line and turns a mismatch into an error.
func (a *app) report(cmd *cobra.Command, r halfshift.Report) error {
	fmt.Fprintln(cmd.OutOrStdout(), r.Result)

	if !r.Result.OK() {
		a.logger.Error("Round trip failed", zap.Int("mismatch_index", r.FirstMismatch))
		return fmt.Errorf("%w at character %d", halfshift.ErrRoundTrip, r.FirstMismatch)
	}
	return nil
}
