package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// convert <file>: run the whole encrypted conversion session and write the
// decrypted result next to the current directory.
func convertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Encrypt a media file, upload it for conversion, and decrypt the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			mediaType := strings.TrimPrefix(filepath.Ext(path), ".")
			if mediaType == "" {
				mediaType = "mp4"
			}

			ctx := cmd.Context()
			svc := appCtx.Transfer

			fingerprint, err := svc.FetchServerKey(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Server key fingerprint: %s\n", fingerprint)

			if err := svc.GenerateKeys(); err != nil {
				return err
			}
			if err := svc.Register(ctx); err != nil {
				return err
			}
			fmt.Printf("Registered as %s\n", appCtx.Session.ClientID)

			if err := svc.EncryptAndUpload(ctx, data, mediaType); err != nil {
				return err
			}

			result, err := svc.DecryptResult()
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = result.Filename
			}
			if err := os.WriteFile(out, result.Plaintext, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes, %s)\n", out, len(result.Plaintext), result.MIME)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: suggested result filename)")
	return cmd
}
