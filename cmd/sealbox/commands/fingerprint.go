package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fingerprint: fetch the server's public key and print its fingerprint so it
// can be compared out of band before trusting it.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the server's public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			fingerprint, err := appCtx.Transfer.FetchServerKey(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(fingerprint)
			return nil
		},
	}
}
