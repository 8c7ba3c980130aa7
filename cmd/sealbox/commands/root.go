package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/app"
)

var (
	serverURL  string
	clientID   string
	configPath string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sealbox",
		Short: "Encrypted media conversion client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{}
			if configPath != "" {
				if err := app.LoadConfig(configPath, &cfg); err != nil {
					return err
				}
			}
			// Flags override the config file.
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if clientID != "" {
				cfg.ClientID = clientID
			}
			if cfg.ServerURL == "" {
				return fmt.Errorf("server URL required (--server or config file)")
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "conversion server base URL (e.g. http://127.0.0.1:8000)")
	root.PersistentFlags().StringVar(&clientID, "client-id", "", "client identifier (default: a fresh UUID)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	root.AddCommand(convertCmd(), fingerprintCmd())
	return root.Execute()
}
