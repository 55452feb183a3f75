package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/hdbplan/hdbplan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the affordability HTTP API",
	Long:  "Serve the calculator over JSON endpoints with rate limiting and a response cache",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("server-config")
		if configFile == "" && fileExists("server.yaml") {
			configFile = "server.yaml"
		}

		cfg, err := server.LoadConfig(configFile)
		if err != nil {
			log.Fatal(err)
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.ListenAddress = listen
		}

		logger, err := server.NewLogger(cfg.Logging)
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		srv := server.New(cfg, logger, loadPolicyFromFlags(cmd))
		if err := srv.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	serveCmd.Flags().String("server-config", "", "Path to server config (default: server.yaml if it exists)")
	serveCmd.Flags().String("listen", "", "Listen address override, e.g. :8080")
	serveCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(serveCmd)
}
