package main

import (
	"os"

	_ "cvhub-backend/docs" // Important for Swagger

	"github.com/spf13/cobra"
)

// @title           CVHub API
// @version         1.0
// @description     CV builder, applicant directory and company advertisements.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ServiceKey
// @in header
// @name apikey
func main() {
	root := &cobra.Command{
		Use:          "api",
		Short:        "CVHub backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
