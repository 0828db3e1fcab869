package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/facilitydesk/core/cmd/api/commands"
)

// @title FacilityDesk API
// @version 1.0
// @description Facility services, checklists and tasks for the demo frontend

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:           "facilitydesk",
		Short:         "FacilityDesk API Server",
		Long:          `FacilityDesk serves facility services, checklists and tasks to the demo frontend and issues bearer tokens for its single login.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddConfigFlag(rootCmd)

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewHashPasswordCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
