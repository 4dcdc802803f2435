package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/pkazanov/portfolio/internal/config"
	"github.com/spf13/cobra"
)

// Cfg is the global variable that will contain the loaded configuration.
// It is populated before any subcommand runs.
var Cfg *config.Config

// RootCmd is the base command for the CLI application.
// Subcommands (run-server, migrate, create-project, resend) register
// themselves via their own init() functions.
var RootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A personal portfolio backend",
	Long: `A personal portfolio backend serving the projects API, the contact
form with its Telegram relay, and the social links endpoint.`,
}

// Execute is the main entry point for the Cobra application.
// It is called from 'main.go' and handles command execution and error handling.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Load configuration before any command executes.
	cobra.OnInitialize(initConfig)
}

// initConfig loads the application configuration for every command.
func initConfig() {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		log.Printf("Warning: Problem loading configuration: %v. Using default values.", err)
	}
}
