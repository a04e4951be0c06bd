package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/server"
	"github.com/az-tools/cost-advisor/pkg/services/config"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

var profilePath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the cost advisor web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", "",
		"Path to an ini subscription profile")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	profile := config.DefaultProfile()
	if profilePath != "" {
		var err error
		profile, err = config.LoadProfile(profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}
	logger.Info().
		Str("subscription", profile.Subscription).
		Str("currency", profile.Currency).
		Msg("profile loaded")

	reg := registry.Default()
	logger.Info().Strs("domains", reg.Domains()).Msg("advisor domains registered")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Advisor: reg,
			Logger:  logger,
		},
	})

	return api.Start()
}
