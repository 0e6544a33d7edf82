/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/raccoonbooks/biblio-cli/internal/api"
	"github.com/raccoonbooks/biblio-cli/internal/config"
	"github.com/raccoonbooks/biblio-cli/internal/logger"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "biblio",
	Short: "Raccoon Books client: people, books, reservations and fines",
	Long: `biblio is the command-line client of the Raccoon Books library service.
All data lives in the remote API; the CLI lists it, creates records and runs
the reservation/return workflows against it.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newClient wires config, logger and API client for a command run.
func newClient() (*api.Client, *model.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLog := logger.New(cfg.LogLevel)
	return api.NewClient(*cfg, zapLog), cfg, zapLog, nil
}

// failMessage picks the fixed user-facing text for remote failures and
// falls back to the error itself for everything else.
func failMessage(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.UserMessage()
	}
	return err.Error()
}

func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
