package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
)

const defaultConfigPath = "config.toml"

// periodFlags общие флаги периода отчета
type periodFlags struct {
	from string
	to   string
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.from, "from", "", "start of the period, YYYY-MM-DD or RFC3339 (required)")
	cmd.Flags().StringVar(&p.to, "to", "", "end of the period, YYYY-MM-DD or RFC3339 (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (p *periodFlags) parse() (time.Time, time.Time, error) {
	from, err := handlers.ParseDate(p.from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	to, err := handlers.ParseDate(p.to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return from, to, nil
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "occupancy-report",
		Short:         "Print hotel occupancy reports straight from the service database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the service config.toml")

	rootCmd.AddCommand(
		newPortfolioCmd(&configPath),
		newAvailableCmd(&configPath),
		newRoomCmd(&configPath),
	)

	return rootCmd
}
