package main

import (
	"github.com/spf13/cobra"

	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/metrics"
)

func newPortfolioCmd(configPath *string) *cobra.Command {
	var (
		period  periodFlags
		roomIDs []int64
	)

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Total occupancy of all (or selected) rooms with a per-room breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := period.parse()
			if err != nil {
				return err
			}

			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			uc := getPortfolioOccupancy.NewUseCase(e.rooms, e.bookings, (*metrics.Metrics)(nil), e.cfg.Occupancy.MaxRangeDays, e.log)
			resp, err := uc.Execute(cmd.Context(), &getPortfolioOccupancy.Request{
				RoomIDs:   roomIDs,
				StartDate: from,
				EndDate:   to,
			})
			if err != nil {
				return err
			}

			renderPortfolio(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().Int64SliceVar(&roomIDs, "rooms", nil, "room ids to include, comma separated (default: all rooms)")

	return cmd
}
