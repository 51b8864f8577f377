package main

import (
	"github.com/spf13/cobra"

	getAvailableRooms "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/metrics"
)

func newAvailableCmd(configPath *string) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "available",
		Short: "Rooms that are free on every day of the period, with a quoted fee",
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

			uc := getAvailableRooms.NewUseCase(e.rooms, e.bookings, (*metrics.Metrics)(nil), e.cfg.Occupancy.MaxRangeDays, e.log)
			resp, err := uc.Execute(cmd.Context(), &getAvailableRooms.Request{
				StartDate: from,
				EndDate:   to,
			})
			if err != nil {
				return err
			}

			renderAvailable(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	period.register(cmd)

	return cmd
}
