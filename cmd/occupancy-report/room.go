package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/metrics"
)

func newRoomCmd(configPath *string) *cobra.Command {
	var (
		period periodFlags
		roomID int64
		model  string
	)

	cmd := &cobra.Command{
		Use:   "room",
		Short: "Occupancy of a single room using the daily or overlap model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if roomID <= 0 {
				return errors.New("--id must be a positive room id")
			}

			from, to, err := period.parse()
			if err != nil {
				return err
			}

			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			uc := getRoomOccupancy.NewUseCase(
				e.rooms,
				e.bookings,
				(*metrics.Metrics)(nil),
				e.cfg.Occupancy.MaxRangeDays,
				domain.OccupancyModel(e.cfg.Occupancy.DefaultModel),
				e.log,
			)
			resp, err := uc.Execute(cmd.Context(), &getRoomOccupancy.Request{
				RoomID:    roomID,
				StartDate: from,
				EndDate:   to,
				Model:     domain.OccupancyModel(model),
			})
			if err != nil {
				return err
			}

			renderRoom(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().Int64Var(&roomID, "id", 0, "room id (required)")
	cmd.Flags().StringVar(&model, "model", "", "occupancy model: daily or overlap (default from config)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
