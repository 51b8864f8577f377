package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_available_rooms"
	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
)

// Пороги подсветки процента загрузки
const (
	highOccupancy = 80.0
	lowOccupancy  = 30.0
)

var (
	headerColor = color.New(color.FgYellow).Add(color.Bold)
	highColor   = color.New(color.FgGreen)
	lowColor    = color.New(color.FgRed)
	faintColor  = color.New(color.Faint)
)

func period(start, end time.Time) string {
	return fmt.Sprintf("%s .. %s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))
}

func formatPercent(p float64) string {
	s := fmt.Sprintf("%6.2f%%", p)
	switch {
	case p >= highOccupancy:
		return highColor.Sprint(s)
	case p < lowOccupancy:
		return lowColor.Sprint(s)
	default:
		return s
	}
}

func renderPortfolio(w io.Writer, resp *getPortfolioOccupancy.Response) {
	headerColor.Fprintf(w, "Portfolio occupancy %s\n",
		period(resp.StartDate, resp.EndDate))

	if len(resp.Rooms) == 0 {
		faintColor.Fprintln(w, "no rooms")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROOM\tOCCUPIED\tDAYS\tOCCUPANCY")
	for _, room := range resp.Rooms {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
			room.RoomID, room.RoomName, room.OccupiedDays, room.TotalDays, formatPercent(room.Percentage))
	}
	fmt.Fprintf(tw, "\tTOTAL\t%d\t%d\t%s\n", resp.OccupiedDays, resp.TotalDays, formatPercent(resp.Percentage))
	_ = tw.Flush()
}

func renderAvailable(w io.Writer, resp *getAvailableRooms.Response) {
	headerColor.Fprintf(w, "Available rooms %s\n",
		period(resp.StartDate, resp.EndDate))

	if len(resp.Rooms) == 0 {
		faintColor.Fprintln(w, "no rooms available")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROOM\tRATE\tDISCOUNT\tNIGHTS\tFEE")
	for _, room := range resp.Rooms {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.0f%%\t%d\t%.2f\n",
			room.RoomID, room.Name, room.Rate, room.Discount, room.Nights, room.QuotedFee)
	}
	_ = tw.Flush()
}

func renderRoom(w io.Writer, resp *getRoomOccupancy.Response) {
	headerColor.Fprintf(w, "Room %d %q occupancy %s\n", resp.RoomID, resp.RoomName,
		period(resp.StartDate, resp.EndDate))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "model:\t%s\n", resp.Model)
	if resp.Model == domain.ModelDaily {
		fmt.Fprintf(tw, "occupied days:\t%d of %d\n", resp.OccupiedDays, resp.TotalDays)
	}
	fmt.Fprintf(tw, "occupancy:\t%s\n", formatPercent(resp.Percentage))
	_ = tw.Flush()
}
