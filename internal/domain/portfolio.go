package domain

import "time"

// RoomOccupancy загрузка одного номера в составе портфеля
type RoomOccupancy struct {
	Room         *Room
	OccupiedDays int
	TotalDays    int
	Percentage   float64
}

// PortfolioReport загрузка набора номеров: итог по общему пространству выборок
// (номера x дни) и разбивка по номерам
type PortfolioReport struct {
	OccupiedDays int
	TotalDays    int
	Percentage   float64
	Rooms        []RoomOccupancy
}

// TotalOccupancyPercentage returns occupied samples / all samples * 100 over the combined
// rooms x days sample space. It is not an average of per-room percentages.
// An empty room list or an empty range yields 0.
func TotalOccupancyPercentage(rooms []*Room, start, end time.Time) float64 {
	var occupied, total int
	for _, room := range rooms {
		roomOccupied, roomTotal := room.OccupiedDays(start, end)
		occupied += roomOccupied
		total += roomTotal
	}
	return percentage(occupied, total)
}

// PortfolioOccupancy считает то же, что TotalOccupancyPercentage, и дополнительно
// возвращает загрузку каждого номера в исходном порядке
func PortfolioOccupancy(rooms []*Room, start, end time.Time) PortfolioReport {
	report := PortfolioReport{
		Rooms: make([]RoomOccupancy, 0, len(rooms)),
	}

	for _, room := range rooms {
		occupied, total := room.OccupiedDays(start, end)
		report.OccupiedDays += occupied
		report.TotalDays += total
		report.Rooms = append(report.Rooms, RoomOccupancy{
			Room:         room,
			OccupiedDays: occupied,
			TotalDays:    total,
			Percentage:   percentage(occupied, total),
		})
	}

	report.Percentage = percentage(report.OccupiedDays, report.TotalDays)
	return report
}

// AvailableRooms returns, in their original order, the rooms that are not occupied on
// any sampled day of [start, end]. The input slice is not modified.
func AvailableRooms(rooms []*Room, start, end time.Time) []*Room {
	available := make([]*Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsAvailable(start, end) {
			available = append(available, room)
		}
	}
	return available
}
