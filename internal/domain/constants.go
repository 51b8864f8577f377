package domain

import "time"

// DayStep шаг, с которым обходятся дни периода во всех посуточных расчетах.
// Это ровно 24 часа (86 400 000 ms), а не календарный день: переходы на летнее время
// сдвигают точку выборки, а не пропускают ее
const DayStep = 24 * time.Hour

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxDiscountPercent = 100
	MaxNameLength      = 255
)

// OccupancyModel алгоритм расчета загрузки одного номера
type OccupancyModel string

const (
	// ModelDaily посуточная выборка: доля дней периода, в которые номер занят
	ModelDaily OccupancyModel = "daily"
	// ModelOverlap доля длительности периода, покрытая бронированиями, целиком лежащими внутри него
	ModelOverlap OccupancyModel = "overlap"
)

// DefaultOccupancyModel модель по умолчанию для API и отчетов
const DefaultOccupancyModel = ModelDaily

// IsValid returns true if the model is one of the known algorithms
func (m OccupancyModel) IsValid() bool {
	return m == ModelDaily || m == ModelOverlap
}
