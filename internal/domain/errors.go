package domain

import "errors"

var (
	// ErrInvalidRange возвращается интервальной моделью загрузки, когда начало периода не раньше конца.
	// Отличается от легитимного результата 0%
	ErrInvalidRange = errors.New("domain: start date must be before end date")
)
