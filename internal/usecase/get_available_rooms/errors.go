package get_available_rooms

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = errors.New("start date must not be after end date")

	// ErrRangeTooLong возвращается, когда период длиннее допустимого
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
