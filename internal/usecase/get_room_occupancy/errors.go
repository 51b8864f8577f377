package get_room_occupancy

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidRange возвращается, когда начало периода позже конца,
	// а для модели overlap также когда начало совпадает с концом
	ErrInvalidRange = errors.New("start date must be before end date")

	// ErrRangeTooLong возвращается, когда период длиннее допустимого
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrInvalidModel возвращается при неизвестной модели расчета
	ErrInvalidModel = errors.New("unknown occupancy model")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
