package booking

import (
	"github.com/m04kA/SMC-HotelOccupancy/pkg/dbmetrics"
)

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
