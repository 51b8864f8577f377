package get_portfolio_occupancy

import (
	"context"

	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
)

type GetPortfolioOccupancyUseCase interface {
	Execute(ctx context.Context, req *getPortfolioOccupancy.Request) (*getPortfolioOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
