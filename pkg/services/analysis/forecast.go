package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

// ForecastSpend fits an ordinary least squares line over the day index
// of the series and projects it horizon days beyond the last point.
// Fewer than two points cannot carry a trend and return a flat forecast
// at the observed average.
func ForecastSpend(points []domain.CostPoint, horizon int) domain.Forecast {
	forecast := domain.Forecast{Horizon: horizon}
	if len(points) == 0 {
		return forecast
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, point := range points {
		xs[i] = float64(i)
		ys[i] = point.Total
	}
	forecast.DailyAverage = stat.Mean(ys, nil)

	if len(points) < 2 {
		forecast.ProjectedLastDay = forecast.DailyAverage
		forecast.ProjectedTotal = forecast.DailyAverage * float64(horizon)
		return forecast
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	forecast.TrendPerDay = beta

	last := len(points) - 1
	for day := 1; day <= horizon; day++ {
		projected := alpha + beta*float64(last+day)
		if projected < 0 {
			projected = 0
		}
		forecast.ProjectedTotal += projected
		if day == horizon {
			forecast.ProjectedLastDay = projected
		}
	}
	forecast.ExpectedIncrease = forecast.ProjectedLastDay - points[last].Total
	return forecast
}
