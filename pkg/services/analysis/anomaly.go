package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
)

const anomalyWindow = 7

// DetectAnomalies flags days whose total spend deviates from the
// trailing seven-day moving average by more than two rolling standard
// deviations. The per-service series supplies the top three services
// contributing to each flagged day.
func DetectAnomalies(points []domain.CostPoint, series []domain.ServiceCost) []domain.Anomaly {
	var anomalies []domain.Anomaly
	for i := anomalyWindow; i < len(points); i++ {
		window := make([]float64, anomalyWindow)
		for j := 0; j < anomalyWindow; j++ {
			window[j] = points[i-anomalyWindow+j].Total
		}
		avg := stat.Mean(window, nil)
		sd := stat.StdDev(window, nil)
		if sd == 0 {
			continue
		}

		diff := points[i].Total - avg
		if diff < 0 {
			diff = -diff
		}
		if diff <= 2*sd {
			continue
		}

		anomalies = append(anomalies, domain.Anomaly{
			Date:         points[i].Date,
			Cost:         points[i].Total,
			MovingAvg:    avg,
			DeviationPct: (points[i].Total - avg) / avg * 100,
			TopServices:  topServicesOn(series, points[i].Date, 3),
		})
	}
	return anomalies
}

func topServicesOn(series []domain.ServiceCost, date time.Time, n int) []string {
	day := date.Truncate(24 * time.Hour)
	totals := make(map[string]float64)
	for _, point := range series {
		if point.Date.Truncate(24 * time.Hour).Equal(day) {
			totals[point.Service] += point.Cost
		}
	}

	services := make([]string, 0, len(totals))
	for svc := range totals {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		if totals[services[i]] != totals[services[j]] {
			return totals[services[i]] > totals[services[j]]
		}
		return services[i] < services[j]
	})
	if n < len(services) {
		services = services[:n]
	}
	return services
}
