package adapters

import (
	"maps"

	"github.com/az-tools/cost-advisor/pkg/models/api"
	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/models/store"
)

func MapStoreRecordToDomain(rec store.ResourceRecord) domain.ResourceRecord {
	return domain.ResourceRecord{
		ID:            rec.ID,
		SizeMetric:    rec.SizeMetric,
		CurrentCost:   rec.CurrentCost,
		CurrentTier:   domain.Tier(rec.CurrentTier),
		RecencySignal: rec.RecencySignal,
		Labels:        maps.Clone(rec.Labels),
	}
}

func MapDomainRecordToStore(rec domain.ResourceRecord, advisorDomain string) store.ResourceRecord {
	return store.ResourceRecord{
		ID:            rec.ID,
		Domain:        advisorDomain,
		SizeMetric:    rec.SizeMetric,
		CurrentCost:   rec.CurrentCost,
		CurrentTier:   string(rec.CurrentTier),
		RecencySignal: rec.RecencySignal,
		Labels:        maps.Clone(rec.Labels),
	}
}

func MapDomainRecommendationToAPI(rec domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		ID:               rec.Record.ID,
		CurrentTier:      string(rec.Record.CurrentTier),
		RecommendedTier:  string(rec.RecommendedTier),
		CurrentCost:      rec.Record.CurrentCost,
		PotentialSavings: rec.PotentialSavings,
		RecencySignal:    rec.Record.RecencySignal,
		Actionable:       rec.Actionable(),
	}
}

func MapDomainSummaryToAPI(s domain.Summary) api.Summary {
	out := api.Summary{
		Records:          s.Records,
		Actionable:       s.Actionable,
		TotalCurrentCost: s.TotalCurrentCost,
		TotalSavings:     s.TotalSavings,
		AnnualSavings:    s.AnnualSavings,
	}
	if s.ROI.Defined {
		roi := s.ROI.Value
		out.ROI = &roi
	}
	return out
}
