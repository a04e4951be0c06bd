package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/az-tools/cost-advisor/pkg/adapters"
	"github.com/az-tools/cost-advisor/pkg/models/api"
	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

// Service is the slice of the domain registry the HTTP layer needs.
type Service interface {
	Domains() []string
	Get(name string) (registry.Entry, error)
	Recommend(ctx context.Context, name string) ([]domain.Recommendation, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := make([]api.Domain, 0)
	for _, name := range h.service.Domains() {
		entry, err := h.service.Get(name)
		if err != nil {
			continue
		}
		response = append(response, api.Domain{
			Name:   name,
			Policy: entry.Policy.Name,
		})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode domains")
	}
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "domain")

	recommendations, err := h.service.Recommend(ctx, name)
	if err != nil {
		writeError(w, logger, name, err)
		return
	}

	response := make([]api.Recommendation, 0, len(recommendations))
	for _, rec := range recommendations {
		response = append(response, adapters.MapDomainRecommendationToAPI(rec))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("domain", name).
			Msg("failed to encode recommendations")
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "domain")

	recommendations, err := h.service.Recommend(ctx, name)
	if err != nil {
		writeError(w, logger, name, err)
		return
	}

	summary := adapters.MapDomainSummaryToAPI(advisor.Summarize(recommendations))
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.Error().
			Err(err).
			Str("domain", name).
			Msg("failed to encode summary")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, name string, err error) {
	status := http.StatusInternalServerError
	if strings.Contains(err.Error(), "unknown domain") {
		status = http.StatusNotFound
	}

	logger.Error().
		Err(err).
		Str("domain", name).
		Msg("recommendation request failed")

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: err.Error()})
}
