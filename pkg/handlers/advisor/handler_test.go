package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/az-tools/cost-advisor/pkg/models/api"
	"github.com/az-tools/cost-advisor/pkg/models/domain"
	advisorsvc "github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Domains() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockService) Get(name string) (registry.Entry, error) {
	args := m.Called(name)
	return args.Get(0).(registry.Entry), args.Error(1)
}

func (m *mockService) Recommend(ctx context.Context, name string) ([]domain.Recommendation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func withDomainParam(req *http.Request, name string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("domain", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestListDomains(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*mockService)
		expectedBody []api.Domain
	}{
		{
			name: "successful response",
			setupMock: func(m *mockService) {
				m.On("Domains").Return([]string{"blob", "vm"})
				m.On("Get", "blob").Return(registry.Entry{Policy: advisorsvc.BlobAccessTierPolicy()}, nil)
				m.On("Get", "vm").Return(registry.Entry{Policy: advisorsvc.VMUtilizationPolicy()}, nil)
			},
			expectedBody: []api.Domain{
				{Name: "blob", Policy: "blob-access-tier"},
				{Name: "vm", Policy: "vm-utilization"},
			},
		},
		{
			name: "empty registry",
			setupMock: func(m *mockService) {
				m.On("Domains").Return([]string{})
			},
			expectedBody: []api.Domain{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockService)
			tt.setupMock(service)
			handler := NewHandler(service)

			req := httptest.NewRequest("GET", "/domains", nil)
			rec := httptest.NewRecorder()

			handler.ListDomains(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var response []api.Domain
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)

			service.AssertExpectations(t)
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	recs := []domain.Recommendation{
		{
			Record: domain.ResourceRecord{
				ID:            "backup-1.zip",
				CurrentTier:   domain.TierHot,
				CurrentCost:   100,
				RecencySignal: 95,
			},
			RecommendedTier:  domain.TierCool,
			PotentialSavings: 44,
		},
	}

	tests := []struct {
		name           string
		domain         string
		setupMock      func(*mockService)
		expectedStatus int
		expectedBody   []api.Recommendation
	}{
		{
			name:   "successful response",
			domain: "blob",
			setupMock: func(m *mockService) {
				m.On("Recommend", mock.Anything, "blob").Return(recs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.Recommendation{
				{
					ID:               "backup-1.zip",
					CurrentTier:      "Hot",
					RecommendedTier:  "Cool",
					CurrentCost:      100,
					PotentialSavings: 44,
					RecencySignal:    95,
					Actionable:       true,
				},
			},
		},
		{
			name:   "unknown domain",
			domain: "cosmos",
			setupMock: func(m *mockService) {
				m.On("Recommend", mock.Anything, "cosmos").
					Return(nil, fmt.Errorf("unknown domain %q", "cosmos"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "source failure",
			domain: "blob",
			setupMock: func(m *mockService) {
				m.On("Recommend", mock.Anything, "blob").
					Return(nil, fmt.Errorf("load blob fleet: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockService)
			tt.setupMock(service)
			handler := NewHandler(service)

			req := withDomainParam(httptest.NewRequest("GET", "/domains/"+tt.domain+"/recommendations", nil), tt.domain)
			rec := httptest.NewRecorder()

			handler.GetRecommendations(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response []api.Recommendation
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tt.expectedBody, response)
			} else {
				var response api.Error
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.NotEmpty(t, response.Message)
			}

			service.AssertExpectations(t)
		})
	}
}

func TestGetSummary(t *testing.T) {
	recs := []domain.Recommendation{
		{
			Record:           domain.ResourceRecord{ID: "a", CurrentTier: domain.TierHot, CurrentCost: 200},
			RecommendedTier:  domain.TierCool,
			PotentialSavings: 88,
		},
		{
			Record:          domain.ResourceRecord{ID: "b", CurrentTier: domain.TierHot, CurrentCost: 50},
			RecommendedTier: domain.TierHot,
		},
	}

	service := new(mockService)
	service.On("Recommend", mock.Anything, "blob").Return(recs, nil)
	handler := NewHandler(service)

	req := withDomainParam(httptest.NewRequest("GET", "/domains/blob/summary", nil), "blob")
	rec := httptest.NewRecorder()

	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.Summary
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 2, response.Records)
	assert.Equal(t, 1, response.Actionable)
	assert.InDelta(t, 250, response.TotalCurrentCost, 1e-9)
	assert.InDelta(t, 88, response.TotalSavings, 1e-9)
	assert.InDelta(t, 88*12, response.AnnualSavings, 1e-9)
	if assert.NotNil(t, response.ROI) {
		assert.InDelta(t, 88.0/250.0, *response.ROI, 1e-9)
	}

	service.AssertExpectations(t)
}

func TestGetSummary_UndefinedROI(t *testing.T) {
	service := new(mockService)
	service.On("Recommend", mock.Anything, "blob").Return([]domain.Recommendation{}, nil)
	handler := NewHandler(service)

	req := withDomainParam(httptest.NewRequest("GET", "/domains/blob/summary", nil), "blob")
	rec := httptest.NewRecorder()

	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"roi"`)

	var response api.Summary
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Nil(t, response.ROI)
}
