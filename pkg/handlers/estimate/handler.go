package estimate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/de-tools/backup-atlas/pkg/adapters"
	"github.com/de-tools/backup-atlas/pkg/models/api"
	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/services/catalog"
	"github.com/de-tools/backup-atlas/pkg/services/forecast"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Estimator is the slice of the forecast service the handler needs.
type Estimator interface {
	Estimate(res domain.Resource) (domain.CostForecast, error)
}

type Handler struct {
	estimator Estimator
	catalog   *catalog.Catalog
}

func NewHandler(estimator Estimator, cat *catalog.Catalog) *Handler {
	return &Handler{
		estimator: estimator,
		catalog:   cat,
	}
}

// Estimate handles POST /estimate with a single resource as JSON body.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var res api.Resource
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&res); err != nil {
		http.Error(w, "invalid request body: expected JSON with fields type, size_gb, job", http.StatusBadRequest)
		return
	}

	result, err := h.estimator.Estimate(adapters.MapResourceApiToDomain(res))
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapForecastDomainToApi(result)); err != nil {
		logger.Error().
			Err(err).
			Str("type", res.Type).
			Msg("failed to encode cost result")
	}
}

// EstimateBatch handles POST /estimate/csv with a multipart CSV upload
// (columns type, size_gb, job). A validation failure on any row aborts
// the entire batch; there are no partial results.
func (h *Handler) EstimateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing multipart field 'file'", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		http.Error(w, "only CSV files are supported", http.StatusBadRequest)
		return
	}

	resources, err := ParseResources(file)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	results := make([]api.CostResult, 0, len(resources))
	for _, res := range resources {
		result, err := h.estimator.Estimate(res)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		results = append(results, adapters.MapForecastDomainToApi(result))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		logger.Error().
			Err(err).
			Int("rows", len(resources)).
			Msg("failed to encode batch cost results")
	}
}

// ListSchedules handles GET /schedules.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := lo.Map(h.catalog.Schedules(), func(s domain.Schedule, _ int) api.Schedule {
		return adapters.MapScheduleDomainToApi(s)
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode schedules")
	}
}

// ListResourceTypes handles GET /resource-types.
func (h *Handler) ListResourceTypes(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := lo.Map(h.catalog.ResourceTypes(), func(rt string, _ int) api.ResourceType {
		price, _ := h.catalog.Price(rt)
		return api.ResourceType{Type: rt, WarmPrice: price.Warm, ColdPrice: price.Cold}
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode resource types")
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, forecast.ErrUnsupportedResourceType),
		errors.Is(err, forecast.ErrUnknownBackupJob),
		errors.Is(err, forecast.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
