// Package server exposes the amortization engine over a small HTTP JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mlattimer/loan-schedule/internal/cache"
	"github.com/mlattimer/loan-schedule/pkg/constants"
	"github.com/mlattimer/loan-schedule/pkg/loans"
	"github.com/mlattimer/loan-schedule/pkg/output"
	"github.com/mlattimer/loan-schedule/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	cache          cache.Cache
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the schedule API.
// resultCache may be nil to disable memoization.
func NewHandler(logger *zap.Logger, resultCache cache.Cache, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		cache:          resultCache,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Schedule computation endpoint
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Liveness endpoint
	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

type scheduleRequest struct {
	Name       string  `json:"name"`
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	TermMonths int     `json:"termMonths"`
}

type scheduleResponse struct {
	Name           string       `json:"name,omitempty"`
	MonthlyPayment float64      `json:"monthlyPayment"`
	TotalInterest  float64      `json:"totalInterest"`
	Payments       []paymentRow `json:"payments"`
	CSV            string       `json:"csv"`
	Duration       string       `json:"duration,omitempty"`
}

type paymentRow struct {
	Period             int     `json:"period"`
	Interest           float64 `json:"interest"`
	Principal          float64 `json:"principal"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	var req scheduleRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds %d bytes", h.maxRequestSize))
			return
		}
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	terms := loans.Terms{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermMonths: req.TermMonths,
	}
	if err := validation.ValidateTerms(terms); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	// Only the numeric schedule is memoized; request-specific fields like the
	// loan name are assembled per response so a cache hit is indistinguishable
	// from a recomputation.
	schedule, hit := h.cachedSchedule(r.Context(), terms)
	if !hit {
		schedule = loans.Amortize(terms)
		h.storeSchedule(r.Context(), terms, schedule)
	}

	response := scheduleResponse{
		Name:           req.Name,
		MonthlyPayment: schedule.MonthlyPayment,
		TotalInterest:  schedule.TotalInterest,
		Payments:       make([]paymentRow, 0, len(schedule.Payments)),
		CSV:            output.CsvString(req.Name, schedule),
	}
	for _, payment := range schedule.Payments {
		response.Payments = append(response.Payments, paymentRow{
			Period:             payment.Period,
			Interest:           payment.Interest,
			Principal:          payment.Principal,
			RemainingPrincipal: payment.RemainingPrincipal,
		})
	}
	response.Duration = time.Since(start).String()

	body, err := json.Marshal(response)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to encode response: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// cachedSchedule looks up a previously computed schedule for the given terms.
// A corrupt entry is treated as a miss.
func (h *handler) cachedSchedule(ctx context.Context, terms loans.Terms) (loans.Schedule, bool) {
	if h.cache == nil {
		return loans.Schedule{}, false
	}

	cached, ok := h.cache.Get(ctx, cache.Key(terms))
	if !ok {
		return loans.Schedule{}, false
	}

	var schedule loans.Schedule
	if err := json.Unmarshal([]byte(cached), &schedule); err != nil {
		h.logger.Warn("ignoring corrupt cache entry",
			zap.String("op", "server.cachedSchedule"),
			zap.String("key", cache.Key(terms)),
			zap.Error(err),
		)
		return loans.Schedule{}, false
	}

	h.logger.Debug("serving schedule from cache",
		zap.String("op", "server.cachedSchedule"),
		zap.String("key", cache.Key(terms)),
	)
	return schedule, true
}

// storeSchedule memoizes a computed schedule. A failed store only costs a
// recomputation next time.
func (h *handler) storeSchedule(ctx context.Context, terms loans.Terms, schedule loans.Schedule) {
	if h.cache == nil {
		return
	}

	body, err := json.Marshal(schedule)
	if err != nil {
		h.logger.Warn("failed to encode schedule for cache",
			zap.String("op", "server.storeSchedule"),
			zap.Error(err),
		)
		return
	}

	if err := h.cache.Set(ctx, cache.Key(terms), string(body)); err != nil {
		h.logger.Warn("failed to cache schedule",
			zap.String("op", "server.storeSchedule"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Debug("request rejected",
		zap.String("op", "server.writeError"),
		zap.Int("status", status),
		zap.Error(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
