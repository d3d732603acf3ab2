package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"triage/internal/engine"
	"triage/internal/task"
	"triage/internal/telemetry"
)

// TaskHandler handles task prioritization HTTP requests.
type TaskHandler struct {
	defaultStrategy string
	validator       *validator.Validate
	emitter         *telemetry.Emitter
}

// NewTaskHandler creates a TaskHandler. defaultStrategy is applied when a
// request names no strategy; emitter may be nil to disable telemetry.
func NewTaskHandler(defaultStrategy string, emitter *telemetry.Emitter) *TaskHandler {
	return &TaskHandler{
		defaultStrategy: defaultStrategy,
		validator:       validator.New(),
		emitter:         emitter,
	}
}

// Analyze handles POST /api/tasks/analyze requests.
func (h *TaskHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ref, ok := h.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = h.defaultStrategy
	}

	res, err := engine.Analyze(req.Tasks, strategy, ref)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownStrategy) {
			respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("analyze failed", "error", err, "strategy", strategy)
		respondError(w, r, http.StatusInternalServerError, "analysis failed")
		return
	}

	if err := h.emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindRequest,
		Strategy:  strategy,
		Tasks:     res.TotalTasks(),
		Invalid:   len(res.Errors),
		Cycles:    len(res.CycleGroups),
		Data:      map[string]string{"endpoint": "analyze"},
	}); err != nil {
		slog.Warn("telemetry emit failed", "error", err)
	}

	respondJSON(w, http.StatusOK, ToAnalyzeResponse(res))
}

// Suggest handles POST /api/tasks/suggest requests.
func (h *TaskHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	req, ref, ok := h.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = h.defaultStrategy
	}

	res, err := engine.Suggest(req.Tasks, strategy, ref)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownStrategy) {
			respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("suggest failed", "error", err, "strategy", strategy)
		respondError(w, r, http.StatusInternalServerError, "suggestion failed")
		return
	}

	if err := h.emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindRequest,
		Strategy:  strategy,
		Tasks:     res.TasksAnalyzed,
		Invalid:   len(res.Errors),
		Cycles:    len(res.CycleGroups),
		Data:      map[string]string{"endpoint": "suggest"},
	}); err != nil {
		slog.Warn("telemetry emit failed", "error", err)
	}

	respondJSON(w, http.StatusOK, ToSuggestResponse(res))
}

// Strategies handles GET /api/strategies requests.
func (h *TaskHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StrategiesResponse{
		Strategies: engine.Strategies(),
		Default:    h.defaultStrategy,
	})
}

// decodeAnalyzeRequest parses and validates the shared request body and
// resolves the reference date. On failure it writes the 400 response itself
// and returns ok=false.
func (h *TaskHandler) decodeAnalyzeRequest(
	w http.ResponseWriter,
	r *http.Request,
) (AnalyzeRequest, task.Date, bool) {
	var req AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, task.Date{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return req, task.Date{}, false
	}

	ref := task.Today()
	if req.ReferenceDate != "" {
		parsed, err := task.ParseDate(req.ReferenceDate)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "Invalid reference_date: "+req.ReferenceDate)
			return req, task.Date{}, false
		}
		ref = parsed
	}

	return req, ref, true
}
