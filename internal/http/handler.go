package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tamarw/sillage/internal/config"
	"github.com/tamarw/sillage/internal/domain"
	"github.com/tamarw/sillage/internal/observability"
)

// backendHeader optionally selects a registered catalog backend by name.
const backendHeader = "X-Catalog-Backend"

// Handler handles HTTP requests.
type Handler struct {
	discovery       *domain.DiscoveryService
	suggestionLimit int
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(discovery *domain.DiscoveryService, catalogCfg *config.CatalogConfig) *Handler {
	return &Handler{
		discovery:       discovery,
		suggestionLimit: catalogCfg.SuggestionLimit,
	}
}

// requestContext injects the optional backend override and the session ID
// into the request context for downstream logging and backend selection.
func requestContext(r *http.Request, sessionID string) context.Context {
	ctx := r.Context()
	if backend := r.Header.Get(backendHeader); backend != "" {
		ctx = observability.WithBackend(ctx, backend)
	}
	if sessionID != "" {
		ctx = observability.WithSessionID(ctx, sessionID)
	}
	return ctx
}

// sessionResponse is returned when a session is created.
type sessionResponse struct {
	SessionID string `json:"session_id"`
	Page      int    `json:"page"`
}

// HandleCreateSession opens a new search session.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r, "")

	session, err := h.discovery.CreateSession(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("session creation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, sessionResponse{
		SessionID: session.ID(),
		Page:      session.Pagination().Current,
	})
}

// HandleDropSession removes a session.
func (h *Handler) HandleDropSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	if err := h.discovery.DropSession(ctx, sessionID); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleResults returns one page of results for a session, serving from the
// page cache when possible. Out-of-range page numbers are clamped, not
// rejected.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	var page int
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid page number: %q", raw), http.StatusBadRequest)
			return
		}
		page = parsed
	} else {
		// No explicit page: stay on the session's current page, which may
		// have been restored from the page store at session creation.
		session, err := h.discovery.Session(ctx, sessionID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		page = session.Pagination().Current
	}

	result, err := h.discovery.GetResults(ctx, sessionID, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleSubmitFilter replaces the session filter wholesale and returns page 1
// of the new result set. An identical resubmission is served from cache.
func (h *Handler) HandleSubmitFilter(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	var filter domain.FilterSet
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.discovery.Submit(ctx, sessionID, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// toggleRequest toggles one member of a list filter field.
type toggleRequest struct {
	Field domain.ListField `json:"field"`
	Value string           `json:"value"`
}

// HandleToggleFilter toggles a list filter member and returns page 1 of the
// updated result set.
func (h *Handler) HandleToggleFilter(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	switch req.Field {
	case domain.FieldBrands, domain.FieldAccords, domain.FieldTopNotes,
		domain.FieldMiddleNotes, domain.FieldBaseNotes:
	default:
		http.Error(w, fmt.Sprintf("unknown list field: %q", req.Field), http.StatusBadRequest)
		return
	}
	if req.Value == "" {
		http.Error(w, "value cannot be empty", http.StatusBadRequest)
		return
	}

	result, err := h.discovery.ToggleFilter(ctx, sessionID, req.Field, req.Value)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// clearResponse reports the unfiltered catalog size after a clear.
type clearResponse struct {
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// HandleClearFilters resets the session filter and refreshes total-page
// bookkeeping without fetching a results page.
func (h *Handler) HandleClearFilters(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	count, err := h.discovery.ClearFilters(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.discovery.Session(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, clearResponse{
		TotalCount: count,
		TotalPages: session.Pagination().Total,
	})
}

// paginationResponse describes the pager control state.
type paginationResponse struct {
	Pagination  domain.Pagination `json:"pagination"`
	Pages       []int             `json:"pages"` // -1 marks an ellipsis
	HasPrevious bool              `json:"has_previous"`
	HasNext     bool              `json:"has_next"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
}

// HandlePagination returns the pagination state and the compact page strip.
func (h *Handler) HandlePagination(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	ctx := requestContext(r, sessionID)

	session, err := h.discovery.Session(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pagination := session.Pagination()
	writeJSON(ctx, w, http.StatusOK, paginationResponse{
		Pagination:  pagination,
		Pages:       domain.PageNumbers(pagination.Current, pagination.Total),
		HasPrevious: pagination.HasPrevious(),
		HasNext:     pagination.HasNext(),
		Loading:     session.Loading(),
		Error:       session.LastError(),
	})
}

// suggestionRequest carries the quiz answers in step order.
type suggestionRequest struct {
	Gender          domain.Gender    `json:"gender"`
	Situation       domain.Situation `json:"situation,omitempty"`
	Accords         []string         `json:"accords,omitempty"`
	TopNotes        []string         `json:"top_notes,omitempty"`
	MiddleNotes     []string         `json:"middle_notes,omitempty"`
	BaseNotes       []string         `json:"base_notes,omitempty"`
	BirthdayWeekday *int             `json:"birthday_weekday,omitempty"` // 0 = Sunday
	Brand           string           `json:"brand,omitempty"`
}

// suggestionResponse is the ranked suggestion list.
type suggestionResponse struct {
	Suggestions []domain.PerfumeSummary `json:"suggestions"`
}

// HandleSuggestions replays the quiz answers through the quiz state machine
// in step order and issues the one-shot suggestion request. Later steps keep
// their destructive semantics: a birthday weekday overwrites any accords
// chosen before it.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r, "")

	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	filter, err := buildQuizFilter(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("suggestion request received",
		zap.String("gender", string(req.Gender)),
		zap.Int("accords", len(filter.Accords)))

	suggestions, err := h.discovery.Suggest(ctx, filter, h.suggestionLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, suggestionResponse{Suggestions: suggestions})
}

// buildQuizFilter drives a quiz through its fixed step sequence with the
// submitted answers.
func buildQuizFilter(req suggestionRequest) (domain.FilterSet, error) {
	quiz := domain.NewQuiz()

	quiz.Next() // welcome -> gender
	quiz.SelectGender(req.Gender)

	quiz.Next() // gender -> situation
	if req.Situation != "" {
		if err := quiz.SelectSituation(req.Situation); err != nil {
			return domain.FilterSet{}, err
		}
	}

	quiz.Next() // situation -> accords
	for _, accord := range req.Accords {
		quiz.ToggleAccord(accord) // over-cap selections rejected silently
	}

	quiz.Next() // accords -> notes
	for _, note := range req.TopNotes {
		quiz.ToggleNote(domain.FieldTopNotes, note)
	}
	for _, note := range req.MiddleNotes {
		quiz.ToggleNote(domain.FieldMiddleNotes, note)
	}
	for _, note := range req.BaseNotes {
		quiz.ToggleNote(domain.FieldBaseNotes, note)
	}

	quiz.Next() // notes -> birthday
	if req.BirthdayWeekday != nil {
		day := *req.BirthdayWeekday
		if day < 0 || day > 6 {
			return domain.FilterSet{}, fmt.Errorf("invalid weekday: %d", day)
		}
		quiz.SelectBirthday(time.Weekday(day))
	}

	quiz.Next() // birthday -> brand
	quiz.SelectBrand(req.Brand)

	return quiz.Submit()
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Status already written, logging is all that is left.
		observability.FromContext(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	observability.FromContext(ctx).Error("request failed", zap.Error(err))

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}
