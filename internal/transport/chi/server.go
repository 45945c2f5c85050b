package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/letterdex/internal/domain"
	domdoc "github.com/kailas-cloud/letterdex/internal/domain/document"
	"github.com/kailas-cloud/letterdex/internal/domain/search/request"
	"github.com/kailas-cloud/letterdex/internal/domain/search/result"
	"github.com/kailas-cloud/letterdex/internal/domain/vector"
	"github.com/kailas-cloud/letterdex/internal/metrics"
	healthuc "github.com/kailas-cloud/letterdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/letterdex/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// DocumentLister exposes the indexed documents.
type DocumentLister interface {
	Len() int
	CorpusLen() int
	Entries() []domdoc.Document
}

// Limits caps and defaults top-N requests.
type Limits struct {
	DefaultN int
	MaxN     int
	MinScore float64
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the letterdex HTTP API.
type Server struct {
	search        *searchuc.Service
	documents     DocumentLister
	health        *healthuc.Service
	limits        Limits
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	documents DocumentLister,
	health *healthuc.Service,
	limits Limits,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		documents: documents,
		health:    health,
		limits:    limits,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.SearchDocuments)
		r.Get("/search", s.SearchDocumentsQuery)
		r.Get("/documents", s.ListDocuments)
		r.Post("/encode", s.EncodeText)
	})
}

type searchRequest struct {
	Query    string   `json:"query"`
	N        *int     `json:"n,omitempty"`
	MinScore *float64 `json:"min_score,omitempty"`
}

type searchResultItem struct {
	Document string  `json:"document"`
	Score    float64 `json:"score"`
	Position int     `json:"position"`
	Defined  bool    `json:"defined"`
}

type searchResponse struct {
	Results []searchResultItem `json:"results"`
	Total   int                `json:"total"`
}

type documentItem struct {
	Document string `json:"document"`
	Position int    `json:"position"`
}

type documentListResponse struct {
	Documents []documentItem `json:"documents"`
	Distinct  int            `json:"distinct"`
	Corpus    int            `json:"corpus"`
}

type encodeRequest struct {
	Text string `json:"text"`
}

type encodeResponse struct {
	Vector  []float64      `json:"vector"`
	Letters map[string]int `json:"letters"`
	Total   int            `json:"total"`
}

type healthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Documents int               `json:"documents"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchDocuments handles POST /api/v1/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.runSearch(w, r, req)
}

// SearchDocumentsQuery handles GET /api/v1/search?q=...&n=...&min_score=....
func (s *Server) SearchDocumentsQuery(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "q", query, &req.Query); err != nil {
		s.invalidParam(w, "q", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "n", query, &req.N); err != nil {
		s.invalidParam(w, "n", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "min_score", query, &req.MinScore); err != nil {
		s.invalidParam(w, "min_score", err)
		return
	}

	s.runSearch(w, r, req)
}

func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, body searchRequest) {
	n := s.limits.DefaultN
	if body.N != nil {
		n = *body.N
	}
	if n > s.limits.MaxN {
		n = s.limits.MaxN
	}
	minScore := s.limits.MinScore
	if body.MinScore != nil {
		minScore = *body.MinScore
	}

	req, err := request.New(body.Query, n, minScore)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		s.handleDomainError(w, err)
		return
	}

	results, err := s.search.TopN(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToResponse(&results[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: items, Total: len(items)})
}

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, _ *http.Request) {
	entries := s.documents.Entries()
	items := make([]documentItem, len(entries))
	for i := range entries {
		items[i] = documentItem{Document: entries[i].Text(), Position: entries[i].Position()}
	}

	writeJSON(w, http.StatusOK, documentListResponse{
		Documents: items,
		Distinct:  s.documents.Len(),
		Corpus:    s.documents.CorpusLen(),
	})
}

// EncodeText handles POST /api/v1/encode.
func (s *Server) EncodeText(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v := vector.Encode(req.Text)
	writeJSON(w, http.StatusOK, encodeResponse{
		Vector:  v.Slice(),
		Letters: v.Counts(),
		Total:   int(v.Sum()),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:    string(report.Status),
		Checks:    checks,
		Documents: report.Documents,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) invalidParam(w http.ResponseWriter, name string, err error) {
	metrics.SearchRequestsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
	writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid parameter "+name+": "+err.Error())
}

func searchResultToResponse(r *result.Result) searchResultItem {
	return searchResultItem{
		Document: r.Text(),
		Score:    r.Score(),
		Position: r.Position(),
		Defined:  r.Defined(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns the client-facing message without exposing internals.
// Invalid input errors carry only the field name and constraint, so they pass through.
func safeDomainMessage(err error) string {
	var iie *domain.InvalidInputError
	if errors.As(err, &iie) {
		return iie.Error()
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return domain.ErrInvalidInput.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
