// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/tradecalc/internal/domain/costofliving"
	"github.com/okian/tradecalc/internal/domain/quiz"
	"github.com/okian/tradecalc/internal/domain/salary"
	"github.com/okian/tradecalc/internal/domain/travel"
	"github.com/okian/tradecalc/pkg/metrics"
)

const defaultMaxBodyBytes = 64 << 10

// Calculators runs the three stateless calculators. The bool is false when
// the input is missing a required field.
type Calculators interface {
	EstimateSalary(ctx context.Context, in salary.Input) (salary.Result, bool)
	CompareCostOfLiving(ctx context.Context, in costofliving.Input) (costofliving.Result, bool)
	CompareTravel(ctx context.Context, in travel.Input) (travel.Result, bool)
}

// Quizzes scores answer sets and drives quiz sessions.
type Quizzes interface {
	ScoreQuiz(ctx context.Context, answers quiz.Answers) quiz.Recommendation
	StartQuiz(ctx context.Context) (string, quiz.Snapshot, error)
	QuizSession(ctx context.Context, id string) (quiz.Snapshot, error)
	AnswerQuiz(ctx context.Context, id string, option int) (quiz.Snapshot, error)
	// NextQuestion returns a results token once the last question is passed.
	NextQuestion(ctx context.Context, id string) (quiz.Snapshot, string, error)
	PreviousQuestion(ctx context.Context, id string) (quiz.Snapshot, error)
	// EndQuiz discards a session; false means it did not exist.
	EndQuiz(ctx context.Context, id string) (bool, error)
	// QuizResults consumes a results token. An unknown token yields the
	// fallback recommendation and false.
	QuizResults(ctx context.Context, token string) (quiz.Recommendation, bool)
}

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Calculators
	Quizzes
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBodyBytes caps the size of request bodies. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// Server wires HTTP routes for the business API.
type Server struct {
	maxBody int64

	opsHandler        *OpsHandler
	catalogHandler    *CatalogHandler
	calculatorHandler *CalculatorHandler
	quizHandler       *QuizHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{maxBody: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(s)
	}
	body := bodyReader{max: s.maxBody}
	s.opsHandler = NewOpsHandler(statsProvider)
	s.catalogHandler = NewCatalogHandler()
	s.calculatorHandler = NewCalculatorHandler(deps, body)
	s.quizHandler = NewQuizHandler(deps, body)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.opsHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.opsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /api/v1/catalog", MetricsMiddleware(s.catalogHandler.HandleCatalog, "catalog"))

	c := s.calculatorHandler
	mux.HandleFunc("GET /api/v1/salary", MetricsMiddleware(c.HandleSalaryForm, "salary"))
	mux.HandleFunc("POST /api/v1/salary", MetricsMiddleware(c.HandleSalary, "salary"))
	mux.HandleFunc("GET /api/v1/cost-of-living", MetricsMiddleware(c.HandleCostOfLivingForm, "cost_of_living"))
	mux.HandleFunc("POST /api/v1/cost-of-living", MetricsMiddleware(c.HandleCostOfLiving, "cost_of_living"))
	mux.HandleFunc("GET /api/v1/travel-vs-local", MetricsMiddleware(c.HandleTravelForm, "travel"))
	mux.HandleFunc("POST /api/v1/travel-vs-local", MetricsMiddleware(c.HandleTravel, "travel"))

	q := s.quizHandler
	mux.HandleFunc("POST /api/v1/quiz/score", MetricsMiddleware(q.HandleScore, "quiz_score"))
	mux.HandleFunc("POST /api/v1/quiz/sessions", MetricsMiddleware(q.HandleStart, "quiz_session"))
	mux.HandleFunc("GET /api/v1/quiz/sessions/{id}", MetricsMiddleware(q.HandleGet, "quiz_session"))
	mux.HandleFunc("POST /api/v1/quiz/sessions/{id}/answer", MetricsMiddleware(q.HandleAnswer, "quiz_session"))
	mux.HandleFunc("POST /api/v1/quiz/sessions/{id}/next", MetricsMiddleware(q.HandleNext, "quiz_session"))
	mux.HandleFunc("POST /api/v1/quiz/sessions/{id}/previous", MetricsMiddleware(q.HandlePrevious, "quiz_session"))
	mux.HandleFunc("DELETE /api/v1/quiz/sessions/{id}", MetricsMiddleware(q.HandleEnd, "quiz_session"))
	mux.HandleFunc("GET /api/v1/quiz/results/{token}", MetricsMiddleware(q.HandleResults, "quiz_results"))
}

// bodyReader reads and validates a bounded JSON request body.
type bodyReader struct {
	max int64
}

// decode reads the body, validates it against schema and unmarshals it into
// dst. An empty body is treated as an empty object.
func (b bodyReader) decode(w http.ResponseWriter, r *http.Request, schema string, dst any) error {
	const op = "api.decode"
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, b.max))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return WrapKind(op, ErrTooLarge, err)
		}
		return WrapKind(op, ErrBadRequest, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if err := validateBody(schema, raw); err != nil {
		metrics.RecordValidationError(schema)
		return Wrap(op, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return WrapKind(op, ErrBadRequest, err)
	}
	return nil
}

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	resp := errorResponse{Code: code, Message: http.StatusText(status)}
	if err != nil {
		resp.Message = err.Error()
		var verr *ValidationError
		if errors.As(err, &verr) {
			resp.Details = verr.Problems
		}
	}
	writeJSON(w, status, resp)
}

// fail writes err with the status its kind maps to and counts it against
// the operation that produced it.
func fail(w http.ResponseWriter, err error) {
	st, code := status(err)
	metrics.RecordErrorByComponent(component(err), code)
	writeError(w, st, code, err)
}

// component is the outermost op of err, or "api" when it carries none.
func component(err error) string {
	var oe *OpError
	if errors.As(err, &oe) && oe.Op != "" {
		return oe.Op
	}
	return "api"
}
