package api

import (
	"errors"
	"net/http"

	"github.com/okian/tradecalc/internal/adapters/repository"
	"github.com/okian/tradecalc/internal/domain/quiz"
)

const resultsPath = "/api/v1/quiz/results/"

// QuizHandler serves stateless scoring and quiz sessions.
type QuizHandler struct {
	deps Quizzes
	body bodyReader
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(deps Quizzes, body bodyReader) *QuizHandler {
	return &QuizHandler{deps: deps, body: body}
}

type quizScoreRequest struct {
	Answers quiz.Answers `json:"answers"`
}

type quizAnswerRequest struct {
	Option int `json:"option"`
}

type recommendationResponse struct {
	quiz.Recommendation
	SalaryLink string `json:"salary_link"`
}

func newRecommendationResponse(rec quiz.Recommendation) recommendationResponse {
	return recommendationResponse{Recommendation: rec, SalaryLink: rec.SalaryLink()}
}

type quizResultsResponse struct {
	recommendationResponse
	Found bool `json:"found"`
}

type sessionResponse struct {
	ID string `json:"id"`
	quiz.Snapshot
	ResultsToken string `json:"results_token,omitempty"`
	ResultsURL   string `json:"results_url,omitempty"`
}

// HandleScore handles POST /api/v1/quiz/score.
func (h *QuizHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_score"
	var req quizScoreRequest
	if err := h.body.decode(w, r, schemaQuizScore, &req); err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newRecommendationResponse(h.deps.ScoreQuiz(r.Context(), req.Answers)))
}

// HandleStart handles POST /api/v1/quiz/sessions.
func (h *QuizHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_start"
	id, snap, err := h.deps.StartQuiz(r.Context())
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	w.Header().Set("Location", "/api/v1/quiz/sessions/"+id)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Snapshot: snap})
}

// HandleGet handles GET /api/v1/quiz/sessions/{id}.
func (h *QuizHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_get"
	id := r.PathValue("id")
	snap, err := h.deps.QuizSession(r.Context(), id)
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: snap})
}

// HandleAnswer handles POST /api/v1/quiz/sessions/{id}/answer.
func (h *QuizHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_answer"
	var req quizAnswerRequest
	if err := h.body.decode(w, r, schemaQuizAnswer, &req); err != nil {
		fail(w, Wrap(op, err))
		return
	}
	id := r.PathValue("id")
	snap, err := h.deps.AnswerQuiz(r.Context(), id, req.Option)
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: snap})
}

// HandleNext handles POST /api/v1/quiz/sessions/{id}/next.
func (h *QuizHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_next"
	id := r.PathValue("id")
	snap, token, err := h.deps.NextQuestion(r.Context(), id)
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	resp := sessionResponse{ID: id, Snapshot: snap, ResultsToken: token}
	if token != "" {
		resp.ResultsURL = resultsPath + token
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePrevious handles POST /api/v1/quiz/sessions/{id}/previous.
func (h *QuizHandler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_previous"
	id := r.PathValue("id")
	snap, err := h.deps.PreviousQuestion(r.Context(), id)
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: snap})
}

// HandleEnd handles DELETE /api/v1/quiz/sessions/{id}.
func (h *QuizHandler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	const op = "api.quiz_end"
	ok, err := h.deps.EndQuiz(r.Context(), r.PathValue("id"))
	if err != nil {
		fail(w, WrapKind(op, quizKind(err), err))
		return
	}
	if !ok {
		fail(w, NewKind(op, ErrNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleResults handles GET /api/v1/quiz/results/{token}. The token is
// single use; unknown tokens get the default recommendation.
func (h *QuizHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	rec, found := h.deps.QuizResults(r.Context(), r.PathValue("token"))
	writeJSON(w, http.StatusOK, quizResultsResponse{
		recommendationResponse: newRecommendationResponse(rec),
		Found:                  found,
	})
}

// quizKind maps session and store errors to API kinds.
func quizKind(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, quiz.ErrInvalidOption):
		return ErrBadRequest
	case errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrAtFirstQuestion),
		errors.Is(err, quiz.ErrSubmitted):
		return ErrConflict
	default:
		return ErrInternal
	}
}
