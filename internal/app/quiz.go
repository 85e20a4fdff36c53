package service

import (
	"context"

	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/quiz"
	"github.com/okian/tradecalc/pkg/logger"
	"github.com/okian/tradecalc/pkg/metrics"
)

// ScoreQuiz scores a complete answer set without a session.
func (s *Service) ScoreQuiz(ctx context.Context, answers quiz.Answers) quiz.Recommendation {
	rec := quiz.Recommend(handoff.NewQuizResults(quiz.Score(answers)))
	metrics.RecordQuizRecommendation(rec.Recommended.Key)
	s.log().Debug(ctx, "quiz scored",
		logger.Int("answers", len(answers)),
		logger.String("recommended", rec.Recommended.Key),
	)
	return rec
}

// StartQuiz opens a new session at the first question.
func (s *Service) StartQuiz(ctx context.Context) (string, quiz.Snapshot, error) {
	sessions, _, err := s.stores()
	if err != nil {
		return "", quiz.Snapshot{}, err
	}
	sess := quiz.NewSession()
	snap := sess.Snapshot()
	id, evicted, err := sessions.Create(ctx, sess)
	if err != nil {
		return "", quiz.Snapshot{}, err
	}

	metrics.RecordQuizSessionCreated()
	if evicted > 0 {
		metrics.RecordQuizSessionsEvicted(evicted)
		s.log().Warn(ctx, "quiz sessions evicted", logger.Int("evicted", evicted))
	}
	metrics.UpdateQuizSessionsActive(sessions.Len(ctx))
	s.log().Debug(ctx, "quiz session started", logger.String("session", id))
	return id, snap, nil
}

// EndQuiz discards a session before its TTL. It returns false when the
// id is unknown or already gone.
func (s *Service) EndQuiz(ctx context.Context, id string) (bool, error) {
	sessions, _, err := s.stores()
	if err != nil {
		return false, err
	}
	ok := sessions.Delete(ctx, id)
	if ok {
		metrics.UpdateQuizSessionsActive(sessions.Len(ctx))
		s.log().Debug(ctx, "quiz session ended", logger.String("session", id))
	}
	return ok, nil
}

// QuizSession returns the state of a session.
func (s *Service) QuizSession(ctx context.Context, id string) (quiz.Snapshot, error) {
	return s.withSession(ctx, id, func(*quiz.Session) error { return nil })
}

// AnswerQuiz selects option for the session's current question.
func (s *Service) AnswerQuiz(ctx context.Context, id string, option int) (quiz.Snapshot, error) {
	return s.withSession(ctx, id, func(sess *quiz.Session) error {
		return sess.Select(option)
	})
}

// PreviousQuestion steps the session back one question.
func (s *Service) PreviousQuestion(ctx context.Context, id string) (quiz.Snapshot, error) {
	return s.withSession(ctx, id, func(sess *quiz.Session) error {
		return sess.Previous()
	})
}

// NextQuestion advances the session. Passing the last question submits the
// quiz and returns a single-use results token.
func (s *Service) NextQuestion(ctx context.Context, id string) (quiz.Snapshot, string, error) {
	_, handoffs, err := s.stores()
	if err != nil {
		return quiz.Snapshot{}, "", err
	}

	var msg *handoff.QuizResults
	snap, err := s.withSession(ctx, id, func(sess *quiz.Session) error {
		var err error
		msg, err = sess.Next()
		return err
	})
	if err != nil || msg == nil {
		return snap, "", err
	}

	token, err := handoffs.Issue(ctx, msg)
	if err != nil {
		return quiz.Snapshot{}, "", err
	}
	metrics.RecordQuizSessionSubmitted()
	metrics.RecordHandoffIssued()
	metrics.UpdateHandoffPending(handoffs.Len(ctx))
	s.log().Info(ctx, "quiz submitted", logger.String("session", id))
	return snap, token, nil
}

// QuizResults consumes a results token. Unknown, expired or already read
// tokens yield the fallback recommendation and false.
func (s *Service) QuizResults(ctx context.Context, token string) (quiz.Recommendation, bool) {
	var (
		msg   *handoff.QuizResults
		found bool
	)
	if _, handoffs, err := s.stores(); err == nil {
		msg, found = handoffs.Consume(ctx, token)
		metrics.UpdateHandoffPending(handoffs.Len(ctx))
	}
	if found {
		metrics.RecordHandoffConsumed()
	} else {
		metrics.RecordHandoffMissed()
		s.log().Debug(ctx, "quiz results not found", logger.String("token", token))
	}

	rec := quiz.Recommend(msg)
	metrics.RecordQuizRecommendation(rec.Recommended.Key)
	return rec, found
}

// withSession runs fn on session id and returns the resulting snapshot.
// The snapshot is empty when fn fails.
func (s *Service) withSession(ctx context.Context, id string, fn func(*quiz.Session) error) (quiz.Snapshot, error) {
	sessions, _, err := s.stores()
	if err != nil {
		return quiz.Snapshot{}, err
	}
	var snap quiz.Snapshot
	err = sessions.Do(ctx, id, func(sess *quiz.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return snap, nil
}
