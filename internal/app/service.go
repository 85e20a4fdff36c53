// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/tradecalc/internal/adapters/repository"
	"github.com/okian/tradecalc/internal/domain/costofliving"
	"github.com/okian/tradecalc/internal/domain/salary"
	"github.com/okian/tradecalc/internal/domain/travel"
	"github.com/okian/tradecalc/pkg/logger"
	"github.com/okian/tradecalc/pkg/metrics"
)

// Calculator names used in logs and metrics.
const (
	calcSalary       = "salary"
	calcCostOfLiving = "cost_of_living"
	calcTravel       = "travel"
)

// Service implements the API dependencies for the calculators and the quiz.
type Service struct {
	mu sync.RWMutex

	// Stores
	sessions repository.SessionStore
	handoffs repository.HandoffStore

	// Configuration
	sessionCapacity int
	sessionTTL      time.Duration
	handoffCapacity int
	handoffTTL      time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSessionCapacity caps the number of live quiz sessions.
func WithSessionCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sessionCapacity = n
		}
	}
}

// WithSessionTTL sets how long an idle quiz session is kept.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithHandoffCapacity caps the number of unread quiz results.
func WithHandoffCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.handoffCapacity = n
		}
	}
}

// WithHandoffTTL sets how long unread quiz results are kept.
func WithHandoffTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.handoffTTL = ttl
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		sessionCapacity: 10000,
		sessionTTL:      30 * time.Minute,
		handoffCapacity: 10000,
		handoffTTL:      10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates the stores. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	s.sessions = repository.NewSessionStore(
		repository.WithCapacity(s.sessionCapacity),
		repository.WithTTL(s.sessionTTL),
	)
	s.handoffs = repository.NewHandoffStore(
		repository.WithCapacity(s.handoffCapacity),
		repository.WithTTL(s.handoffTTL),
	)

	s.started = true
	s.logger.Info(ctx, "tradecalc service started",
		logger.Int("sessionCapacity", s.sessionCapacity),
		logger.Duration("sessionTTL", s.sessionTTL),
		logger.Int("handoffCapacity", s.handoffCapacity),
		logger.Duration("handoffTTL", s.handoffTTL),
	)
	return nil
}

// Stop drops all sessions and unread results.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.sessions = nil
	s.handoffs = nil
	s.started = false
	metrics.UpdateQuizSessionsActive(0)
	metrics.UpdateHandoffPending(0)
	s.logger.Info(context.Background(), "tradecalc service stopped")
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Named("service")
	}
	return l
}

func (s *Service) stores() (repository.SessionStore, repository.HandoffStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.sessions, s.handoffs, nil
}

// observe records the outcome and latency of one calculation.
func (s *Service) observe(ctx context.Context, calculator string, start time.Time, ok bool) {
	outcome := metrics.OutcomeOK
	if !ok {
		outcome = metrics.OutcomeNotReady
	}
	took := time.Since(start)
	metrics.RecordCalculation(calculator, outcome)
	metrics.RecordCalculationLatency(calculator, float64(took.Microseconds())/1000)
	s.log().Debug(ctx, "calculation finished",
		logger.String("calculator", calculator),
		logger.String("outcome", outcome),
		logger.Duration("took", took),
	)
}

// EstimateSalary runs the salary estimator.
func (s *Service) EstimateSalary(ctx context.Context, in salary.Input) (salary.Result, bool) {
	start := time.Now()
	res, ok := salary.Estimate(in)
	s.observe(ctx, calcSalary, start, ok)
	return res, ok
}

// CompareCostOfLiving runs the cost-of-living comparison.
func (s *Service) CompareCostOfLiving(ctx context.Context, in costofliving.Input) (costofliving.Result, bool) {
	start := time.Now()
	res, ok := costofliving.Compare(in)
	s.observe(ctx, calcCostOfLiving, start, ok)
	return res, ok
}

// CompareTravel runs the travel-versus-local comparison.
func (s *Service) CompareTravel(ctx context.Context, in travel.Input) (travel.Result, bool) {
	start := time.Now()
	res, ok := travel.Compare(in)
	s.observe(ctx, calcTravel, start, ok)
	return res, ok
}
