package service

import (
	"context"

	"github.com/okian/tradecalc/pkg/metrics"
)

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":         s.started,
		"sessionCapacity": s.sessionCapacity,
		"sessionTTL":      s.sessionTTL.String(),
		"handoffCapacity": s.handoffCapacity,
		"handoffTTL":      s.handoffTTL.String(),
	}

	if s.started {
		ctx := context.Background()
		active := s.sessions.Len(ctx)
		pending := s.handoffs.Len(ctx)
		stats["activeSessions"] = active
		stats["pendingResults"] = pending

		metrics.UpdateQuizSessionsActive(active)
		metrics.UpdateHandoffPending(pending)
	}
	return stats
}
