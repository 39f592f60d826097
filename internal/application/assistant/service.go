package assistant

import (
	"context"
	"time"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Service is the boundary every transport talks to.
type Service struct {
	Dispatcher *Dispatcher
	History    ports.HistoryRepository
	Config     domain.Config
	Now        func() time.Time
}

// Health reports liveness and whether model fallback is active.
func (s *Service) Health() domain.Health {
	health := domain.Health{
		Status:    "healthy",
		AIEnabled: s.Dispatcher != nil && s.Dispatcher.Responder.Available(),
		Timestamp: s.now(),
	}
	if health.AIEnabled {
		model := s.Config.Model.DisplayName()
		health.Model = &model
	}
	return health
}

// Process answers one command.
func (s *Service) Process(ctx context.Context, req domain.ProcessRequest) domain.Response {
	return s.Dispatcher.Dispatch(ctx, req.Command, req.SessionID, req.UseAI)
}

// ClearHistory empties the session's history.
func (s *Service) ClearHistory(sessionID string) error {
	return s.History.Clear(domain.NormalizeSessionID(sessionID))
}

// GetHistory returns the session's retained exchanges, oldest first.
func (s *Service) GetHistory(sessionID string) ([]domain.Exchange, error) {
	return s.History.All(domain.NormalizeSessionID(sessionID))
}

// Sessions lists the known session identifiers.
func (s *Service) Sessions() ([]string, error) {
	return s.History.Sessions()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
