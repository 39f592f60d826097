package assistant

import (
	"context"
	"errors"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Dispatch paths reported to the metrics recorder.
const (
	PathRule     = "rule"
	PathModel    = "model"
	PathFallback = "fallback"
)

// Dispatcher routes a command through rules, then the model, then the fallback.
type Dispatcher struct {
	Rules     ports.RuleMatcher
	Responder *Responder
	History   ports.HistoryRepository
	Logger    ports.Logger
	Metrics   ports.MetricsRecorder
}

// Dispatch never fails: every failure degrades to the fallback response.
func (d *Dispatcher) Dispatch(ctx context.Context, raw, sessionID string, allowModel bool) domain.Response {
	command := domain.NormalizeCommand(raw)
	sessionID = domain.NormalizeSessionID(sessionID)

	if d.History != nil {
		if err := d.History.Ensure(sessionID); err != nil {
			d.warn("ensure session failed", err, sessionID)
		}
	}

	if d.Rules != nil {
		if resp, ok := d.Rules.Match(command); ok {
			d.record(PathRule)
			d.debug("rule matched", command, sessionID)
			return resp
		}
	}

	if allowModel && d.Responder.Available() {
		resp, err := d.Responder.Respond(ctx, command, sessionID)
		if err == nil {
			d.record(PathModel)
			return resp
		}
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			d.warn("model call failed", err, sessionID)
		}
	}

	d.record(PathFallback)
	return domain.FallbackResponse()
}

func (d *Dispatcher) record(path string) {
	if d.Metrics != nil {
		d.Metrics.ObserveDispatch(path)
	}
}

func (d *Dispatcher) debug(msg, command, sessionID string) {
	if d.Logger == nil {
		return
	}
	d.Logger.Debug(msg, map[string]interface{}{"command": command, "session_id": sessionID})
}

func (d *Dispatcher) warn(msg string, err error, sessionID string) {
	if d.Logger == nil {
		return
	}
	d.Logger.Warn(msg, map[string]interface{}{"error": err.Error(), "session_id": sessionID})
}
