package presenter

import (
	"log/slog"

	"github.com/neha01mittal/datadriven-firesafety/ui/model"
)

// StatusView sets the window status line.
type StatusView interface{ SetStatus(string) }

// PhasePresenter mirrors run phase transitions to the view and the log.
type PhasePresenter struct {
	view   StatusView
	logger *slog.Logger
	latest model.Phase
}

func NewPhasePresenter(view StatusView, logger *slog.Logger) *PhasePresenter {
	return &PhasePresenter{view: view, logger: logger}
}

// OnPhase is a model.PhaseListener.
func (p *PhasePresenter) OnPhase(prev, next model.Phase) {
	if p == nil {
		return
	}
	if p.logger != nil {
		p.logger.Info("phase", "from", prev.String(), "to", next.String())
	}
	if next == p.latest {
		return
	}
	p.latest = next
	if p.view != nil {
		p.view.SetStatus("State: " + next.String())
	}
}

// Latest returns the last phase reflected to the view.
func (p *PhasePresenter) Latest() model.Phase {
	if p == nil {
		return model.PhaseIdle
	}
	return p.latest
}
