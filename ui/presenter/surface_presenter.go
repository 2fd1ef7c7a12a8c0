package presenter

import (
	"image"
	"log/slog"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
	"github.com/neha01mittal/datadriven-firesafety/domain/strategy"
)

// SurfaceView is the drawing surface the presenter writes to.
type SurfaceView interface {
	ShowImage(png []byte, origin image.Point)
	AddLabel(text string, at image.Point)
	SetStrategyText(text string)
}

// PointSource yields display positions for labels.
type PointSource interface {
	Next() image.Point
}

// Revealer animates a text one step at a time.
type Revealer interface {
	Start(text string, show func(string), onDone func())
	Stop()
}

// SurfacePresenter puts a classified image, its labels and the strategy text
// on the view.
type SurfacePresenter struct {
	view   SurfaceView
	points PointSource
	reveal Revealer
	origin image.Point
	logger *slog.Logger

	// OnRevealDone, if set, runs once the full strategy text is shown.
	OnRevealDone func()
}

func NewSurfacePresenter(view SurfaceView, points PointSource, reveal Revealer, origin image.Point, logger *slog.Logger) *SurfacePresenter {
	return &SurfacePresenter{view: view, points: points, reveal: reveal, origin: origin, logger: logger}
}

// ShowImage draws the already prepared PNG at the configured origin.
func (p *SurfacePresenter) ShowImage(png []byte) {
	if p == nil || p.view == nil {
		return
	}
	p.view.ShowImage(png, p.origin)
}

// Present draws every label at its own random position and starts revealing text.
func (p *SurfacePresenter) Present(labels classify.Labels, text string) {
	if p == nil || p.view == nil {
		return
	}
	for _, l := range labels {
		at := p.points.Next()
		p.view.AddLabel(string(l), at)
		if p.logger != nil {
			p.logger.Debug("label placed", "label", string(l), "x", at.X, "y", at.Y)
		}
	}
	p.view.SetStrategyText(strategy.Placeholder)
	if p.reveal == nil {
		p.view.SetStrategyText(text)
		p.revealDone()
		return
	}
	p.reveal.Start(text, p.view.SetStrategyText, p.revealDone)
}

func (p *SurfacePresenter) revealDone() {
	if p.OnRevealDone != nil {
		p.OnRevealDone()
	}
}

// Stop cancels any reveal still in flight.
func (p *SurfacePresenter) Stop() {
	if p == nil || p.reveal == nil {
		return
	}
	p.reveal.Stop()
}
