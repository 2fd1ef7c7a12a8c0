package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/neha01mittal/datadriven-firesafety/config"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify/gemini"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify/ollama"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify/vision"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify/watson"
	"github.com/neha01mittal/datadriven-firesafety/domain/layout"
	"github.com/neha01mittal/datadriven-firesafety/domain/reveal"
	"github.com/neha01mittal/datadriven-firesafety/ui/model"
	"github.com/neha01mittal/datadriven-firesafety/ui/presenter"
	"github.com/neha01mittal/datadriven-firesafety/ui/view"
)

// ErrMissingAPIKey is returned when the selected provider needs a key and none is configured.
var ErrMissingAPIKey = fmt.Errorf("missing API key: set %s", config.EnvAPIKey)

// AppContainer assembles the classifier, models, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Model      *model.RunModel
	Classifier classify.Classifier
	RootView   *view.RootView
	Animator   *reveal.Animator
	Surface    *presenter.SurfacePresenter
	Phase      *presenter.PhasePresenter
	Runner     *Runner

	closers []func() error
}

// BuildContainer constructs all components. No Tk widgets are created here.
func BuildContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	clf, closer, err := NewClassifier(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	c.Classifier = clf

	c.Model = model.NewRunModel()
	c.RootView = view.NewRootView(cfg, logger)
	c.Phase = presenter.NewPhasePresenter(c.RootView, logger)
	c.Model.AddListener(c.Phase.OnPhase)

	c.Animator = reveal.NewAnimator(view.TclScheduler{}, cfg.RevealDelay(), logger)
	placer := layout.NewPlacer(image.Rect(0, 0, cfg.LabelRegionW, cfg.LabelRegionH), layout.NewSource(cfg.Seed))
	c.Surface = presenter.NewSurfacePresenter(c.RootView, placer, c.Animator, image.Pt(cfg.ImageX, cfg.ImageY), logger)

	c.Runner = &Runner{
		Dialogs:    view.Dialogs{InitialDir: "/"},
		Surface:    c.Surface,
		Classifier: c.Classifier,
		ReadFile:   os.ReadFile,
		Model:      c.Model,
		Logger:     logger,
		MaxW:       cfg.CanvasW - cfg.ImageX,
		MaxH:       cfg.CanvasH - cfg.ImageY,
	}
	return c, nil
}

// Close releases provider clients.
func (c *AppContainer) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, fn := range c.closers {
		errs = append(errs, fn())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// NewClassifier builds the provider selected in cfg, wrapped with the call
// timeout. The returned closer may be nil.
func NewClassifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (classify.Classifier, func() error, error) {
	if cfg.RequiresAPIKey() && cfg.APIKey == "" {
		return nil, nil, ErrMissingAPIKey
	}
	opts := classify.Options{Threshold: cfg.Threshold, LearningOptOut: cfg.LearningOptOut}
	httpClient := classify.NewHTTPClient(cfg.Timeout())

	var (
		next   classify.Classifier
		closer func() error
	)
	switch cfg.Provider {
	case config.ProviderWatson:
		next = watson.NewClient(watson.Config{
			BaseURL: cfg.Endpoint(),
			Version: cfg.ServiceVersion,
			APIKey:  cfg.APIKey,
			Options: opts,
		}, httpClient, logger)
	case config.ProviderVision:
		d, err := vision.NewLabelDetector(ctx, opts)
		if err != nil {
			return nil, nil, err
		}
		next, closer = d, d.Close
	case config.ProviderOllama:
		cl, err := ollama.NewClient(cfg.Endpoint(), cfg.Model, httpClient)
		if err != nil {
			return nil, nil, err
		}
		next = cl
	case config.ProviderGemini:
		g, err := gemini.NewLabeler(ctx, cfg.APIKey, cfg.Model, httpClient)
		if err != nil {
			return nil, nil, err
		}
		next = g
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if logger != nil {
		logger.Info("classifier ready", "provider", cfg.Provider, "timeout", cfg.Timeout())
	}
	return classify.WithTimeout(next, cfg.Provider, cfg.Timeout(), logger), closer, nil
}
