package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/neha01mittal/datadriven-firesafety/config"
	"github.com/neha01mittal/datadriven-firesafety/debug"
	"github.com/neha01mittal/datadriven-firesafety/ui/model"
	"github.com/neha01mittal/datadriven-firesafety/ui/theme"
	"github.com/neha01mittal/datadriven-firesafety/ui/view"
)

// interruptPoll is how often the event loop checks for an interrupt.
const interruptPoll = 200 * time.Millisecond

// Application owns the root window for one run.
type Application struct {
	cfg       *config.Config
	logger    *slog.Logger
	container *AppContainer
	watcher   *doneWatcher
	cancel    context.CancelFunc
	closed    bool
}

func NewApplication(title string, cfg *config.Config, logger *slog.Logger) *Application {
	a := &Application{cfg: cfg, logger: logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.CanvasW, cfg.CanvasH+30))
	return a
}

// Start runs one classification and then serves the window until it is closed.
// A run that aborts closes the window and returns the cause.
func (a *Application) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	if a.cfg.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
	}

	c, err := BuildContainer(ctx, a.cfg, a.logger)
	if err != nil {
		a.logger.Error("setup failed", "error", err)
		view.Dialogs{}.ShowError(ErrorTitle, ErrorMessage(err))
		a.exitHandler()
		return err
	}
	a.container = c
	defer c.Close()

	theme.InitStyles()
	c.RootView.Build()
	c.Surface.OnRevealDone = func() { c.Model.SetPhase(model.PhaseDone, time.Now()) }

	if err := c.Runner.Run(ctx); err != nil {
		a.exitHandler()
		return err
	}

	a.watcher = newDoneWatcher(ctx, view.TclScheduler{}, interruptPoll, a.exitHandler)
	a.watcher.Start()
	if !a.closed {
		App.Wait()
	}
	a.logger.Info("window closed", "phase", c.Model.Phase().String(), "elapsed", c.Model.Elapsed(time.Now()))
	return nil
}

func (a *Application) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	a.watcher.Stop()
	// Pending reveal ticks must not fire into destroyed widgets.
	if a.container != nil {
		a.container.Surface.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	Destroy(App)
}

// Declined reports whether err only means the user chose not to run.
func Declined(err error) bool { return errors.Is(err, ErrDeclined) }
