package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
	"github.com/neha01mittal/datadriven-firesafety/domain/strategy"
	"github.com/neha01mittal/datadriven-firesafety/ui/images"
	"github.com/neha01mittal/datadriven-firesafety/ui/model"
)

var (
	// ErrDeclined is returned when the user answers no to the opening question.
	ErrDeclined = errors.New("run declined")
	// ErrNoFileSelected is returned when the file picker is cancelled.
	ErrNoFileSelected = errors.New("no file selected")
)

// Dialog texts.
const (
	ConfirmTitle   = "FIRE AWAY!"
	ConfirmMessage = "FIRE AWAY! \n\nCapturing LIVE STREAM AT LOCATION 23 DICKSON \n\nAnalyze images from drone ?"
	OpenFileTitle  = "Select file"
	ErrorTitle     = "Error"
)

// Dialogs are the modal prompts a run goes through.
type Dialogs interface {
	Confirm(title, message string) bool
	OpenFile(title string) string
	ShowError(title, message string)
}

// Surface shows the run's result.
type Surface interface {
	ShowImage(png []byte)
	Present(labels classify.Labels, text string)
}

// Runner executes one confirm, pick, classify, present sequence.
type Runner struct {
	Dialogs    Dialogs
	Surface    Surface
	Classifier classify.Classifier
	ReadFile   func(path string) ([]byte, error)
	Model      *model.RunModel
	Logger     *slog.Logger

	// Bounds the displayed image is fitted into.
	MaxW, MaxH int

	now func() time.Time
}

// Run blocks until the result is handed to the Surface or the run aborts.
// On abort the error dialog has already been shown, except for ErrDeclined.
func (r *Runner) Run(ctx context.Context) error {
	if r.now == nil {
		r.now = time.Now
	}
	if r.Model == nil {
		r.Model = model.NewRunModel()
	}

	r.Model.SetPhase(model.PhaseConfirming, r.now())
	if !r.Dialogs.Confirm(ConfirmTitle, ConfirmMessage) {
		r.Model.Fail(ErrDeclined, r.now())
		r.log().Info("run declined")
		return ErrDeclined
	}

	r.Model.SetPhase(model.PhaseSelecting, r.now())
	path := r.Dialogs.OpenFile(OpenFileTitle)
	if path == "" {
		return r.fail(ErrNoFileSelected)
	}
	r.Model.SetFile(path)

	data, err := r.ReadFile(path)
	if err != nil {
		return r.fail(fmt.Errorf("read image: %w", err))
	}
	png, _, err := images.Prepare(data, r.MaxW, r.MaxH)
	if err != nil {
		return r.fail(fmt.Errorf("decode image %s: %w", path, err))
	}
	r.Surface.ShowImage(png)

	r.Model.SetPhase(model.PhaseClassifying, r.now())
	labels, err := r.Classifier.Classify(ctx, data)
	if err != nil {
		return r.fail(err)
	}
	text, err := strategy.Compose(labels)
	if err != nil {
		return r.fail(err)
	}

	r.Model.SetResult(labels, text)
	r.Model.SetPhase(model.PhasePresenting, r.now())
	r.Surface.Present(labels, text)
	r.log().Info("run presented", "file", path, "labels", len(labels))
	return nil
}

func (r *Runner) fail(err error) error {
	r.Model.Fail(err, r.now())
	r.log().Error("run aborted", "phase", r.Model.Phase().String(), "error", err)
	r.Dialogs.ShowError(ErrorTitle, ErrorMessage(err))
	return err
}

func (r *Runner) log() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// ErrorMessage renders err for the error dialog.
func ErrorMessage(err error) string {
	var se *classify.ServiceError
	var ile *strategy.InsufficientLabelsError
	switch {
	case errors.Is(err, ErrNoFileSelected):
		return "No file selected."
	case errors.As(err, &se):
		return fmt.Sprintf("Image classification failed (%s).\n\n%v", se.Provider, se.Err)
	case errors.As(err, &ile):
		return fmt.Sprintf("The image produced %d label(s); at least %d are needed to build a strategy.", ile.Got, strategy.PlanSize)
	default:
		return err.Error()
	}
}
