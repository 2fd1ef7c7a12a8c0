package view

import (
	"image"
	"log/slog"

	"github.com/neha01mittal/datadriven-firesafety/config"
	"github.com/neha01mittal/datadriven-firesafety/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView owns the canvas and the widgets drawn onto it.
// Items are plain labels placed into the canvas by absolute coordinates.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Canvas   *CanvasWidget
	Status   *TLabelWidget
	image    *LabelWidget
	photo    *Img
	strategy *LabelWidget
	labels   []*LabelWidget
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the canvas and the status line.
func (rv *RootView) Build() {
	if rv == nil {
		return
	}
	rv.Canvas = Canvas(Width(rv.cfg.CanvasW), Height(rv.cfg.CanvasH), Background(theme.ColorBg), Highlightthickness(0))
	Pack(rv.Canvas, Fill("both"), Expand(true))
	rv.Status = TLabel(Txt("State: idle"), Style(theme.StyleStatusLabel), Anchor("w"))
	Pack(rv.Status, Fill("x"))
}

// ShowImage draws png with its top-left corner at origin, replacing any previous image.
func (rv *RootView) ShowImage(png []byte, origin image.Point) {
	if rv == nil || rv.Canvas == nil || len(png) == 0 {
		return
	}
	if rv.photo != nil {
		rv.photo.Delete()
	}
	rv.photo = NewPhoto(Data(png))
	if rv.image == nil {
		rv.image = Label(Image(rv.photo), Borderwidth(0), Background(theme.ColorBg))
	} else {
		rv.image.Configure(Image(rv.photo))
	}
	Place(rv.image, In(rv.Canvas), X(origin.X), Y(origin.Y))
}

// AddLabel draws text at the given point in the label style.
func (rv *RootView) AddLabel(text string, at image.Point) {
	if rv == nil || rv.Canvas == nil {
		return
	}
	lbl := rv.textItem(text, theme.FontLabel, theme.ColorLabel, theme.ColorLabelHover, theme.ColorLabelBg)
	Place(lbl, In(rv.Canvas), X(at.X), Y(at.Y))
	rv.labels = append(rv.labels, lbl)
}

// SetStrategyText creates the strategy item on first use and updates it afterwards.
func (rv *RootView) SetStrategyText(text string) {
	if rv == nil || rv.Canvas == nil {
		return
	}
	if rv.strategy == nil {
		rv.strategy = rv.textItem(text, theme.FontStrategy, theme.ColorStrategy, theme.ColorHover, theme.ColorBg)
		Place(rv.strategy, In(rv.Canvas), X(rv.cfg.StrategyX), Y(rv.cfg.StrategyY))
		return
	}
	rv.strategy.Configure(Txt(text))
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.Configure(Txt(text))
	}
}

// textItem builds a text label on bg that turns to hover under the pointer.
func (rv *RootView) textItem(text, font, fill, hover, bg string) *LabelWidget {
	lbl := Label(Txt(text), Font(font), Foreground(fill), Background(bg), Justify("left"), Borderwidth(0), Padx(4))
	Bind(lbl, "<Enter>", Command(func() { lbl.Configure(Foreground(hover)) }))
	Bind(lbl, "<Leave>", Command(func() { lbl.Configure(Foreground(fill)) }))
	return lbl
}
