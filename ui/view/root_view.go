package view

import (
	"log/slog"
	"time"

	"deltamon/config"
	"deltamon/domain/ocr"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers carries the user-action callbacks wired by the app container.
type Handlers struct {
	OnSelectRegion         func()
	OnTestRegion           func()
	OnSelectClickPoint     func()
	OnSelectAutoClickPoint func()
	OnStart                func()
	OnStop                 func()
	OnExit                 func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	Log         ReadingsLog

	// Widgets
	StatusLabel *LabelWidget
	startBtn    *ButtonWidget
	stopBtn     *ButtonWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: session stats and status label
	statsFrame := Frame()
	Grid(statsFrame, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.Session = NewSessionStats(statsFrame, 0, 0)
	rv.StatusLabel = Label(Txt("Idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Row 2: action buttons
	btnFrame := Frame()
	Grid(btnFrame, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	makeBtn := func(col int, label string, cmd func()) *ButtonWidget {
		b := Button(Txt(label), Command(cmd))
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		return b
	}
	makeBtn(0, "Select Region", h.OnSelectRegion)
	makeBtn(1, "Test Region", h.OnTestRegion)
	makeBtn(2, "Click Point", h.OnSelectClickPoint)
	makeBtn(3, "Auto-Click Point", h.OnSelectAutoClickPoint)
	rv.startBtn = makeBtn(4, "Start", h.OnStart)
	rv.stopBtn = makeBtn(5, "Stop", h.OnStop)
	makeBtn(6, "Exit", h.OnExit)

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(3)

	// Readings log fills the remaining space
	rv.Log = NewReadingsLog(endRow)
	GridRowConfigure(App, endRow, Weight(1))
	GridColumnConfigure(App, 1, Weight(1))
}

// SetStatus updates the status label text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ConfigEditable toggles the config panel and start/stop buttons between
// idle and running states.
func (rv *RootView) ConfigEditable(enabled bool) {
	if rv == nil {
		return
	}
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
	startState, stopState := "normal", "disabled"
	if !enabled { // running
		startState, stopState = "disabled", "normal"
	}
	if rv.startBtn != nil {
		rv.startBtn.Configure(State(startState))
	}
	if rv.stopBtn != nil {
		rv.stopBtn.Configure(State(stopState))
	}
}

// AppendReading adds one sampling result to the log.
func (rv *RootView) AppendReading(value float64, ok bool) {
	if rv != nil && rv.Log != nil {
		rv.Log.AppendReading(value, ok)
	}
}

// ShowTrigger records the terminal trigger in the log and raises the alert
// dialog, the last stage of the win pipeline.
func (rv *RootView) ShowTrigger(previous, current float64, clickRequested, clicked bool) {
	if rv != nil && rv.Log != nil {
		rv.Log.AppendLine(FormatTriggerLine(previous, current, clickRequested, clicked))
	}
	ShowTriggerAlert(previous, current, clickRequested, clicked)
}

// ShowProbe opens the region test dialog.
func (rv *RootView) ShowProbe(probe ocr.RegionProbe) {
	ShowProbeDialog(probe)
}

// ShowError surfaces a validation or runtime problem in status and log.
func (rv *RootView) ShowError(msg string) {
	rv.SetStatus("Error: " + msg)
	if rv != nil && rv.Log != nil {
		rv.Log.AppendLine("ERROR " + msg)
	}
	if rv != nil && rv.logger != nil {
		rv.logger.Warn("ui error", "message", msg)
	}
}

// SetSession updates the session duration labels.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(session, total)
	}
}

// SetCounts updates the reading counters.
func (rv *RootView) SetCounts(readings, misses int) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetCounts(readings, misses)
	}
}
