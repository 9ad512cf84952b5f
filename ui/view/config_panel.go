package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"deltamon/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the configuration form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("intervalSeconds", "Interval Seconds", fmt.Sprintf("%.2f", c.IntervalSeconds))
	makeRow("win", "Win (min increase)", fmt.Sprintf("%.2f", c.Win))
	makeRow("minBaseline", "Min Baseline", fmt.Sprintf("%.2f", c.MinBaseline))
	makeRow("maxDelta", "Max Delta (0 = off)", fmt.Sprintf("%.2f", c.MaxDelta))
	makeRow("clickOnWin", "Click On Win (true/false)", fmt.Sprintf("%t", c.ClickOnWin))
	makeRow("notifyTopic", "Notify Topic", c.NotifyTopic)
	makeRow("notifyMessage", "Notify Message", c.NotifyMessage)
	makeRow("notifyServer", "Notify Server", c.NotifyServer)
	makeRow("autoClick", "Auto Click (true/false)", fmt.Sprintf("%t", c.AutoClick))
	makeRow("autoClickIntervalSeconds", "Auto Click Interval Seconds", fmt.Sprintf("%.2f", c.AutoClickIntervalSeconds))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			*dst = f
		}
	}
	assignBool := func(id string, dst *bool) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if b, ok := parseBoolLoose(strings.TrimSpace(v.text(w))); ok {
			*dst = b
		}
	}
	assignString := func(id string, dst *string) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		*dst = strings.TrimSpace(v.text(w))
	}
	assignFloat("intervalSeconds", &cfg.IntervalSeconds)
	assignFloat("win", &cfg.Win)
	assignFloat("minBaseline", &cfg.MinBaseline)
	assignFloat("maxDelta", &cfg.MaxDelta)
	assignBool("clickOnWin", &cfg.ClickOnWin)
	assignString("notifyTopic", &cfg.NotifyTopic)
	assignString("notifyMessage", &cfg.NotifyMessage)
	assignString("notifyServer", &cfg.NotifyServer)
	assignBool("autoClick", &cfg.AutoClick)
	assignFloat("autoClickIntervalSeconds", &cfg.AutoClickIntervalSeconds)
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else {
		if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
