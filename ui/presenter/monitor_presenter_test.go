package presenter

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"deltamon/config"
	"deltamon/domain/monitor"
	"deltamon/domain/ocr"
	"deltamon/ui/model"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubView struct {
	mu       sync.Mutex
	statuses []string
	editable []bool
	readings []bool
	triggers []struct {
		prev, cur          float64
		requested, clicked bool
	}
	probes []ocr.RegionProbe
	errs   []string
}

func (v *stubView) SetStatus(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statuses = append(v.statuses, text)
}

func (v *stubView) ConfigEditable(b bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editable = append(v.editable, b)
}

func (v *stubView) AppendReading(value float64, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.readings = append(v.readings, ok)
}

func (v *stubView) ShowTrigger(previous, current float64, clickRequested, clicked bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.triggers = append(v.triggers, struct {
		prev, cur          float64
		requested, clicked bool
	}{previous, current, clickRequested, clicked})
}

func (v *stubView) ShowProbe(probe ocr.RegionProbe) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.probes = append(v.probes, probe)
}

func (v *stubView) ShowError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errs = append(v.errs, msg)
}

func (v *stubView) lastStatus() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

type stubSource struct {
	mu  sync.Mutex
	seq []float64
	idx int
}

func (s *stubSource) Read(monitor.Region) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.seq) == 0 {
		return 0, false
	}
	v := s.seq[s.idx]
	if s.idx < len(s.seq)-1 {
		s.idx++
	}
	return v, true
}

type stubActuator struct {
	mu      sync.Mutex
	clicks  int
	failing bool
}

func (a *stubActuator) Click(monitor.Point) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clicks++
	return !a.failing
}

func (a *stubActuator) Notify(topic, message string) {}

type stubProber struct {
	probe ocr.RegionProbe
	err   error
}

func (p *stubProber) ProbeRegion(monitor.Region, string) (ocr.RegionProbe, error) {
	return p.probe, p.err
}

func newTestPresenter(t *testing.T, cfg *config.Config, src monitor.ValueSource, prober RegionProber) (*MonitorPresenter, *stubView, *model.RunModel) {
	t.Helper()
	return newTestPresenterWithActuator(t, cfg, src, prober, &stubActuator{})
}

func newTestPresenterWithActuator(t *testing.T, cfg *config.Config, src monitor.ValueSource, prober RegionProber, act monitor.Actuator) (*MonitorPresenter, *stubView, *model.RunModel) {
	t.Helper()
	view := &stubView{}
	run := &model.RunModel{}
	p := NewMonitorPresenter(
		cfg, filepath.Join(t.TempDir(), "config.json"), t.TempDir(),
		run, model.NewRegionModel(), model.NewSessionModel(),
		view, src, act, prober, testLogger,
	)
	t.Cleanup(p.Shutdown)
	return p, view, run
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.IntervalSeconds = 0.02
	return cfg
}

func TestMonitorPresenter_StartWithoutRegionShowsError(t *testing.T) {
	p, view, run := newTestPresenter(t, testConfig(), &stubSource{}, nil)
	p.Start()
	if run.Running() {
		t.Fatal("must not start without a region")
	}
	if len(view.errs) != 1 {
		t.Fatalf("errors %v", view.errs)
	}
}

func TestMonitorPresenter_StartStop(t *testing.T) {
	p, view, run := newTestPresenter(t, testConfig(), &stubSource{seq: []float64{10}}, nil)
	p.OnRegionSelected(monitor.Region{Left: 5, Top: 5, Width: 100, Height: 40})

	p.Start()
	if !run.Running() {
		t.Fatal("expected running after Start")
	}
	if !strings.HasPrefix(view.lastStatus(), "Monitoring") {
		t.Fatalf("status %q", view.lastStatus())
	}

	p.Stop()
	if run.Running() {
		t.Fatal("expected stopped after Stop")
	}
	view.mu.Lock()
	defer view.mu.Unlock()
	if len(view.editable) != 2 || view.editable[0] || !view.editable[1] {
		t.Fatalf("editable transitions %v", view.editable)
	}
}

func TestMonitorPresenter_TriggerEndsRun(t *testing.T) {
	cfg := testConfig()
	cfg.Win = 2
	p, view, run := newTestPresenter(t, cfg, &stubSource{seq: []float64{10, 15}}, nil)
	p.OnRegionSelected(monitor.Region{Width: 80, Height: 30})

	p.Start()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.ProcessEvents()
		view.mu.Lock()
		n := len(view.triggers)
		view.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	view.mu.Lock()
	defer view.mu.Unlock()
	if len(view.triggers) != 1 {
		t.Fatalf("triggers %v", view.triggers)
	}
	tr := view.triggers[0]
	if tr.prev != 10 || tr.cur != 15 || tr.requested {
		t.Fatalf("trigger %+v", tr)
	}
	if run.Running() {
		t.Fatal("run must end on trigger")
	}
	if !strings.HasPrefix(view.statuses[len(view.statuses)-1], "Triggered") {
		t.Fatalf("status %q", view.statuses[len(view.statuses)-1])
	}
}

func TestMonitorPresenter_ClickOnWinRequiresPoint(t *testing.T) {
	cfg := testConfig()
	cfg.ClickOnWin = true
	p, view, run := newTestPresenter(t, cfg, &stubSource{seq: []float64{10}}, nil)
	p.OnRegionSelected(monitor.Region{Width: 80, Height: 30})

	p.Start()
	if run.Running() {
		t.Fatal("must not start with click-on-win enabled and no click point")
	}
	if len(view.errs) != 1 {
		t.Fatalf("errors %v", view.errs)
	}
}

func TestMonitorPresenter_TriggerReportsFailedClick(t *testing.T) {
	cfg := testConfig()
	cfg.Win = 2
	cfg.ClickOnWin = true
	p, view, _ := newTestPresenterWithActuator(t, cfg, &stubSource{seq: []float64{10, 15}}, nil, &stubActuator{failing: true})
	p.OnRegionSelected(monitor.Region{Width: 80, Height: 30})
	p.OnClickPointSelected(monitor.Point{X: 50, Y: 60})

	p.Start()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.ProcessEvents()
		view.mu.Lock()
		n := len(view.triggers)
		view.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	view.mu.Lock()
	defer view.mu.Unlock()
	if len(view.triggers) != 1 {
		t.Fatalf("triggers %v", view.triggers)
	}
	tr := view.triggers[0]
	if !tr.requested || tr.clicked {
		t.Fatalf("failed click must surface as requested-but-not-executed: %+v", tr)
	}
}

func TestMonitorPresenter_AutoClickRequiresPoint(t *testing.T) {
	cfg := testConfig()
	cfg.AutoClick = true
	p, view, run := newTestPresenter(t, cfg, &stubSource{seq: []float64{10}}, nil)
	p.OnRegionSelected(monitor.Region{Width: 80, Height: 30})

	p.Start()
	if run.Running() {
		t.Fatal("must not start without an auto-click point")
	}
	if len(view.errs) != 1 {
		t.Fatalf("errors %v", view.errs)
	}
}

func TestMonitorPresenter_SelectionsPersist(t *testing.T) {
	cfg := testConfig()
	p, _, _ := newTestPresenter(t, cfg, &stubSource{}, nil)

	p.OnRegionSelected(monitor.Region{Left: 1, Top: 2, Width: 30, Height: 40})
	p.OnClickPointSelected(monitor.Point{X: 100, Y: 200})
	p.OnAutoClickPointSelected(monitor.Point{X: 5, Y: 6})

	if cfg.RegionX != 1 || cfg.RegionY != 2 || cfg.RegionW != 30 || cfg.RegionH != 40 {
		t.Fatalf("region not persisted: %+v", cfg)
	}
	if !cfg.ClickSet || cfg.ClickX != 100 || cfg.ClickY != 200 {
		t.Fatalf("click point not persisted: %+v", cfg)
	}
	if !cfg.AutoClickSet || cfg.AutoClickX != 5 || cfg.AutoClickY != 6 {
		t.Fatalf("auto-click point not persisted: %+v", cfg)
	}

	saved, err := config.Load(p.cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.RegionW != 30 || !saved.ClickSet || !saved.AutoClickSet {
		t.Fatalf("saved config incomplete: %+v", saved)
	}
}

func TestMonitorPresenter_ProbeShowsResult(t *testing.T) {
	prober := &stubProber{probe: ocr.RegionProbe{RawText: "128", Value: 128, HasValue: true}}
	p, view, _ := newTestPresenter(t, testConfig(), &stubSource{}, prober)
	p.OnRegionSelected(monitor.Region{Width: 80, Height: 30})

	p.Probe()
	if len(view.probes) != 1 || view.probes[0].Value != 128 {
		t.Fatalf("probes %v", view.probes)
	}
}

func TestMonitorPresenter_ProbeWithoutRegionShowsError(t *testing.T) {
	p, view, _ := newTestPresenter(t, testConfig(), &stubSource{}, &stubProber{})
	p.Probe()
	if len(view.probes) != 0 || len(view.errs) != 1 {
		t.Fatalf("probes=%v errs=%v", view.probes, view.errs)
	}
}
