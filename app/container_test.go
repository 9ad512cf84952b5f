package app

import (
	"testing"

	"deltamon/config"
	"deltamon/domain/monitor"
	"deltamon/ui/model"
)

func TestSeedSelections_RestoresPersistedState(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RegionX, cfg.RegionY, cfg.RegionW, cfg.RegionH = 10, 20, 300, 80
	cfg.ClickSet, cfg.ClickX, cfg.ClickY = true, 640, 480
	cfg.AutoClickSet, cfg.AutoClickX, cfg.AutoClickY = true, 5, 6

	m := model.NewRegionModel()
	seedSelections(m, cfg)

	want := monitor.Region{Left: 10, Top: 20, Width: 300, Height: 80}
	if m.Region() != want {
		t.Fatalf("region %v, want %v", m.Region(), want)
	}
	if pt, ok := m.ClickPoint(); !ok || pt != (monitor.Point{X: 640, Y: 480}) {
		t.Fatalf("click point %v ok=%v", pt, ok)
	}
	if pt, ok := m.AutoClickPoint(); !ok || pt != (monitor.Point{X: 5, Y: 6}) {
		t.Fatalf("auto-click point %v ok=%v", pt, ok)
	}
}

func TestSeedSelections_IgnoresUnsetState(t *testing.T) {
	m := model.NewRegionModel()
	seedSelections(m, config.DefaultConfig())

	if m.HasRegion() {
		t.Fatal("zero-size region must not seed")
	}
	if _, ok := m.ClickPoint(); ok {
		t.Fatal("click point must stay unset")
	}
	if _, ok := m.AutoClickPoint(); ok {
		t.Fatal("auto-click point must stay unset")
	}
}
