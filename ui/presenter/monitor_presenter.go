package presenter

import (
	"fmt"
	"log/slog"
	"time"

	"deltamon/config"
	"deltamon/domain/monitor"
	"deltamon/domain/ocr"
	"deltamon/ui/model"
)

// RunStateModel provides monitoring state access.
type RunStateModel interface {
	Running() bool
	SetRunning(bool)
}

// RegionProber narrows what the presenter needs for the diagnostic test read.
type RegionProber interface {
	ProbeRegion(region monitor.Region, dir string) (ocr.RegionProbe, error)
}

// MonitorView updates UI elements affected by run state and sampling events.
type MonitorView interface {
	SetStatus(text string)
	ConfigEditable(bool)
	AppendReading(value float64, ok bool)
	// ShowTrigger reports the terminal win. clickRequested distinguishes
	// "no click configured" from "click requested but did not execute".
	ShowTrigger(previous, current float64, clickRequested, clicked bool)
	ShowProbe(probe ocr.RegionProbe)
	ShowError(msg string)
}

// MonitorPresenter owns presentation logic for starting, stopping and
// observing a monitoring run. One run maps to one Sampler plus an optional
// AutoClicker sharing a fresh feed and stop signals.
type MonitorPresenter struct {
	cfg      *config.Config
	cfgPath  string
	probeDir string

	run     RunStateModel
	region  *model.RegionModel
	session *model.SessionModel
	view    MonitorView

	src    monitor.ValueSource
	act    monitor.Actuator
	prober RegionProber
	logger *slog.Logger

	feed     *monitor.Feed
	stop     *monitor.Signal
	autoStop *monitor.Signal
}

func NewMonitorPresenter(
	cfg *config.Config, cfgPath, probeDir string,
	run RunStateModel, region *model.RegionModel, session *model.SessionModel,
	view MonitorView,
	src monitor.ValueSource, act monitor.Actuator, prober RegionProber,
	logger *slog.Logger,
) *MonitorPresenter {
	return &MonitorPresenter{
		cfg: cfg, cfgPath: cfgPath, probeDir: probeDir,
		run: run, region: region, session: session, view: view,
		src: src, act: act, prober: prober, logger: logger,
	}
}

// Start builds run options from config and selection state and launches the
// sampling loop. Validation failures surface on the view; nothing starts.
// Idempotent while running.
func (p *MonitorPresenter) Start() {
	if p == nil || p.run == nil || p.view == nil {
		return
	}
	if p.run.Running() {
		return
	}
	if !p.region.HasRegion() {
		p.view.ShowError("Select a region first")
		return
	}
	if p.cfg.ClickOnWin {
		if _, ok := p.region.ClickPoint(); !ok {
			p.view.ShowError("Click on win enabled but no click point set")
			return
		}
	}

	opts := p.buildOptions()
	feed := monitor.NewFeed()
	stop := monitor.NewSignal()
	autoStop := monitor.NewSignal()
	opts.AutoClickStop = autoStop

	sampler, err := monitor.NewSampler(opts, p.src, p.act, feed, stop, p.logger)
	if err != nil {
		p.view.ShowError(err.Error())
		return
	}

	var clicker *monitor.AutoClicker
	if p.cfg.AutoClick {
		pt, ok := p.region.AutoClickPoint()
		if !ok {
			p.view.ShowError("Auto-click enabled but no auto-click point set")
			return
		}
		interval := time.Duration(p.cfg.AutoClickIntervalSeconds * float64(time.Second))
		clicker, err = monitor.NewAutoClicker(pt, interval, p.act, autoStop, p.logger)
		if err != nil {
			p.view.ShowError(err.Error())
			return
		}
	}

	p.feed, p.stop, p.autoStop = feed, stop, autoStop
	sampler.Start()
	if clicker != nil {
		clicker.Start()
	}
	p.run.SetRunning(true)
	p.view.ConfigEditable(false)
	p.view.SetStatus("Monitoring " + opts.Region.String())
	if p.logger != nil {
		p.logger.Info("monitoring started", "region", opts.Region.String(), "interval", opts.Interval)
	}
}

// Stop ends the current run. Both loops share the precedence rule: a stop
// observed before a tick's evaluation suppresses any would-be trigger.
// Idempotent while stopped.
func (p *MonitorPresenter) Stop() {
	if p == nil || p.run == nil || !p.run.Running() {
		return
	}
	if p.stop != nil {
		p.stop.Set()
	}
	if p.autoStop != nil {
		p.autoStop.Set()
	}
	p.run.SetRunning(false)
	p.view.ConfigEditable(true)
	p.view.SetStatus("Stopped")
	if p.logger != nil {
		p.logger.Info("monitoring stopped")
	}
}

// ProcessEvents drains the feed and pushes events to the view. Called from
// the UI tick so all widget mutation happens on the Tk thread. A trigger
// event ends the run.
func (p *MonitorPresenter) ProcessEvents() {
	if p == nil || p.feed == nil {
		return
	}
	for {
		ev, ok := p.feed.TryNext()
		if !ok {
			return
		}
		switch e := ev.(type) {
		case monitor.ReadingEvent:
			if p.session != nil {
				p.session.AddReading(e.OK)
			}
			p.view.AppendReading(e.Value, e.OK)
		case monitor.TriggerEvent:
			p.finishTriggered(e)
		}
	}
}

func (p *MonitorPresenter) finishTriggered(e monitor.TriggerEvent) {
	if p.stop != nil {
		p.stop.Set()
	}
	p.run.SetRunning(false)
	p.view.ShowTrigger(e.Previous, e.Current, p.cfg.ClickOnWin, e.ClickedAt != nil)
	p.view.ConfigEditable(true)
	p.view.SetStatus(fmt.Sprintf("Triggered: %g -> %g", e.Previous, e.Current))
}

// Probe performs a one-shot diagnostic read of the selected region and shows
// the raw OCR text, the extracted value and snapshot locations.
func (p *MonitorPresenter) Probe() {
	if p == nil || p.view == nil || p.prober == nil {
		return
	}
	if !p.region.HasRegion() {
		p.view.ShowError("Select a region first")
		return
	}
	probe, err := p.prober.ProbeRegion(p.region.Region(), p.probeDir)
	if err != nil {
		p.view.ShowError(err.Error())
		return
	}
	p.view.ShowProbe(probe)
}

// OnRegionSelected stores the new region and persists it.
func (p *MonitorPresenter) OnRegionSelected(r monitor.Region) {
	if p == nil || p.region == nil {
		return
	}
	p.region.SetRegion(r)
	if p.cfg != nil {
		p.cfg.RegionX, p.cfg.RegionY = r.Left, r.Top
		p.cfg.RegionW, p.cfg.RegionH = r.Width, r.Height
		p.saveConfig()
	}
	p.view.SetStatus("Region " + r.String())
}

// OnClickPointSelected stores the win-click target and persists it.
func (p *MonitorPresenter) OnClickPointSelected(pt monitor.Point) {
	if p == nil || p.region == nil {
		return
	}
	p.region.SetClickPoint(pt)
	if p.cfg != nil {
		p.cfg.ClickX, p.cfg.ClickY, p.cfg.ClickSet = pt.X, pt.Y, true
		p.saveConfig()
	}
	p.view.SetStatus("Click point " + pt.String())
}

// OnAutoClickPointSelected stores the auto-clicker target and persists it.
func (p *MonitorPresenter) OnAutoClickPointSelected(pt monitor.Point) {
	if p == nil || p.region == nil {
		return
	}
	p.region.SetAutoClickPoint(pt)
	if p.cfg != nil {
		p.cfg.AutoClickX, p.cfg.AutoClickY, p.cfg.AutoClickSet = pt.X, pt.Y, true
		p.saveConfig()
	}
	p.view.SetStatus("Auto-click point " + pt.String())
}

// Shutdown releases any active run. Safe to call multiple times; used by the
// window close handler.
func (p *MonitorPresenter) Shutdown() {
	if p == nil {
		return
	}
	if p.stop != nil {
		p.stop.Set()
	}
	if p.autoStop != nil {
		p.autoStop.Set()
	}
	if p.run != nil {
		p.run.SetRunning(false)
	}
}

func (p *MonitorPresenter) buildOptions() monitor.Options {
	opts := monitor.Options{
		Region:   p.region.Region(),
		Interval: time.Duration(p.cfg.IntervalSeconds * float64(time.Second)),
		Policy: monitor.ThresholdPolicy{
			Win:         p.cfg.Win,
			MinBaseline: p.cfg.MinBaseline,
			MaxDelta:    p.cfg.MaxDelta,
		},
		NotifyTopic:   p.cfg.NotifyTopic,
		NotifyMessage: p.cfg.NotifyMessage,
	}
	if p.cfg.ClickOnWin {
		// A missing target is rejected in Start; Options.Validate backstops it.
		opts.ClickOnWin = true
		if pt, ok := p.region.ClickPoint(); ok {
			opts.ClickTarget = &pt
		}
	}
	return opts
}

func (p *MonitorPresenter) saveConfig() {
	if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
		p.logger.Error("config save failed", "error", err)
	}
}
