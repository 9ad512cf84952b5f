package app

import (
	"log/slog"

	"deltamon/config"
	"deltamon/domain/action"
	"deltamon/domain/monitor"
	"deltamon/domain/ocr"
	"deltamon/ui/model"
	"deltamon/ui/presenter"
	"deltamon/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Run     *model.RunModel
	Region  *model.RegionModel
	Session *model.SessionModel

	Source    *ocr.Source
	Actuators *action.Actuators

	RootView *view.RootView

	// Presenters
	Monitor          *presenter.MonitorPresenter
	SessionPresenter *presenter.SessionPresenter
}

// BuildContainer constructs all components. The view is built later by the
// app shell once Tk is running.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath, probeDir string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Run = &model.RunModel{}
	c.Region = model.NewRegionModel()
	c.Session = model.NewSessionModel()
	seedSelections(c.Region, cfg)

	c.Source = ocr.NewSource(logger)
	c.Actuators = action.New(cfg.NotifyServer, logger)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Monitor = presenter.NewMonitorPresenter(
		cfg, cfgPath, probeDir,
		c.Run, c.Region, c.Session,
		c.RootView,
		c.Source, c.Actuators, c.Source,
		logger,
	)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Run, c.RootView)
	return c
}

// seedSelections restores persisted region and click targets into the model.
func seedSelections(m *model.RegionModel, cfg *config.Config) {
	if cfg == nil {
		return
	}
	r := monitor.Region{Left: cfg.RegionX, Top: cfg.RegionY, Width: cfg.RegionW, Height: cfg.RegionH}
	if r.Valid() {
		m.SetRegion(r)
	}
	if cfg.ClickSet {
		m.SetClickPoint(monitor.Point{X: cfg.ClickX, Y: cfg.ClickY})
	}
	if cfg.AutoClickSet {
		m.SetAutoClickPoint(monitor.Point{X: cfg.AutoClickX, Y: cfg.AutoClickY})
	}
}
