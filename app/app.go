package app

import (
	"time"

	. "modernc.org/tk9.0"

	"deltamon/ui/presenter"
	"deltamon/ui/theme"
	"deltamon/ui/view"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	container *AppContainer
	loop      *presenter.Loop
	afterID   string
}

func NewApp(title string, c *AppContainer) *app {
	a := &app{container: c}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the view, wires user actions and runs the Tk main loop. It
// returns when the window closes.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()
	c.RootView.Build(view.Handlers{
		OnSelectRegion: func() {
			view.NewRegionSelector(c.Region.Region(), c.Monitor.OnRegionSelected, c.Logger).OpenOrFocus()
		},
		OnTestRegion: c.Monitor.Probe,
		OnSelectClickPoint: func() {
			pt, ok := c.Region.ClickPoint()
			view.NewPointSelector("Click Point", pt, ok, c.Monitor.OnClickPointSelected, c.Logger).OpenOrFocus()
		},
		OnSelectAutoClickPoint: func() {
			pt, ok := c.Region.AutoClickPoint()
			view.NewPointSelector("Auto-Click Point", pt, ok, c.Monitor.OnAutoClickPointSelected, c.Logger).OpenOrFocus()
		},
		OnStart: c.Monitor.Start,
		OnStop:  c.Monitor.Stop,
		OnExit:  a.exitHandler,
	})
	c.RootView.ConfigEditable(true)

	a.loop = presenter.NewLoop(c.Monitor, c.SessionPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps all widget mutation on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.container != nil && a.container.Monitor != nil {
		a.container.Monitor.Shutdown()
	}
	Destroy(App)
}
