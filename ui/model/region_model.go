package model

import (
	"deltamon/domain/monitor"
)

// RegionModel holds the monitored screen region and the two click targets
// picked by the user. Zero value means nothing selected and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type RegionModel struct {
	region monitor.Region

	clickPoint   monitor.Point
	clickSet     bool
	autoClickAt  monitor.Point
	autoClickSet bool
}

func NewRegionModel() *RegionModel { return &RegionModel{} }

// SetRegion stores the monitored rectangle. An invalid region clears it.
func (m *RegionModel) SetRegion(r monitor.Region) {
	if m == nil {
		return
	}
	if !r.Valid() {
		m.region = monitor.Region{}
		return
	}
	m.region = r
}

// Region returns the current monitored rectangle (may be invalid when unset).
func (m *RegionModel) Region() monitor.Region {
	if m == nil {
		return monitor.Region{}
	}
	return m.region
}

// HasRegion reports whether a usable region has been selected.
func (m *RegionModel) HasRegion() bool {
	return m != nil && m.region.Valid()
}

// SetClickPoint stores the win-click target.
func (m *RegionModel) SetClickPoint(p monitor.Point) {
	if m == nil {
		return
	}
	m.clickPoint = p
	m.clickSet = true
}

// ClickPoint returns the win-click target and whether one was set.
func (m *RegionModel) ClickPoint() (monitor.Point, bool) {
	if m == nil {
		return monitor.Point{}, false
	}
	return m.clickPoint, m.clickSet
}

// SetAutoClickPoint stores the auto-clicker target.
func (m *RegionModel) SetAutoClickPoint(p monitor.Point) {
	if m == nil {
		return
	}
	m.autoClickAt = p
	m.autoClickSet = true
}

// AutoClickPoint returns the auto-clicker target and whether one was set.
func (m *RegionModel) AutoClickPoint() (monitor.Point, bool) {
	if m == nil {
		return monitor.Point{}, false
	}
	return m.autoClickAt, m.autoClickSet
}
