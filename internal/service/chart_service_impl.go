package service

import (
	"fmt"
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/palette"
	"github.com/alexanderramin/phaseline/internal/timeline"
)

type chartService struct {
	months int
	layout timeline.Layout
	now    func() time.Time
}

// NewChartService builds charts with viewports of months months
// (timeline.DefaultViewportMonths when <= 0).
func NewChartService(months int, layout timeline.Layout) ChartService {
	if months <= 0 {
		months = timeline.DefaultViewportMonths
	}
	return &chartService{
		months: months,
		layout: layout,
		now:    time.Now,
	}
}

func (s *chartService) Render(records []domain.Record, req RenderRequest) (*ChartSet, error) {
	for _, p := range req.Phases {
		if !p.Valid() {
			return nil, fmt.Errorf("unknown phase %q", p)
		}
	}
	if !req.Overview && len(req.Phases) == 0 {
		req.Overview = true
		req.Phases = domain.AllPhases
	}
	today := req.Today
	if today.IsZero() {
		today = s.now()
	}
	// Today is the local calendar date, carried as UTC midnight like every
	// other date.
	today = domain.Day(today)

	span := timeline.ComputeDateSpan(records, today)
	nav := timeline.NewNavigator(span, s.months)
	v := nav.Initialize(today)
	rejected := false
	if req.Keep != nil && nav.Reachable(today, *req.Keep) {
		v = timeline.Viewport{Start: domain.MonthStart(req.Keep.Start), Months: nav.Months}
	} else if req.Start != nil {
		var ok bool
		if v, ok = nav.JumpTo(v, *req.Start); !ok {
			rejected = true
		}
	}

	set := s.build(records, req, span, v)
	set.StartRejected = rejected
	return set, nil
}

func (s *chartService) Page(set *ChartSet, dir PageDirection) (*ChartSet, bool) {
	nav := timeline.NewNavigator(set.Span, s.months)
	var (
		v  timeline.Viewport
		ok bool
	)
	switch dir {
	case PageBackward:
		v, ok = nav.PageBackward(set.Viewport)
	case PageForward:
		v, ok = nav.PageForward(set.Viewport)
	}
	if !ok {
		return set, false
	}
	return s.build(set.records, set.req, set.Span, v), true
}

// build derives every chart from scratch for viewport v.
func (s *chartService) build(records []domain.Record, req RenderRequest, span timeline.DateSpan, v timeline.Viewport) *ChartSet {
	nav := timeline.NewNavigator(span, s.months)
	set := &ChartSet{
		Span:       span,
		Viewport:   v,
		CanBack:    nav.CanPageBackward(v),
		CanForward: nav.CanPageForward(v),
		records:    records,
		req:        req,
	}
	if req.Overview {
		overview := timeline.BuildOverviewChart(records, v, s.layout)
		set.Overview = &overview
	}
	colors := palette.Assign(records)
	for _, p := range req.Phases {
		set.Phases = append(set.Phases, timeline.BuildPhaseChart(records, p, v, colors, s.layout))
	}
	return set
}
