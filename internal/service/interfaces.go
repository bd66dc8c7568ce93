package service

import (
	"context"
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/repository"
	"github.com/alexanderramin/phaseline/internal/timeline"
)

// LoadResult is the dataset handed to the charts.
type LoadResult struct {
	Records    []domain.Record
	SnapshotID string
	Source     string
	FetchedAt  time.Time
	// Degraded is set when the fetch or parse failed and Records is empty
	// as a result. Err holds the cause.
	Degraded bool
	Err      error
	// Warnings lists rows whose dates did not parse. They are still loaded.
	Warnings []error
}

type LoadService interface {
	// Refresh fetches, parses and caches the spreadsheet. Fetch and parse
	// failures come back as a degraded result, not an error.
	Refresh(ctx context.Context) (*LoadResult, error)
	// Cached returns the latest stored snapshot, or an empty result.
	Cached(ctx context.Context) (*LoadResult, error)
	History(ctx context.Context, limit int) ([]repository.SnapshotSummary, error)
}

// PageDirection is the way the viewport moves.
type PageDirection int

const (
	PageBackward PageDirection = -1
	PageForward  PageDirection = 1
)

// RenderRequest selects which charts to build and where the viewport opens.
// With neither Overview nor Phases set every chart is built.
type RenderRequest struct {
	Overview bool
	Phases   []domain.Phase
	// Start opens the viewport on this month if the window fits the span.
	Start *time.Time
	// Keep reopens this viewport as it is when paging from today's month
	// could reach it, taking precedence over Start.
	Keep *timeline.Viewport
	// Today positions the initial viewport. Zero means the current date.
	Today time.Time
}

type ChartService interface {
	Render(records []domain.Record, req RenderRequest) (*ChartSet, error)
	// Page re-renders set one month in dir. ok is false at a span boundary,
	// in which case set is returned unchanged.
	Page(set *ChartSet, dir PageDirection) (next *ChartSet, ok bool)
}

// ChartSet is the charts for one viewport, plus what paging needs.
type ChartSet struct {
	Span          timeline.DateSpan `json:"span"`
	Viewport      timeline.Viewport `json:"viewport"`
	CanBack       bool              `json:"can_page_backward"`
	CanForward    bool              `json:"can_page_forward"`
	StartRejected bool              `json:"start_rejected,omitempty"`
	Overview      *timeline.Chart   `json:"overview,omitempty"`
	Phases        []timeline.Chart  `json:"phases,omitempty"`

	records []domain.Record
	req     RenderRequest
}

// Charts returns the charts in display order: overview first, then phases.
func (s *ChartSet) Charts() []timeline.Chart {
	var out []timeline.Chart
	if s.Overview != nil {
		out = append(out, *s.Overview)
	}
	return append(out, s.Phases...)
}
