package domain

import (
	"fmt"
	"strings"
)

// Phase is one of the three work phases a project moves through.
type Phase string

const (
	PhaseDesign     Phase = "design"
	PhaseEstimating Phase = "estimating"
	PhaseProduction Phase = "production"
)

// AllPhases lists every phase in display order.
var AllPhases = []Phase{PhaseDesign, PhaseEstimating, PhaseProduction}

// ParsePhase resolves a case-insensitive phase name.
func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("unknown phase %q (want design, estimating or production)", s)
}

// Valid reports whether p is one of the three known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseDesign, PhaseEstimating, PhaseProduction:
		return true
	}
	return false
}

// Order returns the fixed sort position of the phase (design first).
func (p Phase) Order() int {
	switch p {
	case PhaseDesign:
		return 0
	case PhaseEstimating:
		return 1
	case PhaseProduction:
		return 2
	default:
		return len(AllPhases)
	}
}

// Color returns the bar color used for the phase in the overview chart.
func (p Phase) Color() string {
	switch p {
	case PhaseDesign:
		return "#4A90E2"
	case PhaseEstimating:
		return "#50C878"
	case PhaseProduction:
		return "#FF6B6B"
	default:
		return "#928374"
	}
}

// Title returns the chart heading for the phase, e.g. "Design Phase".
func (p Phase) Title() string {
	if !p.Valid() {
		return string(p)
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:] + " Phase"
}

func (p Phase) String() string { return string(p) }

// ChartKind distinguishes the cross-phase overview from a per-phase chart.
type ChartKind string

const (
	ChartOverview ChartKind = "overview"
	ChartPhase    ChartKind = "phase"
)
