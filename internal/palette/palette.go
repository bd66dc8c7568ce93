// Package palette assigns stable display colors to projects.
package palette

import (
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/samber/lo"
)

// Colors is the 30-color cycle used for project bars in phase charts.
var Colors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEEAD", "#D4A5A5",
	"#FF9F1C", "#2EC4B6", "#E71D36", "#011627", "#7DCEA0", "#E8C547",
	"#4A90E2", "#50E3C2", "#B8E986", "#D6B1FF", "#FF9EAA", "#FFD93D",
	"#6C5CE7", "#A8E6CF", "#DCEDC1", "#FFD3B6", "#FFAAA5", "#98DDCA",
	"#D5ECC2", "#FFD3B5", "#FFAAA7", "#FF8B94", "#A8D8EA", "#FF61A6",
}

// Assign maps each distinct project name, in first-seen order, to the next
// color in the cycle.
func Assign(records []domain.Record) map[string]string {
	names := lo.Uniq(lo.Map(records, func(r domain.Record, _ int) string { return r.Name }))
	out := make(map[string]string, len(names))
	for i, name := range names {
		out[name] = Colors[i%len(Colors)]
	}
	return out
}
