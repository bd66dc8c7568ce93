package importer

import (
	"fmt"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// Validate reports every phase whose dates will keep it off the charts.
// Problems are informational: the records are still usable.
func Validate(records []domain.Record) []error {
	var errs []error
	for i, r := range records {
		for _, p := range domain.AllPhases {
			iv, ok := r.Phase(p)
			if !ok {
				continue
			}
			if iv.Start.IsZero() {
				errs = append(errs, fmt.Errorf("project %d (%s): %s start %q is not a date", i+1, r.Name, p, iv.RawStart))
			}
			if iv.End.IsZero() {
				errs = append(errs, fmt.Errorf("project %d (%s): %s end %q is not a date", i+1, r.Name, p, iv.RawEnd))
			}
			if iv.Valid() && iv.End.Before(iv.Start) {
				errs = append(errs, fmt.Errorf("project %d (%s): %s ends before it starts", i+1, r.Name, p))
			}
		}
	}
	return errs
}
