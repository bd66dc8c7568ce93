package timeline

import (
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func interval(label, owner string, start, end time.Time) domain.Interval {
	return domain.Interval{
		Label:    label,
		Owner:    owner,
		Start:    start,
		End:      end,
		RawStart: domain.FormatDate(start),
		RawEnd:   domain.FormatDate(end),
	}
}

func record(name string, phases map[domain.Phase][2]string, owners map[domain.Phase]string) domain.Record {
	r := domain.NewRecord(name)
	for p, bounds := range phases {
		r.SetPhase(p, domain.NewInterval(name, owners[p], bounds[0], bounds[1]))
	}
	return r
}
