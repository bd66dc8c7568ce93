// Package importer turns the spreadsheet CSV export into project records.
//
// The export has a header row followed by one row per project:
//
//	name, design owner, design start, design end,
//	      estimating owner, estimating start, estimating end,
//	      production owner, production start, production end
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// Columns is the number of columns in a full row.
const Columns = 10

// phaseColumns maps each phase to the index of its owner column; start and
// end follow it.
var phaseColumns = map[domain.Phase]int{
	domain.PhaseDesign:     1,
	domain.PhaseEstimating: 4,
	domain.PhaseProduction: 7,
}

// ParseCSV reads the export. The first row is a header and is skipped. Rows
// without a project name are ignored, short rows are padded, and a phase is
// attached only when its owner is present and not "n/a".
func ParseCSV(r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}

		rec, ok := parseRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseCSVString is ParseCSV over an in-memory export.
func ParseCSVString(s string) ([]domain.Record, error) {
	return ParseCSV(strings.NewReader(s))
}

func parseRow(row []string) (domain.Record, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(0)
	if name == "" {
		return domain.Record{}, false
	}

	rec := domain.NewRecord(name)
	for _, p := range domain.AllPhases {
		col := phaseColumns[p]
		owner := cell(col)
		if domain.IsAbsentOwner(owner) {
			continue
		}
		rec.SetPhase(p, domain.NewInterval(name, owner, cell(col+1), cell(col+2)))
	}
	return rec, true
}
