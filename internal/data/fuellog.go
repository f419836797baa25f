package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// FuelLogRecord is one row of a fuel-usage log.
//
// Expected CSV header: date,tractor,operation,liters,hectares
// Dates are YYYY-MM-DD.
type FuelLogRecord struct {
	Date      time.Time
	Tractor   string
	Operation string
	Liters    float64
	Hectares  float64
}

// LitersPerHectare returns the observed fuel rate, or 0 when no area was
// recorded.
func (r FuelLogRecord) LitersPerHectare() float64 {
	if r.Hectares <= 0 {
		return 0
	}
	return r.Liters / r.Hectares
}

// LoadFuelLogCSV reads a fuel-usage log. The header row is required.
func LoadFuelLogCSV(path string) ([]FuelLogRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readFuelLog(f)
}

func readFuelLog(r io.Reader) ([]FuelLogRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read fuel log header: %w", err)
	}
	cols, err := fuelLogColumns(header)
	if err != nil {
		return nil, err
	}

	var out []FuelLogRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read fuel log row %d: %w", line, err)
		}
		line++

		rec, err := parseFuelLogRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("fuel log row %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

type fuelLogCols struct {
	date, tractor, operation, liters, hectares int
}

func fuelLogColumns(header []string) (fuelLogCols, error) {
	cols := fuelLogCols{date: -1, tractor: -1, operation: -1, liters: -1, hectares: -1}
	for i, name := range header {
		switch name {
		case "date":
			cols.date = i
		case "tractor":
			cols.tractor = i
		case "operation":
			cols.operation = i
		case "liters":
			cols.liters = i
		case "hectares":
			cols.hectares = i
		}
	}
	for name, idx := range map[string]int{
		"date": cols.date, "operation": cols.operation,
		"liters": cols.liters, "hectares": cols.hectares,
	} {
		if idx < 0 {
			return cols, fmt.Errorf("fuel log is missing %q column", name)
		}
	}
	return cols, nil
}

func parseFuelLogRow(row []string, cols fuelLogCols) (FuelLogRecord, error) {
	var rec FuelLogRecord

	date, err := time.Parse("2006-01-02", row[cols.date])
	if err != nil {
		return rec, fmt.Errorf("invalid date %q", row[cols.date])
	}
	rec.Date = date
	if cols.tractor >= 0 && cols.tractor < len(row) {
		rec.Tractor = row[cols.tractor]
	}
	rec.Operation = row[cols.operation]

	rec.Liters, err = strconv.ParseFloat(row[cols.liters], 64)
	if err != nil {
		return rec, fmt.Errorf("invalid liters %q", row[cols.liters])
	}
	rec.Hectares, err = strconv.ParseFloat(row[cols.hectares], 64)
	if err != nil {
		return rec, fmt.Errorf("invalid hectares %q", row[cols.hectares])
	}
	return rec, nil
}

// GroupByOperation splits a log into operation-keyed slices.
func GroupByOperation(records []FuelLogRecord) map[string][]FuelLogRecord {
	out := map[string][]FuelLogRecord{}
	for _, r := range records {
		out[r.Operation] = append(out[r.Operation], r)
	}
	return out
}
