package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// EquipmentRecord describes one implement in the shed.
//
// Expected CSV header: name,implement,width_m,count
type EquipmentRecord struct {
	Name      string
	Implement string
	WidthM    float64
	Count     int
}

// LoadEquipmentCSV reads an equipment inventory file.
func LoadEquipmentCSV(path string) ([]EquipmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEquipment(f)
}

func readEquipment(r io.Reader) ([]EquipmentRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read equipment header: %w", err)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{"name", "implement", "width_m", "count"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("equipment file is missing %q column", required)
		}
	}

	var out []EquipmentRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read equipment row %d: %w", line, err)
		}
		line++

		width, err := strconv.ParseFloat(row[idx["width_m"]], 64)
		if err != nil {
			return nil, fmt.Errorf("equipment row %d: invalid width_m %q", line, row[idx["width_m"]])
		}
		count, err := strconv.Atoi(row[idx["count"]])
		if err != nil {
			return nil, fmt.Errorf("equipment row %d: invalid count %q", line, row[idx["count"]])
		}
		out = append(out, EquipmentRecord{
			Name:      row[idx["name"]],
			Implement: row[idx["implement"]],
			WidthM:    width,
			Count:     count,
		})
	}
	return out, nil
}
