package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads trials from the first sheet of a workbook. The first row
// is a header naming the columns (any order, case-insensitive):
// name, b, h, d, cover, fc, fy, Es, As, As_prime, d_prime. Empty cells
// are left at zero so defaults apply.
func ReadXLSX(r io.Reader) (*File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no trials", sheet)
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var file File
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		t, err := parseTrialRow(columns, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		file.Trials = append(file.Trials, t)
	}
	if len(file.Trials) == 0 {
		return nil, fmt.Errorf("sheet %q has no trials", sheet)
	}
	return &file, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseTrialRow(columns map[string]int, row []string) (Trial, error) {
	var t Trial

	get := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	t.Name = get("name")

	fields := []struct {
		name string
		dst  *float64
	}{
		{"b", &t.B},
		{"h", &t.H},
		{"d", &t.D},
		{"fc", &t.Fc},
		{"fy", &t.Fy},
		{"es", &t.Es},
		{"as", &t.As},
		{"as_prime", &t.AsPrime},
		{"d_prime", &t.DPrime},
	}
	for _, fd := range fields {
		s := get(fd.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Trial{}, fmt.Errorf("column %s: %w", fd.name, err)
		}
		*fd.dst = v
	}

	if s := get("cover"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Trial{}, fmt.Errorf("column cover: %w", err)
		}
		t.Cover = &v
	}

	return t, nil
}
