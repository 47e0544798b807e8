package utils

import (
	"errors"
	"strings"
)

// ErrCSVTooShort is returned when an uploaded file has no data rows.
var ErrCSVTooShort = errors.New("CSV file must have a header row and at least one data row")

// ParseCSV splits raw CSV text into a header row and per-row field maps.
// Values are split on commas positionally, surrounding quotes are stripped
// and blank lines ignored. Embedded commas inside quoted values are not
// supported; the register exports never produce them.
func ParseCSV(data string) ([]string, []map[string]string, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil, nil, ErrCSVTooShort
	}

	headers := splitLine(lines[0])
	records := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitLine(line)
		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				record[h] = fields[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}
	return headers, records, nil
}

func splitLine(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimPrefix(p, `"`)
		p = strings.TrimSuffix(p, `"`)
		fields[i] = p
	}
	return fields
}

// WriteCSV renders a header row plus data rows. Every cell is quoted and
// inner quotes are doubled, matching what spreadsheet tools expect.
func WriteCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, headers)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}
