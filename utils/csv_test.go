package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCSVTooShort(t *testing.T) {
	for _, data := range []string{"", "id,title", "id,title\n\n\n"} {
		if _, _, err := ParseCSV(data); !errors.Is(err, ErrCSVTooShort) {
			t.Errorf("ParseCSV(%q): expected ErrCSVTooShort, got %v", data, err)
		}
	}
}

func TestParseCSVBasic(t *testing.T) {
	headers, records, err := ParseCSV("id,title,rev\nDWG-001,Foundation Plan,2\nDWG-002,Frame,1")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(headers) != 3 || headers[0] != "id" || headers[2] != "rev" {
		t.Fatalf("headers = %v", headers)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["title"] != "Foundation Plan" || records[1]["id"] != "DWG-002" {
		t.Errorf("records = %v", records)
	}
}

func TestParseCSVQuotesAndWhitespace(t *testing.T) {
	_, records, err := ParseCSV("id,title\r\n \"DWG-001\" ,  \"Plan\"  ")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if records[0]["id"] != "DWG-001" {
		t.Errorf("id = %q, surrounding quotes and spaces should be stripped", records[0]["id"])
	}
	if records[0]["title"] != "Plan" {
		t.Errorf("title = %q", records[0]["title"])
	}
}

func TestParseCSVShortRowPadsEmpty(t *testing.T) {
	_, records, err := ParseCSV("id,title,status\nDWG-001,Plan")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if v, ok := records[0]["status"]; !ok || v != "" {
		t.Errorf("missing trailing field should map to empty string, got %q (present=%v)", v, ok)
	}
}

func TestParseCSVSkipsBlankLines(t *testing.T) {
	_, records, err := ParseCSV("id,title\n\nDWG-001,Plan\n\n\nDWG-002,Frame\n")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestWriteCSVQuotesEveryCell(t *testing.T) {
	out := WriteCSV([]string{"id", "title"}, [][]string{{"DWG-001", `Said "done"`}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `"id","title"` {
		t.Errorf("header = %s", lines[0])
	}
	if lines[1] != `"DWG-001","Said ""done"""` {
		t.Errorf("row = %s, inner quotes must be doubled", lines[1])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	out := WriteCSV([]string{"id", "title", "remarks"}, [][]string{
		{"NCR-001", "Honeycomb in column C4", "Repair approved"},
		{"NCR-002", "Missing anchor bolts", ""},
	})
	headers, records, err := ParseCSV(out)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(headers) != 3 || len(records) != 2 {
		t.Fatalf("headers=%v records=%d", headers, len(records))
	}
	if records[0]["title"] != "Honeycomb in column C4" {
		t.Errorf("title = %q", records[0]["title"])
	}
	if records[1]["remarks"] != "" {
		t.Errorf("remarks = %q", records[1]["remarks"])
	}
}
