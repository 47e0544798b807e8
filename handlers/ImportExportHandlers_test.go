package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func uploadFile(r *gin.Engine, path, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", filename)
	fw.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportCSVDrawings(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "GET", "/api/export/drawings/csv", "")
	if w.Code != 200 {
		t.Fatalf("export: %d: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, "drawings") {
		t.Errorf("Content-Disposition = %s", cd)
	}

	headers, records, err := utils.ParseCSV(w.Body.String())
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if headers[0] != "id" {
		t.Errorf("first header = %s", headers[0])
	}
	if len(records) != 10 {
		t.Errorf("expected 10 seed drawings, got %d rows", len(records))
	}
	if records[0]["id"] != "DWG-001" {
		t.Errorf("first row id = %s", records[0]["id"])
	}
}

func TestExportUnknownModule(t *testing.T) {
	_, r := newTestRouter()
	for _, path := range []string{
		"/api/export/nonsense/csv",
		"/api/export/nonsense/xlsx",
		"/api/export/nonsense/pdf",
	} {
		if w := doJSON(r, "GET", path, ""); w.Code != 400 {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestExportXLSX(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "GET", "/api/export/materials/xlsx", "")
	if w.Code != 200 {
		t.Fatalf("xlsx export: %d", w.Code)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("expected a zip container")
	}
}

func TestExportPDF(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "GET", "/api/export/ncr/pdf", "")
	if w.Code != 200 {
		t.Fatalf("pdf export: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF payload")
	}
}

func TestImportCSVDrawings(t *testing.T) {
	_, r := newTestRouter()

	csv := "id,title\nDWG-099,Test Drawing\n,Missing Id Row"
	w := uploadFile(r, "/api/import/drawings/csv", "drawings.csv", csv)
	if w.Code != 200 {
		t.Fatalf("import: %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}
	decode(t, w, &resp)
	if resp.Imported != 1 || resp.Skipped != 1 {
		t.Errorf("imported=%d skipped=%d", resp.Imported, resp.Skipped)
	}

	// the accepted row got the form defaults
	var d models.Drawing
	w = doJSON(r, "GET", "/api/drawings/DWG-099", "")
	decode(t, w, &d)
	if d.Discipline != "Civil" || d.Status != "submitted" || d.Rev != 1 {
		t.Errorf("imported drawing = %+v", d)
	}
}

func TestImportCSVRejectsHeaderOnly(t *testing.T) {
	_, r := newTestRouter()
	w := uploadFile(r, "/api/import/drawings/csv", "empty.csv", "id,title")
	if w.Code != 400 {
		t.Errorf("expected 400 for header-only file, got %d", w.Code)
	}
}

func TestImportCSVUnknownModule(t *testing.T) {
	_, r := newTestRouter()
	w := uploadFile(r, "/api/import/nonsense/csv", "x.csv", "id,title\nA,B")
	if w.Code != 400 {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestImportCSVNoFile(t *testing.T) {
	_, r := newTestRouter()
	req := httptest.NewRequest("POST", "/api/import/drawings/csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file, got %d", w.Code)
	}
}

func TestSnapshotExportImportRoundTrip(t *testing.T) {
	store, r := newTestRouter()

	doJSON(r, "POST", "/api/drawings", `{"id":"DWG-RT","title":"Round trip"}`)
	store.SwitchActiveProject("PRJ-002")

	w := doJSON(r, "GET", "/api/snapshot/export", "")
	if w.Code != 200 {
		t.Fatalf("export: %d", w.Code)
	}
	exported := w.Body.String()

	// import into a fresh server
	store2, r2 := newTestRouter()
	w = uploadFile(r2, "/api/snapshot/import", "project-data.json", exported)
	if w.Code != 200 {
		t.Fatalf("import: %d: %s", w.Code, w.Body.String())
	}
	if store2.ActiveProjectID() != "PRJ-002" {
		t.Errorf("imported active = %s", store2.ActiveProjectID())
	}
	var d models.Drawing
	w = doJSON(r2, "GET", "/api/drawings/DWG-RT?project=PRJ-001", "")
	decode(t, w, &d)
	if d.Title != "Round trip" {
		t.Errorf("imported drawing = %+v", d)
	}
}

func TestSnapshotImportRejectsEmptyPayload(t *testing.T) {
	_, r := newTestRouter()

	w := uploadFile(r, "/api/snapshot/import", "bad.json", `{"version":"2026.3"}`)
	if w.Code != 400 {
		t.Errorf("expected 400 for payload without projects, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no projects found") {
		t.Errorf("body = %s", w.Body.String())
	}

	w = uploadFile(r, "/api/snapshot/import", "garbage.json", "not json at all")
	if w.Code != 400 {
		t.Errorf("expected 400 for non-JSON payload, got %d", w.Code)
	}
}
