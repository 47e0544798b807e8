package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires every route against a freshly seeded store. The nil db
// keeps persistence off; mutations stay in memory for the test's lifetime.
func newTestRouter() (*repository.ProjectStore, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	store := repository.NewSeededStore()
	r := gin.New()

	r.GET("/api/projects", GetProjects(store))
	r.POST("/api/projects", CreateProject(store, nil))
	r.GET("/api/projects/:id", GetProject(store))
	r.PUT("/api/projects/:id", UpdateProject(store, nil))
	r.DELETE("/api/projects/:id", DeleteProject(store, nil))
	r.POST("/api/projects/:id/activate", SwitchProject(store, nil))

	r.GET("/api/drawings", GetDrawings(store))
	r.POST("/api/drawings", CreateDrawing(store, nil))
	r.GET("/api/drawings/:id", GetDrawing(store))
	r.PUT("/api/drawings/:id", UpdateDrawing(store, nil))

	r.GET("/api/ncr/:id", GetNCR(store))
	r.POST("/api/ncr/:id/close", CloseNCR(store, nil))

	r.POST("/api/testing", CreateTest(store, nil))
	r.POST("/api/subcontractors", CreateSubcontractor(store, nil))
	r.POST("/api/closeout", CreateCloseoutItem(store, nil))

	r.GET("/api/closeout/:id", GetCloseoutItem(store))
	r.POST("/api/closeout/:id/complete", CompleteCloseoutItem(store, nil))

	r.GET("/api/dashboard", GetDashboard(store))

	r.GET("/api/snapshot/export", ExportSnapshot(store))
	r.POST("/api/snapshot/import", ImportSnapshot(store, nil))

	r.GET("/api/export/:module/csv", ExportCSV(store))
	r.GET("/api/export/:module/xlsx", ExportXLSX(store))
	r.GET("/api/export/:module/pdf", GenerateModulePDF(store))
	r.POST("/api/import/:module/csv", ImportCSV(store, nil))

	return store, r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v: %s", err, w.Body.String())
	}
}

func TestGetProjectsListsActive(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "GET", "/api/projects", "")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Projects        []models.Project `json:"projects"`
		ActiveProjectID string           `json:"activeProjectId"`
	}
	decode(t, w, &resp)
	if len(resp.Projects) != 2 {
		t.Errorf("expected 2 seed projects, got %d", len(resp.Projects))
	}
	if resp.ActiveProjectID != "PRJ-001" {
		t.Errorf("active = %s", resp.ActiveProjectID)
	}
}

func TestProjectLifecycle(t *testing.T) {
	store, r := newTestRouter()

	// create with defaults
	w := doJSON(r, "POST", "/api/projects", `{}`)
	if w.Code != 201 {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Project
	decode(t, w, &created)
	if created.ID != "PRJ-003" || created.Name != "New Project" {
		t.Errorf("created = %+v", created)
	}

	// invalid status is rejected
	w = doJSON(r, "POST", "/api/projects", `{"status":"broken"}`)
	if w.Code != 400 {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}

	// switch active
	w = doJSON(r, "POST", "/api/projects/PRJ-002/activate", "")
	if w.Code != 200 || store.ActiveProjectID() != "PRJ-002" {
		t.Fatalf("activate failed: %d, active=%s", w.Code, store.ActiveProjectID())
	}

	// patch keeps unset fields
	w = doJSON(r, "PUT", "/api/projects/PRJ-003", `{"name":"Renamed"}`)
	if w.Code != 200 {
		t.Fatalf("update: %d", w.Code)
	}
	p, _ := store.FindProject("PRJ-003")
	if p.Name != "Renamed" || p.Currency != "SAR" {
		t.Errorf("patched project = %+v", p)
	}

	// unknown id update is quiet
	var upd struct {
		Updated bool `json:"updated"`
	}
	w = doJSON(r, "PUT", "/api/projects/PRJ-404", `{"name":"x"}`)
	decode(t, w, &upd)
	if w.Code != 200 || upd.Updated {
		t.Errorf("unknown update: code=%d updated=%v", w.Code, upd.Updated)
	}
}

func TestDeleteProjectConfirmation(t *testing.T) {
	store, r := newTestRouter()

	// missing confirmation token
	w := doJSON(r, "DELETE", "/api/projects/PRJ-002", "")
	if w.Code != 400 {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}

	// unknown id with confirmation is a quiet no-op
	var resp struct {
		Deleted         bool   `json:"deleted"`
		ActiveProjectID string `json:"activeProjectId"`
	}
	w = doJSON(r, "DELETE", "/api/projects/PRJ-404?confirm=final", "")
	decode(t, w, &resp)
	if w.Code != 200 || resp.Deleted {
		t.Errorf("unknown delete: code=%d deleted=%v", w.Code, resp.Deleted)
	}

	// deleting the active project re-points the active pointer
	store.SwitchActiveProject("PRJ-002")
	w = doJSON(r, "DELETE", "/api/projects/PRJ-002?confirm=final", "")
	decode(t, w, &resp)
	if w.Code != 200 || !resp.Deleted || resp.ActiveProjectID != "PRJ-001" {
		t.Fatalf("delete active: code=%d resp=%+v", w.Code, resp)
	}

	// the last project is protected
	w = doJSON(r, "DELETE", "/api/projects/PRJ-001?confirm=final", "")
	if w.Code != 409 {
		t.Errorf("expected 409 for last project, got %d", w.Code)
	}
}

func TestCreateDrawingDefaults(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "POST", "/api/drawings", `{}`)
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var d models.Drawing
	decode(t, w, &d)
	if d.ID != "DWG-011" {
		t.Errorf("id = %s, want DWG-011 after 10 seed drawings", d.ID)
	}
	if d.Discipline != "Civil" || d.Status != "submitted" || d.Rev != 1 {
		t.Errorf("defaults missing: %+v", d)
	}
	if d.File != "DWG-011-Rev1.pdf" {
		t.Errorf("file = %s", d.File)
	}

	// newest renders first
	w = doJSON(r, "GET", "/api/drawings", "")
	var list []models.Drawing
	decode(t, w, &list)
	if list[0].ID != "DWG-011" {
		t.Errorf("expected new drawing first, got %s", list[0].ID)
	}
}

func TestDrawingRegisterQuietFailures(t *testing.T) {
	_, r := newTestRouter()

	if w := doJSON(r, "GET", "/api/drawings/DWG-404", ""); w.Code != 404 {
		t.Errorf("get unknown: expected 404, got %d", w.Code)
	}

	var upd struct {
		Updated bool `json:"updated"`
	}
	w := doJSON(r, "PUT", "/api/drawings/DWG-404", `{"title":"x"}`)
	decode(t, w, &upd)
	if w.Code != 200 || upd.Updated {
		t.Errorf("update unknown: code=%d updated=%v", w.Code, upd.Updated)
	}

	w = doJSON(r, "PUT", "/api/drawings/DWG-001", `{"status":"approved"}`)
	decode(t, w, &upd)
	if !upd.Updated {
		t.Error("expected updated=true for a known id")
	}
}

func TestDrawingFilters(t *testing.T) {
	_, r := newTestRouter()

	var list []models.Drawing
	w := doJSON(r, "GET", "/api/drawings?tab=mep", "")
	decode(t, w, &list)
	if len(list) != 5 {
		t.Errorf("mep tab: expected 5, got %d", len(list))
	}
	for _, d := range list {
		low := strings.ToLower(d.Discipline)
		if !strings.Contains(low, "mechanical") && !strings.Contains(low, "electrical") &&
			!strings.Contains(low, "plumbing") && !strings.Contains(low, "hvac") &&
			!strings.Contains(low, "fire") {
			t.Errorf("mep tab leaked discipline %s", d.Discipline)
		}
	}

	w = doJSON(r, "GET", "/api/drawings?status=approved", "")
	decode(t, w, &list)
	if len(list) != 4 {
		t.Errorf("status filter: expected 4 approved, got %d", len(list))
	}

	w = doJSON(r, "GET", "/api/drawings?q=hvac", "")
	decode(t, w, &list)
	if len(list) != 1 || list[0].ID != "DWG-003" {
		t.Errorf("q filter: got %v", list)
	}

	// project scoping
	w = doJSON(r, "GET", "/api/drawings?project=PRJ-404", "")
	decode(t, w, &list)
	if len(list) != 0 {
		t.Errorf("unknown project should have an empty register, got %d", len(list))
	}
}

func TestCloseNCRStampsDateOnce(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "POST", "/api/ncr/NCR-001/close", "")
	if w.Code != 200 {
		t.Fatalf("close: %d", w.Code)
	}
	var n models.NCR
	w = doJSON(r, "GET", "/api/ncr/NCR-001", "")
	decode(t, w, &n)
	if n.Status != "closed" {
		t.Errorf("status = %s", n.Status)
	}
	if n.ClosureDate != repository.Today() {
		t.Errorf("closureDate = %s", n.ClosureDate)
	}

	// an existing closure date survives a second close
	doJSON(r, "POST", "/api/ncr/NCR-004/close", "")
	w = doJSON(r, "GET", "/api/ncr/NCR-004", "")
	decode(t, w, &n)
	if n.ClosureDate != "2026-02-05" {
		t.Errorf("re-close overwrote closureDate: %s", n.ClosureDate)
	}

	var upd struct {
		Updated bool `json:"updated"`
	}
	w = doJSON(r, "POST", "/api/ncr/NCR-404/close", "")
	decode(t, w, &upd)
	if w.Code != 200 || upd.Updated {
		t.Errorf("close unknown: code=%d updated=%v", w.Code, upd.Updated)
	}
}

func TestDashboardKPIs(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(r, "GET", "/api/dashboard", "")
	if w.Code != 200 {
		t.Fatalf("dashboard: %d", w.Code)
	}
	var resp struct {
		Project models.Project     `json:"project"`
		KPIs    models.KPISnapshot `json:"kpis"`
	}
	decode(t, w, &resp)
	if resp.Project.ID != "PRJ-001" {
		t.Errorf("project = %s", resp.Project.ID)
	}
	if resp.KPIs.DrawingsTotal != 10 {
		t.Errorf("drawingsTotal = %d", resp.KPIs.DrawingsTotal)
	}
	if resp.KPIs.OpenNCRs != 3 {
		t.Errorf("openNCRs = %d", resp.KPIs.OpenNCRs)
	}
}

func TestCreateRecordIDFamilies(t *testing.T) {
	_, r := newTestRouter()

	cases := []struct {
		path string
		want string
	}{
		{"/api/testing", "TC-007"},
		{"/api/subcontractors", "SC-007"},
		{"/api/closeout", "CL-009"},
	}
	for _, tc := range cases {
		w := doJSON(r, "POST", tc.path, "{}")
		if w.Code != 201 {
			t.Fatalf("POST %s: %d: %s", tc.path, w.Code, w.Body.String())
		}
		var rec struct {
			ID string `json:"id"`
		}
		decode(t, w, &rec)
		if rec.ID != tc.want {
			t.Errorf("POST %s id = %s, want %s", tc.path, rec.ID, tc.want)
		}
	}
}
