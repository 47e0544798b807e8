package repository

import (
	"errors"
	"testing"

	"backend/models"
)

func TestSeededStoreBundleShape(t *testing.T) {
	s := NewSeededStore()

	b := s.BundleCopy("PRJ-001")
	if b.Drawings == nil || b.Materials == nil || b.Methods == nil ||
		b.NCR == nil || b.RFI == nil || b.SI == nil ||
		b.Testing == nil || b.Procurement == nil || b.Subcontractors == nil ||
		b.Closeout == nil {
		t.Fatal("expected every register slice to be non-nil")
	}
	if b.HSE.Incidents == nil {
		t.Error("expected HSE incidents slice")
	}
	if b.Cost.Categories == nil {
		t.Error("expected cost categories slice")
	}
	if b.Manpower.Weekly == nil || b.Manpower.Equipment == nil {
		t.Error("expected manpower slices")
	}
	if b.Progress.Milestones == nil || b.Progress.SCurveData == nil || b.Progress.DisciplineProgress == nil {
		t.Error("expected progress slices")
	}
	if len(b.Drawings) == 0 {
		t.Error("expected seed drawings")
	}
}

func TestBundleCreatedForUnknownProject(t *testing.T) {
	s := NewSeededStore()

	b := s.BundleCopy("PRJ-999")
	if b.Drawings == nil || len(b.Drawings) != 0 {
		t.Errorf("expected empty drawings register, got %v", b.Drawings)
	}
	if b.Manpower.Today.Date == "" {
		t.Error("expected today's date on the fresh manpower log")
	}
}

func TestNormalizeBundleIdempotent(t *testing.T) {
	b := NormalizeBundle(&models.ProjectBundle{ProjectID: "PRJ-X"})
	if b.Drawings == nil || b.HSE.Incidents == nil || b.Progress.SCurveData == nil {
		t.Fatal("first pass did not fill registers")
	}

	b.Drawings = append(b.Drawings, models.Drawing{ID: "DWG-001"})
	again := NormalizeBundle(b)
	if len(again.Drawings) != 1 {
		t.Errorf("second pass dropped data: %d drawings", len(again.Drawings))
	}
}

func TestNormalizeBundleNil(t *testing.T) {
	b := NormalizeBundle(nil)
	if b == nil || b.Drawings == nil {
		t.Fatal("expected an empty bundle for nil input")
	}
}

func TestNextIDFormat(t *testing.T) {
	cases := []struct {
		prefix string
		count  int
		want   string
	}{
		{"DWG", 0, "DWG-001"},
		{"DWG", 10, "DWG-011"},
		{"PRJ", 2, "PRJ-003"},
		{"NCR", 99, "NCR-0100"},
	}
	for _, tc := range cases {
		if got := NextID(tc.prefix, tc.count); got != tc.want {
			t.Errorf("NextID(%q, %d) = %q, want %q", tc.prefix, tc.count, got, tc.want)
		}
	}
}

func drawings(b *models.ProjectBundle) *[]models.Drawing { return &b.Drawings }

func TestAddPrepends(t *testing.T) {
	s := NewSeededStore()
	before := Count(s, "PRJ-001", drawings)

	Add(s, "PRJ-001", drawings, models.Drawing{ID: "DWG-NEW", Title: "Newest"})

	list := List(s, "PRJ-001", drawings)
	if len(list) != before+1 {
		t.Fatalf("expected %d drawings, got %d", before+1, len(list))
	}
	if list[0].ID != "DWG-NEW" {
		t.Errorf("expected new entry first, got %s", list[0].ID)
	}
}

func TestAppendAllAppends(t *testing.T) {
	s := NewSeededStore()
	before := Count(s, "PRJ-001", drawings)

	n := AppendAll(s, "PRJ-001", drawings, []models.Drawing{
		{ID: "DWG-I01"}, {ID: "DWG-I02"},
	})
	if n != 2 {
		t.Fatalf("expected 2 appended, got %d", n)
	}

	list := List(s, "PRJ-001", drawings)
	if list[len(list)-1].ID != "DWG-I02" {
		t.Errorf("expected imported rows last, got %s", list[len(list)-1].ID)
	}
	if len(list) != before+2 {
		t.Errorf("expected %d drawings, got %d", before+2, len(list))
	}
}

func TestUpdateUnknownIsQuiet(t *testing.T) {
	s := NewSeededStore()
	updated := Update(s, "PRJ-001", drawings,
		func(d models.Drawing) bool { return d.ID == "DWG-404" },
		func(d *models.Drawing) { d.Title = "changed" })
	if updated {
		t.Error("expected updated=false for unknown id")
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := NewSeededStore()
	list := List(s, "PRJ-001", drawings)
	list[0].Title = "mutated"

	again := List(s, "PRJ-001", drawings)
	if again[0].Title == "mutated" {
		t.Error("List leaked a reference into the store")
	}
}

func TestSwitchActiveProjectFallback(t *testing.T) {
	s := NewSeededStore()

	p := s.SwitchActiveProject("PRJ-002")
	if p.ID != "PRJ-002" || s.ActiveProjectID() != "PRJ-002" {
		t.Fatalf("switch failed, active=%s", s.ActiveProjectID())
	}

	p = s.SwitchActiveProject("PRJ-404")
	if p.ID != "PRJ-001" {
		t.Errorf("unknown id should fall back to first project, got %s", p.ID)
	}
}

func TestAddProjectDefaults(t *testing.T) {
	s := NewSeededStore()
	p := s.AddProject(models.Project{})

	if p.ID != "PRJ-003" {
		t.Errorf("expected PRJ-003, got %s", p.ID)
	}
	if p.Name != "New Project" || p.Status != models.ProjectActive || p.Currency != "SAR" {
		t.Errorf("missing defaults: %+v", p)
	}
	if s.ActiveProjectID() != "PRJ-001" {
		t.Error("adding a project must not steal the active pointer")
	}

	b := s.BundleCopy(p.ID)
	if len(b.Drawings) != 0 {
		t.Error("new project should start with an empty bundle")
	}
}

func TestDeleteProject(t *testing.T) {
	s := NewSeededStore()
	s.SwitchActiveProject("PRJ-002")

	deleted, ok, err := s.DeleteProject("PRJ-002")
	if err != nil || !ok {
		t.Fatalf("delete failed: ok=%v err=%v", ok, err)
	}
	if deleted.ID != "PRJ-002" {
		t.Errorf("wrong project deleted: %s", deleted.ID)
	}
	if s.ActiveProjectID() != "PRJ-001" {
		t.Errorf("active should re-point to first remaining, got %s", s.ActiveProjectID())
	}

	// unknown id is a quiet no-op
	_, ok, err = s.DeleteProject("PRJ-404")
	if ok || err != nil {
		t.Errorf("unknown id: ok=%v err=%v", ok, err)
	}

	// the last project cannot be removed
	_, _, err = s.DeleteProject("PRJ-001")
	if !errors.Is(err, ErrLastProject) {
		t.Errorf("expected ErrLastProject, got %v", err)
	}
	if len(s.Projects()) != 1 {
		t.Errorf("expected 1 project left, got %d", len(s.Projects()))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSeededStore()
	s.SwitchActiveProject("PRJ-002")
	Add(s, "PRJ-002", drawings, models.Drawing{ID: "DWG-RT", Title: "Round trip"})

	snap := s.Snapshot()
	if snap.Version != models.SnapshotVersion {
		t.Errorf("version = %s", snap.Version)
	}
	if snap.SavedAt == "" {
		t.Error("expected savedAt stamp")
	}
	if snap.ActiveProjectID != "PRJ-002" {
		t.Errorf("active = %s", snap.ActiveProjectID)
	}

	other := NewStore(nil, nil, "")
	other.ReplaceAll(snap)
	if other.ActiveProjectID() != "PRJ-002" {
		t.Errorf("restored active = %s", other.ActiveProjectID())
	}
	if len(other.Projects()) != 2 {
		t.Errorf("restored %d projects", len(other.Projects()))
	}
	if _, found := Find(other, "PRJ-002", drawings, func(d models.Drawing) bool { return d.ID == "DWG-RT" }); !found {
		t.Error("restored store lost the added drawing")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewSeededStore()
	snap := s.Snapshot()
	snap.ProjectStore["PRJ-001"].Drawings[0].Title = "mutated"

	b := s.BundleCopy("PRJ-001")
	if b.Drawings[0].Title == "mutated" {
		t.Error("Snapshot leaked a live reference")
	}
}
