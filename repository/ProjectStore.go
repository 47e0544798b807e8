package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"backend/models"
)

// ErrLastProject is returned when a delete would leave the store with no
// projects. Every view assumes an active project exists, so the last one
// cannot be removed.
var ErrLastProject = errors.New("cannot delete the last remaining project")

// ProjectStore owns the project list and every per-project data bundle. All
// reads and mutations go through the store so renderers and exporters never
// hold a stale or aliased reference across a project switch.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []models.Project
	bundles  map[string]*models.ProjectBundle
	activeID string
}

// NewStore builds a store from an explicit project list and bundle map,
// normalizing every bundle. Unknown activeID falls back to the first project.
func NewStore(projects []models.Project, bundles map[string]*models.ProjectBundle, activeID string) *ProjectStore {
	if bundles == nil {
		bundles = map[string]*models.ProjectBundle{}
	}
	for id, b := range bundles {
		bundles[id] = NormalizeBundle(b)
	}
	s := &ProjectStore{projects: projects, bundles: bundles}
	s.activeID = s.resolveProjectID(activeID)
	return s
}

// NewSeededStore builds a store holding the built-in demonstration data.
func NewSeededStore() *ProjectStore {
	projects := models.SeedProjects()
	return NewStore(projects, models.SeedBundles(), projects[0].ID)
}

// CreateEmptyBundle returns a canonical empty bundle: every register key
// present, all stats zeroed, today's date on the manpower log.
func CreateEmptyBundle(projectID string) *models.ProjectBundle {
	return &models.ProjectBundle{
		ProjectID:      projectID,
		Drawings:       []models.Drawing{},
		Materials:      []models.Material{},
		Methods:        []models.MethodStatement{},
		NCR:            []models.NCR{},
		RFI:            []models.RFI{},
		SI:             []models.SiteInstruction{},
		Testing:        []models.TestRecord{},
		Procurement:    []models.PurchaseOrder{},
		HSE:            models.HSEData{Incidents: []models.HSEIncident{}},
		Subcontractors: []models.Subcontractor{},
		Cost:           models.CostData{Categories: []models.CostCategory{}},
		Manpower: models.ManpowerData{
			Today:     models.DailyManpower{Date: Today()},
			Weekly:    []models.WeeklyManpower{},
			Equipment: []models.Equipment{},
		},
		Closeout: []models.CloseoutItem{},
		Progress: models.ProgressData{
			Milestones:         []models.Milestone{},
			SCurveData:         []models.SCurvePoint{},
			DisciplineProgress: []models.DisciplineProgress{},
		},
	}
}

// NormalizeBundle fills any missing register keys on a partial or legacy
// bundle. It never discards existing data and is idempotent.
func NormalizeBundle(b *models.ProjectBundle) *models.ProjectBundle {
	if b == nil {
		return CreateEmptyBundle("unknown")
	}
	if b.Drawings == nil {
		b.Drawings = []models.Drawing{}
	}
	if b.Materials == nil {
		b.Materials = []models.Material{}
	}
	if b.Methods == nil {
		b.Methods = []models.MethodStatement{}
	}
	if b.NCR == nil {
		b.NCR = []models.NCR{}
	}
	if b.RFI == nil {
		b.RFI = []models.RFI{}
	}
	if b.SI == nil {
		b.SI = []models.SiteInstruction{}
	}
	if b.Testing == nil {
		b.Testing = []models.TestRecord{}
	}
	if b.Procurement == nil {
		b.Procurement = []models.PurchaseOrder{}
	}
	if b.HSE.Incidents == nil {
		b.HSE.Incidents = []models.HSEIncident{}
	}
	if b.Subcontractors == nil {
		b.Subcontractors = []models.Subcontractor{}
	}
	if b.Cost.Categories == nil {
		b.Cost.Categories = []models.CostCategory{}
	}
	if b.Manpower.Today.Date == "" {
		b.Manpower.Today.Date = Today()
	}
	if b.Manpower.Weekly == nil {
		b.Manpower.Weekly = []models.WeeklyManpower{}
	}
	if b.Manpower.Equipment == nil {
		b.Manpower.Equipment = []models.Equipment{}
	}
	if b.Closeout == nil {
		b.Closeout = []models.CloseoutItem{}
	}
	if b.Progress.Milestones == nil {
		b.Progress.Milestones = []models.Milestone{}
	}
	if b.Progress.SCurveData == nil {
		b.Progress.SCurveData = []models.SCurvePoint{}
	}
	if b.Progress.DisciplineProgress == nil {
		b.Progress.DisciplineProgress = []models.DisciplineProgress{}
	}
	return b
}

// Today formats the current date the way every register stores dates.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NextID builds the default id assigned when a form leaves the id blank:
// prefix, a literal zero, then the next ordinal zero-padded to two digits
// (e.g. 10 existing drawings -> DWG-011).
func NextID(prefix string, count int) string {
	return fmt.Sprintf("%s-0%02d", prefix, count+1)
}

func (s *ProjectStore) resolveProjectID(id string) string {
	for _, p := range s.projects {
		if p.ID == id {
			return id
		}
	}
	if len(s.projects) > 0 {
		return s.projects[0].ID
	}
	return ""
}

// bundleLocked lazily creates and normalizes the bundle for id. Callers must
// hold the write lock, or the read lock when the bundle is known to exist.
func (s *ProjectStore) bundleLocked(projectID string) *models.ProjectBundle {
	b, ok := s.bundles[projectID]
	if !ok {
		b = CreateEmptyBundle(projectID)
		s.bundles[projectID] = b
		return b
	}
	return NormalizeBundle(b)
}

// View runs fn with read access to the (fully shaped) bundle for projectID.
// fn must not retain or mutate the bundle.
func (s *ProjectStore) View(projectID string, fn func(*models.ProjectBundle)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.bundleLocked(projectID))
}

// Mutate runs fn with exclusive access to the bundle for projectID.
func (s *ProjectStore) Mutate(projectID string, fn func(*models.ProjectBundle)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.bundleLocked(projectID))
}

// BundleCopy returns a deep copy of the bundle, safe to hold across requests.
func (s *ProjectStore) BundleCopy(projectID string) models.ProjectBundle {
	var out models.ProjectBundle
	s.View(projectID, func(b *models.ProjectBundle) {
		raw, err := json.Marshal(b)
		if err != nil {
			log.Printf("BundleCopy marshal: %v", err)
			return
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			log.Printf("BundleCopy unmarshal: %v", err)
		}
	})
	return *NormalizeBundle(&out)
}

func (s *ProjectStore) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectStore) FindProject(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// ActiveProject returns the project every register view currently reads from.
func (s *ProjectStore) ActiveProject() models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == s.activeID {
			return p
		}
	}
	if len(s.projects) > 0 {
		return s.projects[0]
	}
	return models.Project{}
}

func (s *ProjectStore) ActiveProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// SwitchActiveProject re-points the active project in one step. An unknown id
// falls back to the first known project.
func (s *ProjectStore) SwitchActiveProject(id string) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = s.resolveProjectID(id)
	s.bundleLocked(s.activeID)
	for _, p := range s.projects {
		if p.ID == s.activeID {
			return p
		}
	}
	return models.Project{}
}

// AddProject appends a project (projects render oldest-first, unlike register
// entries) and creates its empty bundle. Blank identity fields get defaults.
func (s *ProjectStore) AddProject(p models.Project) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = NextID("PRJ", len(s.projects))
	}
	if p.Code == "" {
		p.Code = "NEW-2026"
	}
	if p.Name == "" {
		p.Name = "New Project"
	}
	if p.Currency == "" {
		p.Currency = "SAR"
	}
	if p.Status == "" {
		p.Status = models.ProjectActive
	}
	s.projects = append(s.projects, p)
	s.bundleLocked(p.ID)
	return p
}

// UpdateProject applies a partial patch to the project with the given id.
// Unknown ids are a quiet no-op.
func (s *ProjectStore) UpdateProject(id string, apply func(*models.Project)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			apply(&s.projects[i])
			return true
		}
	}
	return false
}

// DeleteProject removes the project and its bundle. Deleting the active
// project re-points the active pointer at the first remaining project;
// deleting the last project is refused.
func (s *ProjectStore) DeleteProject(id string) (models.Project, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Project{}, false, nil
	}
	if len(s.projects) == 1 {
		return models.Project{}, false, ErrLastProject
	}
	deleted := s.projects[idx]
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	delete(s.bundles, id)
	if s.activeID == id {
		s.activeID = s.projects[0].ID
	}
	return deleted, true, nil
}

// Snapshot assembles the full persistence payload as a deep copy, safe to
// serialize outside the lock.
func (s *ProjectStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	raw, err := json.Marshal(struct {
		Projects []models.Project                 `json:"projects"`
		Bundles  map[string]*models.ProjectBundle `json:"bundles"`
	}{s.projects, s.bundles})
	activeID := s.activeID
	s.mu.RUnlock()

	snap := models.Snapshot{
		Version:         models.SnapshotVersion,
		SavedAt:         time.Now().UTC().Format(time.RFC3339),
		ActiveProjectID: activeID,
		ProjectStore:    map[string]*models.ProjectBundle{},
	}
	if err != nil {
		log.Printf("Snapshot marshal: %v", err)
		return snap
	}
	var copied struct {
		Projects []models.Project                 `json:"projects"`
		Bundles  map[string]*models.ProjectBundle `json:"bundles"`
	}
	if err := json.Unmarshal(raw, &copied); err != nil {
		log.Printf("Snapshot unmarshal: %v", err)
		return snap
	}
	snap.Projects = copied.Projects
	snap.ProjectStore = copied.Bundles
	return snap
}

// ReplaceAll wholesale-replaces the store contents from an imported snapshot.
// The caller validates the snapshot shape first.
func (s *ProjectStore) ReplaceAll(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = snap.Projects
	s.bundles = map[string]*models.ProjectBundle{}
	for id, b := range snap.ProjectStore {
		s.bundles[id] = NormalizeBundle(b)
	}
	s.activeID = s.resolveProjectID(snap.ActiveProjectID)
}

// Selector picks one register slice out of a bundle. Handlers pass these to
// the generic register operations below, which keeps all slice mutation
// behind the store lock instead of splicing aliased arrays.
type Selector[T any] func(*models.ProjectBundle) *[]T

// List returns a copy of the register for rendering and export. Filtering is
// done by the caller on the copy and never touches the stored slice.
func List[T any](s *ProjectStore, projectID string, sel Selector[T]) []T {
	var out []T
	s.View(projectID, func(b *models.ProjectBundle) {
		src := *sel(b)
		out = make([]T, len(src))
		copy(out, src)
	})
	return out
}

// Find looks an entry up by predicate. A miss is a quiet ok=false, never an
// error.
func Find[T any](s *ProjectStore, projectID string, sel Selector[T], match func(T) bool) (T, bool) {
	var (
		out   T
		found bool
	)
	s.View(projectID, func(b *models.ProjectBundle) {
		for _, e := range *sel(b) {
			if match(e) {
				out = e
				found = true
				return
			}
		}
	})
	return out, found
}

// Add prepends the entry so the newest record renders first.
func Add[T any](s *ProjectStore, projectID string, sel Selector[T], entry T) {
	s.Mutate(projectID, func(b *models.ProjectBundle) {
		reg := sel(b)
		*reg = append([]T{entry}, *reg...)
	})
}

// AppendAll appends imported rows in file order, after the existing entries.
func AppendAll[T any](s *ProjectStore, projectID string, sel Selector[T], entries []T) int {
	s.Mutate(projectID, func(b *models.ProjectBundle) {
		reg := sel(b)
		*reg = append(*reg, entries...)
	})
	return len(entries)
}

// Update patches the first entry matching the predicate in place. Unknown
// entries are a quiet no-op, reported through the boolean only.
func Update[T any](s *ProjectStore, projectID string, sel Selector[T], match func(T) bool, apply func(*T)) bool {
	updated := false
	s.Mutate(projectID, func(b *models.ProjectBundle) {
		reg := *sel(b)
		for i := range reg {
			if match(reg[i]) {
				apply(&reg[i])
				updated = true
				return
			}
		}
	})
	return updated
}

// Count reports the register length, used for default id generation.
func Count[T any](s *ProjectStore, projectID string, sel Selector[T]) int {
	n := 0
	s.View(projectID, func(b *models.ProjectBundle) {
		n = len(*sel(b))
	})
	return n
}
