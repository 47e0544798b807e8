package models

// ProjectBundle owns every register for one project. After normalization all
// slices are non-nil and the singleton sections are present, so callers never
// need nil checks.
type ProjectBundle struct {
	ProjectID      string            `json:"projectId"`
	Drawings       []Drawing         `json:"drawings"`
	Materials      []Material        `json:"materials"`
	Methods        []MethodStatement `json:"methods"`
	NCR            []NCR             `json:"ncr"`
	RFI            []RFI             `json:"rfi"`
	SI             []SiteInstruction `json:"si"`
	Testing        []TestRecord      `json:"testing"`
	Procurement    []PurchaseOrder   `json:"procurement"`
	HSE            HSEData           `json:"hse"`
	Subcontractors []Subcontractor   `json:"subcontractors"`
	Cost           CostData          `json:"cost"`
	Manpower       ManpowerData      `json:"manpower"`
	Closeout       []CloseoutItem    `json:"closeout"`
	Progress       ProgressData      `json:"progress"`
}

type HSEData struct {
	Incidents []HSEIncident `json:"incidents"`
	Stats     HSEStats      `json:"stats"`
}

type HSEStats struct {
	LTI          int     `json:"lti"`
	NearMiss     int     `json:"nearMiss"`
	ToolboxTalks int     `json:"toolboxTalks"`
	SafeManHours int     `json:"safeManHours"`
	LTIR         float64 `json:"ltir"`
}

// CostData keeps bundle-level totals alongside the live categories. The KPI
// aggregator prefers category sums and only falls back to these totals when
// the categories slice is empty.
type CostData struct {
	Budget            float64        `json:"budget"`
	RevisedBudget     float64        `json:"revisedBudget"`
	CommittedCost     float64        `json:"committedCost"`
	ActualCost        float64        `json:"actualCost"`
	ForecastFinalCost float64        `json:"forecastFinalCost"`
	CostVariance      float64        `json:"costVariance"`
	Categories        []CostCategory `json:"categories"`
}

type ManpowerData struct {
	Today     DailyManpower    `json:"today"`
	Weekly    []WeeklyManpower `json:"weekly"`
	Equipment []Equipment      `json:"equipment"`
}

type DailyManpower struct {
	Date         string `json:"date"`
	TotalWorkers int    `json:"totalWorkers"`
	Skilled      int    `json:"skilled"`
	Unskilled    int    `json:"unskilled"`
	Staff        int    `json:"staff"`
}

type ProgressData struct {
	Milestones         []Milestone          `json:"milestones"`
	SCurveData         []SCurvePoint        `json:"sCurveData"`
	DisciplineProgress []DisciplineProgress `json:"disciplineProgress"`
}

// SnapshotVersion and SnapshotKey identify the persisted payload format.
const (
	SnapshotVersion = "2026.3"
	SnapshotKey     = "ci_project_data_v5"
)

// Snapshot is the persisted/exported payload. The upper-case key names are a
// compatibility contract with previously exported data files.
type Snapshot struct {
	Version         string                    `json:"version"`
	SavedAt         string                    `json:"savedAt"`
	Projects        []Project                 `json:"PROJECTS"`
	ActiveProjectID string                    `json:"activeProjectId"`
	ProjectStore    map[string]*ProjectBundle `json:"PROJECT_STORE"`
}
