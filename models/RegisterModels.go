package models

// Register entry types. Every entry carries a module-prefixed id that is
// unique within its register, and a status drawn from that register's fixed
// enumeration. Dates are stored as yyyy-mm-dd strings to keep the snapshot
// JSON stable across export/import.

// Drawing statuses: submitted, under-review, approved, rejected.
type Drawing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Discipline  string `json:"discipline"`
	Rev         int    `json:"rev"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submittedBy"`
	Date        string `json:"date"`
	Consultant  string `json:"consultant"`
	File        string `json:"file"`
	Comments    string `json:"comments"`
}

// Material statuses: submitted, under-review, approved, rejected.
type Material struct {
	ID           string  `json:"id"`
	Item         string  `json:"item"`
	BOQRef       string  `json:"boqRef"`
	PONo         string  `json:"poNo"`
	Supplier     string  `json:"supplier"`
	Rev          int     `json:"rev"`
	Status       string  `json:"status"`
	SubmitDate   string  `json:"submitDate"`
	ApproveDate  string  `json:"approveDate"`
	DeliveryDate string  `json:"deliveryDate"`
	Qty          float64 `json:"qty"`
	Unit         string  `json:"unit"`
	Remarks      string  `json:"remarks"`
}

// MethodStatement risk levels: Low, Medium, High, Critical.
type MethodStatement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	Rev         int    `json:"rev"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submittedBy"`
	Date        string `json:"date"`
	HSEReview   string `json:"hseReview"`
	File        string `json:"file"`
}

// NCR priority: low, medium, high, critical. Status: open, closed.
type NCR struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Raised      string `json:"raised"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	Remarks     string `json:"remarks"`
	Location    string `json:"location"`
}

type RFI struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Raised      string `json:"raised"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	Remarks     string `json:"remarks"`
	Discipline  string `json:"discipline"`
}

type SiteInstruction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IssuedBy    string `json:"issuedBy"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	CostImpact  string `json:"costImpact"`
	Remarks     string `json:"remarks"`
	Ref         string `json:"ref"`
}

// TestRecord statuses: pending, passed, failed.
type TestRecord struct {
	ID      string `json:"id"`
	System  string `json:"system"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Rev     int    `json:"rev"`
	Status  string `json:"status"`
	Cert    string `json:"cert"`
	File    string `json:"file"`
	Remarks string `json:"remarks"`
}

// PurchaseOrder statuses: pending, active, partially-delivered, delivered.
type PurchaseOrder struct {
	ID           string  `json:"id"`
	Item         string  `json:"item"`
	Vendor       string  `json:"vendor"`
	POValue      float64 `json:"poValue"`
	Status       string  `json:"status"`
	PODate       string  `json:"poDate"`
	DeliveryDate string  `json:"deliveryDate"`
	PayStatus    string  `json:"payStatus"`
	Performance  int     `json:"performance"`
	Remarks      string  `json:"remarks"`
}

// Subcontractor statuses: not-started, mobilizing, active, completed.
type Subcontractor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Scope         string  `json:"scope"`
	Status        string  `json:"status"`
	Workers       int     `json:"workers"`
	ContractValue float64 `json:"contractValue"`
	PaidToDate    float64 `json:"paidToDate"`
	Performance   int     `json:"performance"`
	Safety        int     `json:"safety"`
	PORef         string  `json:"poRef"`
	ContactPerson string  `json:"contactPerson"`
	Phone         string  `json:"phone"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
}

// HSEIncident types: incident, near-miss. Severity: low, medium, high.
type HSEIncident struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Desc             string `json:"desc"`
	Date             string `json:"date"`
	Severity         string `json:"severity"`
	Status           string `json:"status"`
	Casualties       int    `json:"casualties"`
	Location         string `json:"location"`
	RootCause        string `json:"rootCause"`
	CorrectiveAction string `json:"correctiveAction"`
	Investigator     string `json:"investigator"`
	ClosedDate       string `json:"closedDate,omitempty"`
}

// CloseoutItem statuses: not-started, in-progress, complete.
type CloseoutItem struct {
	ID            string `json:"id"`
	Item          string `json:"item"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	Due           string `json:"due"`
	AssignedTo    string `json:"assignedTo"`
	Remarks       string `json:"remarks"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// Equipment statuses: active, standby, maintenance, breakdown.
type Equipment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Utilization int    `json:"utilization"`
	Operator    string `json:"operator"`
	Location    string `json:"location"`
}

// WeeklyManpower rows for future weeks carry nil actuals.
type WeeklyManpower struct {
	Week      string `json:"week"`
	Target    int    `json:"target"`
	Actual    *int   `json:"actual"`
	Skilled   *int   `json:"skilled"`
	Unskilled *int   `json:"unskilled"`
	Staff     *int   `json:"staff"`
}

// Milestone statuses: completed, on-track, at-risk, delayed.
type Milestone struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Planned string `json:"planned"`
	Actual  string `json:"actual"`
	Status  string `json:"status"`
	Delay   int    `json:"delay"`
}

// SCurvePoint is one month of cumulative planned vs actual progress.
// Actual is nil for months not yet reported.
type SCurvePoint struct {
	Month   string   `json:"month"`
	Planned float64  `json:"planned"`
	Actual  *float64 `json:"actual"`
}

type DisciplineProgress struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Planned  int    `json:"planned"`
}

type CostCategory struct {
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Committed float64 `json:"committed"`
	Actual    float64 `json:"actual"`
	Forecast  float64 `json:"forecast"`
}
