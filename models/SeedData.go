package models

// Built-in seed data. Used on first start and whenever the persisted
// snapshot is missing or unreadable.

func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

// SeedUsers is the reference user directory.
var SeedUsers = []User{
	{ID: "U001", Name: "Engr. Saqib Hussain (PE)", Role: "admin", Avatar: "SH", Dept: "Lead Electrical Engineer"},
	{ID: "U002", Name: "Sarah Chen", Role: "engineer", Avatar: "SC", Dept: "Structural"},
	{ID: "U003", Name: "James Okafor", Role: "engineer", Avatar: "JO", Dept: "MEP"},
	{ID: "U004", Name: "Priya Sharma", Role: "consultant", Avatar: "PS", Dept: "Design"},
	{ID: "U005", Name: "David Williams", Role: "engineer", Avatar: "DW", Dept: "Civil"},
}

// SeedProjects returns the two demonstration projects.
func SeedProjects() []Project {
	return []Project{
		{
			ID: "PRJ-001", Name: "NEXUS TOWER — Mixed Use Development", Code: "NXT-2026",
			Client: "Apex Development Holdings", Contractor: "BuildCore International LLC",
			Consultant: "Meridian Engineering Group", Location: "Downtown Financial District, Tower Block 7",
			StartDate: "2025-01-15", PlannedEnd: "2027-06-30", ContractValue: 185000000, Currency: "SAR",
			CurrentProgress: 34, Status: ProjectActive,
			Description: "55-storey mixed-use tower including commercial, residential and hospitality floors.",
		},
		{
			ID: "PRJ-002", Name: "HARBOR BRIDGE EXPANSION", Code: "HBE-2025",
			Client: "City Infrastructure Authority", Contractor: "BuildCore International LLC",
			Consultant: "CivilPro Group", Location: "Harbor District, Zone 4",
			StartDate: "2024-06-01", PlannedEnd: "2026-12-31", ContractValue: 42000000, Currency: "SAR",
			CurrentProgress: 68, Status: ProjectActive,
			Description: "4-lane bridge expansion with pedestrian walkways and cycling infrastructure.",
		},
	}
}

// SeedBundles returns the per-project register data keyed by project id.
func SeedBundles() map[string]*ProjectBundle {
	return map[string]*ProjectBundle{
		"PRJ-001": seedNexusTower(),
		"PRJ-002": seedHarborBridge(),
	}
}

func seedNexusTower() *ProjectBundle {
	return &ProjectBundle{
		ProjectID: "PRJ-001",
		Drawings: []Drawing{
			{ID: "DWG-001", Title: "Foundation Layout Plan", Discipline: "Civil", Rev: 1, Status: "approved", SubmittedBy: "U005", Date: "2025-11-01", Consultant: "Meridian", File: "FDN-LP-001-Rev1.pdf", Comments: "Approved with minor notes"},
			{ID: "DWG-002", Title: "Structural Frame – Level 3", Discipline: "Structural", Rev: 2, Status: "under-review", SubmittedBy: "U002", Date: "2025-12-10", Consultant: "Meridian", File: "STR-L3-002-Rev2.pdf", Comments: "Pending consultant review"},
			{ID: "DWG-003", Title: "HVAC Ductwork – Floors 5-8", Discipline: "HVAC", Rev: 1, Status: "submitted", SubmittedBy: "U003", Date: "2026-01-05", Consultant: "TechSpec", File: "MEP-HVAC-003-Rev1.pdf"},
			{ID: "DWG-004", Title: "Facade Cladding Details", Discipline: "Architect", Rev: 4, Status: "approved", SubmittedBy: "U004", Date: "2025-10-20", Consultant: "Meridian", File: "ARC-FAC-004-Rev4.pdf", Comments: "Final approval granted"},
			{ID: "DWG-005", Title: "Underground Drainage Plan", Discipline: "Civil", Rev: 1, Status: "rejected", SubmittedBy: "U005", Date: "2026-01-15", Consultant: "Meridian", File: "CIV-DRN-005-Rev1.pdf", Comments: "Revise pipe sizes"},
			{ID: "DWG-006", Title: "Electrical Single Line Diagram", Discipline: "Electrical", Rev: 2, Status: "approved", SubmittedBy: "U003", Date: "2025-12-01", Consultant: "TechSpec", File: "MEP-ELE-006-Rev2.pdf", Comments: "Approved"},
			{ID: "DWG-007", Title: "Core Wall Reinforcement", Discipline: "Structural", Rev: 3, Status: "under-review", SubmittedBy: "U002", Date: "2026-01-20", Consultant: "Meridian", File: "STR-COR-007-Rev3.pdf", Comments: "In progress"},
			{ID: "DWG-008", Title: "Plumbing Risers – Typical Floor", Discipline: "Plumbing", Rev: 1, Status: "submitted", SubmittedBy: "U003", Date: "2026-02-01", Consultant: "TechSpec", File: "MEP-PLB-008-Rev1.pdf"},
			{ID: "DWG-009", Title: "Mechanical Plant Room Layout", Discipline: "Mechanical", Rev: 1, Status: "submitted", SubmittedBy: "U003", Date: "2026-02-05", Consultant: "TechSpec", File: "MEP-MCH-009-Rev1.pdf"},
			{ID: "DWG-010", Title: "Fire Suppression – Typical Floor", Discipline: "Fire Protection", Rev: 2, Status: "approved", SubmittedBy: "U003", Date: "2026-01-28", Consultant: "FireSafe", File: "FPS-TYP-010-Rev2.pdf", Comments: "Approved"},
		},
		Materials: []Material{
			{ID: "MAT-001", Item: "High-Strength Concrete C50", BOQRef: "BOQ-3.1.1", PONo: "PO-002", Supplier: "MixPro Ready", Rev: 1, Status: "approved", SubmitDate: "2025-10-15", ApproveDate: "2025-11-01", DeliveryDate: "2026-02-20", Qty: 5200, Unit: "m³", Remarks: "Approved per ASTM C39"},
			{ID: "MAT-002", Item: "Rebar Grade 60 – 32mm Dia", BOQRef: "BOQ-3.2.4", PONo: "PO-001", Supplier: "SteelTech Corp", Rev: 2, Status: "approved", SubmitDate: "2025-11-10", ApproveDate: "2025-12-01", DeliveryDate: "2026-01-30", Qty: 850, Unit: "MT", Remarks: "Mill certs reviewed"},
			{ID: "MAT-003", Item: "Curtain Wall System CW-7", BOQRef: "BOQ-5.1.2", PONo: "PO-003", Supplier: "GlazTec Systems", Rev: 1, Status: "under-review", SubmitDate: "2026-01-05", DeliveryDate: "2026-05-15", Qty: 2800, Unit: "m²", Remarks: "Pending thermal test"},
			{ID: "MAT-004", Item: "HVAC Chiller Units 500RT", BOQRef: "BOQ-8.3.1", PONo: "PO-004", Supplier: "CoolAir Ltd", Rev: 1, Status: "submitted", SubmitDate: "2026-01-18", DeliveryDate: "2026-06-01", Qty: 3, Unit: "No.", Remarks: "FAT to be witnessed"},
			{ID: "MAT-005", Item: "Waterproofing Membrane 3mm", BOQRef: "BOQ-4.2.1", PONo: "PO-006", Supplier: "SealPro", Rev: 1, Status: "approved", SubmitDate: "2025-12-01", ApproveDate: "2025-12-20", DeliveryDate: "2026-02-01", Qty: 3200, Unit: "m²", Remarks: "Third-party tested"},
			{ID: "MAT-006", Item: "Precast Concrete Panels", BOQRef: "BOQ-5.3.3", PONo: "PO-007", Supplier: "PrecastMasters", Rev: 1, Status: "rejected", SubmitDate: "2026-01-10", DeliveryDate: "2026-04-20", Qty: 420, Unit: "panels", Remarks: "Resubmit with fire rating cert"},
			{ID: "MAT-007", Item: "Structural Steel I-Beams W14", BOQRef: "BOQ-3.3.1", PONo: "PO-001", Supplier: "SteelTech Corp", Rev: 3, Status: "approved", SubmitDate: "2025-10-20", ApproveDate: "2025-11-15", DeliveryDate: "2026-01-15", Qty: 320, Unit: "MT", Remarks: "Approved Rev 3 after weld test"},
		},
		Methods: []MethodStatement{
			{ID: "MS-001", Title: "Deep Foundation Piling Works", Category: "Structural", Risk: "High", Rev: 2, Status: "approved", SubmittedBy: "U002", Date: "2025-09-15", HSEReview: "Approved", File: "MS-001-Rev2.pdf"},
			{ID: "MS-002", Title: "Concrete Pour – Transfer Slab", Category: "Structural", Risk: "High", Rev: 1, Status: "approved", SubmittedBy: "U002", Date: "2025-11-20", HSEReview: "Approved", File: "MS-002-Rev1.pdf"},
			{ID: "MS-003", Title: "Crane Erection & Operation", Category: "Lifting", Risk: "Critical", Rev: 1, Status: "under-review", SubmittedBy: "U005", Date: "2026-01-10", HSEReview: "Pending", File: "MS-003-Rev1.pdf"},
			{ID: "MS-004", Title: "Facade Installation Procedure", Category: "Finishing", Risk: "Medium", Rev: 1, Status: "submitted", SubmittedBy: "U004", Date: "2026-01-25", HSEReview: "Pending", File: "MS-004-Rev1.pdf"},
			{ID: "MS-005", Title: "Hot Works – Welding Procedure", Category: "MEP", Risk: "High", Rev: 3, Status: "approved", SubmittedBy: "U003", Date: "2025-12-10", HSEReview: "Approved", File: "MS-005-Rev3.pdf"},
			{ID: "MS-006", Title: "Temporary Works – Shoring", Category: "Civil", Risk: "Critical", Rev: 4, Status: "approved", SubmittedBy: "U005", Date: "2025-10-05", HSEReview: "Approved", File: "MS-006-Rev4.pdf"},
		},
		NCR: []NCR{
			{ID: "NCR-001", Title: "Concrete Honeycombing – Column C12", Raised: "U005", Date: "2026-01-08", Status: "open", Priority: "high", AssignedTo: "U002", File: "NCR-001.pdf", Remarks: "Remediation plan required", Location: "Level 3 – Col C12"},
			{ID: "NCR-002", Title: "Wrong Rebar Diameter – Beam B4", Raised: "U002", Date: "2026-01-18", Status: "open", Priority: "critical", AssignedTo: "U002", File: "NCR-002.pdf", Remarks: "Remove and replace", Location: "Level 4 – Beam B4"},
			{ID: "NCR-003", Title: "Improper Curing – Podium Slab", Raised: "U001", Date: "2026-01-20", Status: "open", Priority: "critical", AssignedTo: "U002", File: "NCR-003.pdf", Remarks: "Core sample to be taken", Location: "Podium Level"},
			{ID: "NCR-004", Title: "Missing Fire Stopping at Penetrations", Raised: "U003", Date: "2026-01-25", Status: "closed", Priority: "medium", AssignedTo: "U003", ClosureDate: "2026-02-05", File: "NCR-004.pdf", Remarks: "Rectified and approved", Location: "Level 2 MEP"},
		},
		RFI: []RFI{
			{ID: "RFI-001", Title: "Clarification on Rebar Splice Length", Raised: "U002", Date: "2026-01-12", Status: "closed", Priority: "medium", AssignedTo: "U004", ClosureDate: "2026-01-20", File: "RFI-001.pdf", Remarks: "Splice 60D per ACI 318", Discipline: "Structural"},
			{ID: "RFI-002", Title: "Sprinkler Layout Conflict with Beam", Raised: "U003", Date: "2026-01-18", Status: "open", Priority: "medium", AssignedTo: "U004", File: "RFI-002.pdf", Remarks: "Awaiting coord drawing", Discipline: "Fire Protection"},
			{ID: "RFI-003", Title: "Electrical Load Schedule Discrepancy", Raised: "U003", Date: "2026-01-22", Status: "open", Priority: "high", AssignedTo: "U004", File: "RFI-003.pdf", Remarks: "Check transformer sizing", Discipline: "Electrical"},
			{ID: "RFI-004", Title: "Drainage Gradient at Podium Level", Raised: "U005", Date: "2026-02-01", Status: "closed", Priority: "low", AssignedTo: "U004", ClosureDate: "2026-02-10", File: "RFI-004.pdf", Remarks: "Min 1:100 confirmed", Discipline: "Civil"},
		},
		SI: []SiteInstruction{
			{ID: "SI-001", Title: "Increase Slab Thickness FL4 from 200 to 250mm", IssuedBy: "U004", Date: "2026-01-15", Status: "open", Priority: "high", File: "SI-001.pdf", CostImpact: "SAR 42,000", Remarks: "Design change approved by client", Ref: "SKT-041"},
			{ID: "SI-002", Title: "Revise Drainage Gradient at Ground Level", IssuedBy: "U004", Date: "2026-01-22", Status: "closed", Priority: "low", File: "SI-002.pdf", CostImpact: "SAR 8,500", Remarks: "Completed and signed off", Ref: "SKT-042"},
			{ID: "SI-003", Title: "Add Expansion Joint at Grid Line H", IssuedBy: "U004", Date: "2026-02-05", Status: "open", Priority: "medium", File: "SI-003.pdf", CostImpact: "TBD", Remarks: "Structural design in progress", Ref: "SKT-043"},
		},
		Testing: []TestRecord{
			{ID: "TC-001", System: "Pile Load Test – TP01", Type: "Structural", Date: "2025-08-20", Rev: 1, Status: "passed", Cert: "PLC-001", File: "TC-001-Rev1.pdf", Remarks: "Load 2x design load"},
			{ID: "TC-002", System: "Concrete Cube Test Batch 12", Type: "Material", Date: "2025-12-15", Rev: 1, Status: "passed", Cert: "CCT-012", File: "TC-002-Rev1.pdf", Remarks: "Avg 54.2 MPa at 28 days"},
			{ID: "TC-003", System: "Waterproofing Test – B2 Slab", Type: "Civil", Date: "2026-01-10", Rev: 1, Status: "failed", File: "TC-003-Rev1.pdf", Remarks: "Water infiltration detected"},
			{ID: "TC-004", System: "Fire Alarm Loop Test – Phase 1", Type: "MEP", Date: "2026-01-28", Rev: 1, Status: "pending", Remarks: "Scheduled"},
			{ID: "TC-005", System: "CCTV System Commissioning", Type: "ELV", Date: "2026-02-10", Rev: 1, Status: "pending", Remarks: "FAT planned"},
			{ID: "TC-006", System: "Pump Test – Fire Suppression", Type: "MEP", Date: "2026-02-05", Rev: 2, Status: "passed", Cert: "FPS-006", File: "TC-006-Rev2.pdf", Remarks: "Flow rates within spec"},
		},
		Procurement: []PurchaseOrder{
			{ID: "PO-001", Item: "Structural Steel Package", Vendor: "SteelTech Corp", POValue: 4200000, Status: "delivered", PODate: "2025-09-01", DeliveryDate: "2026-01-15", PayStatus: "75% paid", Performance: 88, Remarks: "Final payment pending"},
			{ID: "PO-002", Item: "Ready Mix Concrete Supply", Vendor: "MixPro Ready", POValue: 2800000, Status: "active", PODate: "2025-10-15", DeliveryDate: "2026-12-01", PayStatus: "40% paid", Performance: 92, Remarks: "Ongoing supply"},
			{ID: "PO-003", Item: "Curtain Wall System", Vendor: "GlazTec Systems", POValue: 7500000, Status: "pending", PODate: "2026-01-10", DeliveryDate: "2026-05-20", PayStatus: "10% paid", Remarks: "Material approval pending"},
			{ID: "PO-004", Item: "HVAC Equipment Package", Vendor: "CoolAir Ltd", POValue: 3200000, Status: "partially-delivered", PODate: "2025-12-01", DeliveryDate: "2026-06-01", PayStatus: "30% paid", Performance: 78, Remarks: "Chiller units delayed"},
			{ID: "PO-005", Item: "Elevator Systems – 8 Lifts", Vendor: "LiftTech Pro", POValue: 1800000, Status: "pending", PODate: "2026-01-20", DeliveryDate: "2026-08-01", PayStatus: "5% paid", Remarks: "24-week lead time"},
			{ID: "PO-006", Item: "Waterproofing Materials", Vendor: "SealPro", POValue: 450000, Status: "delivered", PODate: "2025-11-20", DeliveryDate: "2026-01-30", PayStatus: "100% paid", Performance: 95, Remarks: "Fully complete"},
		},
		HSE: HSEData{
			Incidents: []HSEIncident{
				{ID: "HSE-001", Type: "near-miss", Desc: "Worker nearly struck by falling tool from scaffold", Date: "2026-01-05", Severity: "low", Status: "closed", Location: "Level 3 Scaffold", RootCause: "Unsecured tool bag", CorrectiveAction: "Toolbag inspection protocol issued", Investigator: "U001"},
				{ID: "HSE-002", Type: "incident", Desc: "Minor hand laceration – grinder without guard", Date: "2026-01-12", Severity: "medium", Status: "closed", Casualties: 1, Location: "Fab Workshop", RootCause: "PPE non-compliance", CorrectiveAction: "Re-training conducted", Investigator: "U001"},
				{ID: "HSE-003", Type: "near-miss", Desc: "Crane load swing towards personnel exclusion zone", Date: "2026-01-19", Severity: "high", Status: "open", Location: "Zone B – TC-2", RootCause: "Under investigation", CorrectiveAction: "Crane ops suspended pending review", Investigator: "U001"},
				{ID: "HSE-004", Type: "incident", Desc: "Slip on wet concrete – ankle sprain", Date: "2026-02-02", Severity: "medium", Status: "open", Casualties: 1, Location: "Level 2 Podium", RootCause: "Inadequate signage", CorrectiveAction: "Barriers and signage installed", Investigator: "U001"},
			},
			Stats: HSEStats{LTI: 1, NearMiss: 15, ToolboxTalks: 48, SafeManHours: 284000, LTIR: 0.35},
		},
		Subcontractors: []Subcontractor{
			{ID: "SC-001", Name: "AlphaFoundation Works", Scope: "Piling & Foundations", Status: "completed", ContractValue: 3800000, PaidToDate: 3800000, Performance: 89, Safety: 95, PORef: "PO-008", ContactPerson: "Ahmed Al-Rashid", Phone: "+1-555-0101", StartDate: "2025-01-15", EndDate: "2025-09-10"},
			{ID: "SC-002", Name: "SteelFrame Masters", Scope: "Structural Steelwork", Status: "active", Workers: 68, ContractValue: 8200000, PaidToDate: 4500000, Performance: 84, Safety: 88, PORef: "PO-001", ContactPerson: "Carlos Mendez", Phone: "+1-555-0102", StartDate: "2025-08-01", EndDate: "2026-06-30"},
			{ID: "SC-003", Name: "ProConcrete Solutions", Scope: "In-situ Concrete", Status: "active", Workers: 124, ContractValue: 5600000, PaidToDate: 2800000, Performance: 78, Safety: 82, PORef: "PO-002", ContactPerson: "Wei Zhang", Phone: "+1-555-0103", StartDate: "2025-09-01", EndDate: "2026-09-30"},
			{ID: "SC-004", Name: "MEP Systems Group", Scope: "Mechanical & Electrical", Status: "active", Workers: 45, ContractValue: 12500000, PaidToDate: 1800000, Performance: 91, Safety: 94, PORef: "PO-004", ContactPerson: "Raj Patel", Phone: "+1-555-0104", StartDate: "2025-11-01", EndDate: "2027-03-31"},
			{ID: "SC-005", Name: "FacadePro International", Scope: "Curtain Wall & Glazing", Status: "mobilizing", Workers: 12, ContractValue: 7200000, PaidToDate: 360000, PORef: "PO-003", ContactPerson: "Lena Müller", Phone: "+1-555-0105", StartDate: "2026-02-15", EndDate: "2026-12-31"},
			{ID: "SC-006", Name: "FinishLine Interiors", Scope: "Fit-out & Finishes", Status: "not-started", ContractValue: 9800000, PORef: "TBD", ContactPerson: "Fatima Hassan", Phone: "+1-555-0106", StartDate: "2026-09-01", EndDate: "2027-05-31"},
		},
		Cost: CostData{
			Budget: 188200000, RevisedBudget: 188200000, CommittedCost: 98400000, ActualCost: 67200000,
			ForecastFinalCost: 192500000, CostVariance: -4300000,
			Categories: []CostCategory{
				{Name: "Preliminaries", Budget: 12000000, Committed: 11800000, Actual: 9200000, Forecast: 12400000},
				{Name: "Structural Works", Budget: 45000000, Committed: 38000000, Actual: 29000000, Forecast: 46200000},
				{Name: "MEP Systems", Budget: 38000000, Committed: 22000000, Actual: 12000000, Forecast: 40500000},
				{Name: "Architectural", Budget: 32000000, Committed: 15000000, Actual: 8500000, Forecast: 33800000},
				{Name: "External Works", Budget: 18000000, Committed: 8000000, Actual: 4200000, Forecast: 17600000},
				{Name: "Contingency", Budget: 12000000, Committed: 3600000, Actual: 2300000, Forecast: 8000000},
				{Name: "Variations", Budget: 3200000, Committed: 3200000, Actual: 2000000, Forecast: 3200000},
			},
		},
		Manpower: ManpowerData{
			Today: DailyManpower{Date: "2026-02-17", TotalWorkers: 412, Skilled: 168, Unskilled: 212, Staff: 32},
			Weekly: []WeeklyManpower{
				{Week: "Week 1", Target: 380, Actual: iptr(362), Skilled: iptr(145), Unskilled: iptr(190), Staff: iptr(27)},
				{Week: "Week 2", Target: 390, Actual: iptr(378), Skilled: iptr(150), Unskilled: iptr(198), Staff: iptr(30)},
				{Week: "Week 3", Target: 400, Actual: iptr(391), Skilled: iptr(158), Unskilled: iptr(203), Staff: iptr(30)},
				{Week: "Week 4", Target: 420, Actual: iptr(408), Skilled: iptr(165), Unskilled: iptr(212), Staff: iptr(31)},
				{Week: "Week 5", Target: 430, Actual: iptr(412), Skilled: iptr(168), Unskilled: iptr(212), Staff: iptr(32)},
				{Week: "Week 6", Target: 450},
			},
			Equipment: []Equipment{
				{ID: "EQ-001", Type: "Tower Crane TC-1", Status: "active", Utilization: 78, Operator: "R. Hassan", Location: "Zone A"},
				{ID: "EQ-002", Type: "Tower Crane TC-2", Status: "active", Utilization: 65, Operator: "M. Santos", Location: "Zone B"},
				{ID: "EQ-003", Type: "Concrete Pump 52m", Status: "active", Utilization: 55, Operator: "J. Kim", Location: "Level 3"},
				{ID: "EQ-004", Type: "Mobile Crane 100T", Status: "standby", Utilization: 20, Operator: "—", Location: "Yard"},
				{ID: "EQ-005", Type: "Excavator CAT 330", Status: "active", Utilization: 88, Operator: "D. Osei", Location: "Basement"},
				{ID: "EQ-006", Type: "Batching Plant 60m³", Status: "active", Utilization: 70, Operator: "A. Farida", Location: "Site Office"},
				{ID: "EQ-007", Type: "Personnel Hoist PH-1", Status: "active", Utilization: 90, Operator: "Automated", Location: "North Core"},
				{ID: "EQ-008", Type: "Personnel Hoist PH-2", Status: "maintenance", Operator: "—", Location: "South Core"},
			},
		},
		Closeout: []CloseoutItem{
			{ID: "CL-001", Item: "As-built Drawings – Civil", Status: "not-started", Due: "2027-05-01", AssignedTo: "U005", Category: "Documentation"},
			{ID: "CL-002", Item: "As-built Drawings – Structural", Status: "not-started", Due: "2027-05-01", AssignedTo: "U002", Category: "Documentation"},
			{ID: "CL-003", Item: "O&M Manuals – MEP Systems", Status: "in-progress", Due: "2027-04-15", AssignedTo: "U003", Category: "Manuals", Remarks: "Draft 1 issued"},
			{ID: "CL-004", Item: "Fire Safety Certificate", Status: "not-started", Due: "2027-05-30", AssignedTo: "U001", Category: "Permits"},
			{ID: "CL-005", Item: "Building Occupancy Permit", Status: "not-started", Due: "2027-06-15", AssignedTo: "U001", Category: "Permits"},
			{ID: "CL-006", Item: "Defects Liability Register", Status: "not-started", Due: "2027-06-30", AssignedTo: "U001", Category: "Documentation"},
			{ID: "CL-007", Item: "BMS Training Records", Status: "in-progress", Due: "2027-04-01", AssignedTo: "U003", Category: "Training", Remarks: "Session 1 completed"},
			{ID: "CL-008", Item: "Spare Parts Handover Schedule", Status: "not-started", Due: "2027-05-15", AssignedTo: "U003", Category: "Handover"},
		},
		Progress: ProgressData{
			Milestones: []Milestone{
				{ID: "MS01", Name: "Piling Complete", Planned: "2025-08-30", Actual: "2025-09-10", Status: "completed", Delay: 11},
				{ID: "MS02", Name: "Basement Slab – Level B2", Planned: "2025-10-15", Actual: "2025-10-28", Status: "completed", Delay: 13},
				{ID: "MS03", Name: "Ground Floor Slab", Planned: "2025-12-20", Actual: "2026-01-05", Status: "completed", Delay: 16},
				{ID: "MS04", Name: "Structure Complete – L10", Planned: "2026-04-30", Status: "on-track"},
				{ID: "MS05", Name: "Facade Envelope Closed", Planned: "2026-08-15", Status: "at-risk"},
				{ID: "MS06", Name: "MEP Rough-in Complete", Planned: "2026-10-30", Status: "on-track"},
				{ID: "MS07", Name: "Fit-out Complete", Planned: "2027-03-15", Status: "on-track"},
				{ID: "MS08", Name: "Practical Completion", Planned: "2027-06-30", Status: "on-track"},
			},
			SCurveData: []SCurvePoint{
				{Month: "Jan 25", Planned: 2, Actual: fptr(1.5)},
				{Month: "Feb 25", Planned: 4, Actual: fptr(3.2)},
				{Month: "Mar 25", Planned: 7, Actual: fptr(5.8)},
				{Month: "Apr 25", Planned: 10, Actual: fptr(8.5)},
				{Month: "May 25", Planned: 14, Actual: fptr(12)},
				{Month: "Jun 25", Planned: 18, Actual: fptr(16)},
				{Month: "Jul 25", Planned: 22, Actual: fptr(20)},
				{Month: "Aug 25", Planned: 26, Actual: fptr(24)},
				{Month: "Sep 25", Planned: 30, Actual: fptr(27)},
				{Month: "Oct 25", Planned: 34, Actual: fptr(30)},
				{Month: "Nov 25", Planned: 38, Actual: fptr(33)},
				{Month: "Dec 25", Planned: 41, Actual: fptr(35)},
				{Month: "Jan 26", Planned: 44, Actual: fptr(36)},
				{Month: "Feb 26", Planned: 48},
			},
			DisciplineProgress: []DisciplineProgress{
				{Name: "Structural", Progress: 48, Planned: 52},
				{Name: "Civil", Progress: 72, Planned: 80},
				{Name: "Mechanical", Progress: 15, Planned: 18},
				{Name: "Electrical", Progress: 20, Planned: 25},
				{Name: "Plumbing", Progress: 12, Planned: 16},
				{Name: "HVAC", Progress: 18, Planned: 22},
				{Name: "Architect", Progress: 12, Planned: 15},
				{Name: "Landscape", Progress: 5, Planned: 8},
			},
		},
	}
}

func seedHarborBridge() *ProjectBundle {
	b := &ProjectBundle{ProjectID: "PRJ-002"}
	b.Drawings = []Drawing{
		{ID: "DWG-B01", Title: "Bridge Pier Layout Plan", Discipline: "Civil", Rev: 3, Status: "approved", SubmittedBy: "U005", Date: "2024-08-10", Consultant: "CivilPro", File: "BRG-PIR-001-Rev3.pdf", Comments: "Approved final"},
		{ID: "DWG-B02", Title: "Deck Reinforcement Details", Discipline: "Structural", Rev: 2, Status: "approved", SubmittedBy: "U002", Date: "2024-09-15", Consultant: "CivilPro", File: "BRG-DRD-002-Rev2.pdf", Comments: "Approved"},
		{ID: "DWG-B03", Title: "Traffic Signal Layout", Discipline: "Electrical", Rev: 1, Status: "under-review", SubmittedBy: "U003", Date: "2025-01-10", Consultant: "CivilPro", File: "BRG-ELE-003-Rev1.pdf", Comments: "Under review"},
	}
	b.Procurement = []PurchaseOrder{
		{ID: "PO-B01", Item: "Bridge Steel Girders", Vendor: "SteelTech Corp", POValue: 8500000, Status: "delivered", PODate: "2024-07-01", DeliveryDate: "2025-03-15", PayStatus: "90% paid", Performance: 92, Remarks: "Delivery complete"},
		{ID: "PO-B02", Item: "Concrete Supply – Piers", Vendor: "MixPro Ready", POValue: 3200000, Status: "delivered", PODate: "2024-08-01", DeliveryDate: "2025-06-01", PayStatus: "80% paid", Performance: 88, Remarks: "Ongoing supply"},
	}
	b.HSE.Stats = HSEStats{NearMiss: 8, ToolboxTalks: 62, SafeManHours: 412000}
	b.Manpower.Today = DailyManpower{Date: "2026-02-17", TotalWorkers: 280, Skilled: 110, Unskilled: 155, Staff: 15}
	b.Cost = CostData{
		Budget: 42000000, RevisedBudget: 43500000, CommittedCost: 36000000, ActualCost: 29000000,
		ForecastFinalCost: 44200000, CostVariance: -700000,
		Categories: []CostCategory{
			{Name: "Piling & Foundations", Budget: 8000000, Committed: 8000000, Actual: 8000000, Forecast: 8000000},
			{Name: "Superstructure", Budget: 18000000, Committed: 16000000, Actual: 12000000, Forecast: 19000000},
			{Name: "Deck & Surfacing", Budget: 9000000, Committed: 7000000, Actual: 5000000, Forecast: 9500000},
			{Name: "Traffic & Signaling", Budget: 4000000, Committed: 2500000, Actual: 1500000, Forecast: 4200000},
			{Name: "Preliminaries", Budget: 3000000, Committed: 2500000, Actual: 2500000, Forecast: 3500000},
		},
	}
	b.Progress.SCurveData = []SCurvePoint{
		{Month: "Jun 24", Planned: 5, Actual: fptr(4)},
		{Month: "Jul 24", Planned: 10, Actual: fptr(9)},
		{Month: "Aug 24", Planned: 18, Actual: fptr(16)},
		{Month: "Sep 24", Planned: 26, Actual: fptr(24)},
		{Month: "Oct 24", Planned: 34, Actual: fptr(32)},
		{Month: "Nov 24", Planned: 42, Actual: fptr(40)},
		{Month: "Dec 24", Planned: 50, Actual: fptr(48)},
		{Month: "Jan 25", Planned: 56, Actual: fptr(54)},
		{Month: "Feb 25", Planned: 62, Actual: fptr(60)},
		{Month: "Mar 25", Planned: 67, Actual: fptr(65)},
		{Month: "Apr 25", Planned: 72, Actual: fptr(70)},
		{Month: "May 25", Planned: 75, Actual: fptr(68)},
		{Month: "Jun 25", Planned: 78},
	}
	b.Progress.DisciplineProgress = []DisciplineProgress{
		{Name: "Civil", Progress: 85, Planned: 88},
		{Name: "Structural", Progress: 75, Planned: 78},
		{Name: "Electrical", Progress: 45, Planned: 50},
		{Name: "Landscape", Progress: 20, Planned: 30},
	}
	b.Progress.Milestones = []Milestone{
		{ID: "BM01", Name: "Piling Works Complete", Planned: "2024-09-30", Actual: "2024-10-05", Status: "completed", Delay: 5},
		{ID: "BM02", Name: "All Piers Complete", Planned: "2025-01-31", Actual: "2025-02-10", Status: "completed", Delay: 10},
		{ID: "BM03", Name: "Deck Casting Complete", Planned: "2025-06-30", Status: "on-track"},
		{ID: "BM04", Name: "Surfacing Complete", Planned: "2026-03-31", Status: "at-risk"},
		{ID: "BM05", Name: "Practical Completion", Planned: "2026-12-31", Status: "on-track"},
	}
	return b
}
