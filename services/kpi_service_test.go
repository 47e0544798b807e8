package services

import (
	"testing"

	"backend/models"
)

func fptr(v float64) *float64 { return &v }

func TestComputeKPIsRegisterCounts(t *testing.T) {
	b := &models.ProjectBundle{
		Drawings: []models.Drawing{
			{ID: "DWG-001", Status: "submitted"},
			{ID: "DWG-002", Status: "under-review"},
			{ID: "DWG-003", Status: "approved"},
			{ID: "DWG-004", Status: "rejected"},
		},
		Materials: []models.Material{
			{ID: "MAT-001", Status: "approved"},
			{ID: "MAT-002", Status: "submitted"},
			{ID: "MAT-003", Status: "rejected"},
		},
		NCR: []models.NCR{{ID: "NCR-001", Status: "open"}, {ID: "NCR-002", Status: "closed"}},
		RFI: []models.RFI{{ID: "RFI-001", Status: "open"}},
		SI:  []models.SiteInstruction{{ID: "SI-001", Status: "closed"}},
		HSE: models.HSEData{
			Incidents: []models.HSEIncident{{ID: "HSE-001", Status: "open"}, {ID: "HSE-002", Status: "closed"}},
			Stats:     models.HSEStats{SafeManHours: 125000, LTIR: 0.4},
		},
		Manpower: models.ManpowerData{Today: models.DailyManpower{TotalWorkers: 312}},
	}
	project := models.Project{CurrentProgress: 34}

	k := ComputeKPIs(b, project)

	if k.DrawingsTotal != 4 {
		t.Errorf("DrawingsTotal = %d", k.DrawingsTotal)
	}
	if k.DrawingsPending != 2 {
		t.Errorf("DrawingsPending = %d, want 2 (submitted + under-review)", k.DrawingsPending)
	}
	if k.DrawingsApproved != 1 {
		t.Errorf("DrawingsApproved = %d", k.DrawingsApproved)
	}
	if k.MaterialsPending != 2 {
		t.Errorf("MaterialsPending = %d, want 2 (everything not approved)", k.MaterialsPending)
	}
	if k.OpenNCRs != 1 || k.OpenRFIs != 1 || k.OpenSIs != 0 {
		t.Errorf("open counts = %d/%d/%d", k.OpenNCRs, k.OpenRFIs, k.OpenSIs)
	}
	if k.OpenIncidents != 1 {
		t.Errorf("OpenIncidents = %d", k.OpenIncidents)
	}
	if k.OverallProgress != 34 {
		t.Errorf("OverallProgress = %d", k.OverallProgress)
	}
	if k.ActiveWorkers != 312 {
		t.Errorf("ActiveWorkers = %d", k.ActiveWorkers)
	}
	if k.SafeManHours != 125000 || k.LTIR != 0.4 {
		t.Errorf("HSE stats not carried: %v / %v", k.SafeManHours, k.LTIR)
	}
}

func TestScheduleVarianceUsesLastReportedActual(t *testing.T) {
	b := &models.ProjectBundle{
		Progress: models.ProgressData{
			SCurveData: []models.SCurvePoint{
				{Month: "Jan", Planned: 10, Actual: fptr(9)},
				{Month: "Feb", Planned: 20, Actual: fptr(23.5)},
				{Month: "Mar", Planned: 30},
			},
		},
	}
	k := ComputeKPIs(b, models.Project{})

	if k.ScheduleVariance != 3.5 {
		t.Errorf("ScheduleVariance = %v, want 3.5", k.ScheduleVariance)
	}
	if k.PlannedProgress != 30 {
		t.Errorf("PlannedProgress = %v, want the last point's planned value", k.PlannedProgress)
	}
}

func TestScheduleVarianceNoActuals(t *testing.T) {
	b := &models.ProjectBundle{
		Progress: models.ProgressData{
			SCurveData: []models.SCurvePoint{{Month: "Jan", Planned: 10}},
		},
	}
	if v := ComputeKPIs(b, models.Project{}).ScheduleVariance; v != 0 {
		t.Errorf("ScheduleVariance = %v, want 0", v)
	}
}

func TestCostVarianceFromCategories(t *testing.T) {
	b := &models.ProjectBundle{
		Cost: models.CostData{
			// Stored totals are stale on purpose; categories must win.
			RevisedBudget:     1,
			ForecastFinalCost: 999,
			Categories: []models.CostCategory{
				{Name: "Civil Works", Budget: 120, Forecast: 100},
				{Name: "MEP", Budget: 80, Forecast: 80},
			},
		},
	}
	if v := ComputeKPIs(b, models.Project{}).CostVariance; v != -10.0 {
		t.Errorf("CostVariance = %v, want -10.0", v)
	}
}

func TestCostVarianceFallbackToStoredTotals(t *testing.T) {
	b := &models.ProjectBundle{
		Cost: models.CostData{RevisedBudget: 100, ForecastFinalCost: 110},
	}
	if v := ComputeKPIs(b, models.Project{}).CostVariance; v != 10.0 {
		t.Errorf("CostVariance = %v, want 10.0", v)
	}
}

func TestCostVarianceZeroBudget(t *testing.T) {
	b := &models.ProjectBundle{
		Cost: models.CostData{ForecastFinalCost: 500},
	}
	if v := ComputeKPIs(b, models.Project{}).CostVariance; v != 0 {
		t.Errorf("CostVariance = %v, want 0 when no budget is set", v)
	}
}
