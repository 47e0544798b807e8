package services

import (
	"math"

	"backend/models"
)

// ComputeKPIs derives the dashboard metrics from the bundle's current state.
// It is a pure function: recomputed on every read, nothing cached, nothing
// mutated.
func ComputeKPIs(b *models.ProjectBundle, project models.Project) models.KPISnapshot {
	k := models.KPISnapshot{
		DrawingsTotal:   len(b.Drawings),
		OverallProgress: project.CurrentProgress,
		ActiveWorkers:   b.Manpower.Today.TotalWorkers,
		SafeManHours:    b.HSE.Stats.SafeManHours,
		LTIR:            b.HSE.Stats.LTIR,
	}

	for _, d := range b.Drawings {
		switch d.Status {
		case "submitted", "under-review":
			k.DrawingsPending++
		case "approved":
			k.DrawingsApproved++
		}
	}
	for _, m := range b.Materials {
		if m.Status != "approved" {
			k.MaterialsPending++
		}
	}
	for _, n := range b.NCR {
		if n.Status == "open" {
			k.OpenNCRs++
		}
	}
	for _, r := range b.RFI {
		if r.Status == "open" {
			k.OpenRFIs++
		}
	}
	for _, s := range b.SI {
		if s.Status == "open" {
			k.OpenSIs++
		}
	}
	for _, i := range b.HSE.Incidents {
		if i.Status == "open" {
			k.OpenIncidents++
		}
	}

	k.ScheduleVariance = scheduleVariance(b.Progress.SCurveData)
	k.PlannedProgress = plannedProgress(b.Progress.SCurveData)
	k.CostVariance = costVariance(b.Cost)
	return k
}

// scheduleVariance is the actual-minus-planned delta at the most recent
// S-curve point that has a reported actual. It is an absolute
// percentage-point delta, not a ratio. No reported actuals means 0.
func scheduleVariance(curve []models.SCurvePoint) float64 {
	for i := len(curve) - 1; i >= 0; i-- {
		if curve[i].Actual != nil {
			return round1(*curve[i].Actual - curve[i].Planned)
		}
	}
	return 0
}

func plannedProgress(curve []models.SCurvePoint) float64 {
	if len(curve) == 0 {
		return 0
	}
	return curve[len(curve)-1].Planned
}

// costVariance prefers the live category totals over the bundle-level fields,
// which can go stale as categories are edited. The stored totals are only a
// fallback for bundles with no category breakdown.
func costVariance(cost models.CostData) float64 {
	budget := cost.RevisedBudget
	forecast := cost.ForecastFinalCost
	if len(cost.Categories) > 0 {
		budget, forecast = 0, 0
		for _, c := range cost.Categories {
			budget += c.Budget
			forecast += c.Forecast
		}
	}
	if budget <= 0 {
		return 0
	}
	return round1((forecast - budget) / budget * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
