package models

// KPISnapshot is derived from a bundle on every read and never persisted.
type KPISnapshot struct {
	DrawingsPending  int     `json:"drawingsPending"`
	DrawingsApproved int     `json:"drawingsApproved"`
	DrawingsTotal    int     `json:"drawingsTotal"`
	MaterialsPending int     `json:"materialsPending"`
	OpenNCRs         int     `json:"openNCRs"`
	OpenRFIs         int     `json:"openRFIs"`
	OpenSIs          int     `json:"openSIs"`
	ScheduleVariance float64 `json:"scheduleVariance"`
	CostVariance     float64 `json:"costVariance"`
	OverallProgress  int     `json:"overallProgress"`
	PlannedProgress  float64 `json:"plannedProgress"`
	ActiveWorkers    int     `json:"activeWorkers"`
	OpenIncidents    int     `json:"openIncidents"`
	SafeManHours     int     `json:"safeManHours"`
	LTIR             float64 `json:"ltir"`
}
