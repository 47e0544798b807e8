package models

import "errors"

// Project statuses selectable from the project forms.
const (
	ProjectActive    = "active"
	ProjectPlanned   = "planned"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
)

// Project is one construction project. CurrentProgress is tracked
// independently of the S-curve and reported as-is on the dashboard.
type Project struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Client          string  `json:"client"`
	Contractor      string  `json:"contractor"`
	Consultant      string  `json:"consultant"`
	Location        string  `json:"location"`
	StartDate       string  `json:"startDate"`
	PlannedEnd      string  `json:"plannedEnd"`
	ContractValue   float64 `json:"contractValue"`
	Currency        string  `json:"currency"`
	CurrentProgress int     `json:"currentProgress"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`
}

func ValidateProjectStatus(status string) error {
	switch status {
	case ProjectActive, ProjectPlanned, ProjectCompleted, ProjectOnHold:
		return nil
	}
	return errors.New("invalid project status; allowed values are active, planned, completed, on-hold")
}

// User is a directory entry referenced by submittedBy / assignedTo fields.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Dept   string `json:"dept"`
}

// Disciplines is the fixed discipline list offered on drawing forms.
var Disciplines = []string{
	"Civil", "Structural", "Architect", "Landscape", "Mechanical",
	"Electrical", "Plumbing", "HVAC", "Fire Protection", "ELV / IT", "Geotechnical",
}
