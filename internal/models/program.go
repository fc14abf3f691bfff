package models

import "time"

// MeasurableTarget - a named quantifiable goal with current and target value
type MeasurableTarget struct {
	Metric       string  `json:"metric"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
}

// ProgramGoals - what the program as a whole aims at
type ProgramGoals struct {
	PrimaryGoal         string                      `json:"primary_goal"` // "Fuerza", "Hipertrofia", "Pérdida de grasa"
	SecondaryGoals      []string                    `json:"secondary_goals,omitempty"`
	QuantifiableTargets map[string]MeasurableTarget `json:"quantifiable_targets,omitempty"`
	TargetDate          time.Time                   `json:"target_date"`
}

// ProgramPhase - one multi-week phase of a personalized program
type ProgramPhase struct {
	Name        string              `json:"name"` // "Fase de Adaptación"
	PhaseNumber int                 `json:"phase_number"`
	Weeks       int                 `json:"weeks"`
	Focus       string              `json:"focus"`
	Routines    []CustomizedRoutine `json:"routines"`
}

// AssessmentMethod - how progress on a metric is measured
type AssessmentMethod struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	FrequencyDays int    `json:"frequency_days"`
}

// TrackingPlan - metrics and cadence for progress tracking
type TrackingPlan struct {
	Metrics             []string           `json:"metrics"`
	AssessmentFrequency int                `json:"assessment_frequency_days"`
	Methods             []AssessmentMethod `json:"methods"`
}

// PersonalizedProgram - multi-phase program for a user and goal set
type PersonalizedProgram struct {
	ProgramID  string         `json:"program_id"`
	UserID     string         `json:"user_id"`
	Goals      ProgramGoals   `json:"goals"`
	Phases     []ProgramPhase `json:"phases"`
	TotalWeeks int            `json:"total_weeks"`
	StartDate  time.Time      `json:"start_date"`
	Tracking   TrackingPlan   `json:"tracking"`
	Milestones []Milestone    `json:"milestones"`
}
