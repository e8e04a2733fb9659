package models

import (
	"time"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/model"
)

// ProfileResponse is one generated series plus the axis labels the chart uses.
type ProfileResponse struct {
	Name       string             `json:"name"`
	Unit       string             `json:"unit"`
	Labels     []string           `json:"labels"`
	Values     model.Profile      `json:"values"`
	Parameters map[string]float64 `json:"parameters,omitempty"`
	Ledger     []LedgerRow        `json:"ledger,omitempty"`
}

// LedgerRow represents one hour in the BESS dispatch ledger
type LedgerRow struct {
	Hour         int     `json:"hour"`
	Window       string  `json:"window,omitempty"`
	Action       string  `json:"action"` // "CHARGING", "DISCHARGING", "IDLE"
	RequestedMWh float64 `json:"requested_mwh"`
	AppliedMWh   float64 `json:"applied_mwh"`
	SOCStart     float64 `json:"soc_start"`
	SOCEnd       float64 `json:"soc_end"`
	ChargeMWh    float64 `json:"charge_mwh"`
}

// ReportResponse represents the response from a report run
type ReportResponse struct {
	ID        string          `json:"id,omitempty"`
	Status    string          `json:"status"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Report    analysis.Report `json:"report"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Rankings []analysis.RankedScenario `json:"rankings"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewError builds an ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// ScheduleInfo describes the BESS operating schedule
type ScheduleInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CapacityMWh float64      `json:"capacity_mwh"`
	InitialSOC  float64      `json:"initial_soc"`
	Windows     []WindowInfo `json:"windows"`
}

// WindowInfo is one hour window of the schedule
type WindowInfo struct {
	Name             string  `json:"name"`
	StartHour        int     `json:"start_hour"`
	EndHour          int     `json:"end_hour"`
	Action           string  `json:"action"`
	CapacityFraction float64 `json:"capacity_fraction"`
	EnergyMWh        float64 `json:"energy_mwh"`
}
