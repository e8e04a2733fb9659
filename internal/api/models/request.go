package models

// ReportRequest is the body of POST /api/v1/report.
// Omitted percentages fall back to the dashboard defaults (30 and 40); explicit zeros are kept.
type ReportRequest struct {
	CookingShiftPercent *float64 `json:"cooking_shift_percent"`
	ThermalDisplacement *float64 `json:"thermal_displacement"`
}

// CompareRequest represents a request to compare several scenarios
type CompareRequest struct {
	Variations []ScenarioVariation `json:"variations" binding:"required,min=1,dive"`
}

// ScenarioVariation defines one scenario to compare. Preset, when set, supplies the
// inputs; explicit percentages override the preset's.
type ScenarioVariation struct {
	Name                string   `json:"name" binding:"required"`
	Preset              string   `json:"preset,omitempty"`
	CookingShiftPercent *float64 `json:"cooking_shift_percent,omitempty"`
	ThermalDisplacement *float64 `json:"thermal_displacement,omitempty"`
}
