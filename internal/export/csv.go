package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/dispatch"
	"grid-scenarios/internal/model"

	"github.com/shopspring/decimal"
)

// Column is one named hourly series in a profile table.
type Column struct {
	Name   string
	Values model.Profile
}

// WriteProfilesCSV writes one row per hour with a column per series.
func WriteProfilesCSV(w io.Writer, cols []Column) error {
	cw := csv.NewWriter(w)

	header := []string{"hour"}
	for _, c := range cols {
		if len(c.Values) != model.HoursPerDay {
			return fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), model.HoursPerDay)
		}
		header = append(header, c.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for hour := 0; hour < model.HoursPerDay; hour++ {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.Itoa(hour))
		for _, c := range cols {
			row = append(row, fmtFloat(c.Values[hour]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteLedgerCSV(w io.Writer, ledger []dispatch.LedgerRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"hour",
		"window",
		"action",
		"requested_mwh",
		"applied_mwh",
		"soc_start",
		"soc_end",
		"charge_mwh",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Hour),
			r.Window,
			string(r.Action),
			fmtFloat(r.RequestedMWh),
			fmtFloat(r.AppliedMWh),
			fmtFloat(r.SOCStart),
			fmtFloat(r.SOCEnd),
			fmtFloat(r.ChargeMWh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteReportCSV flattens a report into metric,value rows. Money is written to the cent.
func WriteReportCSV(w io.Writer, r analysis.Report) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"metric", "value"},
		{"cooking_shift_percent", fmtFloat(r.Inputs.CookingShiftPercent)},
		{"thermal_displacement", fmtFloat(r.Inputs.ThermalDisplacement)},
		{"peak_demand_mw", fmtFloat(r.Demand.Peak)},
		{"optimized_peak_mw", fmtFloat(r.Demand.OptimizedPeak)},
		{"peak_reduction_mw", fmtFloat(r.Demand.Reduction)},
		{"peak_reduction_percent", fmtFloat(r.Demand.ReductionPercent)},
		{"base_revenue", fmtMoney(r.Financial.BaseRevenue)},
		{"optimized_revenue", fmtMoney(r.Financial.OptimizedRevenue)},
		{"revenue_difference", fmtMoney(r.Financial.Difference)},
		{"revenue_percent_change", fmtFloat(r.Financial.PercentChange)},
		{"vpp_peak_contribution_mwh", fmtFloat(r.VPP.PeakContribution)},
		{"vpp_average_contribution_mwh", fmtFloat(r.VPP.AverageContribution)},
		{"vpp_cost_savings", fmtMoney(r.VPP.CostSavings)},
		{"emissions_daily_reduction_kg", fmtFloat(r.Emissions.DailyReduction)},
		{"emissions_annual_reduction_kg", fmtFloat(r.Emissions.AnnualReduction)},
		{"emissions_five_year_total_kg", fmtFloat(r.Emissions.FiveYearTotal)},
		{"lcoe_current", fmtFloat(r.LCOE.Current)},
		{"lcoe_optimized", fmtFloat(r.LCOE.Optimized)},
		{"lcoe_reduction_percent", fmtFloat(r.LCOE.ReductionPercent)},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteFile creates path (and its directory) and hands the file to write.
func WriteFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func fmtMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
