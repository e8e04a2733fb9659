package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/config"
	"grid-scenarios/internal/export"
	"grid-scenarios/internal/lcoe"
	"grid-scenarios/internal/profile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "profiles":
		cmdProfiles(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "ledger":
		cmdLedger(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli profiles --shift 30 --thermal 40 --out results/profiles.csv")
	fmt.Println("  cli report --config examples/config.yaml [--format json|csv] [--out results/report.json]")
	fmt.Println("  cli sweep")
	fmt.Println("  cli scenarios --dir examples/scenarios [--config examples/config.yaml]")
	fmt.Println("  cli compare --dir examples/scenarios [--only baseline,config]")
	fmt.Println("  cli ledger --out results/bess_ledger.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - every command accepts --config to override the parameter tables")
	fmt.Println("  - with --config, scenarios and compare include the config's scenario as \"config\"")
	fmt.Println("  - ledger lists the BESS action (CHARGING/IDLE/DISCHARGING) per hour")
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	cfgPath *string
}

func addCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{cfgPath: fs.String("config", "", "Path to YAML config (optional)")}
}

// config loads --config, or returns nil when none was given.
func (cf commonFlags) config() (*config.Config, error) {
	if *cf.cfgPath == "" {
		return nil, nil
	}
	return config.Load(*cf.cfgPath)
}

// load returns the calculator and the config's scenario inputs (slider defaults without a config).
func (cf commonFlags) load() (*profile.Calculator, analysis.Inputs) {
	cfg, err := cf.config()
	if err != nil {
		panic(err)
	}
	if cfg == nil {
		return profile.Default(), analysis.DefaultInputs()
	}
	return profile.New(cfg.ToModelParams()), cfg.Scenario.Inputs()
}

// presets lists the presets in dir, led by the config's own scenario when --config is set.
func (cf commonFlags) presets(dir string) ([]config.Preset, error) {
	presets, err := config.Presets(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := cf.config()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		presets = append([]config.Preset{cfg.Preset(*cf.cfgPath)}, presets...)
	}
	return presets, nil
}

func cmdProfiles(args []string) {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	common := addCommon(fs)
	shift := fs.Float64("shift", profile.DefaultCookingShift, "Cooking shift percent (overrides the config scenario)")
	thermal := fs.Float64("thermal", profile.DefaultThermalDisplacement, "Thermal displacement percent (overrides the config scenario)")
	outPath := fs.String("out", "", "Output CSV path (stdout when empty)")
	_ = fs.Parse(args)

	calc, in := common.load()
	in = override(fs, in, *shift, *thermal)

	cols := []export.Column{
		{Name: "base_load_mw", Values: calc.BaseLoad()},
		{Name: "cooking_mw", Values: calc.Cooking(in.CookingShiftPercent)},
		{Name: "ev_charging_mwh", Values: calc.EVCharging()},
		{Name: "battery_soc_pct", Values: calc.BatteryStateOfCharge()},
		{Name: "vpp_contribution_mwh", Values: calc.VPPContribution(in.ThermalDisplacement)},
		{Name: "total_demand_mw", Values: analysis.TotalDemand(calc, in.CookingShiftPercent)},
	}
	write(*outPath, func(w io.Writer) error { return export.WriteProfilesCSV(w, cols) })
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	common := addCommon(fs)
	shift := fs.Float64("shift", profile.DefaultCookingShift, "Cooking shift percent (overrides the config scenario)")
	thermal := fs.Float64("thermal", profile.DefaultThermalDisplacement, "Thermal displacement percent (overrides the config scenario)")
	format := fs.String("format", "json", "Output format: json or csv")
	outPath := fs.String("out", "", "Output path (stdout when empty)")
	_ = fs.Parse(args)

	calc, in := common.load()
	report := analysis.Build(calc, override(fs, in, *shift, *thermal))

	switch *format {
	case "json":
		write(*outPath, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		})
	case "csv":
		write(*outPath, func(w io.Writer) error { return export.WriteReportCSV(w, report) })
	default:
		fmt.Printf("unsupported --format %q\n", *format)
		os.Exit(2)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	common := addCommon(fs)
	_ = fs.Parse(args)

	calc, _ := common.load()
	est := lcoe.Calculate(calc.Params().LCOE)
	s := lcoe.AdoptionSweep(calc.Params().LCOE)

	fmt.Printf("LCOE current=$%.3f/kWh optimized=$%.3f/kWh reduction=%.1f%%\n\n", est.Current, est.Optimized, est.ReductionPercent)
	fmt.Printf("%-8s %-10s %-10s %-10s\n", "adoption", "cooking", "ev", "combined")
	for i, level := range s.Levels {
		fmt.Printf("%-8s %-10.3f %-10.3f %-10.3f\n", level, s.CookingOnly[i], s.EVOnly[i], s.Combined[i])
	}
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	common := addCommon(fs)
	dir := fs.String("dir", "examples/scenarios", "Directory of scenario preset YAML files")
	_ = fs.Parse(args)

	presets, err := common.presets(*dir)
	if err != nil {
		panic(err)
	}
	listScenarios(os.Stdout, presets)
}

func listScenarios(w io.Writer, presets []config.Preset) {
	fmt.Fprintf(w, "%-20s %-22s %-8s %-8s %s\n", "id", "name", "shift%", "thermal%", "description")
	for _, p := range presets {
		fmt.Fprintf(w, "%-20s %-22s %-8.0f %-8.0f %s\n", p.ID, p.Name, p.Inputs.CookingShiftPercent, p.Inputs.ThermalDisplacement, p.Description)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	common := addCommon(fs)
	dir := fs.String("dir", "examples/scenarios", "Directory of scenario preset YAML files")
	only := fs.String("only", "", "Comma-separated preset IDs to compare (default: all)")
	_ = fs.Parse(args)

	calc, _ := common.load()
	presets, err := common.presets(*dir)
	if err != nil {
		panic(err)
	}

	var scenarios []analysis.Scenario
	if keys := splitList(*only); len(keys) > 0 {
		for _, k := range keys {
			p, ok := config.FindPreset(presets, k)
			if !ok {
				panic(fmt.Errorf("unknown preset %q", k))
			}
			scenarios = append(scenarios, p.Scenario())
		}
	} else {
		for _, p := range presets {
			scenarios = append(scenarios, p.Scenario())
		}
	}

	ranked := analysis.Compare(calc, scenarios)
	fmt.Printf("%-4s %-22s %-10s %-10s %-12s %-12s %-14s\n", "rank", "scenario", "peak", "opt.peak", "revenue$", "opt.rev$", "co2 5y (t)")
	for _, r := range ranked {
		fmt.Printf(
			"%-4d %-22s %-10.2f %-10.2f %-12.2f %-12.2f %-14.1f\n",
			r.Rank,
			r.Name,
			r.Report.Demand.Peak,
			r.Report.Demand.OptimizedPeak,
			r.Report.Financial.BaseRevenue,
			r.Report.Financial.OptimizedRevenue,
			r.Report.Emissions.FiveYearTotal/1000,
		)
	}
}

func cmdLedger(args []string) {
	fs := flag.NewFlagSet("ledger", flag.ExitOnError)
	common := addCommon(fs)
	outPath := fs.String("out", "", "Output CSV path (stdout when empty)")
	_ = fs.Parse(args)

	calc, _ := common.load()
	res, err := calc.BatteryDispatch()
	if err != nil {
		panic(err)
	}
	write(*outPath, func(w io.Writer) error { return export.WriteLedgerCSV(w, res.Ledger) })
	if *outPath != "" {
		fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
		fmt.Printf("Final SOC=%.3f\n", res.FinalSOC)
	}
}

// override applies --shift and --thermal only when they were given on the command line.
func override(fs *flag.FlagSet, in analysis.Inputs, shift, thermal float64) analysis.Inputs {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shift":
			in.CookingShiftPercent = shift
		case "thermal":
			in.ThermalDisplacement = thermal
		}
	})
	return in
}

func write(path string, fn func(io.Writer) error) {
	var err error
	if path == "" {
		err = fn(os.Stdout)
	} else {
		err = export.WriteFile(path, fn)
	}
	if err != nil {
		panic(err)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
