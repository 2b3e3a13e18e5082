package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/danielschuberts-droid/h2cat/pkg/catalog"
)

var sectionColor = color.New(color.FgCyan, color.Bold)

// writeDump prints the whole catalog: the mapping form as YAML, a blank
// line, then the native record form of each configuration.
func writeDump(w io.Writer) error {
	data, err := yaml.Marshal(catalog.AsMaps())
	if err != nil {
		return fmt.Errorf("failed to render mapping form: %w", err)
	}

	_, _ = fmt.Fprint(w, string(data))
	_, _ = fmt.Fprintln(w)

	for i, c := range catalog.Configurations() {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprint(w, c.String())
	}

	return nil
}

// writeTable prints a one-line-per-configuration summary. Floats use the
// configured number of decimal places.
func writeTable(w io.Writer, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tPLANT SIZE (MW)\tH2 YIELD (KG/MWH)\tINVEST (EUR/KW)\tSTACK REPLACEMENT (YRS)")
	_, _ = fmt.Fprintln(tw, "----\t---------------\t-----------------\t---------------\t-----------------------")

	for _, c := range catalog.Configurations() {
		_, _ = fmt.Fprintf(tw, "%s\t%.*f\t%.*f\t%.*f\t%.*f\n",
			c.Name,
			precision, c.EnergyTechnical.TotalPlantSizeMWInputE,
			precision, c.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE,
			precision, c.Financial.SpecificInvestmentEURPerKWTotalInput,
			precision, c.TechnologySpecific.FrequencyOfStackReplacementYears,
		)
	}

	return tw.Flush()
}

// writeDetail prints one configuration as labeled sections with units.
func writeDetail(w io.Writer, c catalog.PlantConfiguration) error {
	_, _ = sectionColor.Fprintln(w, c.Name)
	_, _ = fmt.Fprintln(w)

	heat := "n/a"
	if p := c.EnergyTechnical.Input.HeatPctTotalInputMWh; p != nil {
		heat = fmt.Sprintf("%v%% of total input", *p)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	section := func(title string) {
		_, _ = fmt.Fprintf(tw, "%s\n", sectionColor.Sprint(title))
	}
	row := func(label, format string, args ...interface{}) {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\n", label, fmt.Sprintf(format, args...))
	}

	section("Energy / technical")
	row("Plant size", "%v MW input-e", c.EnergyTechnical.TotalPlantSizeMWInputE)
	row("Planned outage", "%v days/yr", c.EnergyTechnical.PlannedOutageDaysPerAnnum)
	row("Technical lifetime", "%v years", c.EnergyTechnical.TechnicalLifetimeYears)

	section("Input")
	row("Electricity", "%v%% of total input", c.EnergyTechnical.Input.ElectricityPctTotalInputMWh)
	row("Heat", "%s", heat)
	row("Heat loss", "%v%% of total input", c.EnergyTechnical.Input.HeatLossPctTotalInputMWh)
	row("Water consumption", "%v kg/MWh input", c.EnergyTechnical.Input.WaterForElectrolysisKgPerMWhInput)

	section("Output")
	row("Hydrogen", "%v%% of total output", c.EnergyTechnical.Output.HydrogenOutputPctTotalOutputMWh)
	row("Hydrogen (cH2)", "%v%% of total output", c.EnergyTechnical.Output.HydrogenCH2PctTotalOutput)
	row("H2 for district heating", "%v pct-points of heat loss", c.EnergyTechnical.Output.HydrogenForDistrictHeatingPctPointsOfHeatLoss)
	row("Oxygen", "%v%% of total output", c.EnergyTechnical.Output.OxygenOutputPctTotalOutputMWh)
	row("O2 recovered for district heating", "%v pct-points of heat loss", c.EnergyTechnical.Output.OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss)
	row("Heat", "%v%% of total output", c.EnergyTechnical.Output.HeatOutputPctTotalOutputMWh)
	row("Hydrogen yield", "%v kg/MWh input-e", c.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE)
	row("Oxygen yield", "%v kg/MWh input-e", c.EnergyTechnical.Output.OxygenYieldKgPerMWhInputE)

	section("Financial")
	row("Specific investment (input)", "%v EUR/kW total input", c.Financial.SpecificInvestmentEURPerKWTotalInput)
	row("Specific investment (output)", "%v EUR per kg/h H2 output", c.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput)
	row("O&M", "%v%% of specific investment/yr", c.Financial.OAndMPctOfSpecificInvestmentPerYear)

	section("Technology specific")
	row("Current density", "%v A/cm2", c.TechnologySpecific.CurrentDensityAPerCm2)
	row("Footprint", "%v m2/MW input-e", c.TechnologySpecific.FootprintM2PerMWInputE)
	row("Degradation rate", "%v%%/yr", c.TechnologySpecific.DegradationRatePctPerAnnum)
	row("Stack replacement", "every %v years", c.TechnologySpecific.FrequencyOfStackReplacementYears)

	return tw.Flush()
}
