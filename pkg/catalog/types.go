package catalog

import (
	"fmt"
	"strings"
)

// InputData describes how the total input energy of a plant is composed.
// HeatPctTotalInputMWh is nil when the heat share was not measured for the
// configuration; nil never means zero.
type InputData struct {
	ElectricityPctTotalInputMWh       float64  `yaml:"electricity_pct_total_input_mwh" json:"electricity_pct_total_input_mwh"`
	HeatPctTotalInputMWh              *float64 `yaml:"heat_pct_total_input_mwh" json:"heat_pct_total_input_mwh"`
	HeatLossPctTotalInputMWh          float64  `yaml:"heat_loss_pct_total_input_mwh" json:"heat_loss_pct_total_input_mwh"`
	WaterForElectrolysisKgPerMWhInput float64  `yaml:"water_for_electrolysis_kg_per_mwh_input" json:"water_for_electrolysis_kg_per_mwh_input"`
}

// OutputData describes the split of the output energy between hydrogen,
// oxygen and heat, the district-heating recovery fractions, and the mass
// yields per MWh of electrical input.
type OutputData struct {
	HydrogenOutputPctTotalOutputMWh                        float64 `yaml:"hydrogen_output_pct_total_output_mwh" json:"hydrogen_output_pct_total_output_mwh"`
	HydrogenCH2PctTotalOutput                              float64 `yaml:"hydrogen_ch2_pct_total_output" json:"hydrogen_ch2_pct_total_output"`
	HydrogenForDistrictHeatingPctPointsOfHeatLoss          float64 `yaml:"hydrogen_for_district_heating_pct_points_of_heat_loss" json:"hydrogen_for_district_heating_pct_points_of_heat_loss"`
	OxygenOutputPctTotalOutputMWh                          float64 `yaml:"oxygen_output_pct_total_output_mwh" json:"oxygen_output_pct_total_output_mwh"`
	OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss   float64 `yaml:"oxygen_recovered_for_district_heating_pct_points_of_heat_loss" json:"oxygen_recovered_for_district_heating_pct_points_of_heat_loss"`
	HeatOutputPctTotalOutputMWh                            float64 `yaml:"heat_output_pct_total_output_mwh" json:"heat_output_pct_total_output_mwh"`
	HydrogenYieldKgPerMWhInputE                            float64 `yaml:"hydrogen_yield_kg_per_mwh_input_e" json:"hydrogen_yield_kg_per_mwh_input_e"`
	OxygenYieldKgPerMWhInputE                              float64 `yaml:"oxygen_yield_kg_per_mwh_input_e" json:"oxygen_yield_kg_per_mwh_input_e"`
}

// EnergyTechnicalData holds plant sizing, availability and lifetime figures
// together with the input/output energy balances.
type EnergyTechnicalData struct {
	TotalPlantSizeMWInputE    float64    `yaml:"total_plant_size_mw_input_e" json:"total_plant_size_mw_input_e"`
	PlannedOutageDaysPerAnnum float64    `yaml:"planned_outage_days_per_annum" json:"planned_outage_days_per_annum"`
	TechnicalLifetimeYears    float64    `yaml:"technical_lifetime_years" json:"technical_lifetime_years"`
	Input                     InputData  `yaml:"input" json:"input"`
	Output                    OutputData `yaml:"output" json:"output"`
}

// FinancialData holds the specific investment costs and the annual O&M cost
// as a percentage of the specific investment.
type FinancialData struct {
	SpecificInvestmentEURPerKWTotalInput            float64 `yaml:"specific_investment_eur_per_kw_total_input" json:"specific_investment_eur_per_kw_total_input"`
	SpecificInvestmentEURPerKgPerHourHydrogenOutput float64 `yaml:"specific_investment_eur_per_kg_per_hour_hydrogen_output" json:"specific_investment_eur_per_kg_per_hour_hydrogen_output"`
	OAndMPctOfSpecificInvestmentPerYear             float64 `yaml:"o_and_m_pct_of_specific_investment_per_year" json:"o_and_m_pct_of_specific_investment_per_year"`
}

// TechnologySpecificData holds figures particular to the electrolysis
// technology: cell current density, footprint, degradation and stack
// replacement interval.
type TechnologySpecificData struct {
	CurrentDensityAPerCm2             float64 `yaml:"current_density_a_per_cm2" json:"current_density_a_per_cm2"`
	FootprintM2PerMWInputE            float64 `yaml:"footprint_m2_per_mw_input_e" json:"footprint_m2_per_mw_input_e"`
	DegradationRatePctPerAnnum        float64 `yaml:"degradation_rate_pct_per_annum" json:"degradation_rate_pct_per_annum"`
	FrequencyOfStackReplacementYears float64 `yaml:"frequency_of_stack_replacement_years" json:"frequency_of_stack_replacement_years"`
}

// PlantConfiguration is one electrolysis technology scenario. Records are
// values; copying one copies all nested data except the shared optional
// pointer, which Configurations clones.
type PlantConfiguration struct {
	Name               string                 `yaml:"name" json:"name"`
	EnergyTechnical    EnergyTechnicalData    `yaml:"energy_technical" json:"energy_technical"`
	Financial          FinancialData          `yaml:"financial" json:"financial"`
	TechnologySpecific TechnologySpecificData `yaml:"technology_specific" json:"technology_specific"`
}

// String renders the native record form as indented key/value lines. The
// absent heat input percentage prints as "n/a".
func (c PlantConfiguration) String() string {
	var b strings.Builder
	w := func(indent int, key string, value interface{}) {
		if value == "" {
			fmt.Fprintf(&b, "%s%s:\n", strings.Repeat("  ", indent), key)
			return
		}
		fmt.Fprintf(&b, "%s%s: %v\n", strings.Repeat("  ", indent), key, value)
	}

	heat := "n/a"
	if c.EnergyTechnical.Input.HeatPctTotalInputMWh != nil {
		heat = fmt.Sprintf("%v", *c.EnergyTechnical.Input.HeatPctTotalInputMWh)
	}

	w(0, "name", c.Name)
	w(0, "energy_technical", "")
	w(1, "total_plant_size_mw_input_e", c.EnergyTechnical.TotalPlantSizeMWInputE)
	w(1, "planned_outage_days_per_annum", c.EnergyTechnical.PlannedOutageDaysPerAnnum)
	w(1, "technical_lifetime_years", c.EnergyTechnical.TechnicalLifetimeYears)
	w(1, "input", "")
	w(2, "electricity_pct_total_input_mwh", c.EnergyTechnical.Input.ElectricityPctTotalInputMWh)
	w(2, "heat_pct_total_input_mwh", heat)
	w(2, "heat_loss_pct_total_input_mwh", c.EnergyTechnical.Input.HeatLossPctTotalInputMWh)
	w(2, "water_for_electrolysis_kg_per_mwh_input", c.EnergyTechnical.Input.WaterForElectrolysisKgPerMWhInput)
	w(1, "output", "")
	w(2, "hydrogen_output_pct_total_output_mwh", c.EnergyTechnical.Output.HydrogenOutputPctTotalOutputMWh)
	w(2, "hydrogen_ch2_pct_total_output", c.EnergyTechnical.Output.HydrogenCH2PctTotalOutput)
	w(2, "hydrogen_for_district_heating_pct_points_of_heat_loss", c.EnergyTechnical.Output.HydrogenForDistrictHeatingPctPointsOfHeatLoss)
	w(2, "oxygen_output_pct_total_output_mwh", c.EnergyTechnical.Output.OxygenOutputPctTotalOutputMWh)
	w(2, "oxygen_recovered_for_district_heating_pct_points_of_heat_loss", c.EnergyTechnical.Output.OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss)
	w(2, "heat_output_pct_total_output_mwh", c.EnergyTechnical.Output.HeatOutputPctTotalOutputMWh)
	w(2, "hydrogen_yield_kg_per_mwh_input_e", c.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE)
	w(2, "oxygen_yield_kg_per_mwh_input_e", c.EnergyTechnical.Output.OxygenYieldKgPerMWhInputE)
	w(0, "financial", "")
	w(1, "specific_investment_eur_per_kw_total_input", c.Financial.SpecificInvestmentEURPerKWTotalInput)
	w(1, "specific_investment_eur_per_kg_per_hour_hydrogen_output", c.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput)
	w(1, "o_and_m_pct_of_specific_investment_per_year", c.Financial.OAndMPctOfSpecificInvestmentPerYear)
	w(0, "technology_specific", "")
	w(1, "current_density_a_per_cm2", c.TechnologySpecific.CurrentDensityAPerCm2)
	w(1, "footprint_m2_per_mw_input_e", c.TechnologySpecific.FootprintM2PerMWInputE)
	w(1, "degradation_rate_pct_per_annum", c.TechnologySpecific.DegradationRatePctPerAnnum)
	w(1, "frequency_of_stack_replacement_years", c.TechnologySpecific.FrequencyOfStackReplacementYears)

	return b.String()
}
