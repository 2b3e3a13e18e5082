package catalog

// AsMaps converts the catalog into a slice of nested plain mappings, one per
// configuration in catalog order. Keys mirror the canonical snake_case field
// names; values are copied verbatim. The absent heat input percentage is an
// explicit nil value under its key, never omitted and never zero. Every call
// builds fresh maps, so the results share no storage.
func AsMaps() []map[string]any {
	configs := Configurations()
	maps := make([]map[string]any, 0, len(configs))
	for _, c := range configs {
		maps = append(maps, configMap(c))
	}
	return maps
}

func configMap(c PlantConfiguration) map[string]any {
	var heat any
	if p := c.EnergyTechnical.Input.HeatPctTotalInputMWh; p != nil {
		heat = *p
	}

	return map[string]any{
		"name": c.Name,
		"energy_technical": map[string]any{
			"total_plant_size_mw_input_e":   c.EnergyTechnical.TotalPlantSizeMWInputE,
			"planned_outage_days_per_annum": c.EnergyTechnical.PlannedOutageDaysPerAnnum,
			"technical_lifetime_years":      c.EnergyTechnical.TechnicalLifetimeYears,
			"input": map[string]any{
				"electricity_pct_total_input_mwh":         c.EnergyTechnical.Input.ElectricityPctTotalInputMWh,
				"heat_pct_total_input_mwh":                heat,
				"heat_loss_pct_total_input_mwh":           c.EnergyTechnical.Input.HeatLossPctTotalInputMWh,
				"water_for_electrolysis_kg_per_mwh_input": c.EnergyTechnical.Input.WaterForElectrolysisKgPerMWhInput,
			},
			"output": map[string]any{
				"hydrogen_output_pct_total_output_mwh":                          c.EnergyTechnical.Output.HydrogenOutputPctTotalOutputMWh,
				"hydrogen_ch2_pct_total_output":                                 c.EnergyTechnical.Output.HydrogenCH2PctTotalOutput,
				"hydrogen_for_district_heating_pct_points_of_heat_loss":         c.EnergyTechnical.Output.HydrogenForDistrictHeatingPctPointsOfHeatLoss,
				"oxygen_output_pct_total_output_mwh":                            c.EnergyTechnical.Output.OxygenOutputPctTotalOutputMWh,
				"oxygen_recovered_for_district_heating_pct_points_of_heat_loss": c.EnergyTechnical.Output.OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss,
				"heat_output_pct_total_output_mwh":                              c.EnergyTechnical.Output.HeatOutputPctTotalOutputMWh,
				"hydrogen_yield_kg_per_mwh_input_e":                             c.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE,
				"oxygen_yield_kg_per_mwh_input_e":                               c.EnergyTechnical.Output.OxygenYieldKgPerMWhInputE,
			},
		},
		"financial": map[string]any{
			"specific_investment_eur_per_kw_total_input":              c.Financial.SpecificInvestmentEURPerKWTotalInput,
			"specific_investment_eur_per_kg_per_hour_hydrogen_output": c.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput,
			"o_and_m_pct_of_specific_investment_per_year":             c.Financial.OAndMPctOfSpecificInvestmentPerYear,
		},
		"technology_specific": map[string]any{
			"current_density_a_per_cm2":            c.TechnologySpecific.CurrentDensityAPerCm2,
			"footprint_m2_per_mw_input_e":          c.TechnologySpecific.FootprintM2PerMWInputE,
			"degradation_rate_pct_per_annum":       c.TechnologySpecific.DegradationRatePctPerAnnum,
			"frequency_of_stack_replacement_years": c.TechnologySpecific.FrequencyOfStackReplacementYears,
		},
	}
}
