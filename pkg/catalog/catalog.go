// Package catalog holds the static parameter catalog for two 100 MW
// hydrogen-electrolysis plant configurations (AEC and PEM, ENS 2025 data).
// The catalog is read-only: the backing records are unexported and every
// accessor returns an independent copy, so callers can never alter what a
// later read observes. Values are passed through as sourced; percentages are
// not clamped and carry no unit conversion.
package catalog

// Names of the two catalog entries, in catalog order.
const (
	NameAEC100MW = "AEC 100 MW (ENS, 2025)"
	NamePEM100MW = "PEM 100 MW (ENS, 2025)"
)

// aec100MW is the alkaline electrolysis cell configuration.
var aec100MW = PlantConfiguration{
	Name: NameAEC100MW,
	EnergyTechnical: EnergyTechnicalData{
		TotalPlantSizeMWInputE:    100.0,
		PlannedOutageDaysPerAnnum: 20.0,
		TechnicalLifetimeYears:    20.0,
		Input: InputData{
			ElectricityPctTotalInputMWh:       100.0,
			HeatPctTotalInputMWh:              nil, // not measured for this configuration
			HeatLossPctTotalInputMWh:          0.0,
			WaterForElectrolysisKgPerMWhInput: 89.15,
		},
		Output: OutputData{
			HydrogenOutputPctTotalOutputMWh:                      58.7,
			HydrogenCH2PctTotalOutput:                            32.3,
			HydrogenForDistrictHeatingPctPointsOfHeatLoss:        26.4,
			OxygenOutputPctTotalOutputMWh:                        40.9,
			OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss: 0.0,
			HeatOutputPctTotalOutputMWh:                          0.4,
			HydrogenYieldKgPerMWhInputE:                          20.00,
			OxygenYieldKgPerMWhInputE:                            141.79,
		},
	},
	Financial: FinancialData{
		SpecificInvestmentEURPerKWTotalInput:            1161.3,
		SpecificInvestmentEURPerKgPerHourHydrogenOutput: 5585.15,
		OAndMPctOfSpecificInvestmentPerYear:             15.0,
	},
	TechnologySpecific: TechnologySpecificData{
		CurrentDensityAPerCm2:            0.5,
		FootprintM2PerMWInputE:           10000.0,
		DegradationRatePctPerAnnum:       0.125,
		FrequencyOfStackReplacementYears: 10.0,
	},
}

// pem100MW is the proton exchange membrane configuration.
var pem100MW = PlantConfiguration{
	Name: NamePEM100MW,
	EnergyTechnical: EnergyTechnicalData{
		TotalPlantSizeMWInputE:    100.0,
		PlannedOutageDaysPerAnnum: 20.0,
		TechnicalLifetimeYears:    20.0,
		Input: InputData{
			ElectricityPctTotalInputMWh:       100.0,
			HeatPctTotalInputMWh:              nil, // not measured for this configuration
			HeatLossPctTotalInputMWh:          0.0,
			WaterForElectrolysisKgPerMWhInput: 91.82,
		},
		Output: OutputData{
			HydrogenOutputPctTotalOutputMWh:                      73.3,
			HydrogenCH2PctTotalOutput:                            25.0,
			HydrogenForDistrictHeatingPctPointsOfHeatLoss:        30.0,
			OxygenOutputPctTotalOutputMWh:                        25.7,
			OxygenRecoveredForDistrictHeatingPctPointsOfHeatLoss: 0.0,
			HeatOutputPctTotalOutputMWh:                          1.0,
			HydrogenYieldKgPerMWhInputE:                          20.95,
			OxygenYieldKgPerMWhInputE:                            148.53,
		},
	},
	Financial: FinancialData{
		SpecificInvestmentEURPerKWTotalInput:            1368.2,
		SpecificInvestmentEURPerKgPerHourHydrogenOutput: 6876.8,
		OAndMPctOfSpecificInvestmentPerYear:             15.0,
	},
	TechnologySpecific: TechnologySpecificData{
		CurrentDensityAPerCm2:            2.0,
		FootprintM2PerMWInputE:           7000.0,
		DegradationRatePctPerAnnum:       0.125,
		FrequencyOfStackReplacementYears: 6.0,
	},
}

// Configurations returns the catalog as an ordered slice, AEC first and PEM
// second. Order is part of the contract: consumers may index positionally.
// Each call returns a deep copy, so mutating the result has no effect on
// later calls.
func Configurations() []PlantConfiguration {
	return []PlantConfiguration{clone(aec100MW), clone(pem100MW)}
}

// Get returns the configuration with the given name.
func Get(name string) (PlantConfiguration, bool) {
	for _, c := range Configurations() {
		if c.Name == name {
			return c, true
		}
	}
	return PlantConfiguration{}, false
}

// Names returns the entry names in catalog order.
func Names() []string {
	return []string{NameAEC100MW, NamePEM100MW}
}

// clone copies a record including the optional heat pointer, which is the
// only non-value field a shallow struct copy would share.
func clone(c PlantConfiguration) PlantConfiguration {
	if p := c.EnergyTechnical.Input.HeatPctTotalInputMWh; p != nil {
		v := *p
		c.EnergyTechnical.Input.HeatPctTotalInputMWh = &v
	}
	return c
}
