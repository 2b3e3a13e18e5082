package catalog

import (
	"strings"
	"testing"
)

func TestCatalogOrderAndLength(t *testing.T) {
	configs := Configurations()

	if len(configs) != 2 {
		t.Fatalf("Expected exactly 2 configurations, got %d", len(configs))
	}

	if configs[0].Name != NameAEC100MW {
		t.Errorf("Expected AEC first, got '%s'", configs[0].Name)
	}

	if configs[1].Name != NamePEM100MW {
		t.Errorf("Expected PEM second, got '%s'", configs[1].Name)
	}
}

func TestAECValues(t *testing.T) {
	aec := Configurations()[0]

	if aec.Name != "AEC 100 MW (ENS, 2025)" {
		t.Errorf("Unexpected AEC name: %s", aec.Name)
	}

	if aec.EnergyTechnical.TotalPlantSizeMWInputE != 100.0 {
		t.Errorf("Expected plant size 100.0, got %f", aec.EnergyTechnical.TotalPlantSizeMWInputE)
	}

	if aec.EnergyTechnical.Input.HeatPctTotalInputMWh != nil {
		t.Errorf("Expected absent heat input pct, got %v", *aec.EnergyTechnical.Input.HeatPctTotalInputMWh)
	}

	if aec.EnergyTechnical.Input.WaterForElectrolysisKgPerMWhInput != 89.15 {
		t.Errorf("Expected water consumption 89.15, got %f", aec.EnergyTechnical.Input.WaterForElectrolysisKgPerMWhInput)
	}

	if aec.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE != 20.00 {
		t.Errorf("Expected hydrogen yield 20.00, got %f", aec.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE)
	}

	if aec.EnergyTechnical.Output.OxygenYieldKgPerMWhInputE != 141.79 {
		t.Errorf("Expected oxygen yield 141.79, got %f", aec.EnergyTechnical.Output.OxygenYieldKgPerMWhInputE)
	}

	if aec.Financial.SpecificInvestmentEURPerKWTotalInput != 1161.3 {
		t.Errorf("Expected specific investment 1161.3, got %f", aec.Financial.SpecificInvestmentEURPerKWTotalInput)
	}

	if aec.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput != 5585.15 {
		t.Errorf("Expected specific investment 5585.15, got %f", aec.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput)
	}

	if aec.TechnologySpecific.CurrentDensityAPerCm2 != 0.5 {
		t.Errorf("Expected current density 0.5, got %f", aec.TechnologySpecific.CurrentDensityAPerCm2)
	}

	if aec.TechnologySpecific.FrequencyOfStackReplacementYears != 10.0 {
		t.Errorf("Expected stack replacement every 10 years, got %f", aec.TechnologySpecific.FrequencyOfStackReplacementYears)
	}
}

func TestPEMValues(t *testing.T) {
	pem := Configurations()[1]

	if pem.Name != "PEM 100 MW (ENS, 2025)" {
		t.Errorf("Unexpected PEM name: %s", pem.Name)
	}

	if pem.EnergyTechnical.Input.HeatPctTotalInputMWh != nil {
		t.Errorf("Expected absent heat input pct, got %v", *pem.EnergyTechnical.Input.HeatPctTotalInputMWh)
	}

	if pem.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE != 20.95 {
		t.Errorf("Expected hydrogen yield 20.95, got %f", pem.EnergyTechnical.Output.HydrogenYieldKgPerMWhInputE)
	}

	if pem.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput != 6876.8 {
		t.Errorf("Expected specific investment 6876.8, got %f", pem.Financial.SpecificInvestmentEURPerKgPerHourHydrogenOutput)
	}

	if pem.TechnologySpecific.CurrentDensityAPerCm2 != 2.0 {
		t.Errorf("Expected current density 2.0, got %f", pem.TechnologySpecific.CurrentDensityAPerCm2)
	}

	if pem.TechnologySpecific.FrequencyOfStackReplacementYears != 6.0 {
		t.Errorf("Expected stack replacement every 6 years, got %f", pem.TechnologySpecific.FrequencyOfStackReplacementYears)
	}
}

func TestConfigurationsReturnsCopies(t *testing.T) {
	first := Configurations()

	first[0].Name = "mutated"
	first[0].EnergyTechnical.TotalPlantSizeMWInputE = -1
	heat := 42.0
	first[0].EnergyTechnical.Input.HeatPctTotalInputMWh = &heat
	first[1].Financial.OAndMPctOfSpecificInvestmentPerYear = 0

	second := Configurations()

	if second[0].Name != NameAEC100MW {
		t.Errorf("Catalog name changed by caller mutation: %s", second[0].Name)
	}

	if second[0].EnergyTechnical.TotalPlantSizeMWInputE != 100.0 {
		t.Errorf("Catalog plant size changed by caller mutation: %f", second[0].EnergyTechnical.TotalPlantSizeMWInputE)
	}

	if second[0].EnergyTechnical.Input.HeatPctTotalInputMWh != nil {
		t.Errorf("Catalog heat pct changed by caller mutation: %v", *second[0].EnergyTechnical.Input.HeatPctTotalInputMWh)
	}

	if second[1].Financial.OAndMPctOfSpecificInvestmentPerYear != 15.0 {
		t.Errorf("Catalog O&M pct changed by caller mutation: %f", second[1].Financial.OAndMPctOfSpecificInvestmentPerYear)
	}
}

func TestGet(t *testing.T) {
	c, ok := Get(NamePEM100MW)
	if !ok {
		t.Fatalf("Expected to find %s", NamePEM100MW)
	}
	if c.TechnologySpecific.FootprintM2PerMWInputE != 7000.0 {
		t.Errorf("Expected footprint 7000, got %f", c.TechnologySpecific.FootprintM2PerMWInputE)
	}

	if _, ok := Get("SOEC 2030"); ok {
		t.Error("Expected lookup of unknown configuration to fail")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != NameAEC100MW || names[1] != NamePEM100MW {
		t.Errorf("Unexpected names: %v", names)
	}
}

func TestStringRendersAbsentHeatPct(t *testing.T) {
	s := Configurations()[0].String()

	if !strings.Contains(s, "name: AEC 100 MW (ENS, 2025)") {
		t.Error("Record form missing name line")
	}

	if !strings.Contains(s, "heat_pct_total_input_mwh: n/a") {
		t.Error("Record form must print the absent heat pct as n/a")
	}

	if !strings.Contains(s, "hydrogen_yield_kg_per_mwh_input_e: 20") {
		t.Error("Record form missing hydrogen yield line")
	}
}
