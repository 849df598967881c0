package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/BurntSushi/toml"
)

type Config struct {
	OutputDir string
	Scenarios map[string]ScenarioParameters

	InputUnits  []string
	OutputUnits []string
}

// ScenarioParameters describes one beam/plasma scenario. The LBN block is in
// laboratory units (converted to SI on load); the sheath block is in plasma
// units (skin depths and electron counts), matching the sheath closure's
// normalization.
type ScenarioParameters struct {
	PlasmaDensity       float64 // [cm^-3] ==> [m^-3]
	BeamTotalCharge     float64 // [nC] ==> [C]
	BeamRmsLength       float64 // [um] ==> [m]; derived from RmsLengthSkinDepths when absent
	RmsLengthSkinDepths float64
	BeamLengthFactor    float64 // total length = factor * rms length

	SheathWidth    float64 // [skin depths]
	DriveRmsLength float64 // [skin depths]
	DriveElectrons float64
	InitialRadius  float64 // [skin depths]
	XiMin          float64 // [skin depths]
	XiMax          float64 // [skin depths]
	XiSamples      int
	ProfileSamples int
	MakeDir        bool
}

var defaultValues = map[string]any{
	"PlasmaDensity":       4.e16, // [cm^-3]
	"BeamTotalCharge":     3.,    // [nC]
	"RmsLengthSkinDepths": 0.5,
	"BeamLengthFactor":    4.,
	"SheathWidth":         0.5,
	"DriveRmsLength":      1.,
	"DriveElectrons":      4.,
	"InitialRadius":       1.,
	"XiMin":               -2.,
	"XiMax":               2.,
	"XiSamples":           41,
	"ProfileSamples":      200,
	"MakeDir":             false,
}

var defaultUnits = []string{"um", "cm^-3", "nC"}

// laboratory-unit fields and their unit signature
var valueUnits = map[string][]UnitElement{
	"PlasmaDensity":   {{Class: Density, Power: 1}},
	"BeamTotalCharge": {{Class: Charge, Power: 1}},
	"BeamRmsLength":   {{Class: Length, Power: 1}},
}

func LoadConfig(configFileName string) (Config, toml.MetaData) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		fmt.Printf("found input unit conflict: %v\n", unitsConflict)
		os.Exit(0)
	}
	if len(config.OutputUnits) == 0 {
		config.OutputUnits = config.InputUnits
	}
	config.OutputUnits, unitsConflict = checkUnits(config.OutputUnits)
	if len(unitsConflict) > 0 {
		fmt.Printf("found output unit conflict: %v\n", unitsConflict)
		os.Exit(0)
	}

	if len(config.Scenarios) == 0 {
		fmt.Println("No scenarios provided")
		os.Exit(0)
	}

	for name, parameters := range config.Scenarios {
		applyDefaults(&parameters, name, &meta)
		for field, unitClasses := range valueUnits {
			v := reflect.ValueOf(&parameters).Elem().FieldByName(field)
			v.SetFloat(SI(v.Float(), unitClasses, config.InputUnits, true))
		}
		config.Scenarios[name] = parameters
	}

	return config, meta
}

func applyDefaults(parameters *ScenarioParameters, name string, meta *toml.MetaData) {
	v := reflect.ValueOf(parameters).Elem()
	for field, value := range defaultValues {
		if meta.IsDefined("Scenarios", name, field) {
			continue
		}
		switch typed := value.(type) {
		case float64:
			v.FieldByName(field).SetFloat(typed)
		case int:
			v.FieldByName(field).SetInt(int64(typed))
		case bool:
			v.FieldByName(field).SetBool(typed)
		}
	}
}
