package config

import "github.com/wildstyl3r/blowout/internal/utils"

var unitToSI = map[string]float64{
	"m":     1,     // [m]
	"cm":    1e-2,  // [m]
	"mm":    1e-3,  // [m]
	"um":    1e-6,  // [m]
	"m^-3":  1,     // [m^-3]
	"cm^-3": 1e6,   // [m^-3]
	"C":     1,     // [C]
	"nC":    1e-9,  // [C]
	"pC":    1e-12, // [C]
}

type UnitClass int

const (
	Length UnitClass = iota
	Density
	Charge
)

var unitsInClass = map[UnitClass][]string{
	Length:  {"um", "mm", "cm", "m"},
	Density: {"cm^-3", "m^-3"},
	Charge:  {"pC", "nC", "C"},
}

var classesOfUnits = map[string]UnitClass{
	"m":     Length,
	"cm":    Length,
	"mm":    Length,
	"um":    Length,
	"m^-3":  Density,
	"cm^-3": Density,
	"C":     Charge,
	"nC":    Charge,
	"pC":    Charge,
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		if _, some := classes[classesOfUnits[unit]]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[classesOfUnits[unit]] = struct{}{}
		}
	}
	extended = units
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// SI converts v between declared units and SI: direct=true scales an input to
// SI, direct=false scales an SI value back for output.
func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		absPower := utils.IntAbs(uc.Power)
		if direct == (uc.Power > 0) {
			for range absPower {
				v *= unitToSI[*unit]
			}
		} else {
			for range absPower {
				v /= unitToSI[*unit]
			}
		}
	}
	return v
}
