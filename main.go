package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/wildstyl3r/blowout/internal/config"
	"github.com/wildstyl3r/blowout/internal/constants"
	"github.com/wildstyl3r/blowout/internal/plasma"
	"github.com/wildstyl3r/blowout/internal/sheath"
	"github.com/wildstyl3r/blowout/internal/utils"
	"github.com/wildstyl3r/blowout/internal/wake"
)

func main() {
	var saveRadius = flag.Bool("rb", false, "save the bubble-radius profile")
	var saveEz = flag.Bool("ez", false, "save the on-axis Ez profile")
	var saveTrajectory = flag.Bool("traj", false, "save the sheath ODE trajectory")
	var configFileNamePointer = flag.String("input", "facet2", "scenario configuration in toml format")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")
	cfg, _ := config.LoadConfig(configFileName)

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath = cfg.OutputDir + "/"
	}

	lengthOut := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Length, Power: 1}}, cfg.OutputUnits, false)
	}
	lengthUnit := *utils.Intersect([]string{"um", "mm", "cm", "m"}, cfg.OutputUnits)

	for scenarioName, parameters := range cfg.Scenarios {
		fmt.Println("\n" + scenarioName)

		kPe, err := plasma.Wavenumber(parameters.PlasmaDensity)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		beamRms := parameters.BeamRmsLength
		if beamRms == 0 {
			beamRms = parameters.RmsLengthSkinDepths / kPe
		}
		beamPlasma := wake.BeamPlasma{
			PlasmaDensity: parameters.PlasmaDensity,
			BeamLength:    parameters.BeamLengthFactor * beamRms,
			BeamElectrons: parameters.BeamTotalCharge / constants.ElectronCharge,
		}

		rbMax, err := wake.MaxRadius(beamPlasma)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		radiusCheck, densityCheck, err := plasma.StrongBubbleChecks(
			beamPlasma.PlasmaDensity, rbMax, beamPlasma.BeamLength, beamPlasma.BeamElectrons)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		power, _ := wake.BeamPlasmaPower(beamPlasma.PlasmaDensity, rbMax)
		xiB, _ := wake.Halfwidth(rbMax)
		eDecel, _ := wake.DecelFieldAlongBeam(beamPlasma)

		fmt.Printf("rb_max: %g %s (rb_max*k_pe = %.3g, N/(n L^3) = %.3g)\n",
			lengthOut(rbMax), lengthUnit, radiusCheck, densityCheck)
		if radiusCheck < 1 {
			fmt.Println("warning: rb_max*k_pe < 1, outside the strong-bubble regime")
		}
		fmt.Printf("beam-to-plasma power: %.4g W\n", power)
		fmt.Printf("bubble halfwidth: %g %s\n", lengthOut(xiB), lengthUnit)
		fmt.Printf("decelerating field along beam: %.4g GV/m\n", eDecel*1.e-9)

		// numeric crosschecks on the analytic profile
		peakXi := utils.TernarySearchMax(func(xi float64) float64 {
			rb, _ := wake.LocalRadius(xi, rbMax)
			return rb
		}, 0., 2.*xiB, 1.e-12)
		fmt.Printf("radius profile peak at xi = %g %s\n", lengthOut(peakXi), lengthUnit)
		_, balanceXi := utils.BinarySearch(func(xi float64) bool {
			ez, err := wake.EzOnAxisNoBeam(beamPlasma.PlasmaDensity, mustLocalRadius(xi, rbMax), rbMax)
			return err == nil && math.Abs(ez) >= eDecel
		}, xiB, 2.*xiB*(1.-1.e-9), 1.e-12)
		fmt.Printf("|Ez| reaches the decelerating field at xi = %g %s\n", lengthOut(balanceXi), lengthUnit)

		// LBN radius and Ez profiles over the open bubble
		samples := parameters.ProfileSamples
		xiGrid := floats.Span(make([]float64, samples), 2.*xiB/float64(samples), 2.*xiB*(1.-1.e-9))
		radiusProfile := make([]float64, samples)
		ezProfile := make([]float64, samples)
		for i, xi := range xiGrid {
			radiusProfile[i] = mustLocalRadius(xi, rbMax)
			ez, err := wake.EzOnAxisNoBeam(beamPlasma.PlasmaDensity, radiusProfile[i], rbMax)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			// the relation fixes |Ez|; the wall grows ahead of the midpoint
			// (decelerating) and contracts behind it (accelerating)
			if xi < xiB {
				ezProfile[i] = -math.Abs(ez)
			} else {
				ezProfile[i] = math.Abs(ez)
			}
		}
		back := samples / 2
		fmt.Printf("mean accelerating field over the back half: %.4g GV/m\n",
			integrate.Trapezoidal(xiGrid[back:], ezProfile[back:])/(xiGrid[samples-1]-xiGrid[back])*1.e-9)

		// sheath ODE trajectory, in plasma units
		integrator, err := sheath.NewIntegrator(sheath.Parameters{
			Delta:          parameters.SheathWidth,
			SigmaXi:        parameters.DriveRmsLength,
			DriveElectrons: parameters.DriveElectrons,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		xiSamples := floats.Span(make([]float64, parameters.XiSamples), parameters.XiMin, parameters.XiMax)
		trajectory, err := integrator.ComputeBubble(xiSamples, parameters.InitialRadius)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sheath integration failed: %v\n", err)
			continue
		}
		radii := trajectory.Radii()
		maxAt := utils.Argmax(radii)
		meanSlope, slopeVariance := utils.MeanAndVariance(trajectory.Slopes(), true)
		fmt.Printf("sheath wall: max radius %.6g k_pe^-1 at xi = %g, slope mean %.3g rms %.3g\n",
			radii[maxAt], xiSamples[maxAt], meanSlope, math.Sqrt(slopeVariance))

		if *saveRadius {
			rows := make(utils.CSV, samples)
			for i := range xiGrid {
				rows[i] = []string{
					strconv.FormatFloat(lengthOut(xiGrid[i]), 'f', 6, 64),
					strconv.FormatFloat(lengthOut(radiusProfile[i]), 'f', 6, 64),
				}
			}
			utils.WriteAsCSV(rows, parameters.MakeDir, outputPath, "bubble_radius", scenarioName,
				[]string{"xi (" + lengthUnit + ")", "rb (" + lengthUnit + ")"})
			fmt.Println("bubble-radius profile saved")
		}
		if *saveEz {
			rows := make(utils.CSV, samples)
			for i := range xiGrid {
				rows[i] = []string{
					strconv.FormatFloat(lengthOut(xiGrid[i]), 'f', 6, 64),
					strconv.FormatFloat(ezProfile[i]*1.e-9, 'f', 6, 64),
				}
			}
			utils.WriteAsCSV(rows, parameters.MakeDir, outputPath, "ez_on_axis", scenarioName,
				[]string{"xi (" + lengthUnit + ")", "Ez (GV/m)"})
			fmt.Println("Ez profile saved")
		}
		if *saveTrajectory {
			rows := make(utils.CSV, len(trajectory))
			for i, state := range trajectory {
				rows[i] = []string{
					strconv.Itoa(i),
					strconv.FormatFloat(xiSamples[i], 'f', 6, 64),
					strconv.FormatFloat(state.R, 'f', 6, 64),
					strconv.FormatFloat(state.U, 'f', 6, 64),
				}
			}
			utils.WriteAsCSV(rows, parameters.MakeDir, outputPath, "sheath_trajectory", scenarioName,
				[]string{"sample", "xi (k_pe^-1)", "r (k_pe^-1)", "dr/dxi"})
			fmt.Println("sheath trajectory saved")
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

// mustLocalRadius is for positions already validated to lie inside the bubble.
func mustLocalRadius(xi, rbMax float64) float64 {
	rb, err := wake.LocalRadius(xi, rbMax)
	if err != nil {
		panic(err)
	}
	return rb
}
