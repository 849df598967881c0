package constants

import "math"

const ElectronCharge = 1.602176634e-19                   // [C]
const ElectronMass float64 = 9.1093837015e-31            // [kg]
const FreeSpacePermittivityE0 float64 = 8.8541878128e-12 // [m^-3 kg^{-1} s^4 A^2]
const SpeedOfLight float64 = 2.99792458e8                // [m s^-1]

// The LBN wake relations are written in Gaussian units; each power of e in a
// field or power expression picks up one factor of 1/(4 pi e0) in SI.
var CoulombConstant = 1. / (4. * math.Pi * FreeSpacePermittivityE0) // [V m C^-1]
