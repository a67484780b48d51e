/*
 * conversion.go, part of emc2lt.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package emc2lt

import (
	"go.uber.org/zap"

	"github.com/rmera/emc2lt/prm"
)

//This provides the unit conversion factors to the LAMMPS "real" units.

// Target units, as EMC writes them.
const (
	Angstrom = "ANGSTROM"
	KcalMol  = "KCAL/MOL"
	GCC      = "G/CC"
)

// Conversions to angstrom
var lengthFactors = map[string]float64{
	"NANOMETER":  10.0,
	"MICROMETER": 10000.0,
	"METER":      10000000000.0,
}

// Conversions to kcal/mol
var energyFactors = map[string]float64{
	"KJ/MOL":  0.239006,
	"J/MOL":   0.000239006,
	"CAL/MOL": 0.001,
}

// Conversions to g/cm^3
var densityFactors = map[string]float64{
	"KG/M^3": 0.001,
}

// Units contains the factors that take lengths, energies and
// densities from the prm units to the LAMMPS real units.
type Units struct {
	Length  float64
	Energy  float64
	Density float64
}

// NoConversion are the factors for files that already use real units.
var NoConversion = Units{Length: 1, Energy: 1, Density: 1}

// unitFactor returns the factor for tag, given the target tag and the table of known
// factors. Unknown tags are warned about and get a factor of 1.
func unitFactor(quantity, tag, target string, table map[string]float64, log *zap.SugaredLogger) float64 {
	if tag == target {
		return 1.0
	}
	log.Warnf("%s units (%s) do not match LAMMPS real units, attempting conversion to %s", quantity, tag, target)
	f, ok := table[tag]
	if !ok {
		log.Warnw("units NOT converted, check the output by hand", "quantity", quantity, "units", tag)
		return 1.0
	}
	log.Infof("  %s -> %s (x%g)", tag, target, f)
	return f
}

// ResolveUnits returns the conversion factors for the units declared in d. If manual is
// true, no conversion is attempted and all factors are 1. The factors
// then need to be given by hand (see Settings).
// Unknown units are not an error, just a warning, as the user is always expected to double-check
// the conversion.
func ResolveUnits(d *prm.Define, manual bool, log *zap.SugaredLogger) Units {
	log = logOrNop(log)
	if manual {
		log.Warn("Manual units used, conversion factors must be set by hand")
		return NoConversion
	}
	log.Info("Attempting to auto-convert units. This should always be double-checked, especially for unique potential styles")
	return Units{
		Length:  unitFactor("length", d.Length, Angstrom, lengthFactors, log),
		Energy:  unitFactor("energy", d.Energy, KcalMol, energyFactors, log),
		Density: unitFactor("density", d.Density, GCC, densityFactors, log),
	}
}
