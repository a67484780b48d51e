/*
 * doc.go, part of emc2lt.
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

/*
Package emc2lt converts EMC force-field parameter files (.prm) into
moltemplate force-field files (.lt) that LAMMPS simulations can be built from.

# Capabilities

  - Merges any number of prm files describing the same force field
    (checked: name, units, cutoffs and 1-4 treatment must agree).
  - Converts lengths, energies and densities to the LAMMPS "real" unit
    system (angstrom, kcal/mol, g/cm^3). Only a small table of units
    is recognized; anything else is left alone with a warning.
  - Expands the EMC equivalence table: each atom type gets a "specialized"
    name carrying its bond, angle, dihedral and improper categories, which
    moltemplate then uses to assign bonded terms by category.
  - Builds nonbonded pairs for types that borrow their nonbonded parameters
    from another type.
  - Writes masses, pair/bond/angle/dihedral/improper coefficients, the
    by-type rules and a generic "In Init" section (see package lt).

Only the harmonic bonded forms (plus cosine/squared and sdk angles) get
their units converted automatically. Anything else requires manual units,
with the factors given in a YAML file (see LoadSettings).

The reading of prm files is done by package prm. The conversion
pipeline lives in this package (see New), and the writing in package lt.
*/
package emc2lt
