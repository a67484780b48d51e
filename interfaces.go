/*
 * interfaces.go, part of emc2lt.
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

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string to the "decoration" slice and returns it. An empty string just returns the current value.
	Critical() bool
}

// FileError is an Error associated to a given input or output file.
type FileError interface {
	Error
	FileName() string
}

// Styles are the LAMMPS style names for each kind of interaction. An empty
// string means "use the default".
type Styles struct {
	Pair     string
	Bond     string
	Angle    string
	Dihedral string
	Improper string
}
