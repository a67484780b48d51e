/*
 * define.go, part of emc2lt
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

package prm

import (
	"fmt"
	"strings"
)

// Used is the value a DEFINE entry for ANGLE, TORSION or IMPROP takes
// when the file actually uses that kind of term.
const Used = "WARN"

// Define contains the scalar settings of the DEFINE section of a prm file.
// Fields not present in the file are empty strings.
type Define struct {
	FFName   string
	FFType   string
	Version  string
	Created  [2]string //date and time
	Length   string
	Energy   string
	Density  string
	Mix      string
	NBonded  string
	Inner    string
	Cutoff   string
	Pair14   string
	Angle    string
	Torsion  string
	Improper string
}

// the keywords of the DEFINE section, in the order they are checked.
// Note that a line is matched by prefix, as EMC does.
var defineKeys = []string{"FFNAME", "FFTYPE", "VERSION", "CREATED", "LENGTH", "ENERGY",
	"DENSITY", "MIX", "NBONDED", "INNER", "CUTOFF", "PAIR14", "ANGLE", "TORSION", "IMPROP"}

// field returns the i-th whitespace-separated token of l, or ""
func field(l []string, i int) string {
	if len(l) > i {
		return l[i]
	}
	return ""
}

// readLine sets the field corresponding to the keyword the line starts with, if any.
// Only the second token is kept, except for CREATED, which keeps the second and third.
func (D *Define) readLine(line string) {
	l := strings.Fields(line)
	for _, k := range defineKeys {
		if !strings.HasPrefix(line, k) {
			continue
		}
		v := field(l, 1)
		switch k {
		case "FFNAME":
			D.FFName = v
		case "FFTYPE":
			D.FFType = v
		case "VERSION":
			D.Version = v
		case "CREATED":
			D.Created = [2]string{v, field(l, 2)}
		case "LENGTH":
			D.Length = v
		case "ENERGY":
			D.Energy = v
		case "DENSITY":
			D.Density = v
		case "MIX":
			D.Mix = v
		case "NBONDED":
			D.NBonded = v
		case "INNER":
			D.Inner = v
		case "CUTOFF":
			D.Cutoff = v
		case "PAIR14":
			D.Pair14 = v
		case "ANGLE":
			D.Angle = v
		case "TORSION":
			D.Torsion = v
		case "IMPROP":
			D.Improper = v
		}
	}
}

// Presence tells which kinds of bonded terms are used by at least one
// of a set of prm files. Bonds are always assumed to be present.
type Presence struct {
	Angle    bool
	Torsion  bool
	Improper bool
}

// Sections returns the Presence for the given files. A kind of
// term is present if any file marks it as Used in its DEFINE section.
func Sections(files []*File) Presence {
	var p Presence
	for _, f := range files {
		d := f.Define
		p.Angle = p.Angle || d.Angle == Used
		p.Torsion = p.Torsion || d.Torsion == Used
		p.Improper = p.Improper || d.Improper == Used
	}
	return p
}

// Consistent checks that all the files describe the same force field, with the
// same units, cutoffs and 1-4 treatment. It returns an error describing
// the first mismatch found, or nil if there is none. The check is pairwise, so
// the error names the two files involved.
func Consistent(files []*File) error {
	if len(files) == 0 {
		return &Error{NoFiles, "", []string{"Consistent"}, true}
	}
	checks := []struct {
		msg string
		get func(*Define) string
	}{
		{FFMismatch, func(d *Define) string { return d.FFName }},
		{UnitsMismatch, func(d *Define) string { return d.Length }},
		{UnitsMismatch, func(d *Define) string { return d.Energy }},
		{UnitsMismatch, func(d *Define) string { return d.Density }},
		{InnerMismatch, func(d *Define) string { return d.Inner }},
		{CutoffMismatch, func(d *Define) string { return d.Cutoff }},
		{Pair14Mismatch, func(d *Define) string { return d.Pair14 }},
	}
	for i, fi := range files {
		for _, fj := range files[i+1:] {
			for _, c := range checks {
				a, b := c.get(fi.Define), c.get(fj.Define)
				if a != b {
					msg := fmt.Sprintf("%s: %q in %s, %q in %s", c.msg, a, fi.Name, b, fj.Name)
					return &Error{msg, fj.Name, []string{"Consistent"}, true}
				}
			}
		}
	}
	return nil
}
