/*
 * equivalence.go, part of emc2lt.
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
)

// Status of an equivalence record
type Status int

const (
	StatusValid Status = iota
	StatusDuplicate
	StatusInvalidFormat
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusDuplicate:
		return "duplicate"
	}
	return "invalid_format"
}

// Equivalence is one record of the EQUIVALENCE section. It tells, for an atom type,
// which type to use for nonbonded parameters, and which category the type belongs to
// for bond, angle, dihedral and improper terms.
type Equivalence struct {
	Type     string
	Nonbond  string
	Bond     string
	Angle    string
	Dihedral string
	Improper string
	Status   Status
	Record   []string //the record as read
}

// Specialized is the name of the type with its four categories attached.
// Bonded terms are matched against these names. Invalid records have no
// specialized name.
func (E *Equivalence) Specialized() string {
	if E.Status != StatusValid {
		return ""
	}
	return SpecializedName(E.Type, E.Bond, E.Angle, E.Dihedral, E.Improper)
}

// SpecializedName builds the specialized name for a type and its
// bond, angle, dihedral and improper categories.
func SpecializedName(typ, bond, angle, dihedral, improper string) string {
	return sf("%s_b%s_a%s_d%s_i%s", typ, bond, angle, dihedral, improper)
}

// Equivalences is the equivalence table, with duplicated and ill-formatted records
// marked as such. The table is not modified after construction.
type Equivalences struct {
	all   []*Equivalence
	valid map[string]*Equivalence
	seen  map[string]bool //types with at least one record, valid or not.
}

// NewEquivalences builds the table from the EQUIVALENCE records of all the input files,
// in order. When a type has several records, the first one is kept and the rest are
// marked as duplicates. Records with fewer than 6 fields are marked as ill-formatted.
// Both situations are warned about, but are not errors.
func NewEquivalences(rows [][]string, log *zap.SugaredLogger) *Equivalences {
	log = logOrNop(log)
	E := &Equivalences{
		all:   make([]*Equivalence, 0, len(rows)),
		valid: make(map[string]*Equivalence, len(rows)),
		seen:  make(map[string]bool, len(rows)),
	}
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		eq := &Equivalence{Type: r[0], Record: r}
		switch {
		case E.seen[eq.Type]:
			eq.Status = StatusDuplicate
			log.Warnw("Duplicate equivalence, skipping record", "type", eq.Type, "record", row(r))
		case len(r) < 6:
			eq.Status = StatusInvalidFormat
			log.Warnw("Incorrect equivalence formatting, skipping type. Topology may not be complete", "type", eq.Type, "record", row(r))
		default:
			eq.Nonbond, eq.Bond, eq.Angle, eq.Dihedral, eq.Improper = r[1], r[2], r[3], r[4], r[5]
			E.valid[eq.Type] = eq
		}
		E.seen[eq.Type] = true
		E.all = append(E.all, eq)
	}
	return E
}

// All returns every record, including invalid ones, in input order.
func (E *Equivalences) All() []*Equivalence {
	return E.all
}

// Valid returns the valid records in input order.
func (E *Equivalences) Valid() []*Equivalence {
	ret := make([]*Equivalence, 0, len(E.valid))
	for _, v := range E.all {
		if v.Status == StatusValid {
			ret = append(ret, v)
		}
	}
	return ret
}

// Lookup returns the valid equivalence for typ, if there is one.
func (E *Equivalences) Lookup(typ string) (*Equivalence, bool) {
	eq, ok := E.valid[typ]
	return eq, ok
}

// Has returns true if typ has at least one equivalence record, valid or not.
func (E *Equivalences) Has(typ string) bool {
	return E.seen[typ]
}

// Mass is one record of the MASS section.
type Mass struct {
	Type   string
	Mass   float64
	Record []string
}

// Masses is the mass table. Each type appears once, in order of first appearance.
type Masses struct {
	all    []*Mass
	byType map[string]*Mass
}

// NewMasses builds the mass table from the MASS records of all the input files. A type
// appearing more than once with different masses is an error.
func NewMasses(rows [][]string) (*Masses, error) {
	M := &Masses{all: make([]*Mass, 0, len(rows)), byType: make(map[string]*Mass, len(rows))}
	for _, r := range rows {
		if len(r) < 2 {
			return nil, newCError(MalformedRow, "NewMasses", row(r))
		}
		m, err := parsefloats(r[1])
		if err != nil {
			return nil, newCError(MalformedRow, "NewMasses", row(r), err.Error())
		}
		if prev, ok := M.byType[r[0]]; ok {
			if !sameParam(prev.Mass, m[0]) {
				return nil, newCError(MassConflict, "NewMasses", row(prev.Record), row(r))
			}
			continue
		}
		ms := &Mass{Type: r[0], Mass: m[0], Record: r}
		M.byType[ms.Type] = ms
		M.all = append(M.all, ms)
	}
	return M, nil
}

// All returns the masses in order of first appearance.
func (M *Masses) All() []*Mass {
	return M.all
}

// Lookup returns the mass record for typ, if any.
func (M *Masses) Lookup(typ string) (*Mass, bool) {
	m, ok := M.byType[typ]
	return m, ok
}

// CrossCheck verifies that the masses and equivalences describe the same set of types:
// every valid equivalence needs a mass, and every mass needs at least one
// equivalence record. Masses whose equivalence records are all invalid are allowed,
// but won't be written.
func CrossCheck(M *Masses, E *Equivalences) error {
	for _, eq := range E.Valid() {
		if _, ok := M.Lookup(eq.Type); !ok {
			return newCError(EquivNoMass, "CrossCheck", row(eq.Record))
		}
	}
	for _, m := range M.All() {
		if !E.Has(m.Type) {
			return newCError(MassNoEquiv, "CrossCheck", row(m.Record))
		}
	}
	return nil
}
