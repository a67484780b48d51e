/*
 * nonbond.go, part of emc2lt.
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
	"gonum.org/v1/gonum/floats"
)

// DefaultPairStyle is used when no pair style is given.
const DefaultPairStyle = "lj/cut/coul/long"

// Pair is one record of the NONBOND section, or one built from
// the equivalences.
type Pair struct {
	A, B        string
	Sigma       float64
	Epsilon     float64
	Extra       []string //fields after epsilon, used by some styles.
	Synthesized bool
}

// String returns the pair in prm format.
func (P *Pair) String() string {
	s := sf("%s %s %g %g", P.A, P.B, P.Sigma, P.Epsilon)
	for _, v := range P.Extra {
		s += " " + v
	}
	return s
}

// pairs are symmetric, so the key has the two names sorted.
type pairKey [2]string

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Pairs is the nonbonded table. Each pair of types appears once.
type Pairs struct {
	all   []*Pair
	index map[pairKey]*Pair
}

// NewPairs builds the table from the NONBOND records of all input files. Repeated
// records are dropped, but a pair appearing twice with different sigma or epsilon is an error.
// A-B and B-A are the same pair.
func NewPairs(rows [][]string) (*Pairs, error) {
	P := &Pairs{all: make([]*Pair, 0, len(rows)), index: make(map[pairKey]*Pair, len(rows))}
	for _, r := range rows {
		if len(r) < 4 {
			return nil, newCError(MalformedRow, "NewPairs", row(r))
		}
		c, err := parsefloats(r[2], r[3])
		if err != nil {
			return nil, newCError(MalformedRow, "NewPairs", row(r), err.Error())
		}
		p := &Pair{A: r[0], B: r[1], Sigma: c[0], Epsilon: c[1], Extra: r[4:]}
		if prev, ok := P.index[keyOf(p.A, p.B)]; ok {
			if !floats.EqualApprox([]float64{prev.Sigma, prev.Epsilon}, c, paramTol) {
				return nil, newCError(PairConflict, "NewPairs", prev.String(), p.String())
			}
			continue
		}
		P.add(p)
	}
	return P, nil
}

// add appends p unless its pair is already present. Returns whether p was added.
func (P *Pairs) add(p *Pair) bool {
	k := keyOf(p.A, p.B)
	if _, ok := P.index[k]; ok {
		return false
	}
	P.index[k] = p
	P.all = append(P.all, p)
	return true
}

// All returns the pairs, in input order, followed by the synthesized ones.
func (P *Pairs) All() []*Pair {
	return P.all
}

// Lookup returns the pair for the given types, in any order.
func (P *Pairs) Lookup(a, b string) (*Pair, bool) {
	p, ok := P.index[keyOf(a, b)]
	return p, ok
}

func (P *Pairs) clone() *Pairs {
	ret := &Pairs{all: make([]*Pair, len(P.all)), index: make(map[pairKey]*Pair, len(P.index))}
	copy(ret.all, P.all)
	for k, v := range P.index {
		ret.index[k] = v
	}
	return ret
}

// Synthesize returns a new table with the pairs in the receiver plus those implied by
// the equivalences: if type T takes its nonbonded parameters from type L, every pair
// L-X gives a pair T-X with the same parameters. The first pair listing L as its first
// type also gives a T-T pair, which takes the L-L parameters when available, and
// otherwise those of that pair.
// Pairs already in the table are never replaced. The receiver is not modified.
func (P *Pairs) Synthesize(E *Equivalences) *Pairs {
	ret := P.clone()
	for _, eq := range E.Valid() {
		T, L := eq.Type, eq.Nonbond
		if T == L {
			continue
		}
		//only pairs present before this equivalence are considered.
		current := ret.all
		self, hasSelf := ret.Lookup(L, L)
		first := true
		for _, p := range current {
			var other string
			switch L {
			case p.A:
				other = p.B
			case p.B:
				other = p.A
			default:
				continue
			}
			if other != L {
				ret.add(derived(T, other, p))
			}
			//only a pair listing L first gives the T-T pair.
			if first && p.A == L {
				first = false
				if !hasSelf {
					self = p
				}
				ret.add(derived(T, T, self))
			}
			if other == L {
				ret.add(derived(T, L, p))
			}
		}
	}
	return ret
}

func derived(a, b string, from *Pair) *Pair {
	return &Pair{A: a, B: b, Sigma: from.Sigma, Epsilon: from.Epsilon, Extra: from.Extra, Synthesized: true}
}

// PairCoeff is a nonbonded pair ready to be written, with the specialized
// names of both types, the style and the parameters in LAMMPS units.
type PairCoeff struct {
	Atom1   string
	Atom2   string
	Style   string
	Epsilon float64
	Sigma   float64
	Pair    *Pair
}

// sdkStyle returns true for the pair styles that take a different LJ
// exponent pair for each pair of types.
func sdkStyle(style string) bool {
	return style == "lj/sdk" || style == "lj/sdk/coul/long"
}

// Resolve maps every pair to the specialized names of its types and converts its
// parameters with the given factors. style is the pair style; for the lj/sdk styles,
// each pair gets its own "ljX_Y" style from the 2 fields after epsilon.
// A type without a valid equivalence is an error.
func (P *Pairs) Resolve(E *Equivalences, f Factors, style string) ([]PairCoeff, error) {
	ret := make([]PairCoeff, 0, len(P.all))
	for _, p := range P.all {
		a, oka := E.Lookup(p.A)
		b, okb := E.Lookup(p.B)
		if !oka || !okb {
			return nil, newCError(PairNoEquiv, "Resolve", p.String())
		}
		st := style
		if sdkStyle(style) {
			if len(p.Extra) < 2 {
				return nil, newCError(MissingSDKFields, "Resolve", p.String())
			}
			st = sf("lj%s_%s", p.Extra[0], p.Extra[1])
		}
		ret = append(ret, PairCoeff{
			Atom1:   a.Specialized(),
			Atom2:   b.Specialized(),
			Style:   st,
			Epsilon: p.Epsilon * f.Energy,
			Sigma:   p.Sigma * f.Length,
			Pair:    p,
		})
	}
	return ret, nil
}
