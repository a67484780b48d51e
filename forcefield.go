/*
 * forcefield.go, part of emc2lt.
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

// DefaultBondedStyle is used for bonded terms with no style given.
const DefaultBondedStyle = "harmonic"

// Options for the conversion
type Options struct {
	Styles      Styles
	ManualUnits bool
	//Factors to use with manual units. Ignored if ManualUnits is false.
	//If nil, manual units means no conversion at all.
	Settings *Settings
}

// ForceField is a set of prm files merged, checked, and with everything
// resolved to be written as a moltemplate file. It is not modified after New returns.
type ForceField struct {
	Define       *prm.Define //from the first file
	Files        []string
	Present      prm.Presence
	Styles       Styles //with defaults filled in
	Factors      Factors
	Masses       *Masses
	Equivalences *Equivalences
	Pairs        *Pairs //including synthesized pairs
	PairCoeffs   []PairCoeff
	Bonds        []*Term
	Angles       []*Term
	Torsions     []*Term
	Impropers    []*Term
}

// gather concatenates the rows of a section over all files.
func gather(files []*prm.File, section string) [][]string {
	var ret [][]string
	for _, f := range files {
		ret = append(ret, f.Rows(section)...)
	}
	return ret
}

// defaultStyles fills in the missing styles, with a warning for each.
// Styles of kinds not present in the force field are left alone.
func defaultStyles(s Styles, p prm.Presence, log *zap.SugaredLogger) Styles {
	def := func(st *string, kind, value string, present bool) {
		if *st != "" || !present {
			return
		}
		log.Warnf("no %s potential provided, assuming %s", kind, value)
		*st = value
	}
	def(&s.Pair, "non-bonded", DefaultPairStyle, true)
	def(&s.Bond, "bond", DefaultBondedStyle, true)
	def(&s.Angle, "angle", DefaultBondedStyle, p.Angle)
	def(&s.Dihedral, "dihedral/torsion", DefaultBondedStyle, p.Torsion)
	def(&s.Improper, "improper", DefaultBondedStyle, p.Improper)
	return s
}

// New merges the given prm files into a force field ready to be written.
// Any inconsistency found is returned as an error; problems that allow the conversion to
// go on are logged as warnings to log, which can be nil.
func New(files []*prm.File, opt Options, log *zap.SugaredLogger) (*ForceField, error) {
	log = logOrNop(log)
	if err := prm.Consistent(files); err != nil {
		return nil, errDecorate(err, "New")
	}
	F := &ForceField{Define: files[0].Define, Present: prm.Sections(files)}
	for _, f := range files {
		F.Files = append(F.Files, f.Name)
	}
	units := ResolveUnits(F.Define, opt.ManualUnits, log)

	var err error
	if F.Masses, err = NewMasses(gather(files, prm.MassSection)); err != nil {
		return nil, errDecorate(err, "New")
	}
	pairs, err := NewPairs(gather(files, prm.NonbondSection))
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	F.Equivalences = NewEquivalences(gather(files, prm.EquivalenceSection), log)

	F.Styles = defaultStyles(opt.Styles, F.Present, log)
	if F.Factors, err = ResolveFactors(units, F.Styles, F.Present, opt.ManualUnits); err != nil {
		return nil, errDecorate(err, "New")
	}
	if opt.ManualUnits {
		F.Factors = opt.Settings.Apply(F.Factors)
	}
	if err = CrossCheck(F.Masses, F.Equivalences); err != nil {
		return nil, errDecorate(err, "New")
	}
	F.Pairs = pairs.Synthesize(F.Equivalences)
	if F.PairCoeffs, err = F.Pairs.Resolve(F.Equivalences, F.Factors, F.Styles.Pair); err != nil {
		return nil, errDecorate(err, "New")
	}

	if F.Bonds, err = ParseBonds(gather(files, prm.BondSection)); err != nil {
		return nil, errDecorate(err, "New")
	}
	if F.Present.Angle {
		if F.Angles, err = ParseAngles(gather(files, prm.AngleSection)); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	if F.Present.Torsion {
		log.Warn("Dihedral/torsion conversion is not fully implemented, check the dihedral_coeff lines")
		if F.Torsions, err = ParseTorsions(gather(files, prm.TorsionSection)); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	if F.Present.Improper {
		log.Warn("Improper conversion is not fully implemented, check the improper_coeff lines")
		if F.Impropers, err = ParseImpropers(gather(files, prm.ImproperSection)); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	return F, nil
}
