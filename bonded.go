package emc2lt

import (
	"strings"

	"go.uber.org/multierr"
)

// Term is a bonded term (bond, angle, torsion or improper) read from a prm file.
// Types are bonded categories from the equivalence table, not atom types.
// Params are the numeric parameters in prm units, in file order.
type Term struct {
	Types  []string
	Params []float64
	Style  string //only angles can carry their own style, empty otherwise.
}

// Name is the types joined by dashes, used both as the moltemplate
// name of the term and in the comments.
func (T *Term) Name() string {
	return strings.Join(T.Types, "-")
}

// parseTerms reads records with ntypes type names followed by at least nparams numbers.
// Additional fields are ignored, unless styled is true, in which case the first additional
// field is the style for that term. All ill-formatted records are reported together.
func parseTerms(rows [][]string, ntypes, nparams int, styled bool, caller string) ([]*Term, error) {
	var err error
	ret := make([]*Term, 0, len(rows))
	for _, r := range rows {
		if len(r) < ntypes+nparams {
			err = multierr.Append(err, newCError(MalformedRow, caller, row(r)))
			continue
		}
		p, perr := parsefloats(r[ntypes : ntypes+nparams]...)
		if perr != nil {
			err = multierr.Append(err, newCError(MalformedRow, caller, row(r), perr.Error()))
			continue
		}
		t := &Term{Types: r[:ntypes], Params: p}
		if styled && len(r) > ntypes+nparams {
			t.Style = r[ntypes+nparams]
		}
		ret = append(ret, t)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseBonds reads BOND records: 2 types, force constant, equilibrium distance.
func ParseBonds(rows [][]string) ([]*Term, error) {
	return parseTerms(rows, 2, 2, false, "ParseBonds")
}

// ParseAngles reads ANGLE records: 3 types, force constant, equilibrium
// angle and, optionally, a style for that angle.
func ParseAngles(rows [][]string) ([]*Term, error) {
	return parseTerms(rows, 3, 2, true, "ParseAngles")
}

// ParseTorsions reads TORSION records: 4 types and 3 parameters.
// Only the first 3 parameters are kept.
func ParseTorsions(rows [][]string) ([]*Term, error) {
	return parseTerms(rows, 4, 3, false, "ParseTorsions")
}

// ParseImpropers reads IMPROP records: 4 types, force constant and
// equilibrium angle.
func ParseImpropers(rows [][]string) ([]*Term, error) {
	return parseTerms(rows, 4, 2, false, "ParseImpropers")
}
