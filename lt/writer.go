package lt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rmera/emc2lt"
)

// Tool and Version identify the converter in the output header.
const (
	Tool    = "EMC 2 LT"
	Version = "0.3.0"
)

// Extension of moltemplate files
const Extension = ".lt"

// Header is the provenance information written at the top of the file.
type Header struct {
	Date       time.Time
	Invocation []string //the command line used, if any.
}

// Error is the error returned when writing fails.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err *Error) Error() string {
	if err.filename == "" {
		return "lt error: " + err.message
	}
	return fmt.Sprintf("lt file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err *Error) FileName() string { return err.filename }

func (err *Error) Critical() bool { return true }

// FileName returns the name of the output file: name with the .lt extension,
// or, if name is empty, the force field name with the extension.
func FileName(name, ffname string) string {
	if name == "" {
		name = ffname
	}
	return name + Extension
}

func qerr(err error) {
	if err != nil {
		panic(err.Error())
	}
}

// writer writes the lines of the file. All methods panic on error,
// which Write recovers.
type writer struct {
	w   io.StringWriter
	ff  *emc2lt.ForceField
	log *zap.SugaredLogger
}

func (W *writer) printf(format string, a ...any) {
	_, err := W.w.WriteString(fmt.Sprintf(format, a...))
	qerr(err)
}

// Write renders F in moltemplate format to w. The whole file is built in memory
// before anything is written to w. log can be nil.
func Write(w io.Writer, F *emc2lt.ForceField, h Header, log *zap.SugaredLogger) (err error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	defer func() {
		if r := recover(); r != nil {
			err = &Error{fmt.Sprintf("%s", r), "", []string{"Write"}}
		}
	}()
	buf := new(bytes.Buffer)
	W := &writer{w: buf, ff: F, log: log}
	name := F.Define.FFName
	W.header(h)
	W.printf("%s {\n", name)
	W.masses()
	W.equivalences()
	W.nonbonded()
	W.bonds()
	if F.Present.Angle {
		W.angles()
	}
	if F.Present.Torsion {
		W.dihedrals()
	}
	if F.Present.Improper {
		W.impropers()
	}
	log.Warn("Attempting to write generic \"In Init\" section, further modification is extremely likely")
	W.init()
	W.printf("} # %s\n", name)
	log.Warn("The EQUIVALENCE sections of the prm files may have been converted incorrectly, check the \"replace{}\" statements for validity")
	_, err = buf.WriteTo(w)
	return err
}

// WriteFile writes F to the file fname. If anything fails, the file is not created.
func WriteFile(fname string, F *emc2lt.ForceField, h Header, log *zap.SugaredLogger) error {
	buf := new(bytes.Buffer)
	if err := Write(buf, F, h, log); err != nil {
		if e, ok := err.(*Error); ok {
			e.filename = fname
			return e
		}
		return err
	}
	if err := os.WriteFile(fname, buf.Bytes(), 0644); err != nil {
		return &Error{err.Error(), fname, []string{"WriteFile"}}
	}
	return nil
}

func (W *writer) header(h Header) {
	d := W.ff.Define
	W.printf("# Autogenerated by %s tool v%s on %s\n", Tool, Version, h.Date.Format(time.DateOnly))
	W.printf("#\n# %s\n", strings.Join(h.Invocation, " "))
	W.printf("#\n")
	W.printf("# Adapted from EMC by Pieter J. in 't Veld\n")
	W.printf("# Originally written as, FFNAME:%s STYLE:%s VERSION:%s on %s %s\n", d.FFName, d.FFType, d.Version, d.Created[0], d.Created[1])
	W.printf("\n")
}

func (W *writer) masses() {
	W.printf("  write_once(\"Data Masses\") {\n")
	for _, m := range W.ff.Masses.All() {
		if _, ok := W.ff.Equivalences.Lookup(m.Type); !ok {
			W.log.Warnw("Type has no valid equivalence, mass not written", "type", m.Type)
			continue
		}
		W.printf("    @atom:%s %f # %s\n", m.Type, m.Mass, m.Type)
	}
	W.printf("  } # end of atom masses\n\n")
}

func (W *writer) equivalences() {
	W.printf("  # ----- EQUIVALENCE CATEGORIES for bonded interaction lookup -----\n")
	for _, eq := range W.ff.Equivalences.Valid() {
		W.printf("  replace{ @atom:%s @atom:%s}\n", eq.Type, eq.Specialized())
	}
	W.printf("  # END EQUIVALENCE\n\n")
}

// Note that epsilon goes first, even though prm files have sigma first.
func (W *writer) nonbonded() {
	W.printf("  write_once(\"In Settings\") {\n")
	W.printf("    # ----- Non-Bonded interactions -----\n")
	for _, p := range W.ff.PairCoeffs {
		W.printf("    pair_coeff @atom:%s @atom:%s %s %f %f # %s-%s\n", p.Atom1, p.Atom2, p.Style, p.Epsilon, p.Sigma, p.Pair.A, p.Pair.B)
	}
	W.printf("  } # end of nonbonded parameters\n\n")
}

// byType returns the by-type rule for a term. pattern has one %s for the category.
func byType(t *emc2lt.Term, pattern string) string {
	ats := make([]string, 0, len(t.Types))
	for _, v := range t.Types {
		ats = append(ats, "@atom:"+fmt.Sprintf(pattern, v))
	}
	return strings.Join(ats, " ")
}

func (W *writer) bonds() {
	F := W.ff
	W.printf("  write_once(\"In Settings\") {\n")
	W.printf("    # ----- Bonds -----\n")
	for _, b := range F.Bonds {
		W.printf("    bond_coeff @bond:%s %s %f %f # %s\n", b.Name(), F.Styles.Bond, b.Params[0]*F.Factors.Bond, b.Params[1]*F.Factors.Length, b.Name())
	}
	W.printf("  }\n\n")
	W.printf("  write_once(\"Data Bonds By Type\") {\n")
	for _, b := range F.Bonds {
		W.printf("    @bond:%s %s\n", b.Name(), byType(b, "*_b%s_a*_d*_i*"))
	}
	W.printf("  } # end of bonds\n\n")
}

func (W *writer) angles() {
	F := W.ff
	W.printf("  write_once(\"In Settings\") {\n")
	W.printf("    # ----- Angles -----\n")
	for _, a := range F.Angles {
		style := F.Styles.Angle
		if a.Style != "" {
			style = a.Style
		}
		W.printf("    angle_coeff @angle:%s %s %f %f # %s\n", a.Name(), style, a.Params[0]*F.Factors.Angle, a.Params[1], a.Name())
	}
	W.printf("  }\n\n")
	W.printf("  write_once(\"Data Angles By Type\") {\n")
	for _, a := range F.Angles {
		W.printf("    @angle:%s %s\n", a.Name(), byType(a, "*_b*_a%s_d*_i*"))
	}
	W.printf("  } # end of angles\n\n")
}

func (W *writer) dihedrals() {
	F := W.ff
	W.printf("  write_once(\"In Settings\") {\n")
	W.printf("    # ----- Dihedrals -----\n")
	W.printf("    # Warning: dihedral conversion is incomplete, check these parameters\n")
	for _, d := range F.Torsions {
		W.printf("    dihedral_coeff @dihedral:%s %s %f %f %f # %s\n", d.Name(), F.Styles.Dihedral, d.Params[0]*F.Factors.Dihedral, d.Params[1], d.Params[2], d.Name())
	}
	W.printf("  }\n\n")
	W.printf("  write_once(\"Data Dihedrals By Type\") {\n")
	for _, d := range F.Torsions {
		W.printf("    @dihedral:%s %s\n", d.Name(), byType(d, "*_b*_a*_d%s_i*"))
	}
	W.printf("  } # end of dihedrals\n\n")
}

func (W *writer) impropers() {
	F := W.ff
	W.printf("  write_once(\"In Settings\") {\n")
	W.printf("    # ----- Impropers -----\n")
	W.printf("    # Warning: improper conversion is incomplete, check the improper convention\n")
	for _, i := range F.Impropers {
		W.printf("    improper_coeff @improper:%s %s %f %f # %s\n", i.Name(), F.Styles.Improper, i.Params[0], i.Params[1], i.Name())
	}
	W.printf("  }\n\n")
	W.printf("  write_once(\"Data Impropers By Type\") {\n")
	for _, i := range F.Impropers {
		W.printf("    @improper:%s %s\n", i.Name(), byType(i, "*_b*_a*_d*_i%s"))
	}
	W.printf("  } # end of impropers\n\n")
}

// Writes generic LAMMPS settings. Force fields will likely need more.
func (W *writer) init() {
	F := W.ff
	inner, err := strconv.ParseFloat(F.Define.Inner, 64)
	if err != nil {
		panic(fmt.Sprintf("Can't read inner cutoff %q: %s", F.Define.Inner, err))
	}
	cutoff, err := strconv.ParseFloat(F.Define.Cutoff, 64)
	if err != nil {
		panic(fmt.Sprintf("Can't read cutoff %q: %s", F.Define.Cutoff, err))
	}
	W.printf("  write_once(\"In Init\") {\n")
	W.printf("    # Warning: This is a very generic \"In Init\" section, further\n")
	W.printf("    # modification prior to any simulation is extremely likely\n")
	W.printf("    units real\n")
	W.printf("    atom_style full\n")
	W.printf("    bond_style hybrid %s\n", F.Styles.Bond)
	if F.Present.Angle {
		W.printf("    angle_style hybrid %s\n", F.Styles.Angle)
	}
	if F.Present.Torsion {
		W.printf("    dihedral_style hybrid %s\n", F.Styles.Dihedral)
	}
	if F.Present.Improper {
		W.printf("    improper_style hybrid %s\n", F.Styles.Improper)
	}
	W.printf("    pair_style hybrid %s %f %f\n", F.Styles.Pair, inner*F.Factors.Length, cutoff*F.Factors.Length)
	if F.Define.Pair14 == "OFF" {
		W.printf("    special_bonds lj/coul 0.0 0.0 0.0\n")
	} else {
		W.log.Warn("special_bonds needed, add it to the \"In Init\" section")
	}
	W.printf("  } # end init\n")
}
