package emc2lt

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// errDecorate adds the caller's name to the decoration of err, or of each of the errors
// combined in err, if they implement Error. It returns err.
func errDecorate(err error, caller string) error {
	for _, e := range multierr.Errors(err) {
		if err2, ok := e.(Error); ok {
			err2.Decorate(caller)
		}
	}
	return err
}

// CError is the general structure for conversion errors. It fulfills Error.
// Every conversion error is critical, warnings are only logged.
type CError struct {
	message string
	detail  []string //the offending records, if any.
	deco    []string
}

func newCError(message string, caller string, detail ...string) *CError {
	return &CError{message: message, detail: detail, deco: []string{caller}}
}

func (err *CError) Error() string {
	if len(err.detail) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.message, strings.Join(err.detail, "; "))
}

// Decorate adds new information to the error
func (E *CError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err *CError) Critical() bool { return true }

// Message returns the error message without the record details, which
// is one of the constants below.
func (err *CError) Message() string { return err.message }

const (
	MassConflict      = "Identical types with different mass"
	PairConflict      = "Identical types with different pair-interactions"
	EquivNoMass       = "Atom defined in Equivalences, but not found in Masses"
	MassNoEquiv       = "Atom defined in Masses, but not found in Equivalences"
	PairNoEquiv       = "Atom in Nonbonded Pairs not found in Equivalences"
	UnsupportedForm   = "Cannot find potential type, use manual units"
	MalformedRow      = "Ill-formatted record"
	MissingSDKFields  = "lj/sdk pair styles need 2 extra fields per pair"
	MalformedSettings = "Can't read manual units file"
)
