package prm

import "fmt"

//Errors

// Error is the general structure for prm errors. It fulfills emc2lt.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("prm error: %s", err.message)
	}
	return fmt.Sprintf("prm file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file the error is associated to
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
// Every inconsistency between prm files is critical.
func (err *Error) Critical() bool { return err.critical }

const (
	UnableToOpen      = "Unable to open file"
	ReadError         = "Error reading file"
	FFMismatch        = "force field files do not match"
	UnitsMismatch     = "units not identical between files"
	InnerMismatch     = "inner cutoff not identical between files"
	CutoffMismatch    = "cutoff not identical between files"
	Pair14Mismatch    = "1-4 pair interaction not consistent between files"
	NoFiles           = "no prm files given"
	UnknownCompressor = "Unable to set up decompression"
)
