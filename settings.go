package emc2lt

import (
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Settings are the conversion factors given by hand when manual units are used.
// Zero (absent) values leave the corresponding factor at 1. An example file:
//
//	length: 10.0
//	energy: 0.239006
//	bond: 0.0011950
type Settings struct {
	Length   float64 `yaml:"length"`
	Energy   float64 `yaml:"energy"`
	Density  float64 `yaml:"density"`
	Bond     float64 `yaml:"bond"`
	Angle    float64 `yaml:"angle"`
	Dihedral float64 `yaml:"dihedral"`
	Improper float64 `yaml:"improper"`
}

// LoadSettings reads manual conversion factors in YAML format from r.
// Unknown keys are an error, so typos don't go unnoticed.
func LoadSettings(r io.Reader) (*Settings, error) {
	S := new(Settings)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(S); err != nil && err != io.EOF {
		return nil, newCError(MalformedSettings, "LoadSettings", err.Error())
	}
	return S, nil
}

// LoadSettingsFile is LoadSettings on the file fname.
func LoadSettingsFile(fname string) (S *Settings, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, newCError(MalformedSettings, "LoadSettingsFile", err.Error())
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return LoadSettings(f)
}

// Apply returns f with every factor given in the receiver replacing the original.
// A nil receiver returns f unchanged.
func (S *Settings) Apply(f Factors) Factors {
	if S == nil {
		return f
	}
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&f.Length, S.Length)
	set(&f.Energy, S.Energy)
	set(&f.Density, S.Density)
	set(&f.Bond, S.Bond)
	set(&f.Angle, S.Angle)
	set(&f.Dihedral, S.Dihedral)
	set(&f.Improper, S.Improper)
	return f
}
