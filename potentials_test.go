package emc2lt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmera/emc2lt/prm"
)

func TestParseForm(Te *testing.T) {
	require.Equal(Te, FormHarmonic, ParseForm(""))
	require.Equal(Te, FormHarmonic, ParseForm("harmonic"))
	require.Equal(Te, FormCosineSquared, ParseForm("cosine/squared"))
	require.Equal(Te, FormSDK, ParseForm("sdk"))
	require.Equal(Te, FormUnsupported, ParseForm("morse"))
	require.Equal(Te, "unsupported", ParseForm("morse").String())
}

func TestResolveFactors(Te *testing.T) {
	u := Units{Length: 10, Energy: 0.239006, Density: 1}
	all := prm.Presence{Angle: true, Torsion: true, Improper: true}
	f, err := ResolveFactors(u, Styles{}, all, false)
	require.NoError(Te, err)
	require.InDelta(Te, 0.239006/200, f.Bond, 1e-15)
	require.Equal(Te, 0.239006, f.Angle)
	require.Equal(Te, 0.239006, f.Dihedral)
	require.Equal(Te, 0.239006, f.Improper)
	require.Equal(Te, u, f.Units)
	require.False(Te, f.Manual)

	f, err = ResolveFactors(NoConversion, Styles{Bond: "harmonic"}, prm.Presence{}, false)
	require.NoError(Te, err)
	require.Equal(Te, 0.5, f.Bond)

	f, err = ResolveFactors(u, Styles{Angle: "cosine/squared"}, all, false)
	require.NoError(Te, err)
	require.Equal(Te, 0.239006/2, f.Angle)

	f, err = ResolveFactors(u, Styles{Angle: "sdk"}, all, false)
	require.NoError(Te, err)
	require.Equal(Te, 0.239006, f.Angle)
}

func TestResolveFactorsUnsupported(Te *testing.T) {
	all := prm.Presence{Angle: true, Torsion: true, Improper: true}
	for _, s := range []Styles{{Bond: "morse"}, {Angle: "quartic"}, {Dihedral: "opls"}, {Improper: "cvff"}} {
		_, err := ResolveFactors(NoConversion, s, all, false)
		require.Error(Te, err)
		var cerr *CError
		require.ErrorAs(Te, err, &cerr)
		require.Equal(Te, UnsupportedForm, cerr.Message())
	}
	//kinds not in the force field are not checked
	_, err := ResolveFactors(NoConversion, Styles{Angle: "quartic", Dihedral: "opls"}, prm.Presence{}, false)
	require.NoError(Te, err)
}

func TestResolveFactorsManual(Te *testing.T) {
	u := Units{Length: 10, Energy: 0.239006, Density: 0.001}
	all := prm.Presence{Angle: true, Torsion: true, Improper: true}
	f, err := ResolveFactors(u, Styles{Bond: "morse", Angle: "quartic"}, all, true)
	require.NoError(Te, err)
	require.Equal(Te, Factors{Units: NoConversion, Bond: 1, Angle: 1, Dihedral: 1, Improper: 1, Manual: true}, f)
}

func TestSettings(Te *testing.T) {
	s, err := LoadSettings(strings.NewReader("length: 10.0\nbond: 0.5\n"))
	require.NoError(Te, err)
	f := s.Apply(manualFactors())
	require.Equal(Te, 10.0, f.Length)
	require.Equal(Te, 1.0, f.Energy)
	require.Equal(Te, 0.5, f.Bond)
	require.Equal(Te, 1.0, f.Angle)

	var nilset *Settings
	require.Equal(Te, manualFactors(), nilset.Apply(manualFactors()))

	_, err = LoadSettings(strings.NewReader("lenght: 10.0\n"))
	require.Error(Te, err)

	s, err = LoadSettings(strings.NewReader(""))
	require.NoError(Te, err)
	require.Equal(Te, &Settings{}, s)
}
