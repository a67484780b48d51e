package emc2lt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rmera/emc2lt/prm"
)

func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core).Sugar(), logs
}

func TestResolveUnits(Te *testing.T) {
	log, logs := observed()
	d := &prm.Define{Length: "NANOMETER", Energy: "KJ/MOL", Density: "FURLONG/FIRKIN"}
	u := ResolveUnits(d, false, log)
	require.Equal(Te, 10.0, u.Length)
	require.Equal(Te, 0.239006, u.Energy)
	require.Equal(Te, 1.0, u.Density)
	require.Equal(Te, 1, logs.FilterMessageSnippet("NOT converted").Len())
	require.Equal(Te, 1, logs.FilterField(zap.String("units", "FURLONG/FIRKIN")).Len())
}

func TestResolveUnitsTable(Te *testing.T) {
	cases := []struct {
		d    prm.Define
		want Units
	}{
		{prm.Define{Length: Angstrom, Energy: KcalMol, Density: GCC}, NoConversion},
		{prm.Define{Length: "MICROMETER", Energy: "J/MOL", Density: "KG/M^3"}, Units{10000, 0.000239006, 0.001}},
		{prm.Define{Length: "METER", Energy: "CAL/MOL", Density: GCC}, Units{1e10, 0.001, 1}},
	}
	for _, c := range cases {
		require.Equal(Te, c.want, ResolveUnits(&c.d, false, nil))
	}
}

func TestResolveUnitsManual(Te *testing.T) {
	log, logs := observed()
	d := &prm.Define{Length: "NANOMETER", Energy: "KJ/MOL", Density: "KG/M^3"}
	require.Equal(Te, NoConversion, ResolveUnits(d, true, log))
	require.Equal(Te, 1, logs.FilterMessageSnippet("Manual units").Len())
}
