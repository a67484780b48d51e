package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const cliPrm = `ITEM	DEFINE
FFNAME		CLI
FFTYPE		COARSE
VERSION		V1
CREATED		Jan 2020
LENGTH		NANOMETER
ENERGY		KJ/MOL
DENSITY		G/CC
INNER		0.9
CUTOFF		1.2
PAIR14		OFF
ITEM	END

ITEM	MASS
C1	12.011
ITEM	END

ITEM	EQUIVALENCE
C1	C1	C1	C1	C1	C1
ITEM	END

ITEM	NONBOND
C1	C1	0.4	1.0
ITEM	END

ITEM	BOND
C1	C1	1000.0	0.15
ITEM	END
`

func TestRootCmd(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "cli.prm")
	require.NoError(Te, os.WriteFile(in, []byte(cliPrm), 0644))
	out := filepath.Join(dir, "out")
	argv := []string{"emc2lt", in, "--name", out, "--pair-style=lj/cut"}
	require.NoError(Te, newRootCmd(zap.NewNop().Sugar(), argv).Execute())
	b, err := os.ReadFile(out + ".lt")
	require.NoError(Te, err)
	s := string(b)
	require.Contains(Te, s, "# "+strings.Join(argv, " ")+"\n")
	require.Contains(Te, s, "pair_coeff @atom:C1_bC1_aC1_dC1_iC1 @atom:C1_bC1_aC1_dC1_iC1 lj/cut 0.239006 4.000000 # C1-C1")
	require.Contains(Te, s, "pair_style hybrid lj/cut 9.000000 12.000000")
}

func TestRootCmdManualUnits(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "cli.prm")
	require.NoError(Te, os.WriteFile(in, []byte(cliPrm), 0644))
	factors := filepath.Join(dir, "factors.yaml")
	require.NoError(Te, os.WriteFile(factors, []byte("energy: 0.5\n"), 0644))
	out := filepath.Join(dir, "manual")
	argv := []string{"emc2lt", "--units", "--factors", factors, "--name", out, "--bond-style", "morse", in}
	require.NoError(Te, newRootCmd(zap.NewNop().Sugar(), argv).Execute())
	b, err := os.ReadFile(out + ".lt")
	require.NoError(Te, err)
	s := string(b)
	require.Contains(Te, s, "lj/cut/coul/long 0.500000 0.400000 # C1-C1")
	require.Contains(Te, s, "bond_coeff @bond:C1-C1 morse 1000.000000 0.150000 # C1-C1")
}

func TestRootCmdErrors(Te *testing.T) {
	dir := Te.TempDir()
	err := newRootCmd(zap.NewNop().Sugar(), []string{"emc2lt", filepath.Join(dir, "missing.prm")}).Execute()
	require.ErrorContains(Te, err, "invalid filename")

	//no arguments just prints the help
	require.NoError(Te, newRootCmd(zap.NewNop().Sugar(), []string{"emc2lt"}).Execute())
}

func TestReport(Te *testing.T) {
	dir := Te.TempDir()
	a := filepath.Join(dir, "a.prm")
	b := filepath.Join(dir, "b.prm")
	require.NoError(Te, os.WriteFile(a, []byte(cliPrm), 0644))
	require.NoError(Te, os.WriteFile(b, []byte(strings.Replace(cliPrm, "CUTOFF\t\t1.2", "CUTOFF\t\t1.4", 1)), 0644))
	err := newRootCmd(zap.NewNop().Sugar(), []string{"emc2lt", a, b}).Execute()
	require.Error(Te, err)

	core, logs := observer.New(zapcore.ErrorLevel)
	report(err, zap.New(core).Sugar())
	require.Equal(Te, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(Te, b, fields["file"])
	require.Equal(Te, []interface{}{"Consistent", "New"}, fields["trace"])

	//errors that are not tied to a file are logged as they are
	core, logs = observer.New(zapcore.ErrorLevel)
	report(newRootCmd(zap.NewNop().Sugar(), []string{"emc2lt", filepath.Join(dir, "missing.prm")}).Execute(), zap.New(core).Sugar())
	require.Equal(Te, 1, logs.Len())
	require.Empty(Te, logs.All()[0].ContextMap())
}
