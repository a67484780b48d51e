package prm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const testprm = `# EMC force field test file
ITEM	DEFINE

FFNAME		TEST
FFTYPE		COARSE
VERSION		V1.0
CREATED		Mar 2017
LENGTH		ANGSTROM
ENERGY		KCAL/MOL
DENSITY		G/CC
MIX		NONE
NBONDED		1
INNER		9.0
CUTOFF		12.0
PAIR14		OFF
ANGLE		WARN
TORSION		IGNORE

ITEM	END

this line is outside every section and is ignored

ITEM	MASS

# type	mass	name
C1	12.011	C
O1	15.999	O

ITEM	END

ITEM	NONBOND

# type1	type2	sigma	epsilon
C1	C1	3.5	0.066
#O1	O1	3.0	0.15

ITEM	END

ITEM	MASS
N1	14.007	N
ITEM	END
`

func TestRead(Te *testing.T) {
	F, err := Read(strings.NewReader(testprm), "test.prm")
	require.NoError(Te, err)
	d := F.Define
	require.Equal(Te, "TEST", d.FFName)
	require.Equal(Te, "COARSE", d.FFType)
	require.Equal(Te, [2]string{"Mar", "2017"}, d.Created)
	require.Equal(Te, "ANGSTROM", d.Length)
	require.Equal(Te, "12.0", d.Cutoff)
	require.Equal(Te, "OFF", d.Pair14)
	require.Equal(Te, "WARN", d.Angle)
	require.Equal(Te, "IGNORE", d.Torsion)
	require.Equal(Te, "", d.Improper)

	require.Equal(Te, [][]string{{"C1", "12.011", "C"}, {"O1", "15.999", "O"}, {"N1", "14.007", "N"}}, F.Masses())
	require.Equal(Te, [][]string{{"C1", "C1", "3.5", "0.066"}}, F.Nonbonds())
	require.Empty(Te, F.Bonds())
	require.Empty(Te, F.Equivalences())
}

func TestReadNoTrailingNewline(Te *testing.T) {
	F, err := Read(strings.NewReader("ITEM\tBOND\nC1 C1 300 1.5"), "nonl.prm")
	require.NoError(Te, err)
	require.Equal(Te, [][]string{{"C1", "C1", "300", "1.5"}}, F.Bonds())
}

func TestReadEmpty(Te *testing.T) {
	F, err := Read(strings.NewReader(""), "empty.prm")
	require.NoError(Te, err)
	require.Equal(Te, &Define{}, F.Define)
	require.Empty(Te, F.Masses())
}

func TestReadFileCompressed(Te *testing.T) {
	dir := Te.TempDir()
	plain := filepath.Join(dir, "test.prm")
	require.NoError(Te, os.WriteFile(plain, []byte(testprm), 0644))

	gz := filepath.Join(dir, "test.prm.gz")
	f, err := os.Create(gz)
	require.NoError(Te, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(testprm))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())

	zs := filepath.Join(dir, "test.prm.zst")
	f, err = os.Create(zs)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(testprm))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, f.Close())

	ref, err := ReadFile(plain)
	require.NoError(Te, err)
	for _, name := range []string{gz, zs} {
		F, err := ReadFile(name)
		require.NoError(Te, err, name)
		require.Equal(Te, ref.Define, F.Define, name)
		require.Equal(Te, ref.Masses(), F.Masses(), name)
		require.Equal(Te, name, F.Name)
	}
}

func TestReadFileMissing(Te *testing.T) {
	_, err := ReadFile(filepath.Join(Te.TempDir(), "nothere.prm"))
	require.Error(Te, err)
	var perr *Error
	require.ErrorAs(Te, err, &perr)
	require.True(Te, perr.Critical())
	require.Contains(Te, perr.FileName(), "nothere.prm")
	require.Equal(Te, []string{"os.Open", "prepSource"}, perr.Decorate(""))
}
