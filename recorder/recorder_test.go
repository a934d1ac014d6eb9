package recorder

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubing_conductance/knudsen"
)

func TestRecord(t *testing.T) {
	r := NewRecorder(1)
	c := knudsen.Conductance(1e-3, 6, 11e-4)
	r.Record("capillary", 1e-3, 6, 11e-4, c)

	require.Equal(t, 1, r.Len())
	row := r.Rows()[0]
	assert.Equal(t, "capillary", row.Series)
	assert.Equal(t, 1e-3, row.PressureMbar)
	assert.InEpsilon(t, 0.750062e-3, row.PressureTorr, 1e-12)
	assert.Equal(t, c, row.Conductance)
	assert.Equal(t, "molecular", row.Regime)
	assert.InEpsilon(t, knudsen.TubeVolume(6, 11e-4), row.VolumeL, 1e-12)
	assert.InEpsilon(t, 2.12437161029529, row.PumpoutS, 1e-9)
}

func TestRecordSweeps(t *testing.T) {
	ps := knudsen.LogPressures(1e-3, 1e3, 10)
	ds := knudsen.Linspace(0.01, 0.1, 5)

	r := NewRecorder(len(ps) + len(ds))
	r.RecordOverPressure("KF25", ps, 100, 2.5, knudsen.ConductanceOverPressure(nil, ps, 100, 2.5))
	r.RecordOverDiameter("pumpout", 1e-3, 6, ds, knudsen.ConductanceOverDiameter(nil, 1e-3, 6, ds))

	require.Equal(t, 15, r.Len())
	assert.Equal(t, "viscous", r.Rows()[9].Regime)
	assert.Equal(t, ds[4], r.Rows()[14].DiameterCm)
}

func TestExportAndSave(t *testing.T) {
	r := NewRecorder(2)
	r.Record("a", 1, 100, 2.5, knudsen.Conductance(1, 100, 2.5))
	r.Record("b", 1000, 1000, 5, knudsen.Conductance(1000, 1000, 5))

	var buf bytes.Buffer
	require.NoError(t, r.Export(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "series,pressure_mbar,pressure_torr,length_cm,diameter_cm,conductance_l_s,regime,volume_l,pumpout_s", lines[0])

	path := filepath.Join(t.TempDir(), "tubing.csv")
	require.NoError(t, r.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var rows []*Row
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].Series)
	assert.InEpsilon(t, r.Rows()[1].Conductance, rows[1].Conductance, 1e-12)

	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "missing", "tubing.csv")))
}
