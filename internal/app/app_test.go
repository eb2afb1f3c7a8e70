package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/montepi/coverage"
	"github.com/katalvlaran/montepi/estimator"
	"github.com/katalvlaran/montepi/internal/runstore"
	"github.com/katalvlaran/montepi/report"
)

var envKeys = []string{
	"MONTEPI_SAMPLES", "MONTEPI_DIMENSION", "MONTEPI_SEED", "MONTEPI_FORMAT",
	"MONTEPI_DB", "MONTEPI_TRAJECTORY", "MONTEPI_STUDY_RUNS", "MONTEPI_HISTORY",
	"MONTEPI_OTEL_ENDPOINT", "MONTEPI_OTEL_ENABLED",
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func runApp(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunTable(t *testing.T) {
	isolateEnv(t)
	code, out, stderr := runApp(t, "-n", "1000", "-d", "2", "-seed", "42")
	require.Equal(t, ExitOK, code, stderr)

	assert.Contains(t, out, "| dimension")
	assert.Contains(t, out, "samples in 2-sphere")
	assert.Contains(t, out, "conf. interval @95%")
	assert.Contains(t, out, "1,000")
}

func TestRunJSON(t *testing.T) {
	isolateEnv(t)
	code, out, stderr := runApp(t, "-n", "1000", "-d", "3", "-seed", "42", "-format", "json")
	require.Equal(t, ExitOK, code, stderr)

	var rep estimator.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3, rep.Dimension)
	assert.Equal(t, 1000, rep.SampleCount)
	assert.Equal(t, 3, rep.Precision)
	assert.InDelta(t, 0.021913063514414532, rep.HalfWidth, 1e-15)
	assert.LessOrEqual(t, rep.Lower, rep.Pi)
	assert.GreaterOrEqual(t, rep.Upper, rep.Pi)
}

func TestRunIsReproducible(t *testing.T) {
	isolateEnv(t)
	_, a, _ := runApp(t, "-n", "500", "-seed", "9", "-format", "json")
	_, b, _ := runApp(t, "-n", "500", "-seed", "9", "-format", "json")
	assert.Equal(t, a, b)
}

func TestRunEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MONTEPI_SAMPLES", "250")
	t.Setenv("MONTEPI_DIMENSION", "4")
	t.Setenv("MONTEPI_FORMAT", "json")

	code, out, stderr := runApp(t, "-seed", "1")
	require.Equal(t, ExitOK, code, stderr)

	var rep estimator.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Dimension)
	assert.Equal(t, 250, rep.SampleCount)

	// flags override the environment
	code, out, stderr = runApp(t, "-seed", "1", "-d", "2")
	require.Equal(t, ExitOK, code, stderr)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Dimension)
}

func TestRunErrors(t *testing.T) {
	isolateEnv(t)
	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"ZeroSamples", []string{"-n", "0"}, ExitRuntime, "invalid argument"},
		{"DimensionOne", []string{"-d", "1"}, ExitRuntime, "invalid argument"},
		{"OversizedRun", []string{"-n", "4611686018427387903", "-d", "4"}, ExitRuntime, "MaxCoordinates"},
		{"BadFormat", []string{"-format", "yaml"}, ExitUsage, "unknown format"},
		{"BadSeed", []string{"-seed", "abc"}, ExitUsage, "invalid seed"},
		{"Positional", []string{"extra"}, ExitUsage, "unexpected arguments"},
		{"BadStudy", []string{"-study-runs", "2", "-n", "-5"}, ExitRuntime, "invalid argument"},
		{"StudyWithTrajectory", []string{"-study-runs", "2", "-trajectory", "t.jsonl"}, ExitUsage, "invalid options"},
		{"StudyWithDB", []string{"-study-runs", "2", "-db", "runs.db"}, ExitUsage, "invalid options"},
		{"HistoryWithoutDB", []string{"-history", "3"}, ExitUsage, "-history requires -db"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr := runApp(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tc.msg)
		})
	}
}

func TestRunHelp(t *testing.T) {
	isolateEnv(t)
	code, out, stderr := runApp(t, "-h")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "-study-runs")
}

func TestRunTrajectory(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "traj.jsonl")
	code, _, stderr := runApp(t, "-n", "150", "-seed", "3", "-trajectory", path)
	require.Equal(t, ExitOK, code, stderr)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines int
	first := -1
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var pt struct {
			Samples int `json:"samples"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &pt))
		if first < 0 {
			first = pt.Samples
		}
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 100, lines) // indices 2..99, then 100 and 125
	assert.Equal(t, 3, first)
}

func TestRunShortTrajectoryWritesEveryPrefix(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "traj.jsonl")
	code, _, stderr := runApp(t, "-n", "2", "-seed", "3", "-trajectory", path)
	require.Equal(t, ExitOK, code, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}

func TestRunPersists(t *testing.T) {
	isolateEnv(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	for i := 0; i < 2; i++ {
		code, _, stderr := runApp(t, "-n", "400", "-seed", "5", "-db", db)
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, stderr, "saved to")
	}

	store, err := runstore.Open(context.Background(), db)
	require.NoError(t, err)
	defer store.Close()
	recs, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.NotNil(t, recs[0].Seed)
	assert.Equal(t, int64(5), *recs[0].Seed)
	assert.Equal(t, recs[0].Report, recs[1].Report)
}

func TestRunStudy(t *testing.T) {
	isolateEnv(t)
	code, out, stderr := runApp(t, "-study-runs", "4", "-n", "200", "-format", "json")
	require.Equal(t, ExitOK, code, stderr)

	var res coverage.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Runs)
	assert.Equal(t, 200, res.SampleCount)
	assert.Equal(t, 2, res.Dimension)
	assert.GreaterOrEqual(t, res.Rate, 0.0)
	assert.LessOrEqual(t, res.Rate, 1.0)

	// no seed means the fixed study seed, so two studies agree
	_, again, _ := runApp(t, "-study-runs", "4", "-n", "200", "-format", "json")
	assert.Equal(t, out, again)
}

func TestRunHistory(t *testing.T) {
	isolateEnv(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	for _, seed := range []string{"11", "12", "13"} {
		code, _, stderr := runApp(t, "-n", "300", "-seed", seed, "-db", db)
		require.Equal(t, ExitOK, code, stderr)
	}

	code, out, stderr := runApp(t, "-history", "2", "-db", db, "-format", "json")
	require.Equal(t, ExitOK, code, stderr)

	var entries []report.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].Seed)
	require.NotNil(t, entries[1].Seed)
	assert.Equal(t, int64(13), *entries[0].Seed) // newest first
	assert.Equal(t, int64(12), *entries[1].Seed)
	assert.Equal(t, 300, entries[0].Report.SampleCount)

	code, out, stderr = runApp(t, "-history", "5", "-db", db)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "| id ")
	assert.Equal(t, 3+4, strings.Count(out, "\n")) // three rows, three borders, one header
}
