package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/welltraj"
	"github.com/npillmayer/welltraj/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBuildAndHold(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "path.csv")
	pngFile := filepath.Join(dir, "path.png")
	htmlFile := filepath.Join(dir, "path.html")
	var out bytes.Buffer
	err := run([]string{
		"-profile", "build-hold", "-kop", "1000", "-tvd", "10000", "-h", "6000", "-rate", "1.5",
		"-samples", "500", "-csv", csvFile, "-png", pngFile, "-html", htmlFile,
	}, &out, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Kick Off")
	assert.Contains(t, out.String(), "Target")
	assert.Contains(t, out.String(), "Total measured depth")

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, 501, strings.Count(string(data), "\n"))
	data, err = os.ReadFile(pngFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	data, err = os.ReadFile(htmlFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestRunHorizontalDouble(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out bytes.Buffer
	err := run([]string{
		"-profile", "horizontal-double", "-kop", "2000", "-tvd", "8000", "-h", "7000",
		"-length", "2000", "-inc", "40", "-rate", "3",
	}, &out, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Solver iterations")
	assert.Contains(t, out.String(), "End of Build 2")
}

func TestRunErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out bytes.Buffer
	err := run([]string{"-profile", "corkscrew"}, &out, io.Discard)
	assert.ErrorIs(t, err, welltraj.ErrInvalidParameter)
	err = run([]string{"-profile", "build-hold", "-kop", "1000", "-tvd", "10000", "-h", "6000"}, &out, io.Discard)
	assert.ErrorIs(t, err, welltraj.ErrInvalidParameter)
	err = run([]string{"-no-such-flag"}, &out, io.Discard)
	assert.Error(t, err)
}

func TestRunTracing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer tracing.SetTraceSelector(nil)
	csvFile := filepath.Join(t.TempDir(), "path.csv")
	args := []string{
		"-profile", "build-hold", "-kop", "1000", "-tvd", "10000", "-h", "6000", "-rate", "1.5",
		"-samples", "100", "-csv", csvFile,
	}
	var out, trace bytes.Buffer
	require.NoError(t, run(append(args, "-trace", "debug"), &out, &trace))
	assert.Contains(t, trace.String(), "solving", "profile trace")
	assert.Contains(t, trace.String(), "path complete", "trajectory trace")
	assert.Contains(t, trace.String(), "CSV rows", "render trace")
	assert.Contains(t, trace.String(), "Target")

	trace.Reset()
	require.NoError(t, run(append(args, "-trace", "error"), &out, &trace))
	assert.Empty(t, trace.String())
	err := run([]string{"-profile", "build-hold", "-kop", "1000", "-tvd", "10000", "-h", "6000", "-trace", "error"},
		&out, &trace)
	assert.ErrorIs(t, err, welltraj.ErrInvalidParameter)
	assert.Contains(t, trace.String(), "rejected build rate")
}

func TestParamsFor(t *testing.T) {
	cfg := config{kop: 500, tvd: 9000, h: 3000, rate: 2, inc: 20}
	p := paramsFor(profile.SlantedProfile, cfg)
	assert.Equal(t, profile.Slanted{KOPMD: 500, TargetTVD: 9000, TargetH: 3000, StartInclination: 20, BuildRate: 2}, p)
	p = paramsFor(profile.BuildAndHoldProfile, cfg)
	assert.Equal(t, profile.BuildAndHold{KOP: 500, TargetTVD: 9000, TargetH: 3000, BuildRate: 2}, p)
	for _, name := range []string{"build-hold", "build-hold-drop", "slanted", "horizontal", "horizontal-double"} {
		kind, err := profile.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, paramsFor(kind, cfg).Kind())
	}
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "svg", imageFormat("well.SVG"))
	assert.Equal(t, "png", imageFormat("well.png"))
	assert.Equal(t, "png", imageFormat("well"))
}
