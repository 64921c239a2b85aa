package render

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/welltraj/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePath() *trajectory.Path {
	return trajectory.Spud(0).
		Hold(1000, "Kick Off").
		Build(2, 30, "End of Build").
		Hold(2000, "Target").
		End()
}

func TestCSV(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := samplePath()
	s := path.Sample(trajectory.SampleOptions{Count: 50})
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, s))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 51)
	assert.Equal(t, Columns, records[0])
	last := records[50]
	md, err := strconv.ParseFloat(last[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, path.MDTotal(), md, 1e-4)
	inc, err := strconv.ParseFloat(last[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, inc, 1e-4)
}

func TestImage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := samplePath()
	s := path.Sample(trajectory.SampleOptions{Count: 200})
	var buf bytes.Buffer
	require.NoError(t, Image(&buf, "png", "Build and Hold", s, path.Waypoints()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "expected PNG signature")
	buf.Reset()
	require.NoError(t, Image(&buf, "svg", "Build and Hold", s, nil))
	assert.Contains(t, buf.String(), "<svg")
}

func TestImageUnknownFormat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := samplePath().Sample(trajectory.SampleOptions{Count: 10})
	var buf bytes.Buffer
	assert.Error(t, Image(&buf, "bogus", "x", s, nil))
}

func TestChart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := samplePath()
	s := path.Sample(trajectory.SampleOptions{})
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, "Build and Hold", s, path.Waypoints()))
	html := buf.String()
	assert.True(t, strings.Contains(strings.ToLower(html), "<html"))
	assert.Contains(t, html, "Build and Hold")
	assert.Contains(t, html, "End of Build")
	assert.Contains(t, html, "corner points")
}

func TestStrided(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, strided(4, 10))
	assert.Equal(t, []int{0, 1, 2, 3}, strided(4, 0))
	assert.Equal(t, []int{0, 3, 6, 9}, strided(10, 4))
	assert.Equal(t, []int{0, 3, 6, 9, 10}, strided(11, 4))
	assert.Empty(t, strided(0, 4))
	idx := strided(10000, 4000)
	assert.LessOrEqual(t, len(idx), 4001)
	assert.Equal(t, 9999, idx[len(idx)-1])
}
