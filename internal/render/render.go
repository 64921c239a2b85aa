// Package render writes sampled well paths as CSV tables, static plots and
// interactive charts.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/welltraj/trajectory"
)

// tracer writes to trace with key 'welltraj.render'
func tracer() tracing.Trace {
	return tracing.Select("welltraj.render")
}

// Columns of a trajectory table, in order.
var Columns = []string{
	"Measured Depth (ft)",
	"Vertical Depth (ft)",
	"Horizontal Distance (ft)",
	"Inclination (°)",
	"Secondary Angle (°)",
}

// CSV writes a sample as a CSV table with a header row and one row per
// station.
func CSV(w io.Writer, s *trajectory.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	row := make([]string, len(Columns))
	for i := 0; i < s.Len(); i++ {
		row[0] = ftoa(s.MD[i])
		row[1] = ftoa(s.TVD[i])
		row[2] = ftoa(s.H[i])
		row[3] = ftoa(s.Inclination[i])
		row[4] = ftoa(s.Secondary[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	tracer().Debugf("wrote %d CSV rows", s.Len())
	return nil
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

// Every stride-th index of n stations, the last one always included.
func strided(n, maxPoints int) []int {
	stride := 1
	if maxPoints > 0 && n > maxPoints {
		stride = (n + maxPoints - 1) / maxPoints
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if n > 0 && idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}
