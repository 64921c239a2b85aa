package trajectory

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultSampleCount is the number of samples used if neither a count nor a
// spacing is requested.
const DefaultSampleCount = 10000

// MaxSampleCount caps the number of samples of a single request.
const MaxSampleCount = 1 << 20

// SampleOptions controls the density of a sample. If Spacing is set, a
// path is sampled about every Spacing ft (one sample per foot for
// Spacing = 1); otherwise Count samples are taken. Counts below 2 are
// raised to 2, a zero value selects DefaultSampleCount. Requests denser
// than MaxSampleCount samples, by count or by spacing, are lowered to
// MaxSampleCount.
type SampleOptions struct {
	Count   int
	Spacing float64
}

func (opts SampleOptions) count(total float64) int {
	n := opts.Count
	if opts.Spacing > 0 {
		q := math.Ceil(total / opts.Spacing)
		if q >= MaxSampleCount-1 || math.IsNaN(q) {
			tracer().Infof("spacing %g ft over %.2f ft exceeds %d samples, clamped", opts.Spacing, total, MaxSampleCount)
			return MaxSampleCount
		}
		n = int(q) + 1
	} else if n == 0 {
		n = DefaultSampleCount
	}
	if n > MaxSampleCount {
		tracer().Infof("sample count %d clamped to %d", n, MaxSampleCount)
		n = MaxSampleCount
	}
	if n < 2 {
		n = 2
	}
	return n
}

// Sample holds a path evaluated at increasing measured depths, as parallel
// slices. A sample is not modified after creation.
type Sample struct {
	MD          []float64
	TVD         []float64
	H           []float64
	Inclination []float64
	Secondary   []float64
}

// Len returns the number of stations in a sample.
func (s *Sample) Len() int {
	return len(s.MD)
}

// Station returns station i of a sample.
func (s *Sample) Station(i int) Station {
	return Station{
		MD:          s.MD[i],
		TVD:         s.TVD[i],
		H:           s.H[i],
		Inclination: s.Inclination[i],
		Secondary:   s.Secondary[i],
	}
}

// Last returns the deepest station of a sample.
func (s *Sample) Last() Station {
	return s.Station(s.Len() - 1)
}

// Sample evaluates a path at evenly spaced measured depths from 0 to
// MDTotal, both included. The path is trusted to be well-formed.
func (path *Path) Sample(opts SampleOptions) *Sample {
	total := path.MDTotal()
	n := opts.count(total)
	s := &Sample{
		MD:          make([]float64, n),
		TVD:         make([]float64, n),
		H:           make([]float64, n),
		Inclination: make([]float64, n),
		Secondary:   make([]float64, n),
	}
	floats.Span(s.MD, 0, total)
	s.MD[0], s.MD[n-1] = 0, total
	k := 0
	for i, md := range s.MD {
		var st Station
		if len(path.segments) == 0 {
			st = path.waypoints[0].Station
		} else {
			k = path.segmentAt(k, md)
			st = path.segments[k].Eval(md)
		}
		s.TVD[i], s.H[i] = st.TVD, st.H
		s.Inclination[i], s.Secondary[i] = st.Inclination, st.Secondary
	}
	tracer().Debugf("sampled path at %d stations, MD total = %.2f", n, total)
	return s
}
