package trajectory

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/welltraj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func buildHoldPath() *Path {
	return Spud(0).Hold(1000, "Kick Off").Build(2, 30, "End of Build").
		Hold(500, "Target").End()
}

func dropPath() *Path {
	return Spud(0).Hold(1000, "Kick Off").Build(2, 40, "End of Build").
		Hold(1000, "Start of Drop").Drop(1.5, 20, "End of Drop").
		Hold(800, "Target").End()
}

func horizontalPath() *Path {
	rate := welltraj.BuildRateForRadius(10000)
	return Spud(0).Hold(3000, "Kick Off").Build(rate, 90, "End of Build").
		Hold(2000, "Target").End()
}

func doubleBuildPath() *Path {
	return Spud(0).Hold(2000, "Kick Off").Build(2, 30, "End of Build 1").
		Hold(1500, "Start of Build 2").SecondBuild(4, 90, "End of Build 2").
		Hold(1500, "Target").End()
}

func checkContinuity(t *testing.T, path *Path) {
	t.Helper()
	segs := path.Segments()
	for i := 1; i < len(segs); i++ {
		require.Equal(t, segs[i-1].EndMD, segs[i].StartMD, "segment %d", i)
		a := segs[i-1].Eval(segs[i].StartMD)
		b := segs[i].Eval(segs[i].StartMD)
		assert.InDelta(t, a.TVD, b.TVD, 1e-9, "TVD at boundary %d", i)
		assert.InDelta(t, a.H, b.H, 1e-9, "H at boundary %d", i)
		assert.InDelta(t, a.Inclination, b.Inclination, 1e-9, "inclination at boundary %d", i)
	}
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := buildHoldPath()
	require.Equal(t, 4, path.N())
	require.Len(t, path.Segments(), 3)
	assert.Equal(t, Vertical, path.Segments()[0].Kind)
	assert.Equal(t, BuildArc, path.Segments()[1].Kind)
	assert.Equal(t, Tangent, path.Segments()[2].Kind)
	assert.InDelta(t, 3000.0, path.MDTotal(), 1e-9)
	r := welltraj.RadiusOfCurvature(2)
	eob := path.Waypoint(2)
	assert.InDelta(t, 1000+r*0.5, eob.TVD, 1e-9)
	assert.InDelta(t, r*(1-math.Cos(welltraj.Rad(30))), eob.H, 1e-9)
	assert.Equal(t, 30.0, eob.Inclination)
	target := path.Last()
	assert.InDelta(t, eob.TVD+500*math.Cos(welltraj.Rad(30)), target.TVD, 1e-9)
	assert.InDelta(t, eob.H+250, target.H, 1e-9)
}

func TestContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, path := range []*Path{buildHoldPath(), dropPath(), horizontalPath()} {
		checkContinuity(t, path)
	}
}

func TestAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := buildHoldPath()
	st, ok := path.At(1000)
	require.True(t, ok)
	assert.Equal(t, 1000.0, st.TVD)
	assert.Equal(t, 0.0, st.H)
	assert.Equal(t, 0.0, st.Inclination)
	st, ok = path.At(1750)
	require.True(t, ok)
	assert.InDelta(t, 15.0, st.Inclination, 1e-12)
	_, ok = path.At(-1)
	assert.False(t, ok)
	_, ok = path.At(3001)
	assert.False(t, ok)
	_, ok = path.At(math.NaN())
	assert.False(t, ok)
	st, ok = Spud(0).End().At(0)
	require.True(t, ok)
	assert.Equal(t, Station{}, st)
}

func TestSampleBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := buildHoldPath()
	for _, n := range []int{2, 3, 17, 1000} {
		s := path.Sample(SampleOptions{Count: n})
		require.Equal(t, n, s.Len())
		assert.Equal(t, 0.0, s.MD[0])
		assert.Equal(t, path.MDTotal(), s.MD[n-1])
		for i := 1; i < n; i++ {
			require.Greater(t, s.MD[i], s.MD[i-1])
		}
		last := s.Last()
		assert.InDelta(t, path.Last().TVD, last.TVD, 1e-9)
		assert.InDelta(t, path.Last().H, last.H, 1e-9)
	}
	assert.Equal(t, DefaultSampleCount, path.Sample(SampleOptions{}).Len())
	assert.Equal(t, 2, path.Sample(SampleOptions{Count: 1}).Len())
	assert.Equal(t, 3001, path.Sample(SampleOptions{Spacing: 1}).Len())
}

func TestSampleDensityClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := buildHoldPath()
	for _, opts := range []SampleOptions{{Spacing: 1e-15}, {Count: MaxSampleCount + 1}} {
		s := path.Sample(opts)
		require.Equal(t, MaxSampleCount, s.Len(), "%+v", opts)
		assert.Equal(t, 0.0, s.MD[0])
		assert.Equal(t, path.MDTotal(), s.MD[s.Len()-1])
		for i := 1; i < s.Len(); i++ {
			if s.MD[i] <= s.MD[i-1] {
				t.Fatalf("MD not increasing at sample %d: %g <= %g", i, s.MD[i], s.MD[i-1])
			}
		}
	}
	assert.Equal(t, 12001, path.Sample(SampleOptions{Spacing: 0.25}).Len())
}

func TestSampleInclinationMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kinds := map[Kind]int{}
	for _, path := range []*Path{dropPath(), doubleBuildPath()} {
		s := path.Sample(SampleOptions{Spacing: 5})
		segs := path.Segments()
		for i := 1; i < s.Len(); i++ {
			md := s.MD[i]
			for _, seg := range segs {
				if s.MD[i-1] < seg.StartMD || md > seg.EndMD {
					continue
				}
				kinds[seg.Kind]++
				d := s.Inclination[i] - s.Inclination[i-1]
				switch seg.Kind {
				case BuildArc, SecondBuildArc:
					assert.GreaterOrEqual(t, d, -1e-12, "%s at MD %g", seg.Kind, md)
				case DropArc:
					assert.LessOrEqual(t, d, 1e-12, "drop at MD %g", md)
				case Tangent, Vertical:
					assert.InDelta(t, 0, d, 1e-12, "hold at MD %g", md)
				case HorizontalTangent:
					assert.InDelta(t, 0, d, 1e-12, "horizontal at MD %g", md)
					assert.InDelta(t, 90, s.Inclination[i], 1e-12, "horizontal at MD %g", md)
				}
			}
		}
	}
	for _, k := range []Kind{Vertical, BuildArc, Tangent, DropArc, SecondBuildArc, HorizontalTangent} {
		assert.Greater(t, kinds[k], 0, "no samples checked within %s segments", k)
	}
}

func TestSecondaryAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := dropPath()
	assert.Equal(t, 0.0, path.Waypoint(3).Secondary)
	assert.InDelta(t, 20.0, path.Waypoint(4).Secondary, 1e-12)
	assert.InDelta(t, 20.0, path.Last().Secondary, 1e-12)
	assert.Equal(t, 20.0, path.Last().Inclination)
	drop := path.Segments()[3]
	mid := drop.Eval((drop.StartMD + drop.EndMD) / 2)
	assert.InDelta(t, 10.0, mid.Secondary, 1e-9)
	assert.InDelta(t, 30.0, mid.Inclination, 1e-9)
}

func TestHorizontalSection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := horizontalPath()
	segs := path.Segments()
	require.Equal(t, HorizontalTangent, segs[len(segs)-1].Kind)
	eob := path.Waypoint(2)
	assert.InDelta(t, 13000.0, eob.TVD, 1e-6)
	assert.InDelta(t, 10000.0, eob.H, 1e-6)
	target := path.Last()
	assert.Equal(t, eob.TVD, target.TVD)
	assert.InDelta(t, 12000.0, target.H, 1e-6)
	assert.Equal(t, 90.0, target.Inclination)
}

func TestBuilderMisuse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Spud(0).Build(0, 10, "x") })
	mustPanic(t, func() { Spud(20).Build(1, 10, "x") })
	mustPanic(t, func() { Spud(10).Drop(1, 20, "x") })
	mustPanic(t, func() { Spud(0).Hold(-1, "x") })
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := AsString(dropPath())
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Point"))
	assert.True(t, strings.HasPrefix(lines[5], "End of Drop"))
	assert.Contains(t, lines[2], "1000.00")
}
