// SPDX-License-Identifier: MIT

package transit_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitgraph/bfs"
	"github.com/katalvlaran/transitgraph/transit"
)

func TestLinesBetweenStops_Errors(t *testing.T) {
	n := mustNew(t, abcTables())

	_, err := n.LinesBetweenStops("A", "A")
	assert.ErrorIs(t, err, transit.ErrSameStop)

	_, err = n.LinesBetweenStops("A", "Z")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
	_, err = n.LinesBetweenStops("Z", "A")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
}

func TestLinesQueries_Fixture(t *testing.T) {
	n := mustNew(t, fixtureTables(t))

	assert.Equal(t, []string{"1", "13"}, n.LinesViaStop("Brunnsparken"))
	assert.Equal(t, []string{"6", "13"}, n.LinesViaStop("Chalmers"))
	assert.Empty(t, n.LinesViaStop("Nowhere"))

	between, err := n.LinesBetweenStops("Valand", "Kungsportsplatsen")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "13"}, between)

	between, err = n.LinesBetweenStops("Olskrokstorget", "Järntorget")
	require.NoError(t, err)
	assert.Empty(t, between)
}

func TestTransitionTime_DirectEdgeOnly(t *testing.T) {
	n := mustNew(t, abcTables())
	_, ok := n.TransitionTime("A", "C")
	assert.False(t, ok, "A and C are not adjacent")
	_, ok = n.TransitionTime("A", "Z")
	assert.False(t, ok)
}

func TestTimeAlongLine(t *testing.T) {
	n := mustNew(t, fixtureTables(t))

	got, err := n.TimeAlongLine("1", "Järntorget", "Centralstationen")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	back, err := n.TimeAlongLine("1", "Centralstationen", "Järntorget")
	require.NoError(t, err)
	assert.Equal(t, got, back)

	_, err = n.TimeAlongLine("1", "Chalmers", "Järntorget")
	assert.ErrorIs(t, err, transit.ErrNotOnLine)
	_, err = n.TimeAlongLine("99", "Chalmers", "Järntorget")
	assert.ErrorIs(t, err, transit.ErrUnknownLine)
	_, err = n.TimeAlongLine("1", "Järntorget", "Järntorget")
	assert.ErrorIs(t, err, transit.ErrSameStop)
	_, err = n.TimeAlongLine("1", "Nowhere", "Järntorget")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
}

func TestLookups(t *testing.T) {
	n := mustNew(t, fixtureTables(t))

	assert.Equal(t, []string{"1", "2", "6", "13"}, n.AllLines())
	assert.Len(t, n.AllStops(), 12)
	assert.Equal(t, "Brunnsparken", n.AllStops()[0])

	st, ok := n.Stop("Chalmers")
	require.True(t, ok)
	assert.Equal(t, transit.Position{Lat: 57.6895, Lon: 11.9741}, st.Position)
	st.Lines[0] = "mutated"
	assert.Equal(t, []string{"6", "13"}, n.LinesViaStop("Chalmers"), "Stop returns a copy")
	_, ok = n.Stop("Nowhere")
	assert.False(t, ok)

	l, ok := n.Line("13")
	require.True(t, ok)
	assert.Equal(t, []string{"Chalmers", "Valand", "Kungsportsplatsen", "Brunnsparken"}, l.Stops)
	_, ok = n.Line("99")
	assert.False(t, ok)

	stops, err := n.LineStops("6")
	require.NoError(t, err)
	assert.Equal(t, "Olskrokstorget", stops[len(stops)-1])
	_, err = n.LineStops("99")
	assert.ErrorIs(t, err, transit.ErrUnknownLine)

	lines, err := n.StopLines("Svingeln")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6"}, lines)
	_, err = n.StopLines("Nowhere")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)

	pos, err := n.StopPosition("Olskrokstorget")
	require.NoError(t, err)
	assert.Equal(t, transit.Position{Lat: 57.715, Lon: 12.0005}, pos)
	_, err = n.StopPosition("Nowhere")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
}

func TestGeoDistance(t *testing.T) {
	n := mustNew(t, abcTables())

	d, err := n.GeoDistance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 111.195, d)
	d, err = n.GeoDistance("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 157.251, d)

	_, err = n.GeoDistance("A", "A")
	assert.ErrorIs(t, err, transit.ErrSameStop)
	_, err = n.GeoDistance("A", "Z")
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
}

// TestGeoDistance_MatchesHaversine: at tram scale the projection agrees with
// the haversine distance to well under one percent.
func TestGeoDistance_MatchesHaversine(t *testing.T) {
	n := mustNew(t, fixtureTables(t))
	for _, e := range n.Graph().Edges() {
		d, err := n.GeoDistance(e.From, e.To)
		require.NoError(t, err)
		p, _ := n.StopPosition(e.From)
		q, _ := n.StopPosition(e.To)
		h := geo.DistanceHaversine(p.Point(), q.Point()) / 1000
		assert.InDelta(t, h, d, 0.01*h+0.001, "%s–%s", e.From, e.To)
	}
}

// TestDataQuality checks the fixture against the dataset invariants:
// times agree in both directions, adjacent stops lie within 20 km, and a
// breadth-first walk from any stop reaches every stop.
func TestDataQuality(t *testing.T) {
	tables := fixtureTables(t)
	assert.Empty(t, transit.TimeConflicts(tables.Times))

	n := mustNew(t, tables)
	g := n.Graph()
	for _, e := range g.Edges() {
		ab, okAB := n.TransitionTime(e.From, e.To)
		ba, okBA := n.TransitionTime(e.To, e.From)
		require.True(t, okAB && okBA)
		assert.Equal(t, ab, ba)

		d, err := n.GeoDistance(e.From, e.To)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, 20.0, "%s–%s", e.From, e.To)
	}

	for _, stop := range n.AllStops() {
		reached, err := bfs.Reachable[string](g, stop)
		require.NoError(t, err)
		assert.ElementsMatch(t, n.AllStops(), reached, "from %s", stop)
	}
	assert.Equal(t, [][]string{n.AllStops()}, n.Components())
}

func TestExtremePositions(t *testing.T) {
	n := mustNew(t, fixtureTables(t))
	assert.Equal(t, orb.Bound{
		Min: orb.Point{11.9529, 57.6895},
		Max: orb.Point{12.0005, 57.715},
	}, n.ExtremePositions())

	empty := mustNew(t, transit.Tables{})
	assert.Equal(t, orb.Bound{}, empty.ExtremePositions())
}

func TestSortLines(t *testing.T) {
	got := transit.SortLines([]string{"13", "X", "2", "1", "B", "6", "07", "7"})
	assert.Equal(t, []string{"1", "2", "6", "07", "7", "13", "B", "X"}, got)
}
