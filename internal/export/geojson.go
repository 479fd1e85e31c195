// Package export renders networks and routes as GeoJSON feature collections.
package export

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/lineaware"
	"github.com/katalvlaran/transitgraph/transit"
)

// Feature kinds stored in the "kind" property.
const (
	KindStop    = "stop"
	KindLine    = "line"
	KindSegment = "segment"
)

func coords(p transit.Position) []float64 {
	return []float64{p.Lon, p.Lat}
}

func lineString(net *transit.Network, stops []string) ([][]float64, error) {
	pts := make([][]float64, 0, len(stops))
	for _, s := range stops {
		pos, err := net.StopPosition(s)
		if err != nil {
			return nil, err
		}
		pts = append(pts, coords(pos))
	}
	return pts, nil
}

// Network returns one Point per stop and one LineString per line, with the
// collection bounding box set to the stop extent.
func Network(net *transit.Network) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, name := range net.AllStops() {
		st, _ := net.Stop(name)
		f := geojson.NewPointFeature(coords(st.Position))
		f.SetProperty("kind", KindStop)
		f.SetProperty("name", st.Name)
		f.SetProperty("lines", st.Lines)
		fc.AddFeature(f)
	}
	for _, id := range net.AllLines() {
		stops, err := net.LineStops(id)
		if err != nil {
			return nil, errors.Wrap(err, "Can't export line")
		}
		pts, err := lineString(net, stops)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't export line %s", id)
		}
		f := geojson.NewLineStringFeature(pts)
		f.SetProperty("kind", KindLine)
		f.SetProperty("line", id)
		f.SetProperty("stops", len(stops))
		fc.AddFeature(f)
	}
	if len(net.AllStops()) > 0 {
		b := net.ExtremePositions()
		fc.BoundingBox = []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
	}
	return fc, nil
}

// Route returns one LineString per ridden segment of r. Segments that
// only mark a change at a single stop are rendered as Points.
func Route(net *transit.Network, r *lineaware.Route) (*geojson.FeatureCollection, error) {
	if r == nil {
		return nil, errors.New("nil route")
	}
	fc := geojson.NewFeatureCollection()
	for i, seg := range r.Segments {
		pts, err := lineString(net, seg.Stops)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't export segment %d", i)
		}
		var f *geojson.Feature
		if len(pts) == 1 {
			f = geojson.NewPointFeature(pts[0])
		} else {
			f = geojson.NewLineStringFeature(pts)
		}
		f.SetProperty("kind", KindSegment)
		f.SetProperty("index", i)
		f.SetProperty("line", seg.Line)
		f.SetProperty("stops", seg.Stops)
		fc.AddFeature(f)
	}
	return fc, nil
}

// Write encodes fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "Can't write feature collection")
	}
	return nil
}
