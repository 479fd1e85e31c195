// Package loader reads a tram network JSON document into transit tables.
//
// The document has three top-level objects:
//
//	{
//	  "stops": {"Chalmers": {"lat": "57.6895", "lon": "11.9741"}, ...},
//	  "lines": {"6": ["Chalmers", "Korsvägen", ...], ...},
//	  "times": {"Chalmers": {"Korsvägen": 3}, ...}
//	}
//
// Coordinates may be JSON strings or numbers.
package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/transit"
)

// coordinate accepts "57.7" as well as 57.7.
type coordinate float64

func (c *coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(err, "coordinate %q", s)
		}
		*c = coordinate(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return errors.Wrap(err, "coordinate")
	}
	*c = coordinate(f)
	return nil
}

type stopJSON struct {
	Lat *coordinate `json:"lat"`
	Lon *coordinate `json:"lon"`
}

type documentJSON struct {
	Stops map[string]stopJSON           `json:"stops"`
	Lines map[string][]string           `json:"lines"`
	Times map[string]map[string]float64 `json:"times"`
}

// Decode reads one network document from r.
func Decode(r io.Reader) (transit.Tables, error) {
	var doc documentJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return transit.Tables{}, errors.Wrap(err, "Can't decode network document")
	}
	if doc.Stops == nil || doc.Lines == nil {
		return transit.Tables{}, errors.New("network document needs \"stops\" and \"lines\"")
	}

	t := transit.Tables{
		Stops: make(map[string]transit.Position, len(doc.Stops)),
		Lines: doc.Lines,
		Times: doc.Times,
	}
	if t.Times == nil {
		t.Times = map[string]map[string]float64{}
	}
	for name, s := range doc.Stops {
		if s.Lat == nil || s.Lon == nil {
			return transit.Tables{}, errors.Errorf("stop %q has no position", name)
		}
		t.Stops[name] = transit.Position{Lat: float64(*s.Lat), Lon: float64(*s.Lon)}
	}

	return t, nil
}

// ReadFile decodes the network document stored at path.
func ReadFile(path string) (transit.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return transit.Tables{}, errors.Wrap(err, "File open")
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return transit.Tables{}, errors.Wrapf(err, "file %s", path)
	}

	return t, nil
}

// LoadNetwork reads path and builds a transit.Network from it.
func LoadNetwork(path string, opts ...transit.Option) (*transit.Network, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := transit.New(t, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't build network from %s", path)
	}

	return n, nil
}
