package loader

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/bfs"
	"github.com/katalvlaran/transitgraph/transit"
)

// Report summarizes a network document for operators.
type Report struct {
	Network    *transit.Network
	Conflicts  []transit.TimeConflict
	Components [][]string
	Connected  bool
}

// Check reads path once, builds the network and reports the time conflicts
// of its table and how the stops hang together.
func Check(path string, opts ...transit.Option) (*Report, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := transit.New(t, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't build network from %s", path)
	}
	connected, err := bfs.Connected[string](n.Graph())
	if err != nil {
		return nil, errors.Wrap(err, "connectivity")
	}

	return &Report{
		Network:    n,
		Conflicts:  transit.TimeConflicts(t.Times),
		Components: n.Components(),
		Connected:  connected,
	}, nil
}
