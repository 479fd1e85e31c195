// SPDX-License-Identifier: MIT

package transit

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/transitgraph/dfs"
)

// TimeConflict is a stop pair recorded under both orderings with different
// times. From is the lesser stop name; Forward is times[From][To].
type TimeConflict struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Forward  float64 `json:"forward"`
	Backward float64 `json:"backward"`
}

// TimeConflicts lists every pair of times whose two orderings disagree,
// sorted by (From, To). New keeps the Forward value of each conflict.
func TimeConflicts(times map[string]map[string]float64) []TimeConflict {
	var out []TimeConflict
	for a, row := range times {
		for b, fwd := range row {
			if b <= a {
				continue
			}
			bwd, ok := times[b][a]
			if ok && bwd != fwd {
				out = append(out, TimeConflict{From: a, To: b, Forward: fwd, Backward: bwd})
			}
		}
	}
	slices.SortFunc(out, func(x, y TimeConflict) int {
		return cmp.Or(cmp.Compare(x.From, y.From), cmp.Compare(x.To, y.To))
	})

	return out
}

// Components groups stops into connected parts of the network, each sorted
// by name, with the part holding the least stop name first. A well-formed
// network has exactly one.
func (n *Network) Components() [][]string {
	comps, err := dfs.Components[string](n.graph)
	if err != nil {
		// n.graph is never nil and its Neighbors never fails for its own
		// vertices.
		return nil
	}

	return comps
}
