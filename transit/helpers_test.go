// SPDX-License-Identifier: MIT
// Package transit_test contains shared fixtures for the transit tests.

package transit_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitgraph/internal/loader"
	"github.com/katalvlaran/transitgraph/internal/logger"
	"github.com/katalvlaran/transitgraph/transit"
)

var fixturePath = filepath.Join("..", "testdata", "tramnetwork.json")

// abcTables: stops A(0,0), B(0,1), C(1,1); line "1" = A, B, C;
// times A–B 5 and B–C 7.
func abcTables() transit.Tables {
	return transit.Tables{
		Stops: map[string]transit.Position{
			"A": {Lat: 0, Lon: 0},
			"B": {Lat: 0, Lon: 1},
			"C": {Lat: 1, Lon: 1},
		},
		Lines: map[string][]string{"1": {"A", "B", "C"}},
		Times: map[string]map[string]float64{
			"A": {"B": 5},
			"B": {"C": 7},
		},
	}
}

func mustNew(t *testing.T, tables transit.Tables) *transit.Network {
	t.Helper()
	n, err := transit.New(tables)
	require.NoError(t, err)
	return n
}

func newLogged(t *testing.T, tables transit.Tables) (*transit.Network, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	n, err := transit.New(tables, transit.WithLogger(logger.New(buf)))
	require.NoError(t, err)
	return n, buf
}

func fixtureTables(t *testing.T) transit.Tables {
	t.Helper()
	tables, err := loader.ReadFile(fixturePath)
	require.NoError(t, err)
	return tables
}
