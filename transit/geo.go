// SPDX-License-Identifier: MIT

package transit

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.009

// Point returns p as an orb point (longitude first).
func (p Position) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Distance is the spherical-earth projected distance between p and q in
// kilometres, rounded to 3 decimals:
//
//	R · sqrt(Δφ² + (cos φm · Δλ)²)
//
// with latitudes φ and longitudes λ in radians and φm the mean latitude.
func Distance(p, q Position) float64 {
	const rad = math.Pi / 180
	phi1, lambda1 := p.Lat*rad, p.Lon*rad
	phi2, lambda2 := q.Lat*rad, q.Lon*rad

	dPhi := phi1 - phi2
	phiM := (phi1 + phi2) / 2
	dLambda := lambda1 - lambda2
	d := EarthRadiusKm * math.Sqrt(dPhi*dPhi+math.Pow(math.Cos(phiM)*dLambda, 2))

	return math.Round(d*1000) / 1000
}

// GeoDistance returns Distance between stops a and b.
// Returns ErrUnknownStop if either stop is unknown and ErrSameStop if a == b.
func (n *Network) GeoDistance(a, b string) (float64, error) {
	sa, sb, err := n.stopPair(a, b)
	if err != nil {
		return 0, err
	}

	return Distance(sa.Position, sb.Position), nil
}

// ExtremePositions returns the bounding box of all stop positions.
// An empty network yields the zero bound.
func (n *Network) ExtremePositions() orb.Bound {
	if len(n.stops) == 0 {
		return orb.Bound{}
	}
	pts := make(orb.MultiPoint, 0, len(n.stops))
	for _, st := range n.stops {
		pts = append(pts, st.Position.Point())
	}

	return pts.Bound()
}
