// Package geo maps geographic coordinates to a local ENU (East-North-Up)
// frame built on vector.Vec3, with X=east, Y=north, Z=up (meters), and
// measures compass headings in that frame.
package geo

import (
	"math"

	"github.com/golang/geo/s1"

	"sci3d/internal/geometry/vector"
)

type GeoRef struct {
	OriginLat float64
	OriginLon float64
}

const metersPerDegLat = 111_320.0

var (
	north = vector.YAxis()
	// headings grow clockwise seen from above
	down = vector.ZAxis().Neg()
)

func (g GeoRef) metersPerDegLon() float64 {
	return metersPerDegLat * math.Cos(g.OriginLat*math.Pi/180.0)
}

func (g GeoRef) GeoToLocal(lat, lon, alt float64) vector.Vec3 {
	dLat := lat - g.OriginLat
	dLon := lon - g.OriginLon
	return vector.New(
		dLon*g.metersPerDegLon(), // east
		dLat*metersPerDegLat,     // north
		alt,
	)
}

func (g GeoRef) LocalToGeo(p vector.Vec3) (lat, lon, alt float64) {
	lat = g.OriginLat + p.Y()/metersPerDegLat
	lon = g.OriginLon + p.X()/g.metersPerDegLon()
	alt = p.Z()
	return
}

// Compass measures compass headings in the ENU frame, growing clockwise
// from north seen from above. Headings within AngleTol radians of north or
// south snap to exactly 0 or pi.
type Compass struct {
	AngleTol float64
}

// minCosTol keeps acos inside its domain when AngleTol is zero.
const minCosTol = 1e-15

var defaultCompass = Compass{AngleTol: 1e-6}

// comparer maps AngleTol onto the cosine scale compared by vector.AngleRad.
func (c Compass) comparer() vector.Comparer {
	return vector.NewComparer(math.Max(1-math.Cos(c.AngleTol), minCosTol))
}

// HeadingAngle returns the compass heading of the horizontal part of v,
// 0 for north and pi/2 for east. A vector with no horizontal part has
// heading 0.
func (c Compass) HeadingAngle(v vector.Vec3) s1.Angle {
	h := v.Set(vector.OrdZ, 0)
	if h.Length() < 1e-9 {
		return 0
	}
	rad := c.comparer().AngleToward(north, h.Normalized(), down)
	return s1.Angle(rad) * s1.Radian
}

// HeadingDeg returns the compass heading of v in degrees, in [0, 360).
func (c Compass) HeadingDeg(v vector.Vec3) float64 {
	return c.HeadingAngle(v).Degrees()
}

// Bearing returns the compass heading in degrees from local point from to
// local point to.
func (c Compass) Bearing(from, to vector.Vec3) float64 {
	return c.HeadingDeg(to.Sub(from))
}

// HeadingAngle is Compass.HeadingAngle with a 1e-6 rad tolerance.
func HeadingAngle(v vector.Vec3) s1.Angle { return defaultCompass.HeadingAngle(v) }

// HeadingDeg is Compass.HeadingDeg with a 1e-6 rad tolerance.
func HeadingDeg(v vector.Vec3) float64 { return defaultCompass.HeadingDeg(v) }

// Bearing is Compass.Bearing with a 1e-6 rad tolerance.
func Bearing(from, to vector.Vec3) float64 { return defaultCompass.Bearing(from, to) }

// FromBearing returns the horizontal vector of the given magnitude along a
// compass bearing in degrees (0 = north, 90 = east).
func FromBearing(magnitude, bearingDeg float64) vector.Vec3 {
	rad := bearingDeg * math.Pi / 180
	return vector.New(math.Sin(rad), math.Cos(rad), 0).Mul(magnitude)
}
