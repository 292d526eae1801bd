package main

import (
	"fmt"
	"sort"

	"sci3d/internal/config"
	"sci3d/internal/geometry/vector"
)

type op struct {
	arity int
	help  string
	eval  func(cfg *config.Config, vs []vector.Vec3) (any, error)
}

var ops = map[string]op{
	"length": {1, "euclidean norm of a", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Length(), nil
	}},
	"normalize": {1, "unit vector along a", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		if vs[0].Length() == 0 {
			return nil, fmt.Errorf("%w: normalize on zero-length vector", vector.ErrDegenerateOperation)
		}
		return vs[0].Normalized(), nil
	}},
	"add": {2, "a + b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Add(vs[1]), nil
	}},
	"sub": {2, "a - b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Sub(vs[1]), nil
	}},
	"dot": {2, "dot product a . b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Dot(vs[1]), nil
	}},
	"cross": {2, "cross product a x b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Cross(vs[1]), nil
	}},
	"distance": {2, "distance between points a and b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Distance(vs[1]), nil
	}},
	"distance2d": {2, "distance between a and b ignoring z", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Distance2D(vs[1]), nil
	}},
	"equals": {2, "a equals b within the length tolerance", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.LengthComparer().Equals(vs[0], vs[1]), nil
	}},
	"angle": {2, "angle (rad) between a and b", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.LengthComparer().Angle(vs[0], vs[1]), nil
	}},
	"toward": {3, "angle (rad) from a toward b around axis c", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.LengthComparer().AngleToward(vs[0], vs[1], vs[2]), nil
	}},
	"project": {2, "projection of a onto b", func(_ *config.Config, vs []vector.Vec3) (any, error) {
		return vs[0].Project(vs[1])
	}},
	"parallel": {2, "a and b share a direction line, unit vectors compared", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.NormComparer().Parallel(vs[0], vs[1]), nil
	}},
	"perpendicular": {2, "a and b are orthogonal, unit vectors compared", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.NormComparer().Perpendicular(vs[0], vs[1]), nil
	}},
	"heading": {1, "compass heading (deg) of a in the ENU frame", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.Compass().HeadingDeg(vs[0]), nil
	}},
	"bearing": {2, "compass bearing (deg) from point a to point b", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		return cfg.Tolerance.Compass().Bearing(vs[0], vs[1]), nil
	}},
	"geo": {1, "lat, lon, alt of local point a", func(cfg *config.Config, vs []vector.Vec3) (any, error) {
		lat, lon, alt := cfg.Geo.GeoRef().LocalToGeo(vs[0])
		return fmt.Sprintf("%.7f %.7f %.3f", lat, lon, alt), nil
	}},
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseVectors(args []string, arity int) ([]vector.Vec3, error) {
	if len(args) != arity {
		return nil, fmt.Errorf("expected %d vectors, got %d", arity, len(args))
	}
	vs := make([]vector.Vec3, len(args))
	for i, a := range args {
		v, err := vector.Parse(a)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
