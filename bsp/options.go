package bsp

import "github.com/Laudanum-dev/pvs2d/geom"

// Option customises BuildBSP (and BuildPortals, which reuses the same
// geom.Config stored on the Tree).
type Option = geom.Option

// WithEpsilon overrides the default interior-cut / sweep-tie-break
// tolerance (geom.DefaultEpsilon). Panics on a non-positive value, exactly
// as geom.WithEpsilon does.
func WithEpsilon(eps geom.Epsilon) Option { return geom.WithEpsilon(eps) }

func resolveConfig(opts ...Option) geom.Config {
	return geom.NewConfig(opts...)
}
