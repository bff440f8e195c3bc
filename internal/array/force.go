package array

import (
	"github.com/drape-ml/drape/internal/parallel"
)

// Force materializes a source array into manifest storage using the default
// parallel configuration.
func Force[E any](src Source[E]) (*Manifest[E], error) {
	return ForceWith(src, parallel.DefaultConfig())
}

// ForceWith materializes a source array into manifest storage: it runs the
// source's touch barrier once, then evaluates every flat index and writes
// the results into a freshly allocated manifest array. Index ranges are
// filled by parallel workers over disjoint chunks per cfg; each worker
// writes only its own range.
//
// The first accessor or touch error aborts the fill and propagates
// unchanged. The partially filled manifest is discarded.
func ForceWith[E any](src Source[E], cfg parallel.Config) (*Manifest[E], error) {
	if err := src.Touch(); err != nil {
		return nil, err
	}

	extent := src.Extent()
	out := make([]E, extent.NumElements())

	// Coordinate-preferring sources pay a FromIndex per element on the
	// linear path, so walk their index space in coordinate form instead.
	var err error
	if src.PrefersCoord() {
		err = parallel.ForErr(len(out), func(i int) error {
			v, verr := src.At(extent.FromIndex(i))
			if verr != nil {
				return verr
			}
			out[i] = v
			return nil
		}, cfg)
	} else {
		err = parallel.ForErr(len(out), func(i int) error {
			v, verr := src.AtLinear(i)
			if verr != nil {
				return verr
			}
			out[i] = v
			return nil
		}, cfg)
	}
	if err != nil {
		return nil, err
	}

	return &Manifest[E]{extent: extent.Clone(), data: out}, nil
}
