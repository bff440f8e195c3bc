package array

import "fmt"

// Manifest is a materialized array: a flat row-major element slice plus a
// shape. It is the storage counterpart of Delayed — reads hit memory instead
// of running a closure — and implements Source, so manifest arrays feed the
// fusion engine directly.
type Manifest[E any] struct {
	extent Shape
	data   []E
}

// Verify that Manifest implements Source.
var _ Source[int] = (*Manifest[int])(nil)

// NewManifest allocates a zeroed manifest array of the given shape.
func NewManifest[E any](extent Shape) (*Manifest[E], error) {
	if err := extent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Manifest[E]{
		extent: extent.Clone(),
		data:   make([]E, extent.NumElements()),
	}, nil
}

// FromSlice builds a manifest array over a row-major element slice. The
// slice is adopted, not copied; the caller must not mutate it afterwards.
func FromSlice[E any](data []E, extent Shape) (*Manifest[E], error) {
	if err := extent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != extent.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), extent, extent.NumElements())
	}
	return &Manifest[E]{extent: extent.Clone(), data: data}, nil
}

// Extent returns the shape of the array's index domain.
func (m *Manifest[E]) Extent() Shape {
	return m.extent
}

// Touch is a no-op: manifest data is plain process memory with no
// visibility prerequisites.
func (m *Manifest[E]) Touch() error {
	return nil
}

// PrefersCoord reports false: flat storage makes linear access the cheap path.
func (m *Manifest[E]) PrefersCoord() bool {
	return false
}

// At reads the element at coordinate c.
func (m *Manifest[E]) At(c Coord) (E, error) {
	return m.data[m.extent.ToIndex(c)], nil
}

// AtLinear reads the element at flat index i.
func (m *Manifest[E]) AtLinear(i int) (E, error) {
	return m.data[i], nil
}

// Set writes the element at coordinate c.
func (m *Manifest[E]) Set(c Coord, v E) {
	m.data[m.extent.ToIndex(c)] = v
}

// SetLinear writes the element at flat index i.
func (m *Manifest[E]) SetLinear(i int, v E) {
	m.data[i] = v
}

// Data returns the backing row-major slice without copying.
func (m *Manifest[E]) Data() []E {
	return m.data
}
