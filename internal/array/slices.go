package array

// Lanes decomposes an array of width-lane vectors into one delayed array per
// lane. The lane-j result computes the source's vector element and projects
// out lane j, sharing the source's extent, touch barrier, and indexing
// preference. Per-lane processing can then run over scalar arrays without
// re-deriving any of that metadata.
//
// Every access to a lane array recomputes the full source vector; lanes do
// not share work across calls.
func Lanes[E any](src Source[Vec[E]], width int) []*Delayed[E] {
	lanes := make([]*Delayed[E], width)
	for j := range lanes {
		lane := j
		lanes[j] = &Delayed[E]{
			extent:       src.Extent(),
			prefersCoord: src.PrefersCoord(),
			touch:        src.Touch,
			get: func(c Coord) (E, error) {
				v, err := src.At(c)
				if err != nil {
					var zero E
					return zero, err
				}
				return v.Lane(lane), nil
			},
			lget: func(i int) (E, error) {
				v, err := src.AtLinear(i)
				if err != nil {
					var zero E
					return zero, err
				}
				return v.Lane(lane), nil
			},
		}
	}
	return lanes
}
