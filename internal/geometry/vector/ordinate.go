package vector

import "fmt"

// Ord selects one of the three ordinates of a vector.
type Ord int

const (
	OrdX Ord = iota
	OrdY
	OrdZ
)

func (o Ord) String() string {
	switch o {
	case OrdX:
		return "X"
	case OrdY:
		return "Y"
	case OrdZ:
		return "Z"
	default:
		return fmt.Sprintf("Ord(%d)", int(o))
	}
}

// At returns the component at index i: 0 for x, 1 for y, 2 for z.
func (v Vec3) At(i int) (float64, error) {
	switch Ord(i) {
	case OrdX:
		return v.x, nil
	case OrdY:
		return v.y, nil
	case OrdZ:
		return v.z, nil
	default:
		return 0, &OrdinalError{Index: i}
	}
}

// Set returns a copy of v with the ordinate o replaced by value.
// An Ord other than OrdX, OrdY or OrdZ returns v unchanged.
func (v Vec3) Set(o Ord, value float64) Vec3 {
	switch o {
	case OrdX:
		v.x = value
	case OrdY:
		v.y = value
	case OrdZ:
		v.z = value
	}
	return v
}
