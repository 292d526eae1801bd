package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String returns the "(x, y, z)" representation of v.
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.x, v.y, v.z)
}

var errEmptyComponent = errors.New("empty component")

// Parse reads a vector from 2 or 3 numbers separated by commas, semicolons
// or spaces, optionally enclosed in parentheses or brackets:
// "(1, 2, 3)", "1;2", "[0.5 -1 4]". Commas and semicolons must each
// separate a number, so "1,,2" and "1,2," are rejected.
func Parse(s string) (Vec3, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "([{")
	s = strings.TrimRight(s, ")]}")

	var fields []string
	if strings.ContainsAny(s, ",;") {
		fields = strings.Split(strings.ReplaceAll(s, ";", ","), ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
			if fields[i] == "" {
				return Vec3{}, &ArgumentError{Len: len(fields), cause: errEmptyComponent}
			}
		}
	} else {
		fields = strings.Fields(s)
	}

	coords := make([]float64, 0, len(fields))
	for _, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vec3{}, &ArgumentError{Len: len(fields), cause: err}
		}
		coords = append(coords, c)
	}

	return FromSlice(coords)
}
