package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAxes = errors.New("axes must be a combination of x, y and z")

// Axes holds the per-axis rotation switches.
type Axes struct {
	X, Y, Z bool
}

// ParseAxes reads a set of axis letters such as "xy" or "Z".
// "" and "none" disable every axis.
func ParseAxes(s string) (Axes, error) {
	var a Axes
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return a, nil
	}
	for _, r := range s {
		switch r {
		case 'x':
			a.X = true
		case 'y':
			a.Y = true
		case 'z':
			a.Z = true
		case ',', ' ':
		default:
			return Axes{}, fmt.Errorf("%w: %q", ErrInvalidAxes, s)
		}
	}
	return a, nil
}

// Toggle flips the axis named by r and reports whether r named one.
func (a Axes) Toggle(r rune) (Axes, bool) {
	switch r {
	case 'x', 'X':
		a.X = !a.X
	case 'y', 'Y':
		a.Y = !a.Y
	case 'z', 'Z':
		a.Z = !a.Z
	default:
		return a, false
	}
	return a, true
}

func (a Axes) String() string {
	var b strings.Builder
	if a.X {
		b.WriteByte('x')
	}
	if a.Y {
		b.WriteByte('y')
	}
	if a.Z {
		b.WriteByte('z')
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

func (a *Axes) UnmarshalText(text []byte) error {
	v, err := ParseAxes(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Axes) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
