package flower

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam is returned for drawing parameters that cannot produce
// a flower.
var ErrInvalidParam = errors.New("invalid parameter")

const (
	// PetalShapeMax is the largest petal shape; it also scales petal counts.
	PetalShapeMax = 11
	// RingShapeMax bounds the inner ring parameter.
	RingShapeMax = 9
	// CircleShapeMax scales the inner circle radius.
	CircleShapeMax = 13
)

// Params are the user-facing drawing parameters. PetalColor is an angle
// in degrees on the petal color wheel; 0 draws white petals.
type Params struct {
	PetalColor  float64
	PetalShape  float64
	CircleShape float64
	RingShape   float64
	CircleColor float64
}

// DefaultParams returns the parameters of the first flower: every shape
// parameter at 1 and the fixed ring and circle color of 4.5.
func DefaultParams() Params {
	return Params{
		PetalColor:  1,
		PetalShape:  1,
		CircleShape: 1,
		RingShape:   4.5,
		CircleColor: 4.5,
	}
}

// Validate checks every parameter for a value the drawing routine can use.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"petal color", p.PetalColor},
		{"petal shape", p.PetalShape},
		{"circle shape", p.CircleShape},
		{"ring shape", p.RingShape},
		{"circle color", p.CircleColor},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrInvalidParam)
		}
	}

	if p.PetalShape <= 0 || p.PetalShape > PetalShapeMax {
		return fmt.Errorf("petal shape %v not in (0, %d]: %w", p.PetalShape, PetalShapeMax, ErrInvalidParam)
	}
	if p.RingShape < 0 || p.RingShape > RingShapeMax {
		return fmt.Errorf("ring shape %v not in [0, %d]: %w", p.RingShape, RingShapeMax, ErrInvalidParam)
	}
	if p.CircleShape < 0 {
		return fmt.Errorf("circle shape %v is negative: %w", p.CircleShape, ErrInvalidParam)
	}
	return nil
}
