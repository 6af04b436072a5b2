package analysis

import (
	"encoding/json"
	"fmt"
)

// Undefined is how an undefined Average renders as text.
const Undefined = "undefined"

// Average is the result of a division that may have had a zero denominator.
// When Defined is false, Value carries no meaning.
type Average struct {
	Value   float64
	Defined bool
}

// Ratio divides num by den. A zero (or negative) denominator yields an
// undefined Average instead of Inf or NaN.
func Ratio(num, den int) Average {
	if den <= 0 {
		return Average{}
	}
	return Average{Value: float64(num) / float64(den), Defined: true}
}

// String formats the average to two decimal places, or "undefined".
func (a Average) String() string {
	if !a.Defined {
		return Undefined
	}
	return fmt.Sprintf("%.2f", a.Value)
}

// MarshalJSON emits the value as a number, or null when undefined.
func (a Average) MarshalJSON() ([]byte, error) {
	if !a.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// MarshalYAML emits the value as a float, or null when undefined.
func (a Average) MarshalYAML() (interface{}, error) {
	if !a.Defined {
		return nil, nil
	}
	return a.Value, nil
}
