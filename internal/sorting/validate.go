package sorting

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/algotrace/internal/trace"
)

func validate(op string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return trace.InvalidInput(op, "value %v at index %d is not finite", v, i)
		}
	}
	return nil
}

// ParseValues reads a list of numbers separated by commas or whitespace.
// Tokens that are not finite numbers are rejected.
func ParseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, trace.InvalidArgument("sorting.ParseValues", "%q is not a finite number", f)
		}
		values = append(values, v)
	}
	return values, nil
}
