package roman

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// MinValue is the smallest representable numeral value.
	MinValue = 1
	// MaxValue is the largest representable numeral value.
	MaxValue = 3999
)

// ErrOutOfRange matches every *RangeError via errors.Is.
var ErrOutOfRange = errors.New("roman: value must be an integer between 1 and 3999")

// ErrMalformed reports a string that is not a canonical Roman numeral.
var ErrMalformed = errors.New("roman: malformed numeral")

// RangeError reports a value that is fractional or outside [MinValue, MaxValue].
type RangeError struct {
	Value float64
}

// Error renders the rejected value.
func (e *RangeError) Error() string {
	return fmt.Sprintf("roman: %v is not an integer between %d and %d", e.Value, MinValue, MaxValue)
}

// Is reports ErrOutOfRange equivalence.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

type mapping struct {
	value  int
	symbol string
}

// numerals must stay strictly decreasing by value.
var numerals = [...]mapping{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Convert returns the canonical Roman numeral for n.
func Convert(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &RangeError{Value: float64(n)}
	}
	var b strings.Builder
	for _, m := range numerals {
		for n >= m.value {
			b.WriteString(m.symbol)
			n -= m.value
		}
	}
	return b.String(), nil
}

// ConvertFloat converts f when it is integral and in range.
func ConvertFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", &RangeError{Value: f}
	}
	if f < MinValue || f > MaxValue {
		return "", &RangeError{Value: f}
	}
	return Convert(int(f))
}

// Parse decodes a canonical Roman numeral. Lowercase input is accepted.
func Parse(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return 0, ErrMalformed
	}
	total := 0
	rest := upper
	for _, m := range numerals {
		for strings.HasPrefix(rest, m.symbol) {
			total += m.value
			rest = rest[len(m.symbol):]
		}
	}
	if rest != "" || total < MinValue || total > MaxValue {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	// Greedy prefix matching accepts forms like "IIII" or "VV"; re-encoding
	// rejects anything that is not the canonical spelling.
	canonical, err := Convert(total)
	if err != nil || canonical != upper {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return total, nil
}
