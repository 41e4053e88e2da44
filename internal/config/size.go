package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// sizeUnits maps accepted suffixes to their byte multipliers.
var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a request body limit such as "64K" or "1MB" into bytes.
// An empty value yields the default API body limit.
func ParseSize(value string) (int64, error) {
	spec := strings.ToUpper(strings.TrimSpace(value))
	if spec == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	digits := strings.TrimRightFunc(spec, func(r rune) bool { return !unicode.IsDigit(r) })
	unit := strings.TrimSpace(spec[len(digits):])
	digits = strings.TrimSpace(digits)
	if digits == "" {
		return 0, fmt.Errorf("size %q has no numeric part", value)
	}

	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("size %q has unknown unit %q", value, unit)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q is not a whole number: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("size %q cannot be negative", value)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size %q is too large", value)
	}
	return n * multiplier, nil
}
