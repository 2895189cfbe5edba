package barchart

import (
	"fmt"
	"strconv"
	"strings"
)

// TextFormatter turns the raw numeric string of an axis tick into its label.
type TextFormatter func(raw string) (string, error)

// DoubleFormatter turns the value of a bar into its item label.
type DoubleFormatter func(v float64) (string, error)

// FormatFloat returns the unformatted string of v, which is also the
// fallback label if a formatter fails.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format formats v. A nil formatter returns the raw value. If f fails or
// panics the raw value is returned together with the error.
func (f TextFormatter) Format(v float64) (label string, err error) {
	raw := FormatFloat(v)
	if f == nil {
		return raw, nil
	}
	defer recoverFormat(raw, &label, &err)
	if label, err = f(raw); err != nil {
		return raw, err
	}
	return label, nil
}

// Format formats v. A nil formatter returns the raw value. If f fails or
// panics the raw value is returned together with the error.
func (f DoubleFormatter) Format(v float64) (label string, err error) {
	raw := FormatFloat(v)
	if f == nil {
		return raw, nil
	}
	defer recoverFormat(raw, &label, &err)
	if label, err = f(v); err != nil {
		return raw, err
	}
	return label, nil
}

// recoverFormat turns a panicking formatter into a failed one.
func recoverFormat(raw string, label *string, err *error) {
	if r := recover(); r != nil {
		*label = raw
		*err = fmt.Errorf("formatter panicked: %v", r)
	}
}

// PercentFormatter parses the raw tick value and prints it with the given
// number of decimals followed by a percent sign.
func PercentFormatter(decimals int) TextFormatter {
	return func(raw string) (string, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%.*f%%", decimals, v), nil
	}
}

// FixedFormatter prints a value with the given number of decimals and an
// optional suffix.
func FixedFormatter(decimals int, suffix string) DoubleFormatter {
	return func(v float64) (string, error) {
		return fmt.Sprintf("%.*f%s", decimals, v, suffix), nil
	}
}

// TextFormat wraps a DoubleFormatter so it can format axis ticks.
func TextFormat(f DoubleFormatter) TextFormatter {
	if f == nil {
		return nil
	}
	return func(raw string) (string, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", err
		}
		return f(v)
	}
}

// PrintfFormatter formats values with a fmt verb like "%.1f%%". A format
// not matching a single float operand fails.
func PrintfFormatter(format string) DoubleFormatter {
	return func(v float64) (string, error) {
		s := fmt.Sprintf(format, v)
		if strings.Contains(s, "%!") {
			return "", fmt.Errorf("bad format %q for %g", format, v)
		}
		return s, nil
	}
}
