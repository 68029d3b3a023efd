package romannumeral

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
	"github.com/gaurikolhe/roman-numeral-converter/internal/roman"
)

const (
	// MessageInvalidNumber is the response body for query text that is not a number.
	MessageInvalidNumber = "Invalid input: must be a number"
	// MessageOutOfRange is the response body for numbers the converter rejects.
	MessageOutOfRange = "Input must be an integer between 1 and 3999"
)

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Conversion is a successful conversion result.
type Conversion struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Convert parses raw as a base-10 number and converts it. Errors are
// *apperrors.Error values coded CodeInvalidNumber or CodeNumeralOutOfRange.
func Convert(raw string) (Conversion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Conversion{}, apperrors.New(apperrors.CodeInvalidNumber, MessageInvalidNumber)
	}

	n, err := strconv.Atoi(raw)
	if err == nil {
		return convertInt(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		return Conversion{}, apperrors.Wrap(apperrors.CodeNumeralOutOfRange, MessageOutOfRange, err)
	}
	if !decimalNumber.MatchString(raw) {
		return Conversion{}, apperrors.Wrap(apperrors.CodeInvalidNumber, MessageInvalidNumber, err)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Conversion{}, apperrors.Wrap(apperrors.CodeInvalidNumber, MessageInvalidNumber, err)
	}
	output, err := roman.ConvertFloat(f)
	if err != nil {
		return Conversion{}, apperrors.Wrap(apperrors.CodeNumeralOutOfRange, MessageOutOfRange, err)
	}
	return Conversion{Input: strconv.Itoa(int(f)), Output: output}, nil
}

func convertInt(n int) (Conversion, error) {
	output, err := roman.Convert(n)
	if err != nil {
		return Conversion{}, apperrors.Wrap(apperrors.CodeNumeralOutOfRange, MessageOutOfRange, err)
	}
	return Conversion{Input: strconv.Itoa(n), Output: output}, nil
}
