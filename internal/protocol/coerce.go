package protocol

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TimeStampLayout is the fixed layout of *TimeStamp fields, e.g. 18-Jan-13 14:38:04.
const TimeStampLayout = "02-Jan-06 15:04:05"

// ShortDateLayout is the MM/DD/YY shape recognized in any text leaf.
const ShortDateLayout = "01/02/06"

var binaryFields = map[string]struct{}{
	"packingList":         {},
	"proformaFileData":    {},
	"returnLabelFileData": {},
}

var shortDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)

var errInvalidDate = errors.New("date out of range")

// IsBinaryField reports whether field always carries base64 content.
func IsBinaryField(field string) bool {
	_, ok := binaryFields[field]
	return ok
}

// RuleFor returns the coercion rule Coerce applies to (field, text).
func RuleFor(field, text string) Rule {
	switch {
	case IsBinaryField(field):
		return RuleBinary
	case shortDate.MatchString(text):
		return RuleDate
	case strings.HasSuffix(field, "Price"):
		return RulePrice
	case strings.HasSuffix(field, "TimeStamp"):
		return RuleTimeStamp
	case field == "Y" || field == "N":
		// keyed on the field name, not the text
		return RuleFlag
	default:
		return RuleText
	}
}

// Coerce converts a leaf's text into a typed value based on its field name
// and text shape.
func Coerce(field, text string) (Value, error) {
	rule := RuleFor(field, text)
	switch rule {
	case RuleBinary:
		b, err := decodeBase64(text)
		if err != nil {
			return Value{}, &CoercionError{Field: field, Text: text, Rule: rule, Err: err}
		}
		return Bytes(b), nil
	case RuleDate:
		d, err := parseShortDate(text)
		if err != nil {
			return Value{}, &CoercionError{Field: field, Text: text, Rule: rule, Err: err}
		}
		return Date(d), nil
	case RulePrice:
		f, err := parsePrice(text)
		if err != nil {
			return Value{}, &CoercionError{Field: field, Text: text, Rule: rule, Err: err}
		}
		return Float(f), nil
	case RuleTimeStamp:
		ts, err := time.Parse(TimeStampLayout, strings.TrimSpace(text))
		if err != nil {
			return Value{}, &CoercionError{Field: field, Text: text, Rule: rule, Err: err}
		}
		return DateTime(ts), nil
	case RuleFlag:
		return Bool(text == "Y"), nil
	default:
		return String(text), nil
	}
}

func decodeBase64(text string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return base64.StdEncoding.DecodeString(clean)
}

// parseShortDate reads MM/DD/YY with the year taken as 2000+YY.
func parseShortDate(text string) (time.Time, error) {
	month, _ := strconv.Atoi(text[0:2])
	day, _ := strconv.Atoi(text[3:5])
	year, _ := strconv.Atoi(text[6:8])
	t := time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %s", errInvalidDate, text)
	}
	return t, nil
}

// parsePrice drops letters, whitespace, commas and currency symbols, then
// parses what is left.
func parsePrice(text string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == ',' || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, text)
	return strconv.ParseFloat(clean, 64)
}
