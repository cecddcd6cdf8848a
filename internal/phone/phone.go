// Package phone formats and validates notification phone numbers.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhoneNumber is returned when a number fails validation.
// It never leaves the client.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// InvalidMessage is the field error shown for an invalid number.
const InvalidMessage = "Please enter a valid phone number"

var e164 = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// Digits strips every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders the digits of s progressively as the user types:
// up to 3 digits as-is, up to 6 as "(AAA) BBB", then "(AAA) BBB-CCCC".
// Digits past the tenth are not rendered.
func Format(s string) string {
	d := Digits(s)
	switch n := len(d); {
	case n < 4:
		return d
	case n < 7:
		return "(" + d[:3] + ") " + d[3:]
	default:
		end := min(n, 10)
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:end]
	}
}

// Validate checks an already normalized number against the E.164 shape.
func Validate(s string) error {
	if !e164.MatchString(s) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

// Normalize strips formatting and validates the result.
func Normalize(s string) (string, error) {
	d := Digits(s)
	if err := Validate(d); err != nil {
		return "", err
	}
	return d, nil
}
