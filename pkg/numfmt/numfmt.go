// Package numfmt renders rented phone numbers in the display format a profile prefers.
package numfmt

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

type Format string

const (
	Plus   Format = "plus"
	NoPlus Format = "noplus"
	Local  Format = "local"
)

const Default = Plus

func Parse(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Plus, NoPlus, Local:
		return f, true
	default:
		return "", false
	}
}

// Apply formats raw (digits, optionally with a leading '+') according to f.
// Unknown formats leave the number as received.
func Apply(raw string, f Format) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return raw
	}
	switch f {
	case Plus:
		return "+" + digits
	case NoPlus:
		return digits
	case Local:
		return local(digits)
	default:
		return raw
	}
}

func local(digits string) string {
	num, err := phonenumbers.Parse("+"+digits, "")
	if err != nil || num.GetCountryCode() == 0 {
		return digits
	}
	return "0" + phonenumbers.GetNationalSignificantNumber(num)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
