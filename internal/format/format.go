// Package format renders money, phone numbers and dates the way the shop
// displays them. Parsing helpers round-trip with the formatters.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MontantFCFA formats an amount grouped by thousands with no decimal places
// and the "FCFA" suffix, e.g. 1234567 → "1 234 567 FCFA".
// Amounts are plain numbers on the wire; rounding happens only at display.
func MontantFCFA(montant decimal.Decimal) string {
	entier := montant.Round(0).IntPart()
	return groupeMilliers(entier) + " FCFA"
}

func groupeMilliers(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := decimal.NewFromInt(n).String()
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ChiffresSeuls strips every non-digit rune. Phone numbers are stored
// digits-only; this is the inverse of Telephone.
func ChiffresSeuls(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Telephone groups a digits-only phone number in pairs for display,
// e.g. "0700010203" → "07 00 01 02 03". Inputs that are not plain digits are
// normalized first; anything else is returned untouched.
func Telephone(num string) string {
	digits := ChiffresSeuls(num)
	if digits == "" {
		return num
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%2 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DateFR renders a date as jj/mm/aaaa (fr-FR short form).
func DateFR(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateHeureFR renders a timestamp as jj/mm/aaaa hh:mm.
func DateHeureFR(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// ParseMontant parses a user-entered amount. Grouping spaces and a trailing
// "FCFA" are tolerated, a decimal comma is accepted. Returns an error when
// the input is not a number.
func ParseMontant(saisie string) (decimal.Decimal, error) {
	s := strings.TrimSpace(saisie)
	s = strings.TrimSuffix(s, "FCFA")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
