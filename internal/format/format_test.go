package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMontantFCFA(t *testing.T) {
	assert.Equal(t, "0 FCFA", MontantFCFA(decimal.Zero))
	assert.Equal(t, "500 FCFA", MontantFCFA(decimal.NewFromInt(500)))
	assert.Equal(t, "60 000 FCFA", MontantFCFA(decimal.NewFromInt(60000)))
	assert.Equal(t, "1 234 567 FCFA", MontantFCFA(decimal.NewFromInt(1234567)))
	// No decimal places at display, whatever the wire carried.
	assert.Equal(t, "1 000 FCFA", MontantFCFA(decimal.NewFromFloat(999.60)))
}

func TestTelephone(t *testing.T) {
	assert.Equal(t, "07 00 01 02 03", Telephone("0700010203"))
	assert.Equal(t, "07 00 01 02 03", Telephone("07 00 01 02 03"))
	assert.Equal(t, "", Telephone(""))
}

func TestTelephone_AllerRetour(t *testing.T) {
	// Grouping into pairs then stripping non-digits returns the original.
	nums := []string{"0700010203", "0123456789", "9999999999"}
	for _, n := range nums {
		assert.Equal(t, n, ChiffresSeuls(Telephone(n)))
	}
}

func TestDateFR(t *testing.T) {
	d := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2025", DateFR(d))
	assert.Equal(t, "09/03/2025 14:30", DateHeureFR(d))
}
