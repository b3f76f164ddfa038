package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laban/internal/model"
	"laban/internal/service"
)

func TestDettesXLSX(t *testing.T) {
	tel := "0700010203"
	projection := service.ProjeterDettes([]model.Vente{
		{
			ClientNom:       "Moussa Traoré",
			ClientTelephone: &tel,
			DateVente:       time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC),
			MontantTotal:    decimal.NewFromInt(100000),
			MontantPaye:     decimal.NewFromInt(40000),
		},
		{
			ClientNom:    "Awa Diallo",
			DateVente:    time.Date(2025, 8, 20, 16, 30, 0, 0, time.UTC),
			MontantTotal: decimal.NewFromInt(50000),
		},
	})

	chemin := filepath.Join(t.TempDir(), "dettes.xlsx")
	require.NoError(t, DettesXLSX(projection, chemin))

	f, err := excelize.OpenFile(chemin)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Dettes"}, f.GetSheetList())

	lire := func(cell string) string {
		v, err := f.GetCellValue("Dettes", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Client", lire("A1"))
	assert.Equal(t, "Reste à payer", lire("F1"))

	assert.Equal(t, "Moussa Traoré", lire("A2"))
	assert.Equal(t, "07 00 01 02 03", lire("B2"))
	assert.Equal(t, "14/08/2025", lire("C2"))
	assert.Equal(t, "100 000 FCFA", lire("D2"))
	assert.Equal(t, "40 000 FCFA", lire("E2"))
	assert.Equal(t, "60 000 FCFA", lire("F2"))

	assert.Equal(t, "Awa Diallo", lire("A3"))
	assert.Equal(t, "", lire("B3"))
	assert.Equal(t, "50 000 FCFA", lire("F3"))

	// Grand-total row sits right under the last sale.
	assert.Equal(t, "Total", lire("E4"))
	assert.Equal(t, "110 000 FCFA", lire("F4"))
}
