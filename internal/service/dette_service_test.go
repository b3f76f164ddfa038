package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"laban/internal/model"
)

func venteMontants(total, paye int64) model.Vente {
	return model.Vente{
		MontantTotal: decimal.NewFromInt(total),
		MontantPaye:  decimal.NewFromInt(paye),
	}
}

func TestProjeterDettes(t *testing.T) {
	projection := ProjeterDettes([]model.Vente{
		venteMontants(100000, 40000), // reste 60 000
		venteMontants(50000, 0),      // reste 50 000
		venteMontants(15000, 15000),  // soldée
		venteMontants(20000, 25000),  // trop-perçu, reste clampé à 0
	})

	assert.Len(t, projection.Lignes, 2)
	assert.True(t, projection.Lignes[0].Restant.Equal(decimal.NewFromInt(60000)))
	assert.True(t, projection.Lignes[1].Restant.Equal(decimal.NewFromInt(50000)))
	assert.True(t, projection.TotalRestant.Equal(decimal.NewFromInt(110000)))
}

func TestProjeterDettes_AucuneVente(t *testing.T) {
	projection := ProjeterDettes(nil)
	assert.Empty(t, projection.Lignes)
	assert.True(t, projection.TotalRestant.IsZero())
}
