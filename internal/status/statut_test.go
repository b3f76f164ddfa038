package status

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"laban/internal/model"
)

func vente(total, paye int64, statuts ...string) model.Vente {
	v := model.Vente{
		MontantTotal: decimal.NewFromInt(total),
		MontantPaye:  decimal.NewFromInt(paye),
	}
	for _, s := range statuts {
		v.Items = append(v.Items, model.VenteItem{Statut: s})
	}
	return v
}

func TestDeriveVente_TousItemsFermes(t *testing.T) {
	// All items closed wins over any payment state.
	assert.Equal(t, VenteAnnulee, DeriveVente(vente(100000, 0, ItemAnnule)))
	assert.Equal(t, VenteAnnulee, DeriveVente(vente(100000, 100000, ItemRetourne)))
	assert.Equal(t, VenteAnnulee, DeriveVente(vente(50000, 20000, ItemAnnule, ItemRetourne)))
}

func TestDeriveVente_TotalZero(t *testing.T) {
	assert.Equal(t, VenteAnnulee, DeriveVente(vente(0, 0, ItemActif)))
}

func TestDeriveVente_SansItems(t *testing.T) {
	// Never expected in valid data, but must not crash: vacuously all closed.
	assert.Equal(t, VenteAnnulee, DeriveVente(vente(100000, 40000)))
}

func TestDeriveVente_Payee(t *testing.T) {
	assert.Equal(t, VentePayee, DeriveVente(vente(100000, 100000, ItemVendu)))
	// Over-payment still derives payé; restant is clamped to zero.
	assert.Equal(t, VentePayee, DeriveVente(vente(100000, 120000, ItemActif)))
}

func TestDeriveVente_PaiementPartiel(t *testing.T) {
	assert.Equal(t, VentePaiementPartiel, DeriveVente(vente(100000, 40000, ItemActif)))
}

func TestDeriveVente_EnAttente(t *testing.T) {
	assert.Equal(t, VenteEnAttente, DeriveVente(vente(100000, 0, ItemActif)))
	// One closed item does not close the sale while another stays active.
	assert.Equal(t, VenteEnAttente, DeriveVente(vente(100000, 0, ItemAnnule, ItemActif)))
}

// Scenario from the Sorties workflow: pending → partial → paid as payments
// accumulate on the backend and the sale is re-derived after each refetch.
func TestDeriveVente_ParcoursPaiement(t *testing.T) {
	v := vente(100000, 0, ItemActif)
	assert.Equal(t, VenteEnAttente, DeriveVente(v))

	v.MontantPaye = decimal.NewFromInt(40000)
	assert.Equal(t, VentePaiementPartiel, DeriveVente(v))
	assert.True(t, Restant(v).Equal(decimal.NewFromInt(60000)))

	v.MontantPaye = decimal.NewFromInt(100000)
	assert.Equal(t, VentePayee, DeriveVente(v))
	assert.True(t, Restant(v).IsZero())
}

// Cancelling the only line item cancels the sale even with an unpaid total.
func TestDeriveVente_AnnulationDernierItem(t *testing.T) {
	v := vente(100000, 0, ItemActif)
	assert.Equal(t, VenteEnAttente, DeriveVente(v))

	v.Items[0].Statut = ItemAnnule
	assert.Equal(t, VenteAnnulee, DeriveVente(v))
}

func TestRestant_JamaisNegatif(t *testing.T) {
	assert.True(t, Restant(vente(100000, 150000)).IsZero())
	assert.True(t, Restant(vente(100000, 30000)).Equal(decimal.NewFromInt(70000)))
}

func TestLibelleItem(t *testing.T) {
	assert.Equal(t, "Vendu", LibelleItem(ItemVendu))
	assert.Equal(t, "En Cours", LibelleItem(ItemActif))
	assert.Equal(t, "Annulé", LibelleItem(ItemAnnule))
	// Intentional divergence: a returned item reads as replaced.
	assert.Equal(t, "Remplacé", LibelleItem(ItemRetourne))
}
