// Package status computes every user-facing status in the app from backend
// truth. Nothing here is persisted: a sale's status is re-derived after each
// refetch, never patched locally.
package status

import (
	"github.com/shopspring/decimal"

	"laban/internal/model"
)

// Line item statuses as written by the backend.
const (
	ItemActif    = "actif"
	ItemVendu    = "vendu"
	ItemAnnule   = "annulé"
	ItemRetourne = "retourné"
)

// Derived sale statuses.
const (
	VenteAnnulee         = "annulé"
	VentePayee           = "payé"
	VentePaiementPartiel = "paiement_partiel"
	VenteEnAttente       = "en_attente"
)

// ItemFerme reports whether a line item is closed (cancelled or returned) —
// no further action is possible on it.
func ItemFerme(statut string) bool {
	return statut == ItemAnnule || statut == ItemRetourne
}

// LibelleItem maps a line item status to its display label. The mapping is
// direct, not derived. "retourné" is shown as "Remplacé": the workflow
// implies a replacement unit was issued to the customer.
func LibelleItem(statut string) string {
	switch statut {
	case ItemVendu:
		return "Vendu"
	case ItemActif:
		return "En Cours"
	case ItemAnnule:
		return "Annulé"
	case ItemRetourne:
		return "Remplacé"
	default:
		return statut
	}
}

// Restant returns max(montant_total - montant_paye, 0). Never negative:
// over-payment is a backend concern, not a debt.
func Restant(v model.Vente) decimal.Decimal {
	r := v.MontantTotal.Sub(v.MontantPaye)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// DeriveVente computes the sale's display status from its line items and
// payment totals. Rules are evaluated in this exact order, first match wins:
//
//  1. every item is closed (annulé/retourné), or the total is zero → annulé
//  2. total > 0 and nothing remains to pay → payé
//  3. 0 < paid < total → paiement_partiel
//  4. otherwise → en_attente
//
// A sale with zero items is treated as annulé (the items list is vacuously
// "all closed"); such data is never expected but must not crash.
func DeriveVente(v model.Vente) string {
	tousFermes := true
	for _, item := range v.Items {
		if !ItemFerme(item.Statut) {
			tousFermes = false
			break
		}
	}
	if tousFermes || v.MontantTotal.IsZero() {
		return VenteAnnulee
	}
	if v.MontantTotal.IsPositive() && Restant(v).IsZero() {
		return VentePayee
	}
	if v.MontantPaye.IsPositive() && v.MontantPaye.LessThan(v.MontantTotal) {
		return VentePaiementPartiel
	}
	return VenteEnAttente
}

// LibelleVente maps a derived sale status to its display label.
func LibelleVente(statut string) string {
	switch statut {
	case VenteAnnulee:
		return "Annulée"
	case VentePayee:
		return "Payée"
	case VentePaiementPartiel:
		return "Paiement partiel"
	case VenteEnAttente:
		return "En attente"
	default:
		return statut
	}
}
