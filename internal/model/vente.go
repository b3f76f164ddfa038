package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vente is a sale aggregate. Items are fetched separately
// (GET /api/vente_items/vente/{id}) and attached by the service layer;
// the backend stays authoritative for MontantPaye and item statuses.
type Vente struct {
	ID              int64           `json:"id"`
	ClientID        int64           `json:"client_id"`
	ClientNom       string          `json:"client_nom"`
	ClientTelephone *string         `json:"client_telephone"`
	DateVente       time.Time       `json:"date_vente"`
	MontantTotal    decimal.Decimal `json:"montant_total"`
	MontantPaye     decimal.Decimal `json:"montant_paye"`
	// EstGros marks a wholesale sale, the only kind eligible for invoicing.
	EstGros bool       `json:"est_gros"`
	Items   []VenteItem `json:"items,omitempty"`
}

// VenteItem is one product line within a sale. The product fields are a
// snapshot taken at sale time, not a live product reference.
// Statut: "actif" | "vendu" | "annulé" | "retourné" — set by the backend in
// response to cancel/return mutations, never locally.
type VenteItem struct {
	ID                  int64           `json:"id"`
	VenteID             int64           `json:"vente_id"`
	ProduitID           int64           `json:"produit_id"`
	Marque              string          `json:"marque"`
	Modele              string          `json:"modele"`
	Stockage            *string         `json:"stockage"`
	Type                string          `json:"type"`
	QuantiteVendue      int             `json:"quantite_vendue"`
	PrixUnitaireNegocie decimal.Decimal `json:"prix_unitaire_negocie"`
	Statut              string          `json:"statut"`
	CancellationReason  *string         `json:"cancellation_reason"`
}
