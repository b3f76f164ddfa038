package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit is a catalog entry.
// Type: "carton" | "arrivage" | "accessoire"
// Quantite is mutated by the backend as a side effect of sales, returns and
// supplier reintegration — this client only ever reads it back.
type Produit struct {
	ID            int64           `json:"id"`
	Marque        string          `json:"marque"`
	Modele        string          `json:"modele"`
	Stockage      *string         `json:"stockage"`
	Type          string          `json:"type"`
	FournisseurID *int64          `json:"fournisseur_id"`
	Quantite      int             `json:"quantite"`
	PrixAchat     decimal.Decimal `json:"prix_achat"`
	// PrixVenteSuggere must exceed PrixAchat at creation/edit time.
	PrixVenteSuggere decimal.Decimal `json:"prix_vente_suggere"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Fournisseur is a supplier reference.
type Fournisseur struct {
	ID        int64   `json:"id"`
	Nom       string  `json:"nom"`
	Telephone *string `json:"telephone"`
	Adresse   *string `json:"adresse"`
}
