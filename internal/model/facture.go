package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Facture is an invoice generated from a wholesale ("gros") sale.
// Statut: "emise" | "payee" | "annulee"
type Facture struct {
	ID              int64           `json:"id"`
	VenteID         int64           `json:"vente_id"`
	Numero          string          `json:"numero"`
	DateFacture     time.Time       `json:"date_facture"`
	MontantOriginal decimal.Decimal `json:"montant_original"`
	MontantPaye     decimal.Decimal `json:"montant_paye"`
	Statut          string          `json:"statut"`
}

// Utilisateur is the authenticated user snapshot cached alongside the token.
type Utilisateur struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}
