package model

import "time"

// RetourDefectueux records a customer-side return of a faulty unit.
// It references the originating sale line item but does not own it.
// Immutable once created, except through the supplier return workflow.
type RetourDefectueux struct {
	ID                int64     `json:"id"`
	VenteItemID       int64     `json:"vente_item_id"`
	ClientID          int64     `json:"client_id"`
	ClientNom         string    `json:"client_nom"`
	ProduitID         int64     `json:"produit_id"`
	Marque            string    `json:"marque"`
	Modele            string    `json:"modele"`
	QuantiteRetournee int       `json:"quantite_retournee"`
	Raison            string    `json:"raison"`
	DateRetour        time.Time `json:"date_retour"`
	// RetourFournisseurID is set once the return has been bundled into a
	// supplier return.
	RetourFournisseurID *int64 `json:"retour_fournisseur_id"`
}

// RetourFournisseur bundles defective returns sent back to a supplier.
// Statut: "en_attente_envoi" | "envoye" | "recu_fournisseur" | "remplace" |
// "repare" | "avoir" | "rejete" | "cloture"
type RetourFournisseur struct {
	ID            int64                    `json:"id"`
	FournisseurID *int64                   `json:"fournisseur_id"`
	NumeroDossier *string                  `json:"numero_dossier"`
	Observation   string                   `json:"observation"`
	DateEnvoi     time.Time                `json:"date_envoi"`
	Statut        string                   `json:"statut"`
	DateReception *time.Time               `json:"date_reception"`
	Lignes        []LigneRetourFournisseur `json:"lignes"`
}

// LigneRetourFournisseur references a defective return by id — a weak
// reference kept for traceability, not ownership.
type LigneRetourFournisseur struct {
	ID                int64  `json:"id"`
	ProduitID         int64  `json:"product_id"`
	QuantiteRetournee int    `json:"quantite_retournee"`
	Raison            string `json:"raison"`
	DefectiveReturnID int64  `json:"defective_return_id"`
}
