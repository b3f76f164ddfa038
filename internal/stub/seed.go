package stub

import (
	"time"

	"github.com/shopspring/decimal"

	"laban/internal/model"
	"laban/internal/status"
)

func ptr[T any](v T) *T { return &v }

// Seed loads a small demo dataset: three clients, a handful of phones, sales
// in every derived state and one defective return awaiting a supplier
// shipment.
func Seed(store *Store) {
	moussa := store.AjouterClient(model.Client{Nom: "Moussa Traoré", Telephone: "0700010203", Adresse: ptr("Grand Marché")})
	awa := store.AjouterClient(model.Client{Nom: "Awa Diarra", Telephone: "0655443322"})
	issa := store.AjouterClient(model.Client{Nom: "Issa Koné", Telephone: "0788990011"})

	iphone13 := store.AjouterProduit(model.Produit{
		Marque: "Apple", Modele: "iPhone 13", Stockage: ptr("128 Go"), Type: "carton",
		Quantite: 4, PrixAchat: decimal.NewFromInt(250000), PrixVenteSuggere: decimal.NewFromInt(320000),
	})
	redmi := store.AjouterProduit(model.Produit{
		Marque: "Xiaomi", Modele: "Redmi Note 12", Stockage: ptr("256 Go"), Type: "arrivage",
		Quantite: 9, PrixAchat: decimal.NewFromInt(95000), PrixVenteSuggere: decimal.NewFromInt(135000),
	})
	chargeur := store.AjouterProduit(model.Produit{
		Marque: "Samsung", Modele: "Chargeur 25W", Type: "accessoire",
		Quantite: 30, PrixAchat: decimal.NewFromInt(4000), PrixVenteSuggere: decimal.NewFromInt(7500),
	})

	// En attente: nothing paid yet.
	store.AjouterVente(model.Vente{
		ClientID: moussa.ID, ClientNom: moussa.Nom, ClientTelephone: ptr(moussa.Telephone),
		DateVente:    time.Now().AddDate(0, 0, -3),
		MontantTotal: decimal.NewFromInt(320000),
		Items: []model.VenteItem{{
			ProduitID: iphone13.ID, Marque: iphone13.Marque, Modele: iphone13.Modele,
			Stockage: iphone13.Stockage, Type: iphone13.Type,
			QuantiteVendue: 1, PrixUnitaireNegocie: decimal.NewFromInt(320000),
		}},
	})

	// Paiement partiel on a wholesale sale.
	store.AjouterVente(model.Vente{
		ClientID: awa.ID, ClientNom: awa.Nom, ClientTelephone: ptr(awa.Telephone),
		DateVente:    time.Now().AddDate(0, 0, -2),
		MontantTotal: decimal.NewFromInt(675000),
		MontantPaye:  decimal.NewFromInt(400000),
		EstGros:      true,
		Items: []model.VenteItem{{
			ProduitID: redmi.ID, Marque: redmi.Marque, Modele: redmi.Modele,
			Stockage: redmi.Stockage, Type: redmi.Type,
			QuantiteVendue: 5, PrixUnitaireNegocie: decimal.NewFromInt(135000),
		}},
	})

	// Payée.
	store.AjouterVente(model.Vente{
		ClientID: issa.ID, ClientNom: issa.Nom, ClientTelephone: ptr(issa.Telephone),
		DateVente:    time.Now().AddDate(0, 0, -1),
		MontantTotal: decimal.NewFromInt(15000),
		MontantPaye:  decimal.NewFromInt(15000),
		Items: []model.VenteItem{{
			ProduitID: chargeur.ID, Marque: chargeur.Marque, Modele: chargeur.Modele,
			Type: chargeur.Type, Statut: status.ItemVendu,
			QuantiteVendue: 2, PrixUnitaireNegocie: decimal.NewFromInt(7500),
		}},
	})

	// A defective unit already returned by the customer, ready to bundle.
	vDefaut := store.AjouterVente(model.Vente{
		ClientID: moussa.ID, ClientNom: moussa.Nom, ClientTelephone: ptr(moussa.Telephone),
		DateVente:    time.Now().AddDate(0, 0, -7),
		MontantTotal: decimal.NewFromInt(135000),
		MontantPaye:  decimal.NewFromInt(135000),
		Items: []model.VenteItem{{
			ProduitID: redmi.ID, Marque: redmi.Marque, Modele: redmi.Modele,
			Stockage: redmi.Stockage, Type: redmi.Type,
			QuantiteVendue: 1, PrixUnitaireNegocie: decimal.NewFromInt(135000),
		}},
	})
	items, _ := store.ItemsDeVente(vDefaut.ID)
	if len(items) > 0 {
		_, _ = store.RetournerDefectueux(items[0].ID, "Ecran", 1)
	}
}
