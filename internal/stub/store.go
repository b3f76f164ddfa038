// Package stub is an in-memory double of the shop backend, faithful to the
// documented REST contract. It backs the integration tests and local
// development; it is not a product backend.
package stub

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"laban/internal/model"
	"laban/internal/status"
)

var (
	ErrVenteIntrouvable  = errors.New("Vente introuvable")
	ErrItemIntrouvable   = errors.New("Article de vente introuvable")
	ErrRetourIntrouvable = errors.New("Retour fournisseur introuvable")
)

// Store holds the whole dataset behind one mutex. Handlers mutate it the way
// the real backend would: payments accumulate, cancel/return are terminal,
// stock moves only as a side effect of the documented operations.
type Store struct {
	mu sync.Mutex

	clients   map[int64]*model.Client
	produits  map[int64]*model.Produit
	ventes    map[int64]*model.Vente
	items     map[int64]*model.VenteItem
	retours   map[int64]*model.RetourDefectueux
	fretours  map[int64]*model.RetourFournisseur
	seq       int64
}

func NewStore() *Store {
	return &Store{
		clients:  make(map[int64]*model.Client),
		produits: make(map[int64]*model.Produit),
		ventes:   make(map[int64]*model.Vente),
		items:    make(map[int64]*model.VenteItem),
		retours:  make(map[int64]*model.RetourDefectueux),
		fretours: make(map[int64]*model.RetourFournisseur),
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// ── Seeding ──────────────────────────────────────────────────────────────────

// AjouterClient registers a client and returns it with its id set.
func (s *Store) AjouterClient(c model.Client) model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.clients[c.ID] = &c
	return c
}

// AjouterProduit registers a product and returns it with its id set.
func (s *Store) AjouterProduit(p model.Produit) model.Produit {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID()
	s.produits[p.ID] = &p
	return p
}

// AjouterVente registers a sale and its items; ids are assigned here.
func (s *Store) AjouterVente(v model.Vente) model.Vente {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID()
	if v.DateVente.IsZero() {
		v.DateVente = time.Now()
	}
	items := v.Items
	v.Items = nil
	for i := range items {
		it := items[i]
		it.ID = s.nextID()
		it.VenteID = v.ID
		if it.Statut == "" {
			it.Statut = status.ItemActif
		}
		s.items[it.ID] = &it
	}
	s.ventes[v.ID] = &v
	return v
}

// Produit returns a copy of the product, for stock assertions in tests.
func (s *Store) Produit(id int64) (model.Produit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.produits[id]
	if !ok {
		return model.Produit{}, false
	}
	return *p, true
}

// ── Ventes ───────────────────────────────────────────────────────────────────

// ListeVentes returns all sales, items excluded (fetched separately like the
// real backend).
func (s *Store) ListeVentes() []model.Vente {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Vente, 0, len(s.ventes))
	for _, v := range s.ventes {
		out = append(out, *v)
	}
	trierVentes(out)
	return out
}

// ItemsDeVente returns the line items of one sale.
func (s *Store) ItemsDeVente(venteID int64) ([]model.VenteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ventes[venteID]; !ok {
		return nil, ErrVenteIntrouvable
	}
	var out []model.VenteItem
	for _, it := range s.items {
		if it.VenteID == venteID {
			out = append(out, *it)
		}
	}
	trierItems(out)
	return out, nil
}

// AppliquerPaiement adds montant to the sale's cumulative paid total.
// Delta contract: each call carries only the newly entered amount.
func (s *Store) AppliquerPaiement(venteID int64, montant decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ventes[venteID]
	if !ok {
		return ErrVenteIntrouvable
	}
	if !montant.IsPositive() {
		return errors.New("Le montant payé doit être positif")
	}
	v.MontantPaye = v.MontantPaye.Add(montant)
	return nil
}

// AnnulerItem sets the item to "annulé", terminally.
func (s *Store) AnnulerItem(itemID int64, raison string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return ErrItemIntrouvable
	}
	if status.ItemFerme(it.Statut) {
		return fmt.Errorf("L'article %d est déjà clôturé", itemID)
	}
	it.Statut = status.ItemAnnule
	it.CancellationReason = &raison
	return nil
}

// RetournerDefectueux marks the item "retourné" and records the defective
// return with a client/product snapshot for later filtering.
func (s *Store) RetournerDefectueux(itemID int64, raison string, quantite int) (*model.RetourDefectueux, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return nil, ErrItemIntrouvable
	}
	if status.ItemFerme(it.Statut) {
		return nil, fmt.Errorf("L'article %d est déjà clôturé", itemID)
	}
	if quantite <= 0 || quantite > it.QuantiteVendue {
		return nil, errors.New("Quantité retournée invalide")
	}
	v := s.ventes[it.VenteID]
	it.Statut = status.ItemRetourne

	r := &model.RetourDefectueux{
		ID:                s.nextID(),
		VenteItemID:       it.ID,
		ClientID:          v.ClientID,
		ClientNom:         v.ClientNom,
		ProduitID:         it.ProduitID,
		Marque:            it.Marque,
		Modele:            it.Modele,
		QuantiteRetournee: quantite,
		Raison:            raison,
		DateRetour:        time.Now(),
	}
	s.retours[r.ID] = r
	return r, nil
}

// ListeDettes returns the sales with an outstanding balance.
func (s *Store) ListeDettes() []model.Vente {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Vente
	for _, v := range s.ventes {
		if v.MontantTotal.GreaterThan(v.MontantPaye) {
			out = append(out, *v)
		}
	}
	trierVentes(out)
	return out
}

// ── Retours ──────────────────────────────────────────────────────────────────

// ListeRetoursDefectueux returns every recorded defective return.
func (s *Store) ListeRetoursDefectueux() []model.RetourDefectueux {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.RetourDefectueux, 0, len(s.retours))
	for _, r := range s.retours {
		out = append(out, *r)
	}
	trierRetours(out)
	return out
}

// CreerRetourFournisseur bundles defective returns into one supplier return
// starting in "en_attente_envoi".
func (s *Store) CreerRetourFournisseur(r model.RetourFournisseur) (model.RetourFournisseur, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(r.Lignes) == 0 {
		return model.RetourFournisseur{}, errors.New("Au moins un retour défectueux est requis")
	}
	r.ID = s.nextID()
	r.Statut = status.RetourEnAttenteEnvoi
	if r.DateEnvoi.IsZero() {
		r.DateEnvoi = time.Now()
	}
	for i := range r.Lignes {
		r.Lignes[i].ID = s.nextID()
		if rd, ok := s.retours[r.Lignes[i].DefectiveReturnID]; ok {
			rd.RetourFournisseurID = &r.ID
		}
	}
	s.fretours[r.ID] = &r
	return r, nil
}

// ListeRetoursFournisseurs filters by status and free-text query.
func (s *Store) ListeRetoursFournisseurs(statut, q string) []model.RetourFournisseur {
	s.mu.Lock()
	defer s.mu.Unlock()
	q = strings.ToLower(q)
	var out []model.RetourFournisseur
	for _, r := range s.fretours {
		if statut != "" && r.Statut != statut {
			continue
		}
		if q != "" && !correspondRetour(r, q) {
			continue
		}
		out = append(out, *r)
	}
	trierFretours(out)
	return out
}

func correspondRetour(r *model.RetourFournisseur, q string) bool {
	if strings.Contains(strings.ToLower(r.Observation), q) {
		return true
	}
	if r.NumeroDossier != nil && strings.Contains(strings.ToLower(*r.NumeroDossier), q) {
		return true
	}
	for _, l := range r.Lignes {
		if strings.Contains(strings.ToLower(l.Raison), q) {
			return true
		}
	}
	return false
}

// ChangerStatutRetourFournisseur persists a transition. When reintegrer is
// true and the new status is "remplace" or "repare", each bundled product's
// stock is incremented by the returned quantity.
func (s *Store) ChangerStatutRetourFournisseur(id int64, statut string, dateReception *time.Time, reintegrer bool, observation *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.fretours[id]
	if !ok {
		return ErrRetourIntrouvable
	}
	if !status.StatutRetourValide(statut) {
		return fmt.Errorf("Statut %q inconnu", statut)
	}
	r.Statut = statut
	r.DateReception = dateReception
	if observation != nil {
		r.Observation = *observation
	}
	if reintegrer && status.PeutReintegrerStock(statut) {
		for _, l := range r.Lignes {
			if p, ok := s.produits[l.ProduitID]; ok {
				p.Quantite += l.QuantiteRetournee
			}
		}
	}
	return nil
}
