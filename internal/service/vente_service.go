package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"laban/internal/api"
	"laban/internal/apierror"
	"laban/internal/format"
	"laban/internal/model"
	"laban/internal/status"
)

// VenteDetail is a sale with items loaded and its display state derived.
// Never cached: rebuilt from a fresh fetch after every mutation.
type VenteDetail struct {
	model.Vente
	Statut        string
	StatutLibelle string
	Restant       decimal.Decimal
}

// VenteService carries the sale operations: payment, line-item cancellation
// and defective return. Every mutation is followed by a full refetch of the
// affected sale; local state is never patched as a substitute for server
// truth.
type VenteService struct {
	client  *api.Client
	raisons Raisons
	logger  zerolog.Logger
}

func NewVenteService(client *api.Client, raisons Raisons, logger zerolog.Logger) *VenteService {
	return &VenteService{client: client, raisons: raisons, logger: logger}
}

func (s *VenteService) detail(v model.Vente) VenteDetail {
	st := status.DeriveVente(v)
	return VenteDetail{
		Vente:         v,
		Statut:        st,
		StatutLibelle: status.LibelleVente(st),
		Restant:       status.Restant(v),
	}
}

// Liste fetches every sale with its items and derives each display status.
func (s *VenteService) Liste(ctx context.Context) ([]VenteDetail, error) {
	ventes, err := s.client.ListeVentes(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]VenteDetail, 0, len(ventes))
	for _, v := range ventes {
		items, err := s.client.ItemsDeVente(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Items = items
		details = append(details, s.detail(v))
	}
	return details, nil
}

// Detail refetches one sale and its items. There is no single-sale endpoint;
// the list is the source of truth.
func (s *VenteService) Detail(ctx context.Context, venteID int64) (*VenteDetail, error) {
	ventes, err := s.client.ListeVentes(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range ventes {
		if v.ID != venteID {
			continue
		}
		items, err := s.client.ItemsDeVente(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Items = items
		d := s.detail(v)
		return &d, nil
	}
	return nil, apierror.New(404, fmt.Sprintf("Vente %d introuvable", venteID))
}

// Payer applies one payment to a sale. montantSaisi is the raw user input;
// it must parse as a strictly positive number or the request is rejected
// before any network call. The backend accumulates the amount into the
// sale's paid total (delta contract) and stays authoritative for the result.
func (s *VenteService) Payer(ctx context.Context, venteID int64, montantSaisi string) (*VenteDetail, error) {
	montant, err := format.ParseMontant(montantSaisi)
	if err != nil || !montant.IsPositive() {
		return nil, apierror.NewValidation("montant", "Veuillez saisir un montant positif")
	}

	if err := s.client.Payer(ctx, api.PaiementRequest{VenteID: venteID, MontantPaye: montant}); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vente_id", venteID).Str("montant", montant.String()).Msg("paiement enregistré")
	return s.Detail(ctx, venteID)
}

// AnnulerItem cancels one line item, terminally. An empty reason falls back
// to the standard one. Items already closed are rejected before any call.
func (s *VenteService) AnnulerItem(ctx context.Context, venteID, itemID int64, raison string) (*VenteDetail, error) {
	if raison == "" {
		raison = RaisonAnnulationDefaut
	}

	item, err := s.chercherItem(ctx, venteID, itemID)
	if err != nil {
		return nil, err
	}
	if status.ItemFerme(item.Statut) {
		return nil, apierror.NewValidation("item", "Cet article est déjà clôturé")
	}

	if err := s.client.AnnulerItem(ctx, api.AnnulationItemRequest{VenteItemID: itemID, CancellationReason: raison}); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vente_item_id", itemID).Str("raison", raison).Msg("article annulé")
	return s.Detail(ctx, venteID)
}

// RetournerDefectueux flags a line item defective: the backend marks it
// "retourné" and records the defective return. Quantity is only loosely
// enforced client-side — empty, zero and negative inputs are rejected, the
// backend owns the rest of the bookkeeping.
func (s *VenteService) RetournerDefectueux(ctx context.Context, venteID, itemID int64, raison string, quantite int) (*VenteDetail, error) {
	if raison == "" {
		return nil, apierror.NewValidation("raison", "Veuillez indiquer la raison du défaut")
	}
	if quantite <= 0 {
		return nil, apierror.NewValidation("quantite", "La quantité retournée doit être positive")
	}

	item, err := s.chercherItem(ctx, venteID, itemID)
	if err != nil {
		return nil, err
	}
	if status.ItemFerme(item.Statut) {
		return nil, apierror.NewValidation("item", "Cet article est déjà clôturé")
	}

	if err := s.client.RetournerDefectueux(ctx, api.RetourDefectueuxRequest{
		VenteItemID:       itemID,
		Reason:            raison,
		QuantiteRetournee: quantite,
	}); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vente_item_id", itemID).Int("quantite", quantite).Str("raison", raison).Msg("retour défectueux créé")
	return s.Detail(ctx, venteID)
}

func (s *VenteService) chercherItem(ctx context.Context, venteID, itemID int64) (*model.VenteItem, error) {
	items, err := s.client.ItemsDeVente(ctx, venteID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, apierror.New(404, fmt.Sprintf("Article %d introuvable dans la vente %d", itemID, venteID))
}

// RaisonsAnnulation exposes the cancellation vocabulary for the views.
func (s *VenteService) RaisonsAnnulation() []string { return s.raisons.Annulation }

// RaisonsDefaut exposes the defect vocabulary for the views.
func (s *VenteService) RaisonsDefaut() []string { return s.raisons.Defaut }
