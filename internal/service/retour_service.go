package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"laban/internal/api"
	"laban/internal/apierror"
	"laban/internal/model"
	"laban/internal/status"
)

// RetourFournisseurService drives the defective-return-to-supplier workflow:
// bundle defective returns into a shipment, then walk the shipment through
// its lifecycle. The backend is the actual transition guard; the client only
// warns on non-canonical jumps.
type RetourFournisseurService struct {
	client *api.Client
	logger zerolog.Logger
}

func NewRetourFournisseurService(client *api.Client, logger zerolog.Logger) *RetourFournisseurService {
	return &RetourFournisseurService{client: client, logger: logger}
}

// FiltrerRetoursDefectueux keeps the defective returns matching a free-text
// search over client name, brand and model. Pure; case-insensitive. An empty
// query keeps everything.
func FiltrerRetoursDefectueux(retours []model.RetourDefectueux, recherche string) []model.RetourDefectueux {
	q := strings.ToLower(strings.TrimSpace(recherche))
	if q == "" {
		return retours
	}
	var out []model.RetourDefectueux
	for _, r := range retours {
		if strings.Contains(strings.ToLower(r.ClientNom), q) ||
			strings.Contains(strings.ToLower(r.Marque), q) ||
			strings.Contains(strings.ToLower(r.Modele), q) {
			out = append(out, r)
		}
	}
	return out
}

// RetoursDefectueux lists the recorded defective returns, filtered by the
// free-text search used to pick bundle candidates.
func (s *RetourFournisseurService) RetoursDefectueux(ctx context.Context, recherche string) ([]model.RetourDefectueux, error) {
	retours, err := s.client.ListeRetoursDefectueux(ctx)
	if err != nil {
		return nil, err
	}
	return FiltrerRetoursDefectueux(retours, recherche), nil
}

// CreationRetourFournisseur is the form submitted when bundling defective
// returns into one supplier shipment.
type CreationRetourFournisseur struct {
	FournisseurID *int64
	NumeroDossier *string
	Observation   string
	DateEnvoi     time.Time
	// Selection are the checked defective returns. At least one is required;
	// the request is rejected client-side otherwise.
	Selection []model.RetourDefectueux `validate:"required,min=1"`
}

// Creer bundles the selected defective returns into a new supplier return.
func (s *RetourFournisseurService) Creer(ctx context.Context, req CreationRetourFournisseur) (*model.RetourFournisseur, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apierror.NewValidation("selection", "Sélectionnez au moins un retour défectueux")
	}
	if req.DateEnvoi.IsZero() {
		req.DateEnvoi = time.Now()
	}

	lignes := make([]api.LigneRetourFournisseurRequest, 0, len(req.Selection))
	for _, r := range req.Selection {
		lignes = append(lignes, api.LigneRetourFournisseurRequest{
			ProduitID:         r.ProduitID,
			QuantiteRetournee: r.QuantiteRetournee,
			Raison:            r.Raison,
			DefectiveReturnID: r.ID,
		})
	}

	retour, err := s.client.CreerRetourFournisseur(ctx, api.CreerRetourFournisseurRequest{
		FournisseurID: req.FournisseurID,
		NumeroDossier: req.NumeroDossier,
		Observation:   req.Observation,
		DateEnvoi:     req.DateEnvoi.Format(time.RFC3339),
		Lignes:        lignes,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("retour_fournisseur_id", retour.ID).Int("lignes", len(lignes)).Msg("retour fournisseur créé")
	return retour, nil
}

// Liste returns supplier returns; status and free-text filters are passed
// through to the backend as query parameters.
func (s *RetourFournisseurService) Liste(ctx context.Context, statut, recherche string) ([]model.RetourFournisseur, error) {
	if statut != "" && !status.StatutRetourValide(statut) {
		return nil, apierror.NewValidation("statut", "Statut de retour fournisseur inconnu")
	}
	return s.client.ListeRetoursFournisseurs(ctx, api.FiltreRetoursFournisseurs{Statut: statut, Q: recherche})
}

// ChangementStatut is the form submitted when moving a supplier return to a
// new status.
type ChangementStatut struct {
	Statut        string
	DateReception *time.Time
	// ReintegrerStock is only meaningful when Statut is "remplace" or
	// "repare"; the backend then increments the product stock by the
	// returned quantity. Setting it for any other status is rejected before
	// the network call.
	ReintegrerStock bool
	Observation     *string
}

// ChangerStatut persists a status transition after client-side checks.
func (s *RetourFournisseurService) ChangerStatut(ctx context.Context, id int64, req ChangementStatut) error {
	if !status.StatutRetourValide(req.Statut) {
		return apierror.NewValidation("statut", "Statut de retour fournisseur inconnu")
	}
	if req.ReintegrerStock && !status.PeutReintegrerStock(req.Statut) {
		return apierror.NewValidation("reintegrer_stock", "La réintégration du stock n'est possible que pour un remplacement ou une réparation")
	}

	// Warn on non-canonical jumps; the backend stays the guard.
	if courant, err := s.statutCourant(ctx, id); err == nil && courant != "" {
		if courant != req.Statut && !status.TransitionRetourValide(courant, req.Statut) {
			s.logger.Warn().
				Int64("retour_fournisseur_id", id).
				Str("de", courant).
				Str("vers", req.Statut).
				Msg("transition de statut hors cycle canonique")
		}
	}

	var dateReception *string
	if req.DateReception != nil {
		d := req.DateReception.Format(time.RFC3339)
		dateReception = &d
	}

	err := s.client.ChangerStatutRetourFournisseur(ctx, id, api.ChangementStatutRequest{
		Statut:          req.Statut,
		DateReception:   dateReception,
		ReintegrerStock: req.ReintegrerStock,
		Observation:     req.Observation,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("retour_fournisseur_id", id).Str("statut", req.Statut).Bool("reintegrer_stock", req.ReintegrerStock).Msg("statut retour fournisseur mis à jour")
	return nil
}

func (s *RetourFournisseurService) statutCourant(ctx context.Context, id int64) (string, error) {
	retours, err := s.client.ListeRetoursFournisseurs(ctx, api.FiltreRetoursFournisseurs{})
	if err != nil {
		return "", err
	}
	for _, r := range retours {
		if r.ID == id {
			return r.Statut, nil
		}
	}
	return "", nil
}
