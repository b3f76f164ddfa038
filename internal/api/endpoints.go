package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"laban/internal/model"
)

const cheminLogin = "/api/login"

// ── Auth ─────────────────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string            `json:"token"`
	Utilisateur model.Utilisateur `json:"utilisateur"`
}

// Login exchanges credentials for a bearer token and installs it in the
// session. Every later call carries the token automatically.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Utilisateur, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, cheminLogin, nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	u := resp.Utilisateur
	c.sess.Definir(resp.Token, &u)
	return &u, nil
}

// ── Ventes ───────────────────────────────────────────────────────────────────

// ListeVentes returns all sales, items not included — fetch them per sale
// with ItemsDeVente.
func (c *Client) ListeVentes(ctx context.Context) ([]model.Vente, error) {
	var ventes []model.Vente
	if err := c.do(ctx, http.MethodGet, "/api/ventes", nil, nil, &ventes); err != nil {
		return nil, err
	}
	return ventes, nil
}

// ItemsDeVente returns the line items of one sale.
func (c *Client) ItemsDeVente(ctx context.Context, venteID int64) ([]model.VenteItem, error) {
	var items []model.VenteItem
	path := fmt.Sprintf("/api/vente_items/vente/%d", venteID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PaiementRequest applies one payment to a sale. MontantPaye is the single
// new amount entered by the user; the backend accumulates it into the sale's
// paid total (delta contract).
type PaiementRequest struct {
	VenteID     int64           `json:"vente_id"`
	MontantPaye decimal.Decimal `json:"montant_paye"`
}

// Payer applies a payment. The caller refetches the sale afterwards; nothing
// is patched locally.
func (c *Client) Payer(ctx context.Context, req PaiementRequest) error {
	return c.do(ctx, http.MethodPut, "/api/ventes/payment", nil, req, nil)
}

// AnnulationItemRequest cancels one line item, terminally.
type AnnulationItemRequest struct {
	VenteItemID        int64  `json:"vente_item_id"`
	CancellationReason string `json:"cancellation_reason"`
}

// AnnulerItem asks the backend to set the item status to "annulé".
func (c *Client) AnnulerItem(ctx context.Context, req AnnulationItemRequest) error {
	return c.do(ctx, http.MethodPut, "/api/ventes/cancel-item", nil, req, nil)
}

// RetourDefectueuxRequest flags a line item defective: the backend marks it
// "retourné" and records a defective return.
type RetourDefectueuxRequest struct {
	VenteItemID       int64  `json:"vente_item_id"`
	Reason            string `json:"reason"`
	QuantiteRetournee int    `json:"quantite_retournee"`
}

// RetournerDefectueux creates a defective return for a line item.
func (c *Client) RetournerDefectueux(ctx context.Context, req RetourDefectueuxRequest) error {
	return c.do(ctx, http.MethodPost, "/api/ventes/return-defective", nil, req, nil)
}

// ── Dettes ───────────────────────────────────────────────────────────────────

// ListeDettes returns the sales with an outstanding balance.
func (c *Client) ListeDettes(ctx context.Context) ([]model.Vente, error) {
	var ventes []model.Vente
	if err := c.do(ctx, http.MethodGet, "/api/dettes", nil, nil, &ventes); err != nil {
		return nil, err
	}
	return ventes, nil
}

// ── Retours ──────────────────────────────────────────────────────────────────

// ListeRetoursDefectueux returns every recorded defective return.
func (c *Client) ListeRetoursDefectueux(ctx context.Context) ([]model.RetourDefectueux, error) {
	var retours []model.RetourDefectueux
	if err := c.do(ctx, http.MethodGet, "/api/defective_returns", nil, nil, &retours); err != nil {
		return nil, err
	}
	return retours, nil
}

// FiltreRetoursFournisseurs is passed through as query parameters; the
// filtering itself is server-side.
type FiltreRetoursFournisseurs struct {
	Statut string
	Q      string
}

// ListeRetoursFournisseurs lists supplier returns, optionally filtered.
func (c *Client) ListeRetoursFournisseurs(ctx context.Context, filtre FiltreRetoursFournisseurs) ([]model.RetourFournisseur, error) {
	query := url.Values{}
	if filtre.Statut != "" {
		query.Set("statut", filtre.Statut)
	}
	if filtre.Q != "" {
		query.Set("q", filtre.Q)
	}
	var retours []model.RetourFournisseur
	if err := c.do(ctx, http.MethodGet, "/api/retours-fournisseurs", query, nil, &retours); err != nil {
		return nil, err
	}
	return retours, nil
}

// LigneRetourFournisseurRequest is one bundled defective return.
type LigneRetourFournisseurRequest struct {
	ProduitID         int64  `json:"product_id"`
	QuantiteRetournee int    `json:"quantite_retournee"`
	Raison            string `json:"raison"`
	DefectiveReturnID int64  `json:"defective_return_id"`
}

// CreerRetourFournisseurRequest bundles defective returns into one shipment
// to a supplier.
type CreerRetourFournisseurRequest struct {
	FournisseurID *int64                          `json:"fournisseur_id"`
	NumeroDossier *string                         `json:"numero_dossier"`
	Observation   string                          `json:"observation"`
	DateEnvoi     string                          `json:"date_envoi"`
	Lignes        []LigneRetourFournisseurRequest `json:"lignes"`
}

// CreerRetourFournisseur creates a supplier return.
func (c *Client) CreerRetourFournisseur(ctx context.Context, req CreerRetourFournisseurRequest) (*model.RetourFournisseur, error) {
	var retour model.RetourFournisseur
	if err := c.do(ctx, http.MethodPost, "/api/retours-fournisseurs", nil, req, &retour); err != nil {
		return nil, err
	}
	return &retour, nil
}

// ChangementStatutRequest moves a supplier return to a new status.
// ReintegrerStock is only meaningful for "remplace" and "repare": the backend
// then increments the product stock by the returned quantity.
type ChangementStatutRequest struct {
	Statut          string  `json:"statut_retour_fournisseur"`
	DateReception   *string `json:"date_reception"`
	ReintegrerStock bool    `json:"reintegrer_stock"`
	Observation     *string `json:"observation"`
}

// ChangerStatutRetourFournisseur persists a status transition.
func (c *Client) ChangerStatutRetourFournisseur(ctx context.Context, id int64, req ChangementStatutRequest) error {
	path := fmt.Sprintf("/api/retours-fournisseurs/%d/statut", id)
	return c.do(ctx, http.MethodPut, path, nil, req, nil)
}
