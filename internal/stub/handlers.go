package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"laban/internal/apierror"
	"laban/internal/model"
)

// Fixed development credentials — the stub is not a product backend.
const (
	DevEmail    = "admin@laban.dev"
	DevPassword = "laban"
)

// Server exposes the documented REST surface over a Store.
type Server struct {
	store      *Store
	jwtSecret  string
	expiration time.Duration
}

func NewServer(store *Store, jwtSecret string, expiration time.Duration) *Server {
	if expiration <= 0 {
		expiration = 8 * time.Hour
	}
	return &Server{store: store, jwtSecret: jwtSecret, expiration: expiration}
}

// Store exposes the backing store for test seeding and assertions.
func (s *Server) Store() *Store { return s.store }

func repondreErreur(c *gin.Context, status int, err error) {
	c.JSON(status, apierror.New(status, err.Error()))
}

// ── Auth ─────────────────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}
	if req.Email != DevEmail || req.Password != DevPassword {
		c.JSON(http.StatusUnauthorized, apierror.New(http.StatusUnauthorized, "Identifiants incorrects"))
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1",
		"email": req.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiration).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		repondreErreur(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       signed,
		"utilisateur": model.Utilisateur{ID: 1, Nom: "Admin", Email: req.Email},
	})
}

// ── Ventes ───────────────────────────────────────────────────────────────────

func (s *Server) listeVentes(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListeVentes())
}

func (s *Server) itemsDeVente(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "ID invalide"))
		return
	}
	items, err := s.store.ItemsDeVente(id)
	if err != nil {
		repondreErreur(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type paiementRequest struct {
	VenteID     int64           `json:"vente_id" binding:"required"`
	MontantPaye decimal.Decimal `json:"montant_paye"`
}

func (s *Server) payer(c *gin.Context) {
	var req paiementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}
	if err := s.store.AppliquerPaiement(req.VenteID, req.MontantPaye); err != nil {
		repondreErreur(c, http.StatusBadRequest, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type annulationRequest struct {
	VenteItemID        int64  `json:"vente_item_id" binding:"required"`
	CancellationReason string `json:"cancellation_reason"`
}

func (s *Server) annulerItem(c *gin.Context) {
	var req annulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}
	if req.CancellationReason == "" {
		req.CancellationReason = "Erreur de commande"
	}
	if err := s.store.AnnulerItem(req.VenteItemID, req.CancellationReason); err != nil {
		repondreErreur(c, http.StatusBadRequest, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type retourDefectueuxRequest struct {
	VenteItemID       int64  `json:"vente_item_id" binding:"required"`
	Reason            string `json:"reason" binding:"required"`
	QuantiteRetournee int    `json:"quantite_retournee" binding:"required"`
}

func (s *Server) retournerDefectueux(c *gin.Context) {
	var req retourDefectueuxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}
	retour, err := s.store.RetournerDefectueux(req.VenteItemID, req.Reason, req.QuantiteRetournee)
	if err != nil {
		repondreErreur(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, retour)
}

func (s *Server) listeDettes(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListeDettes())
}

// ── Retours ──────────────────────────────────────────────────────────────────

func (s *Server) listeRetoursDefectueux(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListeRetoursDefectueux())
}

type ligneRetourRequest struct {
	ProduitID         int64  `json:"product_id" binding:"required"`
	QuantiteRetournee int    `json:"quantite_retournee" binding:"required"`
	Raison            string `json:"raison"`
	DefectiveReturnID int64  `json:"defective_return_id" binding:"required"`
}

type creerRetourFournisseurRequest struct {
	FournisseurID *int64               `json:"fournisseur_id"`
	NumeroDossier *string              `json:"numero_dossier"`
	Observation   string               `json:"observation"`
	DateEnvoi     string               `json:"date_envoi"`
	Lignes        []ligneRetourRequest `json:"lignes" binding:"required,min=1"`
}

func (s *Server) creerRetourFournisseur(c *gin.Context) {
	var req creerRetourFournisseurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}

	retour := model.RetourFournisseur{
		FournisseurID: req.FournisseurID,
		NumeroDossier: req.NumeroDossier,
		Observation:   req.Observation,
		DateEnvoi:     parseDate(req.DateEnvoi),
	}
	for _, l := range req.Lignes {
		retour.Lignes = append(retour.Lignes, model.LigneRetourFournisseur{
			ProduitID:         l.ProduitID,
			QuantiteRetournee: l.QuantiteRetournee,
			Raison:            l.Raison,
			DefectiveReturnID: l.DefectiveReturnID,
		})
	}

	cree, err := s.store.CreerRetourFournisseur(retour)
	if err != nil {
		repondreErreur(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, cree)
}

func (s *Server) listeRetoursFournisseurs(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListeRetoursFournisseurs(c.Query("statut"), c.Query("q")))
}

type changementStatutRequest struct {
	Statut          string  `json:"statut_retour_fournisseur" binding:"required"`
	DateReception   *string `json:"date_reception"`
	ReintegrerStock bool    `json:"reintegrer_stock"`
	Observation     *string `json:"observation"`
}

func (s *Server) changerStatutRetourFournisseur(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "ID invalide"))
		return
	}
	var req changementStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(http.StatusBadRequest, "JSON invalide: "+err.Error()))
		return
	}

	var dateReception *time.Time
	if req.DateReception != nil && *req.DateReception != "" {
		d := parseDate(*req.DateReception)
		dateReception = &d
	}

	if err := s.store.ChangerStatutRetourFournisseur(id, req.Statut, dateReception, req.ReintegrerStock, req.Observation); err != nil {
		status := http.StatusBadRequest
		if err == ErrRetourIntrouvable {
			status = http.StatusNotFound
		}
		repondreErreur(c, status, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDate accepts RFC3339 or a bare date; anything else falls back to now.
func parseDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Now()
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
