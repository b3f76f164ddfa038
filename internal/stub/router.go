package stub

import "github.com/gin-gonic/gin"

// Router wires the documented REST surface onto a Gin engine.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(RequestID())
	r.Use(Logger())
	r.Use(Recovery())
	r.Use(CORS())

	r.GET("/health", s.health)
	r.POST("/api/login", s.login)

	api := r.Group("/api", BearerAuth(s.jwtSecret))
	{
		api.GET("/ventes", s.listeVentes)
		api.GET("/vente_items/vente/:id", s.itemsDeVente)
		api.PUT("/ventes/payment", s.payer)
		api.PUT("/ventes/cancel-item", s.annulerItem)
		api.POST("/ventes/return-defective", s.retournerDefectueux)

		api.GET("/dettes", s.listeDettes)
		api.GET("/defective_returns", s.listeRetoursDefectueux)

		api.GET("/retours-fournisseurs", s.listeRetoursFournisseurs)
		api.POST("/retours-fournisseurs", s.creerRetourFournisseur)
		api.PUT("/retours-fournisseurs/:id/statut", s.changerStatutRetourFournisseur)
	}

	return r
}
