package service

import (
	"context"

	"github.com/shopspring/decimal"

	"laban/internal/api"
	"laban/internal/model"
	"laban/internal/status"
)

// DetteLigne is one indebted sale in the projection.
type DetteLigne struct {
	Vente   model.Vente
	Restant decimal.Decimal
}

// ProjectionDettes is the read-only debt view: every sale with an
// outstanding balance plus the grand total. No mutation goes through it.
type ProjectionDettes struct {
	Lignes       []DetteLigne
	TotalRestant decimal.Decimal
}

// ProjeterDettes filters the sales with remaining > 0 and sums the
// outstanding total. Pure; the remaining amount is computed per sale, never
// per item. Fully paid sales are excluded from the listing but keep
// existing.
func ProjeterDettes(ventes []model.Vente) ProjectionDettes {
	p := ProjectionDettes{TotalRestant: decimal.Zero}
	for _, v := range ventes {
		restant := status.Restant(v)
		if !restant.IsPositive() {
			continue
		}
		p.Lignes = append(p.Lignes, DetteLigne{Vente: v, Restant: restant})
		p.TotalRestant = p.TotalRestant.Add(restant)
	}
	return p
}

// DetteService serves the debts page.
type DetteService struct {
	client *api.Client
}

func NewDetteService(client *api.Client) *DetteService {
	return &DetteService{client: client}
}

// Liste fetches the indebted sales and projects them. The backend already
// filters on outstanding balance; the projection is reapplied locally so the
// displayed remaining amounts always follow the same formula as the sales
// page.
func (s *DetteService) Liste(ctx context.Context) (ProjectionDettes, error) {
	ventes, err := s.client.ListeDettes(ctx)
	if err != nil {
		return ProjectionDettes{}, err
	}
	return ProjeterDettes(ventes), nil
}
