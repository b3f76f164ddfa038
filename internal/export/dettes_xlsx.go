// Package export renders reports from read-only projections.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"laban/internal/format"
	"laban/internal/service"
)

const feuilleDettes = "Dettes"

// DettesXLSX writes the debt projection to an xlsx file: one row per
// indebted sale plus a grand-total row. Amounts are rendered in FCFA like
// the on-screen view.
func DettesXLSX(projection service.ProjectionDettes, chemin string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(feuilleDettes)
	if err != nil {
		return fmt.Errorf("export: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export: delete default sheet: %w", err)
	}

	entetes := []string{"Client", "Téléphone", "Date de vente", "Montant total", "Montant payé", "Reste à payer"}
	for i, h := range entetes {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(feuilleDettes, cell, h); err != nil {
			return fmt.Errorf("export: header: %w", err)
		}
	}

	ligne := 2
	for _, d := range projection.Lignes {
		telephone := ""
		if d.Vente.ClientTelephone != nil {
			telephone = format.Telephone(*d.Vente.ClientTelephone)
		}
		valeurs := []interface{}{
			d.Vente.ClientNom,
			telephone,
			format.DateFR(d.Vente.DateVente),
			format.MontantFCFA(d.Vente.MontantTotal),
			format.MontantFCFA(d.Vente.MontantPaye),
			format.MontantFCFA(d.Restant),
		}
		for i, v := range valeurs {
			cell, _ := excelize.CoordinatesToCellName(i+1, ligne)
			if err := f.SetCellValue(feuilleDettes, cell, v); err != nil {
				return fmt.Errorf("export: row %d: %w", ligne, err)
			}
		}
		ligne++
	}

	totalCell, _ := excelize.CoordinatesToCellName(5, ligne)
	_ = f.SetCellValue(feuilleDettes, totalCell, "Total")
	sommeCell, _ := excelize.CoordinatesToCellName(6, ligne)
	if err := f.SetCellValue(feuilleDettes, sommeCell, format.MontantFCFA(projection.TotalRestant)); err != nil {
		return fmt.Errorf("export: total: %w", err)
	}

	if err := f.SaveAs(chemin); err != nil {
		return fmt.Errorf("export: save %s: %w", chemin, err)
	}
	return nil
}
