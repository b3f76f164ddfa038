package stub

import (
	"sort"

	"laban/internal/model"
)

// Map iteration order is random; lists are returned in id order so the
// client sees stable results between refetches.

func trierVentes(vs []model.Vente) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })
}

func trierItems(its []model.VenteItem) {
	sort.Slice(its, func(i, j int) bool { return its[i].ID < its[j].ID })
}

func trierRetours(rs []model.RetourDefectueux) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
}

func trierFretours(rs []model.RetourFournisseur) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
}
