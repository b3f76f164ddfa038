package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laban/internal/model"
)

func TestFiltrerRetoursDefectueux(t *testing.T) {
	retours := []model.RetourDefectueux{
		{ID: 1, ClientNom: "Moussa Traoré", Marque: "Apple", Modele: "iPhone 13"},
		{ID: 2, ClientNom: "Awa Diallo", Marque: "Samsung", Modele: "Galaxy A14"},
		{ID: 3, ClientNom: "Ibrahim Koné", Marque: "Apple", Modele: "iPhone 11"},
	}

	ids := func(rs []model.RetourDefectueux) []int64 {
		var out []int64
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	// Matches on client name, brand and model, case-insensitively.
	assert.Equal(t, []int64{2}, ids(FiltrerRetoursDefectueux(retours, "awa")))
	assert.Equal(t, []int64{1, 3}, ids(FiltrerRetoursDefectueux(retours, "APPLE")))
	assert.Equal(t, []int64{1, 3}, ids(FiltrerRetoursDefectueux(retours, "iphone")))
	assert.Empty(t, FiltrerRetoursDefectueux(retours, "xiaomi"))

	// Blank or whitespace query keeps everything.
	assert.Equal(t, retours, FiltrerRetoursDefectueux(retours, ""))
	assert.Equal(t, retours, FiltrerRetoursDefectueux(retours, "   "))
}
