package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionRetourValide_CycleCanonique(t *testing.T) {
	assert.True(t, TransitionRetourValide(RetourEnAttenteEnvoi, RetourEnvoye))
	assert.True(t, TransitionRetourValide(RetourEnvoye, RetourRecuFournisseur))
	assert.True(t, TransitionRetourValide(RetourRecuFournisseur, RetourRemplace))
	assert.True(t, TransitionRetourValide(RetourRecuFournisseur, RetourRepare))
	assert.True(t, TransitionRetourValide(RetourRecuFournisseur, RetourAvoir))
	assert.True(t, TransitionRetourValide(RetourRecuFournisseur, RetourRejete))
	assert.True(t, TransitionRetourValide(RetourRemplace, RetourCloture))
	assert.True(t, TransitionRetourValide(RetourRejete, RetourCloture))
}

func TestTransitionRetourValide_Sauts(t *testing.T) {
	assert.False(t, TransitionRetourValide(RetourEnAttenteEnvoi, RetourCloture))
	assert.False(t, TransitionRetourValide(RetourEnvoye, RetourRemplace))
	assert.False(t, TransitionRetourValide(RetourCloture, RetourEnvoye))
}

func TestPeutReintegrerStock(t *testing.T) {
	assert.True(t, PeutReintegrerStock(RetourRemplace))
	assert.True(t, PeutReintegrerStock(RetourRepare))
	for _, s := range []string{RetourEnAttenteEnvoi, RetourEnvoye, RetourRecuFournisseur, RetourAvoir, RetourRejete, RetourCloture} {
		assert.False(t, PeutReintegrerStock(s), s)
	}
}

func TestStatutRetourValide(t *testing.T) {
	for _, s := range StatutsRetourFournisseur {
		assert.True(t, StatutRetourValide(s), s)
	}
	assert.False(t, StatutRetourValide("perdu"))
}
