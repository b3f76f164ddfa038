package status

// Supplier return statuses. The canonical lifecycle is:
//
//	en_attente_envoi → envoye → recu_fournisseur → {remplace|repare|avoir|rejete} → cloture
//
// The backend is the actual guard; the client exposes the table so callers
// can warn on (but not block) a non-canonical jump.
const (
	RetourEnAttenteEnvoi  = "en_attente_envoi"
	RetourEnvoye          = "envoye"
	RetourRecuFournisseur = "recu_fournisseur"
	RetourRemplace        = "remplace"
	RetourRepare          = "repare"
	RetourAvoir           = "avoir"
	RetourRejete          = "rejete"
	RetourCloture         = "cloture"
)

// StatutsRetourFournisseur lists every valid supplier return status, in
// lifecycle order.
var StatutsRetourFournisseur = []string{
	RetourEnAttenteEnvoi,
	RetourEnvoye,
	RetourRecuFournisseur,
	RetourRemplace,
	RetourRepare,
	RetourAvoir,
	RetourRejete,
	RetourCloture,
}

var transitionsRetour = map[string][]string{
	RetourEnAttenteEnvoi:  {RetourEnvoye},
	RetourEnvoye:          {RetourRecuFournisseur},
	RetourRecuFournisseur: {RetourRemplace, RetourRepare, RetourAvoir, RetourRejete},
	RetourRemplace:        {RetourCloture},
	RetourRepare:          {RetourCloture},
	RetourAvoir:           {RetourCloture},
	RetourRejete:          {RetourCloture},
	RetourCloture:         {},
}

// StatutRetourValide reports whether s is a known supplier return status.
func StatutRetourValide(s string) bool {
	_, ok := transitionsRetour[s]
	return ok
}

// TransitionRetourValide reports whether de → vers follows the canonical
// lifecycle. The client never blocks on this — the status-update endpoint
// accepts any status — but services log a warning when it is false.
func TransitionRetourValide(de, vers string) bool {
	for _, s := range transitionsRetour[de] {
		if s == vers {
			return true
		}
	}
	return false
}

// PeutReintegrerStock reports whether the "reintegrate to stock" flag is
// meaningful for the given status. Only a replaced or repaired unit comes
// back into sellable stock; the backend then increments the product quantity
// by the returned quantity.
func PeutReintegrerStock(statut string) bool {
	return statut == RetourRemplace || statut == RetourRepare
}

// RetourTermine reports whether the supplier return has reached a terminal
// resolution (outcome decided or closed).
func RetourTermine(statut string) bool {
	switch statut {
	case RetourRemplace, RetourRepare, RetourAvoir, RetourRejete, RetourCloture:
		return true
	}
	return false
}
