package service

import "strings"

// Reason vocabularies are constrained but extensible: defaults below, overridable
// from configuration, plus the free-text escape hatch RaisonAutre.

// RaisonAnnulationDefaut is applied when a cancellation is submitted without
// an explicit reason.
const RaisonAnnulationDefaut = "Erreur de commande"

// RaisonAutre is the escape hatch for reasons outside the suggestion lists.
const RaisonAutre = "Autre"

var raisonsAnnulationDefaut = []string{
	RaisonAnnulationDefaut,
	"Client a changé d'avis",
	"Produit indisponible",
	"Prix incorrect",
	"Doublon de saisie",
	RaisonAutre,
}

// Defect categories suggested when flagging a line item defective.
var raisonsDefautDefaut = []string{
	"Ecran",
	"Ecran fissuré",
	"Tactile",
	"Batterie",
	"Batterie gonflée",
	"Charge",
	"Connecteur de charge",
	"Caméra avant",
	"Caméra arrière",
	"Haut-parleur",
	"Ecouteur interne",
	"Micro",
	"Vibreur",
	"Boutons volume",
	"Bouton power",
	"Empreinte digitale",
	"Face ID",
	"Réseau",
	"Wifi",
	"Bluetooth",
	"Carte SIM non détectée",
	"Ne s'allume pas",
	"Redémarrage en boucle",
	"Surchauffe",
	"Carte mère",
	"Coque fissurée",
	"Oxydation",
	RaisonAutre,
}

// Raisons holds the configured vocabularies.
type Raisons struct {
	Annulation []string
	Defaut     []string
}

// NewRaisons builds the vocabularies from comma-separated configuration
// overrides; empty strings keep the built-in lists.
func NewRaisons(annulationCSV, defautCSV string) Raisons {
	return Raisons{
		Annulation: depuisCSV(annulationCSV, raisonsAnnulationDefaut),
		Defaut:     depuisCSV(defautCSV, raisonsDefautDefaut),
	}
}

func depuisCSV(csv string, defauts []string) []string {
	if strings.TrimSpace(csv) == "" {
		return append([]string(nil), defauts...)
	}
	var out []string
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	// The escape hatch is always available.
	for _, r := range out {
		if r == RaisonAutre {
			return out
		}
	}
	return append(out, RaisonAutre)
}
