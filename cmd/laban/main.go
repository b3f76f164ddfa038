// laban is a small terminal client for the shop backend: list sales with
// their derived status, inspect debts, record a payment, export the debt
// report.
//
// Usage:
//
//	laban ventes
//	laban dettes
//	laban payer -vente <id> -montant <somme>
//	laban retours [-statut <statut>] [-q <recherche>]
//	laban export [-sortie dettes.xlsx]
//
// Credentials come from LABAN_EMAIL / LABAN_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"laban/internal/api"
	"laban/internal/config"
	"laban/internal/export"
	"laban/internal/format"
	"laban/internal/service"
	"laban/internal/session"
	"laban/internal/status"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	sess := session.New()
	sess.OnExpiration(func() {
		fmt.Fprintln(os.Stderr, "Session expirée — reconnectez-vous.")
	})
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout(), sess, log.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := client.Login(ctx, os.Getenv("LABAN_EMAIL"), os.Getenv("LABAN_PASSWORD")); err != nil {
		fatal(err)
	}

	raisons := service.NewRaisons(cfg.RaisonsAnnulation, cfg.RaisonsDefaut)
	ventes := service.NewVenteService(client, raisons, log.Logger)
	dettes := service.NewDetteService(client)
	retours := service.NewRetourFournisseurService(client, log.Logger)

	switch os.Args[1] {
	case "ventes":
		cmdVentes(ctx, ventes)
	case "dettes":
		cmdDettes(ctx, dettes)
	case "payer":
		cmdPayer(ctx, ventes, os.Args[2:])
	case "retours":
		cmdRetours(ctx, retours, os.Args[2:])
	case "export":
		cmdExport(ctx, dettes, cfg.ExportPath, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: laban <ventes|dettes|payer|retours|export> [options]")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Erreur :", err)
	os.Exit(1)
}

func cmdVentes(ctx context.Context, svc *service.VenteService) {
	details, err := svc.Liste(ctx)
	if err != nil {
		fatal(err)
	}
	for _, d := range details {
		fmt.Printf("#%d  %-22s %-12s  total %-14s payé %-14s reste %s\n",
			d.ID, d.ClientNom, d.StatutLibelle,
			format.MontantFCFA(d.MontantTotal),
			format.MontantFCFA(d.MontantPaye),
			format.MontantFCFA(d.Restant))
		for _, it := range d.Items {
			fmt.Printf("    · %s %s ×%d — %s (%s)\n",
				it.Marque, it.Modele, it.QuantiteVendue,
				format.MontantFCFA(it.PrixUnitaireNegocie),
				status.LibelleItem(it.Statut))
		}
	}
}

func cmdDettes(ctx context.Context, svc *service.DetteService) {
	projection, err := svc.Liste(ctx)
	if err != nil {
		fatal(err)
	}
	for _, l := range projection.Lignes {
		tel := ""
		if l.Vente.ClientTelephone != nil {
			tel = format.Telephone(*l.Vente.ClientTelephone)
		}
		fmt.Printf("#%d  %-22s %-15s reste %s\n", l.Vente.ID, l.Vente.ClientNom, tel, format.MontantFCFA(l.Restant))
	}
	fmt.Printf("Total dettes : %s (%d ventes)\n", format.MontantFCFA(projection.TotalRestant), len(projection.Lignes))
}

func cmdPayer(ctx context.Context, svc *service.VenteService, args []string) {
	fs := flag.NewFlagSet("payer", flag.ExitOnError)
	venteID := fs.Int64("vente", 0, "id de la vente")
	montant := fs.String("montant", "", "montant du paiement")
	_ = fs.Parse(args)

	if *venteID == 0 {
		fatal(fmt.Errorf("l'option -vente est requise"))
	}
	detail, err := svc.Payer(ctx, *venteID, *montant)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Vente #%d : %s — reste %s\n", detail.ID, detail.StatutLibelle, format.MontantFCFA(detail.Restant))
}

func cmdRetours(ctx context.Context, svc *service.RetourFournisseurService, args []string) {
	fs := flag.NewFlagSet("retours", flag.ExitOnError)
	statut := fs.String("statut", "", "filtrer par statut")
	q := fs.String("q", "", "recherche libre")
	_ = fs.Parse(args)

	retours, err := svc.Liste(ctx, *statut, *q)
	if err != nil {
		fatal(err)
	}
	for _, r := range retours {
		dossier := "-"
		if r.NumeroDossier != nil {
			dossier = *r.NumeroDossier
		}
		fmt.Printf("#%d  dossier %-10s %-18s envoyé %s  %d ligne(s)\n",
			r.ID, dossier, r.Statut, format.DateFR(r.DateEnvoi), len(r.Lignes))
	}
}

func cmdExport(ctx context.Context, svc *service.DetteService, exportPath string, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	sortie := fs.String("sortie", "dettes.xlsx", "fichier xlsx à écrire")
	_ = fs.Parse(args)

	projection, err := svc.Liste(ctx)
	if err != nil {
		fatal(err)
	}
	chemin := *sortie
	if !filepath.IsAbs(chemin) {
		chemin = filepath.Join(exportPath, chemin)
	}
	if err := export.DettesXLSX(projection, chemin); err != nil {
		fatal(err)
	}
	fmt.Printf("Rapport écrit : %s (%d ventes, total %s)\n", chemin, len(projection.Lignes), format.MontantFCFA(projection.TotalRestant))
}
