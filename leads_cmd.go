package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ClotureBot/config"
	"ClotureBot/model"
	"ClotureBot/pricing"
	"ClotureBot/repo"
)

var errArchiveDisabled = errors.New("lead archive is not configured (firebase.service_account_key_path and firebase.database_url)")

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Browse the archived leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived leads, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLeadStore(cmd.Context(), func(store repo.LeadStore) error {
			return listLeads(cmd.Context(), store, cmd.OutOrStdout())
		})
	},
}

var leadsShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show one archived lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLeadStore(cmd.Context(), func(store repo.LeadStore) error {
			return showLead(cmd.Context(), store, cmd.OutOrStdout(), args[0])
		})
	},
}

func init() {
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsShowCmd)
}

// withLeadStore opens the configured archive for the duration of fn.
func withLeadStore(ctx context.Context, fn func(repo.LeadStore) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := setupLogger(cfg, os.Stderr); err != nil {
		return err
	}

	store, err := repo.Open(ctx, repo.Settings{
		ServiceAccountKeyPath: cfg.Firebase.ServiceAccountKeyPath,
		DatabaseURL:           cfg.Firebase.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("error initializing lead archive: %w", err)
	}
	defer store.Close()
	if _, ok := store.(repo.NopLeadStore); ok {
		return errArchiveDisabled
	}
	return fn(store)
}

func listLeads(ctx context.Context, store repo.LeadStore, w io.Writer) error {
	leads, err := store.ListLeads(ctx)
	if err != nil {
		return err
	}
	if len(leads) == 0 {
		_, err := fmt.Fprintln(w, "no leads")
		return err
	}
	for _, l := range leads {
		_, err := fmt.Fprintf(w, "%s  %s  %-20s  %-16s  %s\n",
			l.DocumentID,
			l.CreatedAt.Format("2006-01-02 15:04"),
			l.ContactName,
			l.ContactPhone,
			pricing.FormatPrice(float64(l.Estimate)))
		if err != nil {
			return err
		}
	}
	return nil
}

func showLead(ctx context.Context, store repo.LeadStore, w io.Writer, key string) error {
	l, err := store.ReadLead(ctx, key)
	if errors.Is(err, model.ErrLeadDoesNotExist) {
		return fmt.Errorf("lead %s: %w", key, err)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `Clé            : %s
Reçu le        : %s
Contact        : %s (%s) %s
Telegram       : %s (%d)
Parcelle       : %s, levé %s
Localité       : %s
Type parcelle  : %s
Périmètre      : %d ml
Hauteur        : %s
Projet         : %s
Coût estimé    : %s
Lien           : %s
`,
		l.DocumentID,
		l.CreatedAt.Format("2006-01-02 15:04"),
		l.ContactName, l.ContactPhone, l.ContactEmail,
		l.Username, l.ChatID,
		model.ParcelStatus(l.ParcelStatus).Label(), model.SurveyStatus(l.SurveyStatus).Label(),
		l.Locality,
		l.ParcelType,
		l.PerimeterMeters,
		l.FenceHeight,
		l.ProjectType,
		pricing.FormatPrice(float64(l.Estimate)),
		l.Link)
	return err
}
