package repo

import (
	"context"

	"ClotureBot/model"
)

// LeadStore archives the leads handed off to the sales team.
type LeadStore interface {
	CreateLead(ctx context.Context, lead model.Lead) (string, error)
	ReadLead(ctx context.Context, key string) (*model.Lead, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)
	Close() error
}

var (
	_ LeadStore = (*FirebaseConnector)(nil)
	_ LeadStore = NopLeadStore{}
)

// NopLeadStore drops every lead. It is used when no archive is configured.
type NopLeadStore struct{}

func (NopLeadStore) CreateLead(context.Context, model.Lead) (string, error) { return "", nil }

func (NopLeadStore) ReadLead(context.Context, string) (*model.Lead, error) {
	return nil, model.ErrLeadDoesNotExist
}

func (NopLeadStore) ListLeads(context.Context) ([]model.Lead, error) { return nil, nil }

func (NopLeadStore) Close() error { return nil }

// Settings locates the Firebase archive.
type Settings struct {
	ServiceAccountKeyPath string
	DatabaseURL           string
}

func (s Settings) Enabled() bool {
	return s.ServiceAccountKeyPath != "" && s.DatabaseURL != ""
}

// Open returns the Firebase archive when configured, otherwise a NopLeadStore.
func Open(ctx context.Context, s Settings) (LeadStore, error) {
	if !s.Enabled() {
		return NopLeadStore{}, nil
	}
	fc, err := NewFirebaseConnector(ctx, s.ServiceAccountKeyPath, s.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return fc, nil
}
