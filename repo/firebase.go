package repo

import (
	"context"
	"fmt"
	"sort"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"ClotureBot/model"
)

const leadsPath = "leads"

// FirebaseConnector struct to hold Firebase client and database reference
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

// CreateLead pushes a new lead and returns its database key
func (fc *FirebaseConnector) CreateLead(ctx context.Context, lead model.Lead) (string, error) {
	ref := fc.client.NewRef(leadsPath)
	newRef, err := ref.Push(ctx, lead)
	if err != nil {
		return "", fmt.Errorf("error creating lead: %w", err)
	}
	return newRef.Key, nil
}

// ReadLead reads a lead by its database key
func (fc *FirebaseConnector) ReadLead(ctx context.Context, key string) (*model.Lead, error) {
	return readLead(ctx, fc.client.NewRef(leadsPath).Child(key), key)
}

// ListLeads lists all archived leads, newest first
func (fc *FirebaseConnector) ListLeads(ctx context.Context) ([]model.Lead, error) {
	return listLeads(ctx, fc.client.NewRef(leadsPath))
}

// getter is the read side of a *db.Ref.
type getter interface {
	Get(ctx context.Context, v interface{}) error
}

func readLead(ctx context.Context, ref getter, key string) (*model.Lead, error) {
	var lead *model.Lead
	if err := ref.Get(ctx, &lead); err != nil {
		return nil, fmt.Errorf("error reading lead: %w", err)
	}
	if lead == nil {
		return nil, model.ErrLeadDoesNotExist
	}
	lead.DocumentID = key
	return lead, nil
}

func listLeads(ctx context.Context, ref getter) ([]model.Lead, error) {
	var leads map[string]model.Lead
	if err := ref.Get(ctx, &leads); err != nil {
		return nil, fmt.Errorf("error listing leads: %w", err)
	}

	leadList := make([]model.Lead, 0, len(leads))
	for key, lead := range leads {
		lead.DocumentID = key
		leadList = append(leadList, lead)
	}
	sort.Slice(leadList, func(i, j int) bool {
		return leadList[i].CreatedAt.After(leadList[j].CreatedAt)
	})

	return leadList, nil
}

// Close is a no-op; the Firebase SDK holds no connection to release
func (fc *FirebaseConnector) Close() error {
	return nil
}
