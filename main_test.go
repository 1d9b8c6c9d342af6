package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClotureBot/config"
	"ClotureBot/model"
	"ClotureBot/repo"
)

func TestPrintEstimate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEstimate(&buf, "Cotonou", 70, "2.0m (standard)", "Angle"))

	out := buf.String()
	assert.Contains(t, out, "Cotonou (x1.05)")
	assert.Contains(t, out, "Angle (x1.10)")
	assert.Contains(t, out, "70 ml x 51107 FCFA")
	assert.Contains(t, out, "Coût estimé    : 4,132,001 FCFA")
}

func TestPrintEstimateClampsPerimeter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEstimate(&buf, "Abomey", 5000, "1.8m", "Angle"))
	assert.Contains(t, buf.String(), "500 ml")
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	cfg := config.Default()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"

	var buf bytes.Buffer
	require.NoError(t, setupLogger(&cfg, &buf))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	cfg.LogLevel = "loud"
	assert.Error(t, setupLogger(&cfg, &buf))

	cfg.LogLevel = "info"
	cfg.LogFormat = "xml"
	assert.Error(t, setupLogger(&cfg, &buf))
}

type memLeadStore struct {
	leads map[string]model.Lead
}

func (m memLeadStore) CreateLead(context.Context, model.Lead) (string, error) { return "", nil }

func (m memLeadStore) ReadLead(_ context.Context, key string) (*model.Lead, error) {
	l, ok := m.leads[key]
	if !ok {
		return nil, model.ErrLeadDoesNotExist
	}
	l.DocumentID = key
	return &l, nil
}

func (m memLeadStore) ListLeads(context.Context) ([]model.Lead, error) {
	var out []model.Lead
	for _, key := range []string{"-Nb", "-Na"} {
		if l, ok := m.leads[key]; ok {
			l.DocumentID = key
			out = append(out, l)
		}
	}
	return out, nil
}

func (m memLeadStore) Close() error { return nil }

func testLeads() memLeadStore {
	return memLeadStore{leads: map[string]model.Lead{
		"-Na": {
			ContactName:  "Awa",
			ContactPhone: "0166",
			Estimate:     3935239,
			CreatedAt:    time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
		},
		"-Nb": {
			ChatID:          42,
			Username:        "jdupont",
			ParcelStatus:    "possede",
			SurveyStatus:    "a_faire",
			Locality:        "Cotonou",
			ParcelType:      "Angle",
			PerimeterMeters: 70,
			FenceHeight:     "2.0m (standard)",
			ProjectType:     "Maison individuelle",
			ContactName:     "Jean Dupont",
			ContactPhone:    "01 23 45 67 89",
			Estimate:        4132001,
			Link:            "https://wa.me/2290166815278?text=x",
			CreatedAt:       time.Date(2026, 2, 3, 18, 5, 0, 0, time.UTC),
		},
	}}
}

func TestListLeads(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listLeads(context.Background(), testLeads(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "-Nb  2026-02-03 18:05  Jean Dupont"))
	assert.Contains(t, lines[0], "4,132,001 FCFA")
	assert.True(t, strings.HasPrefix(lines[1], "-Na  2026-01-02 09:30  Awa"))
}

func TestListLeadsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listLeads(context.Background(), memLeadStore{}, &buf))
	assert.Equal(t, "no leads\n", buf.String())
}

func TestShowLead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showLead(context.Background(), testLeads(), &buf, "-Nb"))

	out := buf.String()
	assert.Contains(t, out, "Clé            : -Nb")
	assert.Contains(t, out, "Telegram       : jdupont (42)")
	assert.Contains(t, out, "Parcelle       : Terrain disponible, levé À réaliser")
	assert.Contains(t, out, "Coût estimé    : 4,132,001 FCFA")
	assert.Contains(t, out, "Lien           : https://wa.me/2290166815278?text=x")
}

func TestShowLeadMissing(t *testing.T) {
	var buf bytes.Buffer
	err := showLead(context.Background(), testLeads(), &buf, "-Nzz")
	assert.ErrorIs(t, err, model.ErrLeadDoesNotExist)
	assert.Empty(t, buf.String())
}

func TestLeadsRequireArchive(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "FIREBASE_DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv("CLOTBOT_"+key, "")
	}

	called := false
	err := withLeadStore(context.Background(), func(repo.LeadStore) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, errArchiveDisabled)
	assert.False(t, called)
}
