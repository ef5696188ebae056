package integration

import (
	"context"
	"path/filepath"
	"testing"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/config"
	"bookmystars_client/internal/models"
	"bookmystars_client/internal/services"
	"bookmystars_client/internal/session"
	"bookmystars_client/test/helpers"

	"github.com/stretchr/testify/require"
)

// clientEnv is one fully wired client stack pointed at a fresh fake backend.
type clientEnv struct {
	ts       *helpers.TestServer
	store    *session.Store
	services *services.ServiceContainer
}

func newClientEnv(t *testing.T) *clientEnv {
	t.Helper()

	ts := helpers.NewTestServer()
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = ts.URL()
	cfg.API.Timeout = 10
	cfg.Session.FilePath = filepath.Join(t.TempDir(), "session.json")
	cfg.Session.TTLMinutes = 60
	cfg.Client.Env = "development"

	store := session.NewStore(cfg)
	client := api.NewClient(cfg, store)

	return &clientEnv{
		ts:       ts,
		store:    store,
		services: services.NewServiceContainer(client, store),
	}
}

// registerAndLogin provisions a verified user and leaves a live session in
// the store.
func (e *clientEnv) registerAndLogin(t *testing.T, email string) *models.Session {
	t.Helper()
	ctx := context.Background()

	_, err := e.services.Auth.Register(ctx, &services.RegisterRequest{
		FullName: "Test Professional",
		Email:    email,
		PhoneNo:  "9876543210",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, e.services.Auth.GenerateOTP(ctx, email))
	require.NoError(t, e.services.Auth.VerifyOTP(ctx, email, "123456"))

	sess, err := e.services.Auth.Login(ctx, email, "secret123")
	require.NoError(t, err)
	require.NotNil(t, sess)
	return sess
}

// validBasicInfoPayload returns a form payload that passes local validation.
func validBasicInfoPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Jane Sharma",
		"email":           email,
		"phoneNo":         "9876543210",
		"dateOfBirth":     "1998-04-12",
		"profileHeadline": "Ramp and print model, Mumbai",
		"category":        map[string]interface{}{"categoryId": float64(2)},
		"state":           float64(1),
		"city":            "1",
		"maritalStatus":   map[string]interface{}{"maritalStatusId": float64(1)},
	}
}
