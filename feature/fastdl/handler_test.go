package fastdl

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"precache-manager/core/storage"
	"precache-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	svc, client := setupService(t)
	app := fiber.New()
	feature := NewFeature(svc, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, client
}

func TestHandlePlan(t *testing.T) {
	app, client := setupTestApp(t)
	expectListing(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/fastdl/plan", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fastdl", body.Bucket)
	assert.Equal(t, 4, body.Summary.TotalItems)
}

func TestHandleSync_DryRun(t *testing.T) {
	app, client := setupTestApp(t)
	expectListing(client)

	resp, err := app.Test(httptest.NewRequest("POST", "/fastdl/sync?dry_run=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body SyncResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.DryRun)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePlan_Error(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, storage.Config{Bucket: "fastdl"}, setupContent(t, nil), failingSource{err: errors.New("manifest locked")}, zap.NewNop())
	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/fastdl/plan", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "manifest locked")
}

func TestFeature_Disabled(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "fastdl", f.Name())
	assert.False(t, f.IsEnabled())
}
