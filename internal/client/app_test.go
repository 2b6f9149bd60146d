package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/models"
)

func TestApp_InitLoadsInitialSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/folders/tree", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "1", "name": "USER_ROOT",
			"folder": [
				{"id": "7", "name": "Contacts", "l": "1", "view": "contact", "n": 0},
				{"id": "3", "name": "Trash", "l": "1"}
			]
		}`))
	}))
	defer srv.Close()

	app, err := New(&config.ClientConfig{
		Adapter: config.Adapter{HTTPAddress: srv.URL},
	}, nil, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Init(context.Background()))
	defer app.Teardown()

	require.NotNil(t, app.Store().FolderByID(models.ContactsFolderID))
	require.NotNil(t, app.Store().FolderByID(models.TrashFolderID))
	assert.Equal(t, "/Contacts", app.Store().FolderByID(models.ContactsFolderID).Path)
}

func TestApp_InitFailsWhenServerUnreachable(t *testing.T) {
	app, err := New(&config.ClientConfig{
		Adapter: config.Adapter{HTTPAddress: "http://127.0.0.1:1"},
	}, nil, logger.Nop())
	require.NoError(t, err)

	err = app.Init(context.Background())
	require.Error(t, err)
	assert.Nil(t, app.Store().FolderByID(models.ContactsFolderID))
}

func TestNew_RejectsEmptyAddress(t *testing.T) {
	_, err := New(&config.ClientConfig{}, nil, logger.Nop())
	require.Error(t, err)
}
