package test

import (
	"net/http/httptest"
	"testing"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/finance-dashboard/backend/internal/sandbox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Sandbox starts a sandbox finance API with an empty database. If token
// is not empty, requests must authenticate with it.
//
// The server is stopped when the test finishes.
func Sandbox(t *testing.T, token string) *httptest.Server {
	require.Nil(t, models.Connect(TmpFile(t)), "Sandbox database could not be initialized")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	sandbox.RegisterRoutes(r.Group("/"), token)

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()

		sqlDB, err := models.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return server
}

// SandboxClient returns a client for a new sandbox finance API.
func SandboxClient(t *testing.T) *client.Client {
	server := Sandbox(t, "")

	c, err := client.New(server.URL)
	require.Nil(t, err)

	return c
}
