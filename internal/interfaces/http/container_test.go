package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/infrastructure/config"
	sharedConfig "leafsmp/internal/shared/config"
	"leafsmp/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()

	t.Setenv("LEAFSMP_STORAGE_DRIVER", sharedConfig.StorageDriverMemory)
	t.Setenv("LEAFSMP_REDIS_ENABLED", "false")
	t.Setenv("LEAFSMP_EMAIL_ENABLED", "false")

	cfg, err := config.Load(gin.TestMode)
	require.NoError(t, err)
	cfg.Auth.Password.BcryptCost = 4
	cfg.Auth.Admins = []sharedConfig.AdminCredentialConfig{{Username: "Kanhaiya", Password: "NcY42#1gdh"}}

	c, err := NewContainer(nil, cfg, logger.NewDiscard())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)
	return c
}

func serve(c *Container, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func TestContainer_AdminRoutesRequireToken(t *testing.T) {
	c := newTestContainer(t)
	token, _, err := c.jwtSvc.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodGet, path: "/api/admin/tickets"},
		{method: http.MethodGet, path: "/api/admin/tickets/stats"},
		{method: http.MethodPatch, path: "/api/admin/tickets/1", body: `{"status":"closed"}`},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := serve(c, rt.method, rt.path, rt.body, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = serve(c, rt.method, rt.path, rt.body, token)
			assert.NotEqual(t, http.StatusUnauthorized, w.Code, w.Body.String())
		})
	}
}

func TestContainer_PublicRoutesAreOpen(t *testing.T) {
	c := newTestContainer(t)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodPost, path: "/api/tickets", body: `{"minecraftUsername":"Steve","discordUsername":"steve#1","selectedRank":"ninja"}`},
		{method: http.MethodGet, path: "/api/user-tickets?minecraft=Steve&discord=steve%231"},
		{method: http.MethodGet, path: "/api/tickets/1/messages"},
		{method: http.MethodPost, path: "/api/tickets/1/messages", body: `{"sender":"user","senderName":"Steve","message":"hi"}`},
		{method: http.MethodGet, path: "/api/ranks"},
		{method: http.MethodPost, path: "/api/admin/login", body: `{"username":"Kanhaiya","password":"NcY42#1gdh"}`},
		{method: http.MethodGet, path: "/health"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := serve(c, rt.method, rt.path, rt.body, "")
			assert.NotEqual(t, http.StatusUnauthorized, w.Code, w.Body.String())
			assert.Less(t, w.Code, http.StatusInternalServerError, w.Body.String())
		})
	}
}

func TestContainer_LoginTokenOpensAdminRoutes(t *testing.T) {
	c := newTestContainer(t)

	w := serve(c, http.MethodPost, "/api/admin/login", `{"username":"Kanhaiya","password":"NcY42#1gdh"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	w = serve(c, http.MethodGet, "/api/admin/tickets/stats", "", body.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContainer_ServesSwaggerDoc(t *testing.T) {
	c := newTestContainer(t)

	w := serve(c, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/tickets"`)
	assert.Contains(t, w.Body.String(), `"/api/admin/tickets/{id}"`)
}
