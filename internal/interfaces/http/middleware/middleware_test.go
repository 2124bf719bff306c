package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/infrastructure/auth"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(tokens, logger.NewDiscard())

	r := gin.New()
	r.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": AdminUsername(c)})
	})
	r.GET("/open", m.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": AdminUsername(c)})
	})
	return r
}

func doRequest(r http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	valid, _, err := tokens.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	other := auth.NewJWTService("other-secret", time.Hour)
	forged, _, err := other.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	expiredIssuer := auth.NewJWTService("test-secret", time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, _, err := expiredIssuer.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantMessage: "Authentication required"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMessage: "Authentication required"},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantMessage: "Invalid token"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantMessage: "Invalid token"},
		{name: "wrong secret", header: "Bearer " + forged, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid token"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid token"},
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	r := newAuthRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/admin", tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"admin":"Kanhaiya"}`, w.Body.String())
				return
			}

			var body utils.ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	valid, _, err := tokens.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	r := newAuthRouter(tokens)

	w := doRequest(r, http.MethodGet, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":""}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/open", "Bearer broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":""}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/open", "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":"Kanhaiya"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewDiscard()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := doRequest(r, http.MethodGet, "/panic", "Bearer secret")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://leafsmp.org"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://leafsmp.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://leafsmp.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recordingObserver struct {
	routes   []string
	statuses []int
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.routes = append(o.routes, method+" "+route)
	o.statuses = append(o.statuses, status)
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &recordingObserver{}
	r := gin.New()
	r.Use(Metrics(observer))
	r.GET("/api/tickets/:id/messages", func(c *gin.Context) { c.Status(http.StatusOK) })

	doRequest(r, http.MethodGet, "/api/tickets/42/messages", "")
	doRequest(r, http.MethodGet, "/nope", "")

	assert.Equal(t, []string{"GET /api/tickets/:id/messages", "GET unmatched"}, observer.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, observer.statuses)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(r, http.MethodGet, "/x", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}
