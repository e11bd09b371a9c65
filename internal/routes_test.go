package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msd/internal/controllers"
	"msd/internal/providers"
	"msd/internal/services"
	"msd/internal/storage"
	"msd/internal/structures"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

func newRouteTestRouter() providers.RouterProviderInterface {
	service := services.NewMeetingService(storage.NewMemoryStore())
	ac := controllers.NewApiController(&routeTestLogger{}, service, services.NewPricingService(), &routeTestCache{})
	return InitRoutes(ac, &structures.Config{})
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	routes := newRouteTestRouter().GetRoutes()

	require.Len(t, routes, 18)

	patterns := make([]string, len(routes))
	for i, r := range routes {
		patterns[i] = r.Pattern()
	}

	assert.Contains(t, patterns, "GET /chat")
	assert.Contains(t, patterns, "POST /chat")
	assert.Contains(t, patterns, "GET /participants")
	assert.Contains(t, patterns, "POST /participants/status")
	assert.Contains(t, patterns, "GET /notes")
	assert.Contains(t, patterns, "POST /notes")
	assert.Contains(t, patterns, "GET /notes/shared")
	assert.Contains(t, patterns, "POST /notes/shared")
	assert.Contains(t, patterns, "GET /agenda")
	assert.Contains(t, patterns, "POST /agenda")
	assert.Contains(t, patterns, "GET /tasks")
	assert.Contains(t, patterns, "POST /tasks")
	assert.Contains(t, patterns, "GET /resources")
	assert.Contains(t, patterns, "POST /resources")
	assert.Contains(t, patterns, "GET /recordings")
	assert.Contains(t, patterns, "GET /analytics")
	assert.Contains(t, patterns, "GET /quote")
	assert.Contains(t, patterns, "POST /clear")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := newRouteTestRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Pattern(), r.Handler)
	}

	// GET-only /recordings with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/recordings", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST-only /clear with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/clear", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInitRoutes_SharedPathDispatchesByMethod(t *testing.T) {
	routes := newRouteTestRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Pattern(), r.Handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
