package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/screens/{screen}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest("GET", "/api/screens/tasks", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	val := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/screens/{screen}", "200"))
	assert.GreaterOrEqual(t, val, 1.0, "route pattern keeps label cardinality low")
	assert.NotZero(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddleware_StatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/missing", http.NoBody))

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/missing", "404")), 1.0)
}

func TestObserveDerive(t *testing.T) {
	before := testutil.ToFloat64(derivesTotal.WithLabelValues("teams"))

	ObserveDerive("teams", 7, 3*time.Millisecond)
	QueryRejected("teams")

	assert.Equal(t, before+1, testutil.ToFloat64(derivesTotal.WithLabelValues("teams")))
	assert.Equal(t, 7.0, testutil.ToFloat64(deriveRows.WithLabelValues("teams")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(queryErrorsTotal.WithLabelValues("teams")), 1.0)
}

func TestDeriveMetrics_DefaultRegistry(t *testing.T) {
	ObserveDerive("tasks", 2, time.Millisecond)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	help := make(map[string]string)
	for _, mf := range families {
		help[mf.GetName()] = mf.GetHelp()
	}
	assert.Equal(t, "Time spent deriving an already loaded list", help["hrdash_list_derive_duration_seconds"])
	assert.Contains(t, help, "hrdash_list_derives_total")
	assert.Contains(t, help, "hrdash_list_derive_rows")
}

func TestHandler(t *testing.T) {
	ObserveDerive("employees", 3, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `hrdash_list_derives_total{screen="employees"}`))
}
