package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/repository"
	"hr-dashboard/internal/repository/sqlite"
	"hr-dashboard/internal/screen"
)

type fixture struct {
	store      *repository.Store
	alice, bob *domain.Employee
	handler    http.Handler
	logs       *observer.ObservedLogs
}

func setup(t *testing.T) *fixture {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "hrdash_api_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	db, err := sqlite.NewDB(sqlite.Config{Path: tmpFile.Name()})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(tmpFile.Name())
	})

	store := sqlite.NewStore(db)
	ctx := context.Background()

	f := &fixture{store: store}
	f.alice = &domain.Employee{Name: "Alice", Role: domain.RoleAdmin, Age: 30, Department: "Engineering"}
	f.bob = &domain.Employee{Name: "Bob", Role: domain.RoleEmployee, Age: 25, Department: "People"}
	require.NoError(t, store.Employees.Create(ctx, f.alice))
	require.NoError(t, store.Employees.Create(ctx, f.bob))

	core, logs := observer.New(zap.InfoLevel)
	f.logs = logs
	registry := screen.NewRegistry(store, screen.Options{Locale: language.English})
	f.handler = NewServer(store, registry, zap.New(core)).Router()
	return f
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := setup(t)

	rr := f.get(t, "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, 1, f.logs.FilterMessage("http_request").Len())
}

func TestListScreens(t *testing.T) {
	f := setup(t)

	rr := f.get(t, "/api/screens")
	require.Equal(t, http.StatusOK, rr.Code)

	screens := decode[[]screenInfo](t, rr)
	require.Len(t, screens, 5)
	assert.Equal(t, "employees", screens[0].Name)
	assert.Contains(t, screens[0].Categories, "role")
}

func TestDeriveScreen(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name  string
		url   string
		first []string
		total int
	}{
		{name: "default sort", url: "/api/screens/employees", first: []string{"Alice", "Bob"}, total: 2},
		{name: "search", url: "/api/screens/employees?search=bo", first: []string{"Bob"}, total: 2},
		{name: "filter", url: "/api/screens/employees?filter=role:admin", first: []string{"Alice"}, total: 2},
		{name: "sort and dir", url: "/api/screens/employee?sort=age&dir=desc", first: []string{"Alice", "Bob"}, total: 2},
		{name: "dir overrides a direction suffix", url: "/api/screens/employees?sort=age.desc&dir=asc", first: []string{"Bob", "Alice"}, total: 2},
		{name: "dir overrides a minus prefix", url: "/api/screens/employees?sort=-age&dir=ascending", first: []string{"Bob", "Alice"}, total: 2},
		{name: "dir without sort is ignored", url: "/api/screens/employees?dir=desc", first: []string{"Alice", "Bob"}, total: 2},
		{name: "query", url: "/api/screens/employees?q=sort:-name", first: []string{"Bob", "Alice"}, total: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := f.get(t, tt.url)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			resp := decode[listResponse](t, rr)
			assert.Equal(t, "employees", resp.Screen)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, len(tt.first), resp.Count)

			var got []string
			for _, row := range resp.Rows {
				got = append(got, row.Cells[0])
			}
			assert.Equal(t, tt.first, got)
		})
	}

	rr := f.get(t, "/api/screens/employees?filter=department:People&sort=-age")
	resp := decode[listResponse](t, rr)
	assert.Equal(t, `department:People sort:-age`, resp.Query)
	assert.Equal(t, []string{"Engineering", "People"}, resp.Categories["department"])
}

func TestDeriveScreen_Errors(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name   string
		url    string
		status int
		code   string
	}{
		{name: "unknown screen", url: "/api/screens/payrol", status: http.StatusNotFound, code: "unknown_screen"},
		{name: "unknown filter", url: "/api/screens/employees?filter=rloe:admin", status: http.StatusBadRequest, code: "unknown_field"},
		{name: "bad filter", url: "/api/screens/employees?filter=role", status: http.StatusBadRequest, code: "invalid_request"},
		{name: "bad dir", url: "/api/screens/employees?sort=age&dir=sideways", status: http.StatusBadRequest, code: "invalid_request"},
		{name: "bad sort with dir", url: "/api/screens/employees?sort=age.up&dir=asc", status: http.StatusBadRequest, code: "invalid_request"},
		{name: "bad query", url: "/api/screens/employees?q=%22open", status: http.StatusBadRequest, code: "invalid_query"},
		{name: "missing view", url: "/api/screens/employees?view=nope", status: http.StatusNotFound, code: "not_found"},
		{name: "no route", url: "/nowhere", status: http.StatusNotFound, code: "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := f.get(t, tt.url)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Equal(t, tt.code, decode[errorResponse](t, rr).Code)
		})
	}

	resp := decode[errorResponse](t, f.get(t, "/api/screens/employees?filter=rloe:admin"))
	assert.Contains(t, resp.Suggestions, "role")
}

func TestListViews(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	state := listquery.NewState("name", listquery.Ascending)
	state.ToggleFilterValue("role", "admin")
	view := domain.NewSavedView("employees", "Admins", state)
	require.NoError(t, f.store.Views.Create(ctx, view))

	rr := f.get(t, "/api/screens/employees/views")
	require.Equal(t, http.StatusOK, rr.Code)
	views := decode[[]domain.SavedView](t, rr)
	require.Len(t, views, 1)
	assert.Equal(t, "Admins", views[0].Name)

	resp := decode[listResponse](t, f.get(t, "/api/screens/employees?view=admins"))
	assert.Equal(t, 1, resp.Count)

	rr = f.get(t, "/api/screens/tasks/views")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestFeed(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assigned := domain.NewNotification(f.bob.ID, domain.Activity{
		Type:     domain.ActivityTaskAssigned,
		ActorID:  f.alice.ID,
		TargetID: f.bob.ID,
		Details:  map[string]string{"taskTitle": "Onboarding"},
	})
	require.NoError(t, f.store.Notifications.Create(ctx, assigned))

	rr := f.get(t, "/api/users/"+f.bob.ID+"/feed")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	feed := decode[feedResponse](t, rr)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, 1, feed.Unread)
	assert.Equal(t, `Alice assigned "Onboarding" to you`, feed.Items[0].Message)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+strconv.FormatInt(feed.Items[0].ID, 10)+"/read", http.NoBody)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	feed = decode[feedResponse](t, f.get(t, "/api/users/"+f.bob.ID+"/feed?unread=true"))
	assert.Empty(t, feed.Items)

	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/users/"+f.bob.ID+"/feed?unread=maybe").Code)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/users/nobody/feed").Code)
}

func TestJSONRecoverer(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := jsonRecoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"internal error"}`, rr.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	registry := screen.NewRegistry(&repository.Store{}, screen.Options{})
	srv := NewServer(&repository.Store{}, registry, zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
