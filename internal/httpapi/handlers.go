package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"hr-dashboard/internal/activity"
	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/metrics"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/screen"
)

type screenInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Columns    []string `json:"columns"`
	Categories []string `json:"categories"`
	SortFields []string `json:"sort_fields"`
}

type listResponse struct {
	Screen     string              `json:"screen"`
	Total      int                 `json:"total"`
	Count      int                 `json:"count"`
	Query      string              `json:"query"`
	State      listquery.Snapshot  `json:"state"`
	Columns    []string            `json:"columns"`
	Rows       []screen.Row        `json:"rows"`
	Categories map[string][]string `json:"categories"`
}

type feedResponse struct {
	UserID string                 `json:"user_id"`
	Unread int                    `json:"unread"`
	Items  []*domain.Notification `json:"items"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listScreens(w http.ResponseWriter, _ *http.Request) {
	screens := s.registry.All()
	out := make([]screenInfo, len(screens))
	for i, sc := range screens {
		out[i] = screenInfo{
			Name:       sc.Name(),
			Title:      sc.Title(),
			Columns:    columnTitles(sc),
			Categories: sc.Categories(),
			SortFields: sc.SortFields(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// deriveScreen serves GET /api/screens/{screen}. Query parameters:
// search, filter (repeatable category:value), sort, dir, view and q.
func (s *Server) deriveScreen(w http.ResponseWriter, r *http.Request) {
	sc, err := s.registry.Get(chi.URLParam(r, "screen"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	params := r.URL.Query()
	req := screen.StateRequest{
		View:    params.Get("view"),
		Query:   params.Get("q"),
		Search:  params.Get("search"),
		Filters: params["filter"],
		Sort:    params.Get("sort"),
	}
	if dir := params.Get("dir"); dir != "" && req.Sort != "" {
		sortParam, err := overrideDirection(req.Sort, dir)
		if err != nil {
			metrics.QueryRejected(sc.Name())
			s.handleError(w, r, err)
			return
		}
		req.Sort = sortParam
	}

	state, err := screen.BuildState(r.Context(), sc, s.store.Views, req)
	if err != nil {
		metrics.QueryRejected(sc.Name())
		s.handleError(w, r, err)
		return
	}

	data, err := sc.Load(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	start := time.Now()
	rows := data.Derive(state)
	metrics.ObserveDerive(sc.Name(), len(rows), time.Since(start))

	categories := make(map[string][]string)
	for _, category := range sc.Categories() {
		categories[category] = data.CategoryValues(category)
	}

	writeJSON(w, http.StatusOK, listResponse{
		Screen:     sc.Name(),
		Total:      data.Len(),
		Count:      len(rows),
		Query:      query.Format(state),
		State:      state.Snapshot(),
		Columns:    columnTitles(sc),
		Rows:       rows,
		Categories: categories,
	})
}

func (s *Server) listViews(w http.ResponseWriter, r *http.Request) {
	sc, err := s.registry.Get(chi.URLParam(r, "screen"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	views, err := s.store.Views.ListByScreen(r.Context(), sc.Name())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if views == nil {
		views = []*domain.SavedView{}
	}
	writeJSON(w, http.StatusOK, views)
}

// feed renders a user's notifications from that user's point of view.
func (s *Server) feed(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	ctx := r.Context()

	if _, err := s.store.Employees.GetByID(ctx, userID); err != nil {
		s.handleError(w, r, err)
		return
	}

	unreadOnly, err := parseBool(r.URL.Query().Get("unread"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var (
		items []*domain.Notification
		dir   activity.MapDirectory
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		items, err = s.store.Notifications.ListForRecipient(egCtx, userID, unreadOnly)
		return err
	})
	eg.Go(func() error {
		var err error
		dir, err = screen.Directory(egCtx, s.store)
		return err
	})
	if err := eg.Wait(); err != nil {
		s.handleError(w, r, err)
		return
	}

	formatter := activity.NewFormatter(dir, userID)
	unread := 0
	for _, n := range items {
		n.Message = formatter.Format(n.Activity)
		if !n.Read {
			unread++
		}
	}
	if items == nil {
		items = []*domain.Notification{}
	}

	writeJSON(w, http.StatusOK, feedResponse{UserID: userID, Unread: unread, Items: items})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.handleError(w, r, fmt.Errorf("notification id %q: %w", chi.URLParam(r, "id"), domain.ErrInvalid))
		return
	}

	if err := s.store.Notifications.MarkRead(r.Context(), id); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Notifications.MarkAllRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"marked": n})
}

// overrideDirection rewrites a sort parameter so that dir wins over any
// direction written into it (-age, age.desc).
func overrideDirection(sortParam, dir string) (string, error) {
	key, err := query.ParseSortKey(sortParam)
	if err != nil {
		return "", fmt.Errorf("sort: %w", err)
	}
	d, err := listquery.ParseDirection(dir)
	if err != nil {
		return "", fmt.Errorf("dir: %w: %w", domain.ErrInvalid, err)
	}
	if d == listquery.Descending {
		return "-" + key.Field, nil
	}
	return key.Field, nil
}

func columnTitles(sc screen.Screen) []string {
	cols := sc.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("unread=%q: %w", raw, domain.ErrInvalid)
	}
	return b, nil
}
