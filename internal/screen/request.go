package screen

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/listquery"
	"hr-dashboard/internal/logger"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/repository"
)

// StateRequest describes a list state the way the CLI and HTTP API
// receive it. Filters are "category:value" (or "category=value") pairs.
type StateRequest struct {
	View    string
	Query   string
	Search  string
	Filters []string
	Sort    string
}

func (r StateRequest) isEmpty() bool {
	return r.View == "" && r.Query == "" && r.Search == "" && len(r.Filters) == 0 && r.Sort == ""
}

// BuildState starts from the named saved view, or from the screen's
// default view when the request is empty, then applies the rest of the
// request through the state actions.
func BuildState(ctx context.Context, s Screen, views repository.ViewRepository, req StateRequest) (listquery.State, error) {
	state := s.NewState()

	switch {
	case req.View != "":
		view, err := views.GetByName(ctx, s.Name(), req.View)
		if err != nil {
			return state, err
		}
		state = view.QueryState()
		warnStaleSort(ctx, s, view)

	case req.isEmpty() && views != nil:
		view, err := views.GetDefault(ctx, s.Name())
		switch {
		case err == nil:
			state = view.QueryState()
			warnStaleSort(ctx, s, view)
		case !errors.Is(err, domain.ErrNotFound):
			return state, err
		}
	}

	if req.Query != "" {
		parsed, err := query.Parse(req.Query, state, s.Vocabulary())
		if err != nil {
			return state, fmt.Errorf("query: %w", err)
		}
		state = parsed
	}

	q := &query.ParsedQuery{}
	if req.Search != "" {
		q.Text = []string{req.Search}
	}

	for _, raw := range req.Filters {
		category, value, ok := cutFilter(raw)
		if !ok {
			return state, fmt.Errorf("invalid filter %q (want category:value): %w", raw, domain.ErrInvalid)
		}
		q.Filters = append(q.Filters, query.Filter{Field: category, Value: value})
	}

	if req.Sort != "" {
		key, err := query.ParseSortKey(req.Sort)
		if err != nil {
			return state, fmt.Errorf("sort: %w", err)
		}
		q.Sort = key
	}

	if err := query.Apply(&state, q, s.Vocabulary()); err != nil {
		return state, err
	}
	return state, nil
}

// a view saved against an older field set still derives, in input order
func warnStaleSort(ctx context.Context, s Screen, view *domain.SavedView) {
	field := view.QueryState().SortField()
	if field == "" || slices.Contains(s.Vocabulary().SortFields, field) {
		return
	}
	logger.FromContext(ctx).Warn("saved view sorts by an unknown field",
		zap.String("screen", s.Name()),
		zap.String("view", view.Name),
		zap.String("sort_field", field),
	)
}

func cutFilter(raw string) (string, string, bool) {
	i := strings.IndexAny(raw, ":=")
	if i <= 0 || i == len(raw)-1 {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(raw[:i])), strings.TrimSpace(raw[i+1:]), true
}
