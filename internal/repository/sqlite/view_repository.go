package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hr-dashboard/internal/domain"
)

type ViewRepository struct {
	db *DB
}

func NewViewRepository(db *DB) *ViewRepository {
	return &ViewRepository{db: db}
}

type dbView struct {
	ID          int64          `db:"id"`
	Screen      string         `db:"screen"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	State       string         `db:"state"`
	IsDefault   bool           `db:"is_default"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (dv *dbView) toView() (*domain.SavedView, error) {
	view := &domain.SavedView{
		ID:          dv.ID,
		Screen:      dv.Screen,
		Name:        dv.Name,
		Description: dv.Description.String,
		IsDefault:   dv.IsDefault,
		CreatedAt:   dv.CreatedAt,
		UpdatedAt:   dv.UpdatedAt,
	}

	if err := json.Unmarshal([]byte(dv.State), &view.State); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view state: %w", err)
	}

	return view, nil
}

const viewColumns = "id, screen, name, description, state, is_default, created_at, updated_at"

func (r *ViewRepository) Create(ctx context.Context, view *domain.SavedView) error {
	if err := view.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	state, err := json.Marshal(view.State)
	if err != nil {
		return fmt.Errorf("failed to marshal view state: %w", err)
	}

	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}
	if view.UpdatedAt.IsZero() {
		view.UpdatedAt = view.CreatedAt
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if view.IsDefault {
		if _, err := tx.ExecContext(ctx,
			"UPDATE saved_views SET is_default = 0 WHERE screen = ?", view.Screen); err != nil {
			return fmt.Errorf("failed to clear default view: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO saved_views (screen, name, description, state, is_default, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		view.Screen,
		view.Name,
		nullString(view.Description),
		string(state),
		view.IsDefault,
		view.CreatedAt,
		view.UpdatedAt,
	)
	if err != nil {
		return writeError("insert view", fmt.Sprintf("view %q on %s", view.Name, view.Screen), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit view: %w", err)
	}

	view.ID = id
	return nil
}

func (r *ViewRepository) GetByName(ctx context.Context, screen, name string) (*domain.SavedView, error) {
	query := "SELECT " + viewColumns + " FROM saved_views WHERE screen = ? AND name = ? COLLATE NOCASE"

	var dv dbView
	if err := r.db.GetContext(ctx, &dv, query, screen, name); err != nil {
		return nil, readError("get view", fmt.Sprintf("view %q on %s", name, screen), err)
	}

	return dv.toView()
}

// ListByScreen returns the default view first, then the rest by name.
func (r *ViewRepository) ListByScreen(ctx context.Context, screen string) ([]*domain.SavedView, error) {
	query := "SELECT " + viewColumns + " FROM saved_views WHERE screen = ? ORDER BY is_default DESC, name COLLATE NOCASE"

	var rows []dbView
	if err := r.db.SelectContext(ctx, &rows, query, screen); err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}

	views := make([]*domain.SavedView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (r *ViewRepository) Update(ctx context.Context, view *domain.SavedView) error {
	if err := view.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	state, err := json.Marshal(view.State)
	if err != nil {
		return fmt.Errorf("failed to marshal view state: %w", err)
	}

	view.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, `
		UPDATE saved_views
		SET name = ?, description = ?, state = ?, updated_at = ?
		WHERE id = ?
	`,
		view.Name,
		nullString(view.Description),
		string(state),
		view.UpdatedAt,
		view.ID,
	)
	if err != nil {
		return writeError("update view", fmt.Sprintf("view %q on %s", view.Name, view.Screen), err)
	}

	return checkAffected(result, fmt.Sprintf("view %d", view.ID))
}

func (r *ViewRepository) Delete(ctx context.Context, screen, name string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM saved_views WHERE screen = ? AND name = ? COLLATE NOCASE", screen, name)
	if err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("view %q on %s", name, screen))
}

// SetDefault makes the named view the screen's default, clearing any other.
func (r *ViewRepository) SetDefault(ctx context.Context, screen, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE saved_views SET is_default = 0 WHERE screen = ?", screen); err != nil {
		return fmt.Errorf("failed to clear default view: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE saved_views SET is_default = 1 WHERE screen = ? AND name = ? COLLATE NOCASE", screen, name)
	if err != nil {
		return fmt.Errorf("failed to set default view: %w", err)
	}
	if err := checkAffected(result, fmt.Sprintf("view %q on %s", name, screen)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ViewRepository) GetDefault(ctx context.Context, screen string) (*domain.SavedView, error) {
	query := "SELECT " + viewColumns + " FROM saved_views WHERE screen = ? AND is_default = 1"

	var dv dbView
	if err := r.db.GetContext(ctx, &dv, query, screen); err != nil {
		return nil, readError("get default view", "default view on "+screen, err)
	}

	return dv.toView()
}
