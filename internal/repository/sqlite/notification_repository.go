package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hr-dashboard/internal/domain"
)

type NotificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type dbNotification struct {
	ID          int64          `db:"id"`
	RecipientID string         `db:"recipient_id"`
	Type        string         `db:"type"`
	ActorID     sql.NullString `db:"actor_id"`
	TargetID    sql.NullString `db:"target_id"`
	Details     sql.NullString `db:"details"`
	Read        bool           `db:"read"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (dn *dbNotification) toNotification() (*domain.Notification, error) {
	n := &domain.Notification{
		ID:          dn.ID,
		RecipientID: dn.RecipientID,
		Read:        dn.Read,
		Activity: domain.Activity{
			Type:      domain.ActivityType(dn.Type),
			ActorID:   dn.ActorID.String,
			TargetID:  dn.TargetID.String,
			CreatedAt: dn.CreatedAt,
		},
	}

	if dn.Details.Valid && dn.Details.String != "" {
		if err := json.Unmarshal([]byte(dn.Details.String), &n.Details); err != nil {
			return nil, fmt.Errorf("failed to parse details: %w", err)
		}
	}

	return n, nil
}

const notificationColumns = "id, recipient_id, type, actor_id, target_id, details, read, created_at"

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	var details sql.NullString
	if len(n.Details) > 0 {
		b, err := json.Marshal(n.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal details: %w", err)
		}
		details = nullString(string(b))
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (recipient_id, type, actor_id, target_id, details, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		n.RecipientID,
		n.Type,
		nullString(n.ActorID),
		nullString(n.TargetID),
		details,
		n.Read,
		n.CreatedAt,
	)
	if err != nil {
		return writeError("insert notification", "notification", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	n.ID = id
	return nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	return r.selectAll(ctx, "SELECT "+notificationColumns+" FROM notifications ORDER BY id")
}

// ListForRecipient returns a user's notifications, newest first.
func (r *NotificationRepository) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := "SELECT " + notificationColumns + " FROM notifications WHERE recipient_id = ?"
	if unreadOnly {
		query += " AND read = 0"
	}
	query += " ORDER BY created_at DESC, id DESC"

	return r.selectAll(ctx, query, recipientID)
}

func (r *NotificationRepository) selectAll(ctx context.Context, query string, args ...any) ([]*domain.Notification, error) {
	var rows []dbNotification
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*domain.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := row.toNotification()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("notification %d", id))
}

// MarkAllRead returns how many notifications changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE recipient_id = ? AND read = 0", recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return result.RowsAffected()
}
