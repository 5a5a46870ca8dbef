package domain

import (
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityTaskAssigned     ActivityType = "task_assigned"
	ActivityTaskCompleted    ActivityType = "task_completed"
	ActivityTaskUpdated      ActivityType = "task_updated"
	ActivityTeamCreated      ActivityType = "team_created"
	ActivityTeamJoined       ActivityType = "team_joined"
	ActivityAttendanceMarked ActivityType = "attendance_marked"
	ActivityLeaveRequested   ActivityType = "leave_requested"
	ActivityPayrollProcessed ActivityType = "payroll_processed"
	ActivityCommentAdded     ActivityType = "comment_added"
)

// Activity is a structured event about something a user did.
// Details carries free-form context such as taskTitle, teamName or
// denormalised actorName/targetName.
type Activity struct {
	Type      ActivityType      `db:"type" json:"type" yaml:"type"`
	ActorID   string            `db:"actor_id" json:"actor_id,omitempty" yaml:"actor_id"`
	TargetID  string            `db:"target_id" json:"target_id,omitempty" yaml:"target_id"`
	Details   map[string]string `db:"details" json:"details,omitempty" yaml:"details"`
	CreatedAt time.Time         `db:"created_at" json:"created_at" yaml:"created_at"`
}

func (a *Activity) Detail(key string) string {
	if a.Details == nil {
		return ""
	}
	return strings.TrimSpace(a.Details[key])
}

func (a *Activity) Validate() error {
	if strings.TrimSpace(string(a.Type)) == "" {
		return invalid("activity type cannot be empty")
	}
	return nil
}

// Notification delivers an activity to one recipient.
type Notification struct {
	ID          int64  `db:"id" json:"id"`
	RecipientID string `db:"recipient_id" json:"recipient_id"`
	Read        bool   `db:"read" json:"read"`
	Activity

	// rendered message, filled in by the caller
	Message string `db:"-" json:"message,omitempty"`
}

func NewNotification(recipientID string, activity Activity) *Notification {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	return &Notification{
		RecipientID: recipientID,
		Activity:    activity,
	}
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.RecipientID) == "" {
		return invalid("notification recipient cannot be empty")
	}
	return n.Activity.Validate()
}

// Recipients lists who should be notified about an activity: the target,
// plus any extra ids, never the actor and never twice.
func Recipients(a Activity, extra ...string) []string {
	seen := map[string]bool{"": true, a.ActorID: true}
	var out []string
	for _, id := range append([]string{a.TargetID}, extra...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
