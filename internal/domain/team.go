package domain

import (
	"strings"
	"time"
)

type Team struct {
	ID          int64     `db:"id" json:"id" yaml:"id"`
	Name        string    `db:"name" json:"name" yaml:"name"`
	Description string    `db:"description" json:"description,omitempty" yaml:"description"`
	LeadID      string    `db:"lead_id" json:"lead_id,omitempty" yaml:"lead_id"`
	MemberIDs   []string  `db:"member_ids" json:"member_ids" yaml:"member_ids"`
	CreatedAt   time.Time `db:"created_at" json:"created_at" yaml:"created_at"`

	LeadName string `db:"-" json:"lead_name,omitempty" yaml:"-"`
}

func NewTeam(name string) *Team {
	return &Team{
		Name:      name,
		MemberIDs: make([]string, 0),
		CreatedAt: time.Now(),
	}
}

func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("team name cannot be empty")
	}

	if len(t.Name) > 100 {
		return invalid("team name cannot exceed 100 characters")
	}

	seen := make(map[string]bool, len(t.MemberIDs))
	for _, id := range t.MemberIDs {
		if seen[id] {
			return invalid("duplicate team member: " + id)
		}
		seen[id] = true
	}

	return nil
}

// Size counts the members, including the lead when not listed as a member.
func (t *Team) Size() int {
	size := len(t.MemberIDs)
	if t.LeadID != "" && !t.HasMember(t.LeadID) {
		size++
	}
	return size
}

func (t *Team) HasMember(id string) bool {
	for _, m := range t.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// SizeBucket buckets the team size: small (<=3), medium (<=8) or large.
func (t *Team) SizeBucket() string {
	switch size := t.Size(); {
	case size <= 3:
		return "small"
	case size <= 8:
		return "medium"
	default:
		return "large"
	}
}
