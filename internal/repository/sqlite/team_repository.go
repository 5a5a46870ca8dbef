package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hr-dashboard/internal/domain"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type dbTeam struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	LeadID      sql.NullString `db:"lead_id"`
	LeadName    sql.NullString `db:"lead_name"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (dt *dbTeam) toTeam() *domain.Team {
	return &domain.Team{
		ID:          dt.ID,
		Name:        dt.Name,
		Description: dt.Description.String,
		LeadID:      dt.LeadID.String,
		LeadName:    dt.LeadName.String,
		MemberIDs:   make([]string, 0),
		CreatedAt:   dt.CreatedAt,
	}
}

type dbMember struct {
	TeamID     int64  `db:"team_id"`
	EmployeeID string `db:"employee_id"`
}

const teamSelect = `
	SELECT t.id, t.name, t.description, t.lead_id, e.name AS lead_name, t.created_at
	FROM teams t
	LEFT JOIN employees e ON e.id = t.lead_id
`

// Create inserts the team and its members in one transaction.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO teams (name, description, lead_id, created_at) VALUES (?, ?, ?, ?)",
		team.Name,
		nullString(team.Description),
		nullString(team.LeadID),
		team.CreatedAt,
	)
	if err != nil {
		return writeError("insert team", "team "+team.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	for _, member := range team.MemberIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO team_members (team_id, employee_id) VALUES (?, ?)", id, member); err != nil {
			return writeError("add team member", "member "+member, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit team: %w", err)
	}

	team.ID = id
	return nil
}

// GetByName matches the team name case-insensitively.
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	var row dbTeam
	if err := r.db.GetContext(ctx, &row, teamSelect+" WHERE t.name = ? COLLATE NOCASE", name); err != nil {
		return nil, readError("get team", "team "+name, err)
	}

	team := row.toTeam()

	if err := r.db.SelectContext(ctx, &team.MemberIDs,
		"SELECT employee_id FROM team_members WHERE team_id = ? ORDER BY rowid", team.ID); err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	if team.MemberIDs == nil {
		team.MemberIDs = make([]string, 0)
	}

	return team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	var rows []dbTeam
	if err := r.db.SelectContext(ctx, &rows, teamSelect+" ORDER BY t.id"); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	var members []dbMember
	if err := r.db.SelectContext(ctx, &members,
		"SELECT team_id, employee_id FROM team_members ORDER BY rowid"); err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	teams := make([]*domain.Team, 0, len(rows))
	byID := make(map[int64]*domain.Team, len(rows))
	for _, row := range rows {
		team := row.toTeam()
		teams = append(teams, team)
		byID[team.ID] = team
	}

	for _, m := range members {
		if team, ok := byID[m.TeamID]; ok {
			team.MemberIDs = append(team.MemberIDs, m.EmployeeID)
		}
	}

	return teams, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID int64, employeeID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO team_members (team_id, employee_id) VALUES (?, ?)", teamID, employeeID)
	if err != nil {
		return writeError("add team member", "member "+employeeID, err)
	}
	return nil
}
