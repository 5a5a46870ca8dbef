package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hr-dashboard/internal/domain"
	"hr-dashboard/internal/query"
	"hr-dashboard/internal/repository"
)

// DecodeSeed reads a YAML (or JSON) seed file. Unknown keys are rejected.
func DecodeSeed(r io.Reader) (*Seed, error) {
	var seed Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	return &seed, nil
}

type Importer struct {
	store  *repository.Store
	logger *zap.Logger
	now    func() time.Time

	people map[string]string
	teams  map[string]*domain.Team
}

func NewImporter(store *repository.Store, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{store: store, logger: logger, now: time.Now}
}

// Import loads a seed in dependency order: employees, teams, tasks,
// attendance, then activities.
func (i *Importer) Import(ctx context.Context, seed *Seed, strategy ConflictStrategy) (ImportResult, error) {
	var result ImportResult

	if err := i.loadDirectory(ctx); err != nil {
		return result, err
	}

	for _, data := range seed.Employees {
		created, err := i.importEmployee(ctx, data, strategy)
		if err != nil {
			return result, fmt.Errorf("failed to import employee %s: %w", data.Name, err)
		}
		if created {
			result.Employees++
		} else {
			result.Skipped++
		}
	}

	for _, data := range seed.Teams {
		created, err := i.importTeam(ctx, data)
		if err != nil {
			return result, fmt.Errorf("failed to import team %s: %w", data.Name, err)
		}
		if created {
			result.Teams++
		} else {
			result.Skipped++
		}
	}

	for _, data := range seed.Tasks {
		if err := i.importTask(ctx, data); err != nil {
			return result, fmt.Errorf("failed to import task %s: %w", data.Title, err)
		}
		result.Tasks++
	}

	for _, data := range seed.Attendance {
		err := i.importDay(ctx, data)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			i.logger.Debug("attendance already recorded",
				zap.String("employee", data.Employee), zap.String("date", data.Date))
			result.Skipped++
		case err != nil:
			return result, fmt.Errorf("failed to import attendance for %s: %w", data.Employee, err)
		default:
			result.Attendance++
		}
	}

	for _, data := range seed.Activities {
		n, err := i.importActivity(ctx, data)
		if err != nil {
			return result, fmt.Errorf("failed to import %s activity: %w", data.Type, err)
		}
		result.Notifications += n
	}

	i.logger.Info("import finished",
		zap.Int("employees", result.Employees),
		zap.Int("teams", result.Teams),
		zap.Int("tasks", result.Tasks),
		zap.Int("attendance", result.Attendance),
		zap.Int("notifications", result.Notifications),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (i *Importer) loadDirectory(ctx context.Context) error {
	i.people = make(map[string]string)
	i.teams = make(map[string]*domain.Team)

	employees, err := i.store.Employees.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	for _, e := range employees {
		i.remember(e)
	}

	teams, err := i.store.Teams.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	for _, t := range teams {
		i.teams[strings.ToLower(t.Name)] = t
	}
	return nil
}

func (i *Importer) remember(e *domain.Employee) {
	i.people[e.ID] = e.ID
	if e.Email != "" {
		i.people[strings.ToLower(e.Email)] = e.ID
	}
	i.people[strings.ToLower(e.Name)] = e.ID
}

// person resolves an id, email or name to an employee id. An empty
// reference resolves to "".
func (i *Importer) person(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	if id, ok := i.people[ref]; ok {
		return id, nil
	}
	if id, ok := i.people[strings.ToLower(ref)]; ok {
		return id, nil
	}
	return "", fmt.Errorf("unknown employee %q: %w", ref, domain.ErrInvalid)
}

func (i *Importer) date(value string) (*time.Time, error) {
	d, err := query.ParseDate(value, i.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalid, err)
	}
	return d, nil
}

func (i *Importer) importEmployee(ctx context.Context, data EmployeeData, strategy ConflictStrategy) (bool, error) {
	e := &domain.Employee{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		Department: data.Department,
		Age:        data.Age,
		Skills:     data.Skills,
	}
	if data.Role != "" {
		role, err := domain.ParseRole(data.Role)
		if err != nil {
			return false, fmt.Errorf("%w: %w", domain.ErrInvalid, err)
		}
		e.Role = role
	}
	if data.Joined != "" {
		joined, err := i.date(data.Joined)
		if err != nil {
			return false, err
		}
		if joined != nil {
			e.JoinedAt = *joined
		}
	}

	if e.Email != "" {
		existing, err := i.store.Employees.GetByEmail(ctx, e.Email)
		switch {
		case err == nil:
			return false, i.resolveConflict(ctx, existing, e, strategy)
		case !errors.Is(err, domain.ErrNotFound):
			return false, err
		}
	}

	if err := i.store.Employees.Create(ctx, e); err != nil {
		return false, err
	}
	i.remember(e)
	return true, nil
}

func (i *Importer) resolveConflict(ctx context.Context, existing, incoming *domain.Employee, strategy ConflictStrategy) error {
	defer i.remember(existing)

	switch strategy {
	case ConflictStrategyOverwrite:
		existing.Name = incoming.Name
		existing.Role = orRole(incoming.Role, existing.Role)
		existing.Department = incoming.Department
		existing.Age = incoming.Age
		existing.Skills = incoming.Skills
		if !incoming.JoinedAt.IsZero() {
			existing.JoinedAt = incoming.JoinedAt
		}
	case ConflictStrategyMerge:
		if existing.Department == "" {
			existing.Department = incoming.Department
		}
		if existing.Age == 0 {
			existing.Age = incoming.Age
		}
		existing.Skills = union(existing.Skills, incoming.Skills)
	default:
		i.logger.Debug("employee exists, skipping", zap.String("email", existing.Email))
		return nil
	}

	if err := i.store.Employees.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update existing employee: %w", err)
	}
	return nil
}

func (i *Importer) importTeam(ctx context.Context, data TeamData) (bool, error) {
	if _, ok := i.teams[strings.ToLower(data.Name)]; ok {
		return false, nil
	}

	team := domain.NewTeam(data.Name)
	team.Description = data.Description

	lead, err := i.person(data.Lead)
	if err != nil {
		return false, err
	}
	team.LeadID = lead

	for _, ref := range data.Members {
		id, err := i.person(ref)
		if err != nil {
			return false, err
		}
		if !team.HasMember(id) {
			team.MemberIDs = append(team.MemberIDs, id)
		}
	}

	if err := i.store.Teams.Create(ctx, team); err != nil {
		return false, err
	}
	i.teams[strings.ToLower(team.Name)] = team
	return true, nil
}

func (i *Importer) importTask(ctx context.Context, data TaskData) error {
	task := domain.NewTask(data.Title)
	task.Description = data.Description
	task.Project = data.Project
	if data.Tags != nil {
		task.Tags = data.Tags
	}
	if data.Priority != "" {
		task.Priority = domain.Priority(strings.ToLower(data.Priority))
	}
	if data.Status != "" {
		task.Status = domain.Status(strings.ToLower(data.Status))
	}

	assignee, err := i.person(data.Assignee)
	if err != nil {
		return err
	}
	task.AssigneeID = assignee

	if data.Due != "" {
		due, err := i.date(data.Due)
		if err != nil {
			return err
		}
		task.DueDate = due
	}

	return i.store.Tasks.Create(ctx, task)
}

func (i *Importer) importDay(ctx context.Context, data DayData) error {
	employee, err := i.person(data.Employee)
	if err != nil {
		return err
	}

	day, err := i.date(data.Date)
	if err != nil {
		return err
	}
	if day == nil {
		return fmt.Errorf("attendance date cannot be empty: %w", domain.ErrInvalid)
	}

	status, err := domain.ParseAttendanceStatus(data.Status)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalid, err)
	}

	record := domain.NewAttendance(employee, *day, status)
	record.HoursWorked = data.Hours
	record.Note = data.Note
	return i.store.Attendance.Create(ctx, record)
}

// importActivity fans the activity out to its recipients and returns how
// many notifications it created.
func (i *Importer) importActivity(ctx context.Context, data ActivityData) (int, error) {
	actor, err := i.person(data.Actor)
	if err != nil {
		return 0, err
	}
	target, err := i.person(data.Target)
	if err != nil {
		return 0, err
	}

	details := make(map[string]string, len(data.Details)+1)
	for k, v := range data.Details {
		details[k] = v
	}

	var members []string
	if data.Team != "" {
		team, ok := i.teams[strings.ToLower(data.Team)]
		if !ok {
			return 0, fmt.Errorf("unknown team %q: %w", data.Team, domain.ErrInvalid)
		}
		if details["teamName"] == "" {
			details["teamName"] = team.Name
		}
		members = append(members, team.MemberIDs...)
		if team.LeadID != "" {
			members = append(members, team.LeadID)
		}
	}

	activity := domain.Activity{
		Type:      domain.ActivityType(data.Type),
		ActorID:   actor,
		TargetID:  target,
		Details:   details,
		CreatedAt: data.At,
	}
	if err := activity.Validate(); err != nil {
		return 0, err
	}

	recipients := domain.Recipients(activity, members...)
	for _, id := range recipients {
		if err := i.store.Notifications.Create(ctx, domain.NewNotification(id, activity)); err != nil {
			return 0, err
		}
	}
	return len(recipients), nil
}

func orRole(r, fallback domain.Role) domain.Role {
	if r == "" {
		return fallback
	}
	return r
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[strings.ToLower(s)] = true
	}
	for _, s := range b {
		if !seen[strings.ToLower(s)] {
			seen[strings.ToLower(s)] = true
			out = append(out, s)
		}
	}
	return out
}
