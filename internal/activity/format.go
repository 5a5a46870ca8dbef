// Package activity renders activity records as human-readable messages.
package activity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hr-dashboard/internal/domain"
)

const shortIDLen = 8

// Person is what a Directory knows about a user.
type Person struct {
	Name string
	Role domain.Role
}

// Directory resolves user ids.
type Directory interface {
	Lookup(id string) (Person, bool)
}

// MapDirectory is a Directory backed by a map.
type MapDirectory map[string]Person

func (d MapDirectory) Lookup(id string) (Person, bool) {
	p, ok := d[id]
	return p, ok
}

// Formatter renders activities for one viewer. The viewer's own id is
// rendered as "You"/"you".
type Formatter struct {
	dir    Directory
	viewer string
	title  cases.Caser
}

func NewFormatter(dir Directory, viewerID string) *Formatter {
	if dir == nil {
		dir = MapDirectory(nil)
	}
	return &Formatter{
		dir:    dir,
		viewer: viewerID,
		title:  cases.Title(language.English),
	}
}

// Format renders a with no viewer.
func Format(a domain.Activity, dir Directory) string {
	return NewFormatter(dir, "").Format(a)
}

// Format never returns an empty string.
func (f *Formatter) Format(a domain.Activity) string {
	actor := f.subject(a, "actor", a.ActorID)
	target := f.object(a, "target", a.TargetID)

	switch a.Type {
	case domain.ActivityTaskAssigned:
		if a.TargetID == "" && a.Detail("targetName") == "" {
			return fmt.Sprintf("%s created %s", actor, quoted(a.Detail("taskTitle"), "a task"))
		}
		return fmt.Sprintf("%s assigned %s to %s", actor, quoted(a.Detail("taskTitle"), "a task"), target)
	case domain.ActivityTaskCompleted:
		return fmt.Sprintf("%s completed %s", actor, quoted(a.Detail("taskTitle"), "a task"))
	case domain.ActivityTaskUpdated:
		msg := fmt.Sprintf("%s updated %s", actor, quoted(a.Detail("taskTitle"), "a task"))
		if field := a.Detail("field"); field != "" {
			msg += fmt.Sprintf(" (%s)", humanize(field))
		}
		return msg
	case domain.ActivityTeamCreated:
		return fmt.Sprintf("%s created team %s", actor, orDefault(a.Detail("teamName"), "a new team"))
	case domain.ActivityTeamJoined:
		team := orDefault(a.Detail("teamName"), "a team")
		if a.TargetID == "" || a.TargetID == a.ActorID {
			return fmt.Sprintf("%s joined %s", actor, team)
		}
		return fmt.Sprintf("%s added %s to %s", actor, target, team)
	case domain.ActivityAttendanceMarked:
		status := orDefault(a.Detail("status"), "present")
		if date := a.Detail("date"); date != "" {
			return fmt.Sprintf("%s marked %s %s on %s", actor, target, status, date)
		}
		return fmt.Sprintf("%s marked %s %s", actor, target, status)
	case domain.ActivityLeaveRequested:
		from, to := a.Detail("from"), a.Detail("to")
		switch {
		case from != "" && to != "" && from != to:
			return fmt.Sprintf("%s requested leave from %s to %s", actor, from, to)
		case from != "":
			return fmt.Sprintf("%s requested leave on %s", actor, from)
		default:
			return fmt.Sprintf("%s requested leave", actor)
		}
	case domain.ActivityPayrollProcessed:
		if period := a.Detail("period"); period != "" {
			return fmt.Sprintf("%s processed payroll for %s", actor, period)
		}
		return fmt.Sprintf("%s processed payroll", actor)
	case domain.ActivityCommentAdded:
		return fmt.Sprintf("%s commented on %s", actor, quoted(a.Detail("taskTitle"), "a task"))
	}

	if msg := a.Detail("message"); msg != "" {
		return fmt.Sprintf("%s: %s", actor, msg)
	}
	if a.Type == "" {
		return fmt.Sprintf("%s performed an action", actor)
	}
	return fmt.Sprintf("%s %s", actor, humanize(string(a.Type)))
}

// Name resolves a user id for display: directory name, then the name
// embedded in details as <party>Name, then a role-aware placeholder.
func (f *Formatter) Name(id string, details map[string]string, party string) string {
	if p, ok := f.lookup(id); ok && strings.TrimSpace(p.Name) != "" {
		return strings.TrimSpace(p.Name)
	}

	if name := strings.TrimSpace(details[party+"Name"]); name != "" {
		return name
	}

	role := f.role(id, details, party)
	switch {
	case id != "" && role != "":
		return role + " " + shortID(id)
	case id != "":
		return "User " + shortID(id)
	case role != "":
		return indefinite(strings.ToLower(role))
	default:
		return "Someone"
	}
}

func (f *Formatter) subject(a domain.Activity, party, id string) string {
	if id != "" && id == f.viewer {
		return "You"
	}
	return f.Name(id, a.Details, party)
}

func (f *Formatter) object(a domain.Activity, party, id string) string {
	if id != "" && id == f.viewer {
		return "you"
	}
	name := f.Name(id, a.Details, party)
	if id == "" && a.Detail(party+"Name") == "" {
		// placeholders read mid-sentence
		return strings.ToLower(name[:1]) + name[1:]
	}
	return name
}

func (f *Formatter) lookup(id string) (Person, bool) {
	if id == "" {
		return Person{}, false
	}
	return f.dir.Lookup(id)
}

func (f *Formatter) role(id string, details map[string]string, party string) string {
	if p, ok := f.lookup(id); ok && p.Role.Label() != "" {
		return p.Role.Label()
	}
	if raw := strings.TrimSpace(details[party+"Role"]); raw != "" {
		return f.title.String(raw)
	}
	return ""
}

func indefinite(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "An " + noun
	}
	return "A " + noun
}

func shortID(id string) string {
	runes := []rune(id)
	if len(runes) <= shortIDLen {
		return id
	}
	return string(runes[:shortIDLen])
}

func quoted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return `"` + s + `"`
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func humanize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "_", " ")
}
