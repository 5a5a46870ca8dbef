// Package export writes derived list rows out as CSV, JSON or Markdown
// and loads seed data into the store.
package export

import (
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatCSV, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (table, csv, json or markdown)", s)
	}
}

// ConflictStrategy decides what an import does with an employee whose
// email is already on file.
type ConflictStrategy string

const (
	ConflictStrategyMerge     ConflictStrategy = "merge"
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch c := ConflictStrategy(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return ConflictStrategySkip, nil
	case ConflictStrategyMerge, ConflictStrategySkip, ConflictStrategyOverwrite:
		return c, nil
	default:
		return "", fmt.Errorf("unknown conflict strategy %q (merge, skip or overwrite)", s)
	}
}

// Seed is the import file layout. People are referenced by id, email or
// name; dates accept the forms query.ParseDate reads.
type Seed struct {
	Employees  []EmployeeData `json:"employees" yaml:"employees"`
	Teams      []TeamData     `json:"teams" yaml:"teams"`
	Tasks      []TaskData     `json:"tasks" yaml:"tasks"`
	Attendance []DayData      `json:"attendance" yaml:"attendance"`
	Activities []ActivityData `json:"activities" yaml:"activities"`
}

type EmployeeData struct {
	ID         string   `json:"id,omitempty" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email,omitempty" yaml:"email"`
	Role       string   `json:"role,omitempty" yaml:"role"`
	Department string   `json:"department,omitempty" yaml:"department"`
	Age        int      `json:"age,omitempty" yaml:"age"`
	Skills     []string `json:"skills,omitempty" yaml:"skills"`
	Joined     string   `json:"joined,omitempty" yaml:"joined"`
}

type TeamData struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Lead        string   `json:"lead,omitempty" yaml:"lead"`
	Members     []string `json:"members,omitempty" yaml:"members"`
}

type TaskData struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Priority    string   `json:"priority,omitempty" yaml:"priority"`
	Status      string   `json:"status,omitempty" yaml:"status"`
	Project     string   `json:"project,omitempty" yaml:"project"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
	Assignee    string   `json:"assignee,omitempty" yaml:"assignee"`
	Due         string   `json:"due,omitempty" yaml:"due"`
}

type DayData struct {
	Employee string  `json:"employee" yaml:"employee"`
	Date     string  `json:"date" yaml:"date"`
	Status   string  `json:"status" yaml:"status"`
	Hours    float64 `json:"hours,omitempty" yaml:"hours"`
	Note     string  `json:"note,omitempty" yaml:"note"`
}

// ActivityData becomes one notification per recipient. Team events name
// the team so its members are notified too.
type ActivityData struct {
	Type    string            `json:"type" yaml:"type"`
	Actor   string            `json:"actor,omitempty" yaml:"actor"`
	Target  string            `json:"target,omitempty" yaml:"target"`
	Team    string            `json:"team,omitempty" yaml:"team"`
	Details map[string]string `json:"details,omitempty" yaml:"details"`
	At      time.Time         `json:"at,omitempty" yaml:"at"`
}

// ImportResult counts what an import created.
type ImportResult struct {
	Employees     int
	Skipped       int
	Teams         int
	Tasks         int
	Attendance    int
	Notifications int
}
