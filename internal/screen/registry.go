package screen

import (
	"errors"
	"fmt"
	"strings"

	"hr-dashboard/internal/fuzzy"
	"hr-dashboard/internal/repository"
)

var ErrUnknownScreen = errors.New("unknown screen")

// UnknownScreenError carries the closest screen names to a mistyped one.
type UnknownScreenError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownScreenError) Error() string {
	msg := fmt.Sprintf("%s %q", ErrUnknownScreen, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownScreenError) Is(target error) bool {
	return target == ErrUnknownScreen
}

type Registry struct {
	screens []Screen
	byName  map[string]Screen
}

// NewRegistry builds every list screen over store.
func NewRegistry(store *repository.Store, opts Options) *Registry {
	return newRegistry(
		employeesPage(store, opts),
		tasksPage(store, opts),
		teamsPage(store, opts),
		attendancePage(store, opts),
		notificationsPage(store, opts),
	)
}

func newRegistry(screens ...Screen) *Registry {
	r := &Registry{byName: make(map[string]Screen, len(screens))}
	for _, s := range screens {
		r.screens = append(r.screens, s)
		r.byName[s.Name()] = s
	}
	return r
}

// Get resolves a screen by name, ignoring case and a trailing "s".
func (r *Registry) Get(name string) (Screen, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := r.byName[key]; ok {
		return s, nil
	}
	if s, ok := r.byName[key+"s"]; ok {
		return s, nil
	}

	return nil, &UnknownScreenError{
		Name:        name,
		Suggestions: fuzzy.Suggest(key, r.Names(), 3),
	}
}

// Names lists screens in menu order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.screens))
	for i, s := range r.screens {
		names[i] = s.Name()
	}
	return names
}

func (r *Registry) All() []Screen {
	return append([]Screen(nil), r.screens...)
}
