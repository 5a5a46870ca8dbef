package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hr-dashboard/internal/screen"
)

// datasetLoadedMsg carries a freshly loaded screen snapshot
type datasetLoadedMsg struct {
	data screen.Dataset
}

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

func loadCmd(ctx context.Context, s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		data, err := s.Load(ctx)
		if err != nil {
			return errMsg{err}
		}
		return datasetLoadedMsg{data: data}
	}
}
