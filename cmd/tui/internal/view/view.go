package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg returns to the home menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// NavigateMsg asks the root model to open a view through the session gate.
type NavigateMsg struct {
	View session.View
}

func Navigate(v session.View) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{View: v}
	}
}

// LogoutMsg asks the root model to sign the session out.
type LogoutMsg struct{}

func Logout() tea.Msg {
	return LogoutMsg{}
}

// SessionMsg carries the outcome of a login, logout or restore.
type SessionMsg struct {
	State session.State
	Err   error
}
