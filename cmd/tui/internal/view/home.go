package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type HomeModel struct {
	CommonModel
	appName string
	gate    *session.Gate
}

func NewHomeModel(appName string, gate *session.Gate) HomeModel {
	return HomeModel{appName: appName, gate: gate}
}

func (m HomeModel) Title() string { return m.appName }

func (m HomeModel) ShortHelp() string {
	return "1-4: choose | q: quit"
}

func (m HomeModel) Init() tea.Cmd {
	return nil
}

func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "1":
		return m, Navigate(session.ViewBrowse)
	case "2":
		return m, Navigate(session.ViewAdmin)
	case "3":
		return m, Navigate(session.ViewLogin)
	case "4":
		return m, Logout
	}

	return m, nil
}

func (m HomeModel) View() string {
	st := m.gate.State()

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.appName))
	sb.WriteString("\nIncrease your home's value with smart, budget-friendly upgrades.\n\n")

	if st.Authenticated() {
		fmt.Fprintf(&sb, "Signed in as %s (%s)\n\n", activeStyle(st.User.DisplayName), st.Role)
	} else {
		sb.WriteString("Not signed in\n\n")
	}

	sb.WriteString("1. For Homeowners\n")
	sb.WriteString("2. For Admins\n")
	sb.WriteString("3. Login\n")
	sb.WriteString("4. Logout\n\n")
	sb.WriteString("q. Quit")

	if st.Pending {
		sb.WriteString("\n\n" + helpStyle.Render("Working..."))
	}

	if st.Notice != "" {
		sb.WriteString("\n\n" + noticeStyle.Render(st.Notice))
	}

	return lipgloss.NewStyle().Padding(2).Render(sb.String())
}
