package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/valueplus/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/valueplus/internal/app"
	"github.com/MrJamesThe3rd/valueplus/internal/async"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type model struct {
	app   *app.App
	gate  *session.Gate
	cache *session.Cache

	cached   *auth.User
	username string
	status   string

	currentView session.View

	homeView   view.HomeModel
	loginView  view.LoginModel
	browseView view.BrowseModel
	adminView  view.AdminModel
}

// newModel builds the root model. cached is the identity remembered from the
// last run, or nil.
func newModel(a *app.App, cache *session.Cache, cached *auth.User) model {
	gate := a.Gate()

	m := model{
		app:         a,
		gate:        gate,
		cache:       cache,
		cached:      cached,
		currentView: session.ViewHome,
		homeView:    view.NewHomeModel(a.Config.App.Name, gate),
	}

	if cached != nil {
		m.username = cached.Username
	}

	return m
}

type restoreMsg struct {
	state session.State
	err   error
}

type logoutMsg struct {
	state session.State
	err   error
}

func (m model) Init() tea.Cmd {
	if m.cached == nil {
		return nil
	}

	fut, err := m.gate.Restore()
	if err != nil {
		return nil
	}

	return waitState(fut, func(st session.State, err error) tea.Msg {
		return restoreMsg{state: st, err: err}
	})
}

func waitState(fut *async.Future[session.State], wrap func(session.State, error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.ServiceCtx()
		defer cancel()

		return wrap(fut.Wait(ctx))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == session.ViewHome && msg.String() == "q" {
			return m, tea.Quit
		}

	case view.BackMsg:
		_ = m.gate.Navigate(session.ViewHome)
		m.currentView = session.ViewHome

		return m, nil

	case view.NavigateMsg:
		return m.open(msg.View)

	case view.LogoutMsg:
		fut, err := m.gate.Logout()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}

		return m, waitState(fut, func(st session.State, err error) tea.Msg {
			return logoutMsg{state: st, err: err}
		})

	case logoutMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}

		m.status = ""
		if err := m.cache.Clear(); err != nil {
			m.status = err.Error()
		}

		m.currentView = session.ViewHome

		return m, nil

	case restoreMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else if msg.state.User != nil {
			m.status = "Welcome back, " + msg.state.User.DisplayName + "!"
		}

		return m, nil

	case view.SessionMsg:
		updated, cmd := m.loginView.Update(msg)
		m.loginView = updated.(view.LoginModel)

		if msg.Err != nil {
			return m, cmd
		}

		m.status = ""
		m.username = msg.State.User.Username

		if err := m.cache.Save(msg.State.User); err != nil {
			m.status = err.Error()
		}

		return m.show(msg.State.View)
	}

	return m, m.forward(msg, m.currentView)
}

// forward hands msg to the model behind v and stores the result.
func (m *model) forward(msg tea.Msg, v session.View) tea.Cmd {
	var (
		updated tea.Model
		cmd     tea.Cmd
	)

	switch v {
	case session.ViewHome:
		updated, cmd = m.homeView.Update(msg)
		m.homeView = updated.(view.HomeModel)
	case session.ViewLogin:
		updated, cmd = m.loginView.Update(msg)
		m.loginView = updated.(view.LoginModel)
	case session.ViewBrowse:
		updated, cmd = m.browseView.Update(msg)
		m.browseView = updated.(view.BrowseModel)
	case session.ViewAdmin:
		updated, cmd = m.adminView.Update(msg)
		m.adminView = updated.(view.AdminModel)
	}

	return cmd
}

// open navigates through the gate. A denied view lands on the login screen,
// which shows the gate's notice.
func (m model) open(v session.View) (tea.Model, tea.Cmd) {
	if err := m.gate.Navigate(v); err != nil {
		return m.show(session.ViewLogin)
	}

	return m.show(v)
}

func (m model) show(v session.View) (tea.Model, tea.Cmd) {
	m.currentView = v

	switch v {
	case session.ViewLogin:
		m.loginView = view.NewLoginModel(m.gate, m.username, m.app.Config.Auth.AllowSignup)
		return m, m.loginView.Init()
	case session.ViewBrowse:
		m.browseView = view.NewBrowseModel(m.app)
		return m, m.browseView.Init()
	case session.ViewAdmin:
		m.adminView = view.NewAdminModel(m.app, m.gate)
		return m, m.adminView.Init()
	}

	return m, nil
}

func (m model) current() view.View {
	switch m.currentView {
	case session.ViewLogin:
		return m.loginView
	case session.ViewBrowse:
		return m.browseView
	case session.ViewAdmin:
		return m.adminView
	}

	return m.homeView
}

var footerStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)

func (m model) View() string {
	v := m.current()

	footer := v.Title() + " | " + v.ShortHelp()
	if m.status != "" {
		footer = m.status + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, v.View(), footerStyle.Render(footer))
}
