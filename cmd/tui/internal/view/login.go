package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/valueplus/internal/async"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

const authTimeout = 30 * time.Second

type loginFields struct {
	username        string
	password        string
	signup          bool
	confirmPassword string
}

type LoginModel struct {
	CommonModel
	gate        *session.Gate
	allowSignup bool

	fields  *loginFields
	form    *huh.Form
	spinner spinner.Model
	pending bool
	err     error
}

// NewLoginModel builds the login screen. username prefills the form.
func NewLoginModel(gate *session.Gate, username string, allowSignup bool) LoginModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := LoginModel{
		gate:        gate,
		allowSignup: allowSignup,
		fields:      &loginFields{username: username},
		spinner:     s,
	}
	m.form = m.newForm()

	return m
}

func (m LoginModel) Title() string { return "Login" }

func (m LoginModel) ShortHelp() string {
	if m.pending {
		return "Signing in..."
	}

	return "Tab: next field | Enter: submit | Esc: back"
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) newForm() *huh.Form {
	f := m.fields
	f.password = ""
	f.confirmPassword = ""

	fields := []huh.Field{
		huh.NewInput().
			Key("username").
			Title("Username").
			Value(&f.username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("username is required")
				}

				return nil
			}),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.password).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}

				return nil
			}),
	}

	if m.allowSignup {
		fields = append(fields, huh.NewConfirm().
			Key("signup").
			Title("New here? Create an account").
			Affirmative("Sign up").
			Negative("Log in").
			Value(&f.signup))
	}

	groups := []*huh.Group{huh.NewGroup(fields...)}

	if m.allowSignup {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Key("confirm_password").
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&f.confirmPassword),
		).WithHideFunc(func() bool { return !f.signup }))
	}

	return huh.NewForm(groups...).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionMsg:
		if !m.pending {
			return m, nil
		}

		m.pending = false

		if msg.Err != nil {
			m.err = msg.Err
			m.form = m.newForm()

			return m, m.form.Init()
		}

		m.err = nil

		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		// Input is ignored while a login is outstanding.
		if m.pending {
			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			m.err = nil
			m.form = m.newForm()

			return m, Back
		}
	}

	if m.pending {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.submit()
}

func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	creds := auth.Credentials{
		Username: strings.TrimSpace(m.fields.username),
		Password: m.fields.password,
		Signup:   m.fields.signup,
	}

	if creds.Signup {
		creds.ConfirmPassword = m.fields.confirmPassword
	}

	fut, err := m.gate.Login(creds)
	if err != nil {
		m.err = err
		m.form = m.newForm()

		return m, m.form.Init()
	}

	m.pending = true
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, waitSession(fut))
}

func waitSession(fut *async.Future[session.State]) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()

		st, err := fut.Wait(ctx)

		return SessionMsg{State: st, Err: err}
	}
}

func (m LoginModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Login / Sign Up"))
	sb.WriteString("\n\n")

	if notice := m.gate.State().Notice; notice != "" && m.err == nil {
		sb.WriteString(noticeStyle.Render(notice))
		sb.WriteString("\n\n")
	}

	if m.pending {
		fmt.Fprintf(&sb, "%s Signing in as %s...", m.spinner.View(), m.fields.username)

		return lipgloss.NewStyle().Padding(2).Render(sb.String())
	}

	sb.WriteString(m.form.View())

	if m.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(errorStyle.Render(m.err.Error()))
	}

	return lipgloss.NewStyle().Padding(2).Render(panelStyle.Render(sb.String()))
}
