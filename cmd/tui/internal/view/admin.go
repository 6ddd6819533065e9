package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/valueplus/internal/app"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type adminState int

const (
	adminStateCatalog adminState = iota
	adminStateAdd
	adminStateProperties
	adminStateSaving
)

type addFields struct {
	title       string
	description string
	cost        string
	valueAdd    string
	category    string
	image       string
}

type AdminModel struct {
	CommonModel
	app  *app.App
	gate *session.Gate

	state      adminState
	table      table.Model
	properties table.Model
	records    []recommendation.Record
	fields     *addFields
	form       *huh.Form

	loading bool
	err     error
	status  string
}

func NewAdminModel(a *app.App, gate *session.Gate) AdminModel {
	columns := append([]table.Column{{Title: "ID", Width: 14}}, recommendationColumns()...)

	props := newTable([]table.Column{
		{Title: "Address", Width: 36},
		{Title: "Type", Width: 18},
		{Title: "Area (sq. ft.)", Width: 14},
		{Title: "Current value", Width: 16},
	}, 8)

	return AdminModel{
		app:        a,
		gate:       gate,
		table:      newTable(columns, 12),
		properties: props,
		fields:     &addFields{},
		loading:    true,
	}
}

func (m AdminModel) Title() string { return "Admin Dashboard" }

func (m AdminModel) ShortHelp() string {
	switch m.state {
	case adminStateAdd:
		return "Tab: next field | Enter: save | Esc: cancel"
	case adminStateProperties:
		return "p: catalog | Esc: back"
	case adminStateSaving:
		return "Saving..."
	}

	return "a: add | d: delete | p: properties | r: refresh | Esc: back"
}

func (m AdminModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.records = msg.records
		m.refreshTables()

		return m, nil

	case adminSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = adminStateCatalog
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-12, 5))
		return m, nil
	}

	switch m.state {
	case adminStateCatalog:
		return m.updateCatalog(msg)
	case adminStateAdd:
		return m.updateAdd(msg)
	case adminStateProperties:
		return m.updateProperties(msg)
	}

	// adminStateSaving drops input until adminSaveMsg arrives.
	return m, nil
}

func (m AdminModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "d":
			cmd := m.deleteCmd()
			if cmd == nil {
				return m, nil
			}

			m.state = adminStateSaving
			m.table.Blur()

			return m, cmd
		case "p":
			m.state = adminStateProperties
			m.table.Blur()
			m.properties.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AdminModel) updateProperties(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "p":
			m.state = adminStateCatalog
			m.properties.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.properties, cmd = m.properties.Update(msg)

	return m, cmd
}

func (m AdminModel) enterAddMode() (tea.Model, tea.Cmd) {
	*m.fields = addFields{category: string(recommendation.CategoryInterior)}

	f := m.fields

	options := make([]huh.Option[string], 0, len(recommendation.Categories))
	for _, c := range recommendation.Categories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&f.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title cannot be empty")
					}

					return nil
				}),

			huh.NewText().
				Key("description").
				Title("Description").
				Lines(3).
				Value(&f.description),

			huh.NewInput().
				Key("cost").
				Title("Estimated cost (₹)").
				Placeholder("e.g. 1,50,000").
				Value(&f.cost).
				Validate(func(s string) error {
					cost, err := recommendation.ParseCost(s)
					if err != nil {
						return err
					}

					if !cost.Valid {
						return errors.New("cost is required")
					}

					return nil
				}),

			huh.NewInput().
				Key("value_add").
				Title("Value add (%)").
				Placeholder("e.g. 8").
				Value(&f.valueAdd).
				Validate(func(s string) error {
					_, err := parsePercent(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&f.category),

			huh.NewInput().
				Key("image").
				Title("Image URL").
				Placeholder("https://...").
				Value(&f.image),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = adminStateAdd
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m AdminModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = adminStateCatalog
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = adminStateSaving
	m.form = nil

	return m, m.addCmd()
}

func (m AdminModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading catalog...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var content string

	switch m.state {
	case adminStateProperties:
		content = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Property listings (%d)", len(m.app.Listing.List()))),
			"",
			boxStyle.Render(m.properties.View()),
		)
	default:
		content = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Manage recommendations (%d)", len(m.records))),
			"",
			boxStyle.Render(m.table.View()),
		)

		if m.state == adminStateAdd && m.form != nil {
			panel := panelStyle.Width(54).Render("Add New Recommendation\n\n" + m.form.View())
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	}

	if m.state == adminStateSaving {
		content = helpStyle.Render("Saving...") + "\n" + content
	} else if m.status != "" {
		content = helpStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AdminModel) refreshTables() {
	rows := recommendationRows(m.app.Format, m.records)
	for i, r := range m.records {
		rows[i] = append(table.Row{strconv.FormatInt(r.ID, 10)}, rows[i]...)
	}

	m.table.SetRows(rows)

	listing := m.app.Listing.List()
	propRows := make([]table.Row, 0, len(listing))

	for _, p := range listing {
		propRows = append(propRows, table.Row{
			p.Address,
			string(p.Type),
			strconv.FormatFloat(p.AreaSqFt, 'f', -1, 64),
			m.app.Format.INR(p.CurrentValue),
		})
	}

	m.properties.SetRows(propRows)
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errors.New("value add must be a non-negative number")
	}

	return v, nil
}

// Messages

type adminLoadMsg struct {
	records []recommendation.Record
	err     error
}

func (m AdminModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ServiceCtx()
		defer cancel()

		recs, err := m.app.Catalog.List(ctx)

		return adminLoadMsg{records: recs, err: err}
	}
}

type adminSaveMsg struct {
	status string
	err    error
}

func (m AdminModel) addCmd() tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		if err := session.Authorize(m.gate.State().Role, session.ViewAdmin); err != nil {
			return adminSaveMsg{err: err}
		}

		cost, err := recommendation.ParseCost(f.cost)
		if err != nil {
			return adminSaveMsg{err: err}
		}

		valueAdd, err := parsePercent(f.valueAdd)
		if err != nil {
			return adminSaveMsg{err: err}
		}

		ctx, cancel := ServiceCtx()
		defer cancel()

		rec, err := m.app.Catalog.Add(ctx, recommendation.CreateParams{
			Title:           f.title,
			Description:     f.description,
			Cost:            cost,
			ValueAddPercent: valueAdd,
			Category:        recommendation.Category(f.category),
			ImageRef:        f.image,
		})
		if err != nil {
			return adminSaveMsg{err: err}
		}

		return adminSaveMsg{status: fmt.Sprintf("Added %q.", rec.Title)}
	}
}

func (m AdminModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return nil
	}

	rec := m.records[idx]

	return func() tea.Msg {
		if err := session.Authorize(m.gate.State().Role, session.ViewAdmin); err != nil {
			return adminSaveMsg{err: err}
		}

		ctx, cancel := ServiceCtx()
		defer cancel()

		if err := m.app.Catalog.Remove(ctx, rec.ID); err != nil {
			return adminSaveMsg{err: err}
		}

		return adminSaveMsg{status: fmt.Sprintf("Deleted %q.", rec.Title)}
	}
}
