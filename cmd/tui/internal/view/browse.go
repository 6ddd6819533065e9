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
	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/report"
)

type browseState int

const (
	browseStateQuery browseState = iota
	browseStateLoading
	browseStateResults
	browseStateCatalog
)

type queryFields struct {
	propertyType string
	area         string
	budget       string
}

type BrowseModel struct {
	CommonModel
	app *app.App

	state  browseState
	fields *queryFields
	form   *huh.Form
	table  table.Model

	summary *report.Summary
	catalog []recommendation.Record
	err     error
}

func NewBrowseModel(a *app.App) BrowseModel {
	m := BrowseModel{
		app:    a,
		fields: &queryFields{propertyType: string(property.TypeApartment)},
		table:  newTable(recommendationColumns(), 10),
	}
	m.form = m.newForm()

	return m
}

func recommendationColumns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 34},
		{Title: "Category", Width: 14},
		{Title: "Cost", Width: 14},
		{Title: "Value add", Width: 10},
	}
}

func (m BrowseModel) Title() string { return "Find Your Perfect Home Upgrade" }

func (m BrowseModel) ShortHelp() string {
	switch m.state {
	case browseStateResults:
		return "n: new search | c: full catalog | Esc: back"
	case browseStateCatalog:
		return "n: new search | Esc: back"
	}

	return "Tab: next field | Enter: get recommendations | Esc: back"
}

func (m BrowseModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m BrowseModel) newForm() *huh.Form {
	f := m.fields

	options := make([]huh.Option[string], 0, len(property.Types))
	for _, t := range property.Types {
		options = append(options, huh.NewOption(string(t), string(t)))
	}

	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("please fill in all fields")
		}

		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("property_type").
				Title("Property type").
				Options(options...).
				Value(&f.propertyType),

			huh.NewInput().
				Key("area").
				Title("Area (in sq. ft.)").
				Placeholder("e.g. 1200").
				Value(&f.area).
				Validate(required),

			huh.NewInput().
				Key("budget").
				Title("Your budget (₹)").
				Placeholder("e.g. 60000").
				Value(&f.budget).
				Validate(required),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = browseStateQuery
			m.form = m.newForm()

			return m, m.form.Init()
		}

		m.err = nil
		m.summary = msg.summary
		m.state = browseStateResults
		m.table.SetRows(recommendationRows(m.app.Format, msg.summary.Recommendations))

		return m, nil

	case catalogMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.catalog = msg.records
		m.state = browseStateCatalog
		m.table.SetRows(recommendationRows(m.app.Format, msg.records))

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-20, 5))
		return m, nil
	}

	switch m.state {
	case browseStateQuery:
		return m.updateQuery(msg)
	case browseStateResults, browseStateCatalog:
		return m.updateResults(msg)
	}

	return m, nil
}

func (m BrowseModel) updateQuery(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	q, err := matching.ParseQuery(m.fields.propertyType, m.fields.area, m.fields.budget)
	if err != nil {
		m.err = err
		m.form = m.newForm()

		return m, m.form.Init()
	}

	m.state = browseStateLoading

	return m, m.recommendCmd(q)
}

func (m BrowseModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			m.state = browseStateQuery
			m.err = nil
			m.form = m.newForm()

			return m, m.form.Init()
		case "c":
			return m, m.catalogCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BrowseModel) View() string {
	var content string

	switch m.state {
	case browseStateQuery:
		content = m.viewQuery()
	case browseStateLoading:
		content = "Finding recommendations..."
	case browseStateResults:
		content = m.viewResults()
	case browseStateCatalog:
		content = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Full catalog (%d ideas)", len(m.catalog))),
			"",
			boxStyle.Render(m.table.View()),
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BrowseModel) viewQuery() string {
	s := titleStyle.Render("Find Your Perfect Home Upgrade") + "\n" +
		"Tell us about your property and budget.\n\n" +
		m.form.View()

	if m.err != nil {
		s += "\n\n" + errorStyle.Render(m.err.Error())
	}

	return panelStyle.Render(s)
}

func (m BrowseModel) viewResults() string {
	q := m.summary.Query

	header := fmt.Sprintf("Recommendations for your %s (%s sq. ft.) within %s",
		q.PropertyType, strconv.FormatFloat(q.AreaSqFt, 'f', -1, 64), m.app.Format.INR(q.Budget))

	if len(m.summary.Recommendations) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(header),
			"",
			noticeStyle.Render("No recommendations found for your budget."),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		"",
		boxStyle.Render(m.table.View()),
		"",
		okStyle.Render(m.summary.Body),
	)
}

func recommendationRows(f *report.Formatter, recs []recommendation.Record) []table.Row {
	rows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, table.Row{
			r.Title,
			string(r.Category),
			f.INR(r.Cost),
			"~" + report.Percent(r.ValueAddPercent),
		})
	}

	return rows
}

// Messages

type browseResultMsg struct {
	summary *report.Summary
	err     error
}

func (m BrowseModel) recommendCmd(q matching.Query) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ServiceCtx()
		defer cancel()

		sum, err := m.app.Reports.Summary(ctx, q)

		return browseResultMsg{summary: sum, err: err}
	}
}

type catalogMsg struct {
	records []recommendation.Record
	err     error
}

func (m BrowseModel) catalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ServiceCtx()
		defer cancel()

		recs, err := m.app.Catalog.List(ctx)

		return catalogMsg{records: recs, err: err}
	}
}
