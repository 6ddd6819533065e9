package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/report"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recommendation in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := opts.app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), recommendationTable(opts.app.Format, recs))

			return nil
		},
	}
}

type queryFlags struct {
	budget string
	kind   string
	area   string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.budget, "budget", "", "budget in rupees, e.g. 60000 or ₹60,000")
	cmd.Flags().StringVar(&q.kind, "type", "", "property type: Apartment, Villa or Independent House")
	cmd.Flags().StringVar(&q.area, "area", "", "area in sq. ft.")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("area")
}

func (q *queryFlags) parse() (matching.Query, error) {
	return matching.ParseQuery(q.kind, q.area, q.budget)
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	q := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Show the recommendations that fit a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := q.parse()
			if err != nil {
				return err
			}

			res, err := opts.app.Matching.Recommend(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if res.Empty() {
				fmt.Fprintln(out, "No recommendations found for your budget.")
				return nil
			}

			fmt.Fprintf(out, "Recommendations for a %s of %s sq. ft. within %s\n",
				query.PropertyType, strconv.FormatFloat(query.AreaSqFt, 'f', -1, 64), opts.app.Format.INR(query.Budget))
			fmt.Fprintln(out, recommendationTable(opts.app.Format, res.Recommendations))

			return nil
		},
	}

	q.register(cmd)

	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	q := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a plain-text budget report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := q.parse()
			if err != nil {
				return err
			}

			sum, err := opts.app.Reports.Summary(cmd.Context(), query)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), sum.Body)

			return nil
		},
	}

	q.register(cmd)

	return cmd
}

func newPropertiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the seeded properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := newTable("ID", "Address", "Type", "Area (sq. ft.)", "Current value")

			for _, p := range opts.app.Listing.List() {
				t.Row(
					strconv.FormatInt(p.ID, 10),
					p.Address,
					string(p.Type),
					strconv.FormatFloat(p.AreaSqFt, 'f', -1, 64),
					opts.app.Format.INR(p.CurrentValue),
				)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)

			return nil
		},
	}
}

func recommendationTable(f *report.Formatter, recs []recommendation.Record) *table.Table {
	t := newTable("ID", "Title", "Category", "Cost", "Value add")

	for _, r := range recs {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			r.Title,
			string(r.Category),
			f.INR(r.Cost),
			"~"+report.Percent(r.ValueAddPercent),
		)
	}

	return t
}
