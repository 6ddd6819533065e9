package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/valueplus/internal/app"
	"github.com/MrJamesThe3rd/valueplus/internal/config"
)

type rootOptions struct {
	recommendations string
	properties      string
	locale          string

	app *app.App
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the ValuePlus home improvement catalog",
		Long: `catalog reads the recommendation and property seeds and answers the same
questions as the homeowner and admin screens: what fits a budget, what the
catalog holds and which properties are listed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.recommendations, "recommendations", "", "recommendation seed CSV (default: SEED_RECOMMENDATIONS or built-in)")
	flags.StringVar(&opts.properties, "properties", "", "property seed CSV (default: SEED_PROPERTIES or built-in)")
	flags.StringVar(&opts.locale, "locale", "", "locale for amounts (default: LOCALE)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newMatchCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newPropertiesCmd(opts))

	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if o.recommendations != "" {
		cfg.Seed.Recommendations = o.recommendations
	}

	if o.properties != "" {
		cfg.Seed.Properties = o.properties
	}

	if o.locale != "" {
		cfg.App.Locale = o.locale
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	o.app = a

	return nil
}
