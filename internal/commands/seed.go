package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with fixture data",
		Long: `Seed the database with the resources of a YAML fixture.

Without --file, the embedded demo data set is used. Categories referenced
by name must be part of the fixture or exist in the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixture := seed.Demo()

			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()

				fixture, err = seed.Load(f)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}

			if err := connect(opts.config); err != nil {
				return err
			}
			defer disconnect()

			if err := seed.Apply(models.DB, fixture, time.Now()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d resources into %s\n", fixture.Len(), opts.config.DBPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture to seed instead of the demo data set")
	return cmd
}
