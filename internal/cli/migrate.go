package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"job-catalog/internal/infra/setup"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "migrate",
		Short:         "Create or upgrade the vacancies and resumes tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, rootOpts)
		},
	}
}

func runMigrate(cmd *cobra.Command, opts *RootOptions) error {
	cfg, log, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := setup.InitDB(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := setup.CloseDB(db); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	if err := setup.MigrateDB(db); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", cfg.DB.Driver)
	return nil
}
