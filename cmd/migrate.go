package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelBookingService/migrations"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				rt, err := bootstrap(cmd.Context(), *configPath, false)
				if err != nil {
					return err
				}
				defer rt.Close()

				migrator := migrations.NewMigrator(rt.db, txmanager.NewTransactionManager(rt.db), rt.log)
				applied, err := migrator.Up(cmd.Context())
				if err != nil {
					return err
				}

				rt.log.Info("Migrations complete: %d applied", applied)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show status of all migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				rt, err := bootstrap(cmd.Context(), *configPath, false)
				if err != nil {
					return err
				}
				defer rt.Close()

				migrator := migrations.NewMigrator(rt.db, txmanager.NewTransactionManager(rt.db), rt.log)
				statuses, err := migrator.Status(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-8s  %-30s  %-8s\n", "Version", "Name", "Status")
				for _, st := range statuses {
					state := "Pending"
					if st.Applied {
						state = "Applied"
					}
					fmt.Fprintf(out, "%-8s  %-30s  %-8s\n", st.Version, st.Name, state)
				}
				return nil
			},
		},
	)

	return cmd
}
