package commands

import (
	"log/slog"

	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run the database migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}

			slog.Info("migrations finished")
		},
	}

	return &migrate
}
