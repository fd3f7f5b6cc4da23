// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"log/slog"

	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/database/repositories"
	"github.com/pentabase/pentabase/shared"
	"github.com/spf13/cobra"
)

func NewUsersCommand() *cobra.Command {
	users := cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	users.AddCommand(newCreateAdminCommand())
	users.AddCommand(newResetPasswordCommand())
	return &users
}

// bootstraps the first admin account; everything afterwards goes through
// the admin HTTP routes.
func newCreateAdminCommand() *cobra.Command {
	createAdmin := cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			admin := models.User{
				Username: username,
				Email:    email,
				Role:     models.UserRoleAdmin,
				IsActive: true,
			}
			if err := admin.SetPassword(password); err != nil {
				slog.Error("could not hash password", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(db)
			if err := userRepository.Create(nil, &admin); err != nil {
				slog.Error("could not create admin account", "err", err)
				return
			}

			slog.Info("admin account created", "username", username, "id", admin.ID)
		},
	}

	createAdmin.Flags().String("username", "admin", "Username of the admin account")
	createAdmin.Flags().String("email", "", "Email address of the admin account")
	createAdmin.Flags().String("password", "", "Password of the admin account")
	createAdmin.MarkFlagRequired("email")    // nolint: errcheck
	createAdmin.MarkFlagRequired("password") // nolint: errcheck

	return &createAdmin
}

func newResetPasswordCommand() *cobra.Command {
	resetPassword := cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password of an existing account",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			userRepository := repositories.NewUserRepository(db)
			user, err := userRepository.FindByUsername(username)
			if err != nil {
				slog.Error("could not find user", "username", username, "err", err)
				return
			}

			if err := user.SetPassword(password); err != nil {
				slog.Error("could not hash password", "err", err)
				return
			}

			if err := userRepository.Save(nil, &user); err != nil {
				slog.Error("could not save user", "err", err)
				return
			}

			slog.Info("password reset", "username", username)
		},
	}

	resetPassword.Flags().String("username", "", "Username of the account")
	resetPassword.Flags().String("password", "", "New password")
	resetPassword.MarkFlagRequired("username") // nolint: errcheck
	resetPassword.MarkFlagRequired("password") // nolint: errcheck

	return &resetPassword
}
