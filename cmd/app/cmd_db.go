package main

import (
	"errors"

	"github.com/DRSN-tech/storefront/internal/app"
	config "github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции базы данных",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewSlogLogger()

		dbCfg, err := config.LoadDB(log)
		if err != nil {
			return err
		}

		if err := app.Migrate(dbCfg, log); err != nil {
			return err
		}

		log.Infof("migrations applied")
		return nil
	},
}

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Создать пользователя со всеми правами",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if username == "" || password == "" {
			return errors.New("--username and --password are required")
		}

		log := logger.NewSlogLogger()

		dbCfg, err := config.LoadDB(log)
		if err != nil {
			return err
		}

		id, err := app.CreateSuperuser(cmd.Context(), dbCfg, log, username, email, password)
		if err != nil {
			return err
		}

		log.Infof("superuser %q created with id %d", username, id)
		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().String("username", "", "имя пользователя")
	createSuperuserCmd.Flags().String("email", "", "email")
	createSuperuserCmd.Flags().String("password", "", "пароль")
}
