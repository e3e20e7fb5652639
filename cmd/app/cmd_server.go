package main

import (
	"github.com/DRSN-tech/storefront/internal/app"
	config "github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP и gRPC серверы вместе с outbox-воркером",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewSlogLogger()

		cfg, err := config.Load(log)
		if err != nil {
			log.Errorf(err, "failed to load config")
			return err
		}

		application, err := app.NewApp(cfg, log)
		if err != nil {
			log.Errorf(err, "failed to initialize app")
			return err
		}

		return application.Run()
	},
}
