package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendwise/categories/app/categories"
	"github.com/spendwise/categories/app/manage"
	"github.com/spendwise/categories/db"
	"github.com/spendwise/categories/models"
)

func manageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manage",
		Short: "Open the interactive category management screen",
		RunE: func(_ *cobra.Command, _ []string) error {
			service, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			return manage.Run(service)
		},
	}
}

// newService opens the configured database, migrates the categories
// table, and builds the business facade on top of it.
func newService() (*categories.Service, func(), error) {
	conn, err := db.Open(viper.GetString("db.driver"), viper.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if err := conn.AutoMigrate(&models.Category{}); err != nil {
		cleanup()
		return nil, nil, err
	}

	repo := models.NewCategoriesRepository(conn)
	return categories.NewService(repo), cleanup, nil
}
